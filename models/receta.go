package models

import "time"

// Receta is one ingredient line in a plato's bill of materials.
type Receta struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	PlatoID       uint        `gorm:"not null;index" json:"plato_id"`
	Plato         Plato       `gorm:"foreignKey:PlatoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	IngredienteID uint        `gorm:"not null;index" json:"ingrediente_id"`
	Ingrediente   Ingrediente `gorm:"foreignKey:IngredienteID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"ingrediente"`
	Cantidad      float64     `gorm:"type:decimal(10,3);not null" json:"cantidad"`
	Unidad        string      `gorm:"type:varchar(20);not null" json:"unidad"`
	EsPrincipal   bool        `gorm:"not null;default:false" json:"es_principal"`
	Notas         *string     `gorm:"type:text" json:"notas,omitempty"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

func (Receta) TableName() string {
	return "recetas"
}
