package models

import "time"

// Entrada is an appetizer offered inside the fixed-price menu.
type Entrada struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Nombre           string    `gorm:"type:varchar(255);not null" json:"nombre"`
	Descripcion      *string   `gorm:"type:text" json:"descripcion,omitempty"`
	CostoPreparacion float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"costo_preparacion"`
	Activa           bool      `gorm:"not null;default:true;index" json:"activa"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

func (Entrada) TableName() string {
	return "entradas"
}
