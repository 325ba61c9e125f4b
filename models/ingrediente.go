package models

import "time"

type Ingrediente struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Nombre             string  `gorm:"type:varchar(255);not null" json:"nombre"`
	Categoria          string  `gorm:"type:varchar(100);not null;index" json:"categoria"`
	UnidadMedida       string  `gorm:"type:varchar(20);not null" json:"unidad_medida"`
	PrecioUnitario     float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"precio_unitario"`
	StockActual        float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"stock_actual"`
	StockMinimo        float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"stock_minimo"`
	MermaPorcentaje    float64 `gorm:"type:decimal(5,2);not null;default:0.00" json:"merma_porcentaje"`
	ProveedorPrincipal *string `gorm:"type:varchar(255)" json:"proveedor_principal,omitempty"`
	Notas              *string `gorm:"type:text" json:"notas,omitempty"`
	// Ingredients are never hard-deleted, only deactivated.
	Activo    bool      `gorm:"not null;default:true;index" json:"activo"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Ingrediente) TableName() string {
	return "ingredientes"
}
