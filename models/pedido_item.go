package models

import "time"

type PedidoItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	PedidoID uint `gorm:"not null;index" json:"pedido_id"`
	// Omitting Pedido from JSON to avoid recursive nesting
	Pedido  Pedido `gorm:"foreignKey:PedidoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	PlatoID uint   `gorm:"not null" json:"plato_id"`
	Plato   Plato  `gorm:"foreignKey:PlatoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"plato"`
	// Set on combo lines that carry an entrada selection.
	EntradaID      *uint     `json:"entrada_id,omitempty"`
	Entrada        *Entrada  `gorm:"foreignKey:EntradaID" json:"entrada,omitempty"`
	Cantidad       int       `gorm:"not null" json:"cantidad"`
	PrecioUnitario float64   `gorm:"type:decimal(10,2);not null" json:"precio_unitario"`
	EsMenu         bool      `gorm:"not null;default:false" json:"es_menu"`
	PrecioMenu     *float64  `gorm:"type:decimal(10,2)" json:"precio_menu,omitempty"`
	Observaciones  *string   `gorm:"type:text" json:"observaciones,omitempty"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

func (PedidoItem) TableName() string {
	return "pedido_items"
}
