package models

import "time"

// MenuDelDia is the fixed-price combo offering (entrada + segundo).
// Its price is configuration data, independent of the component dishes.
type MenuDelDia struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nombre      string    `gorm:"type:varchar(255);not null" json:"nombre"`
	PrecioMenu  float64   `gorm:"type:decimal(10,2);not null" json:"precio_menu"`
	Descripcion *string   `gorm:"type:text" json:"descripcion,omitempty"`
	Activo      bool      `gorm:"not null;default:true;index" json:"activo"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (MenuDelDia) TableName() string {
	return "menus"
}
