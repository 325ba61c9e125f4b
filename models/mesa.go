package models

import "time"

// Mesa stored states. The effective state a client sees may override
// this to ocupada when an open pedido references the mesa.
const (
	MesaLibre     = "libre"
	MesaOcupada   = "ocupada"
	MesaReservada = "reservada"
)

type Mesa struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Numero    int       `gorm:"not null;uniqueIndex" json:"numero"`
	Capacidad int       `gorm:"not null;default:4" json:"capacidad"`
	Estado    string    `gorm:"type:varchar(20);not null;default:'libre'" json:"estado"`
	Activa    bool      `gorm:"not null;default:true;index" json:"activa"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Mesa) TableName() string {
	return "mesas"
}
