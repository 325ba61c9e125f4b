package models

import "time"

// MenuPlanDia schedules one plato on one calendar day of the weekly plan,
// with the estimated batch size and the running sales count.
type MenuPlanDia struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Fecha              time.Time `gorm:"type:date;not null;index" json:"fecha"`
	PlatoID            uint      `gorm:"not null" json:"plato_id"`
	Plato              Plato     `gorm:"foreignKey:PlatoID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"plato"`
	PorcionesEstimadas int       `gorm:"not null;default:0" json:"porciones_estimadas"`
	PorcionesVendidas  int       `gorm:"not null;default:0" json:"porciones_vendidas"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

func (MenuPlanDia) TableName() string {
	return "menu_plan_dias"
}
