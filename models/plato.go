package models

import "time"

type Plato struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Nombre      string  `gorm:"type:varchar(255);not null" json:"nombre"`
	Categoria   string  `gorm:"type:varchar(100);not null;index" json:"categoria"`
	Descripcion *string `gorm:"type:text" json:"descripcion,omitempty"`
	PrecioBase  float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"precio_base"`
	CostoTotal  float64 `gorm:"type:decimal(10,2);not null;default:0.00" json:"costo_total"`
	// Stored copy of the margin; must be recomputed together with
	// precio_base/costo_total on every write (services/pricing.go).
	MargenPorcentaje   float64   `gorm:"type:decimal(5,1);not null;default:0.0" json:"margen_porcentaje"`
	TiempoPreparacion  int       `gorm:"not null;default:0" json:"tiempo_preparacion"`
	PorcionesPorReceta int       `gorm:"not null;default:1" json:"porciones_por_receta"`
	EsCombinable       bool      `gorm:"not null;default:false" json:"es_combinable"`
	IncluyeArroz       bool      `gorm:"not null;default:false" json:"incluye_arroz"`
	Activo             bool      `gorm:"not null;default:true;index" json:"activo"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
	Recetas            []Receta  `gorm:"foreignKey:PlatoID" json:"recetas,omitempty"`
}

func (Plato) TableName() string {
	return "platos"
}
