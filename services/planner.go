package services

import (
	"math"

	"github.com/alimentosKerrys/grub-genius-system/models"
)

// PlanDiaResumen aggregates one planned day of the weekly menu.
type PlanDiaResumen struct {
	Fecha        string               `json:"fecha"`
	Platos       []models.MenuPlanDia `json:"platos"`
	CostoTotal   float64              `json:"costo_total"`
	IngresoTotal float64              `json:"ingreso_total"`
	MargenTotal  float64              `json:"margen_total"`
	AvanceVentas float64              `json:"avance_ventas"`
}

// ResumenPlanDia derives a planned day's money numbers from its rows:
// cost and revenue scale with sold portions, progress is sold over
// estimated as a whole percentage.
func ResumenPlanDia(fecha string, filas []models.MenuPlanDia) PlanDiaResumen {
	resumen := PlanDiaResumen{Fecha: fecha, Platos: filas}

	var estimadas, vendidas int
	for _, fila := range filas {
		resumen.CostoTotal += fila.Plato.CostoTotal * float64(fila.PorcionesVendidas)
		resumen.IngresoTotal += fila.Plato.PrecioBase * float64(fila.PorcionesVendidas)
		estimadas += fila.PorcionesEstimadas
		vendidas += fila.PorcionesVendidas
	}

	resumen.CostoTotal = math.Round(resumen.CostoTotal*100) / 100
	resumen.IngresoTotal = math.Round(resumen.IngresoTotal*100) / 100
	resumen.MargenTotal = math.Round((resumen.IngresoTotal-resumen.CostoTotal)*100) / 100
	if estimadas > 0 {
		resumen.AvanceVentas = math.Round(float64(vendidas) / float64(estimadas) * 100)
	}
	return resumen
}
