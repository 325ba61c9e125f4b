package services

import (
	"math"

	"github.com/alimentosKerrys/grub-genius-system/models"
)

// EstadoStock is the derived stock bucket used for badges, filters and
// the purchase list. It is never stored.
type EstadoStock string

const (
	StockBajo   EstadoStock = "bajo"
	StockNormal EstadoStock = "normal"
	StockOptimo EstadoStock = "optimo"
)

// ClassifyStock buckets a stock level against its minimum threshold:
// bajo when at or under half the minimum, normal up to the minimum,
// optimo above it. With stockMinimo <= 0 the first two bands collapse,
// so anything positive is optimo.
func ClassifyStock(stockActual, stockMinimo float64) EstadoStock {
	if stockActual <= stockMinimo*0.5 {
		return StockBajo
	}
	if stockActual <= stockMinimo {
		return StockNormal
	}
	return StockOptimo
}

// ClassifyIngrediente applies ClassifyStock to a row.
func ClassifyIngrediente(ing models.Ingrediente) EstadoStock {
	return ClassifyStock(ing.StockActual, ing.StockMinimo)
}

// InventarioMetricas summarizes the active inventory for the dashboard.
type InventarioMetricas struct {
	TotalIngredientes int     `json:"total_ingredientes"`
	StockBajo         int     `json:"stock_bajo"`
	ValorTotal        float64 `json:"valor_total"`
	Proveedores       int     `json:"proveedores"`
}

// CalcInventarioMetricas derives the dashboard numbers from the fetched
// rows: stock_bajo counts everything at or under its minimum, valor is
// the sum of stock*precio rounded to whole soles, proveedores counts distinct
// primary suppliers.
func CalcInventarioMetricas(ingredientes []models.Ingrediente) InventarioMetricas {
	m := InventarioMetricas{TotalIngredientes: len(ingredientes)}
	if len(ingredientes) == 0 {
		return m
	}

	proveedores := make(map[string]struct{})
	var valor float64
	for _, ing := range ingredientes {
		if ing.StockActual <= ing.StockMinimo {
			m.StockBajo++
		}
		valor += ing.StockActual * ing.PrecioUnitario
		if ing.ProveedorPrincipal != nil && *ing.ProveedorPrincipal != "" {
			proveedores[*ing.ProveedorPrincipal] = struct{}{}
		}
	}

	m.ValorTotal = math.Round(valor)
	m.Proveedores = len(proveedores)
	return m
}
