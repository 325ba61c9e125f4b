package services

import (
	"math"

	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

// Margin returns the sale margin as a percentage with one decimal,
// round(((precio-costo)/precio)*100, 1). A zero price yields 0.
// Whenever precio_base or costo_total changes the stored
// margen_porcentaje must be rewritten with this value in the same
// update - never left to go stale.
func Margin(precio, costo float64) float64 {
	if precio == 0 {
		return 0
	}
	return math.Round(((precio-costo)/precio)*100*10) / 10
}

// IngredienteLookup resolves a receta line to its ingredient. Returns
// ok=false when the reference is dangling.
type IngredienteLookup func(ingredienteID uint) (models.Ingrediente, bool)

// RecipeCost totals a plato's bill of materials:
// the sum of precio_unitario * cantidad. A missing ingredient contributes zero;
// that is a data-quality gap, logged but never fatal.
func RecipeCost(lines []models.Receta, lookup IngredienteLookup) float64 {
	var total float64
	for _, line := range lines {
		ing, ok := lookup(line.IngredienteID)
		if !ok {
			if utils.ErrorLogger != nil {
				utils.ErrorLogger.Printf("receta %d references missing ingrediente %d, costing it at 0",
					line.ID, line.IngredienteID)
			}
			continue
		}
		total += ing.PrecioUnitario * line.Cantidad
	}
	return total
}

// PlatosMetricas summarizes the active carta for the dashboard.
type PlatosMetricas struct {
	TotalPlatos    int     `json:"total_platos"`
	Categorias     int     `json:"categorias"`
	MargenPromedio float64 `json:"margen_promedio"`
	TiempoPromedio int     `json:"tiempo_promedio"`
}

// CalcPlatosMetricas derives carta metrics: distinct categories, mean
// margin to one decimal, mean prep time rounded to whole minutes.
func CalcPlatosMetricas(platos []models.Plato) PlatosMetricas {
	m := PlatosMetricas{TotalPlatos: len(platos)}
	if len(platos) == 0 {
		return m
	}

	categorias := make(map[string]struct{})
	var margen, tiempo float64
	for _, p := range platos {
		categorias[p.Categoria] = struct{}{}
		margen += p.MargenPorcentaje
		tiempo += float64(p.TiempoPreparacion)
	}

	n := float64(len(platos))
	m.Categorias = len(categorias)
	m.MargenPromedio = math.Round(margen/n*10) / 10
	m.TiempoPromedio = int(math.Round(tiempo / n))
	return m
}
