package services

import (
	"math"

	"github.com/alimentosKerrys/grub-genius-system/models"
)

// CompraSugerida is one line of the purchase list: an ingredient that
// needs restocking and the suggested buy.
type CompraSugerida struct {
	Ingrediente      models.Ingrediente `json:"ingrediente"`
	EstadoStock      EstadoStock        `json:"estado_stock"`
	CantidadSugerida float64            `json:"cantidad_sugerida"`
	CostoEstimado    float64            `json:"costo_estimado"`
}

// ListaCompras groups suggested purchases by primary supplier.
type ListaCompras struct {
	Proveedor     string           `json:"proveedor"`
	Items         []CompraSugerida `json:"items"`
	CostoEstimado float64          `json:"costo_estimado"`
}

// ProveedorSinAsignar buckets ingredients with no primary supplier.
const ProveedorSinAsignar = "Sin proveedor"

// BuildListaCompras derives the purchase list from current stock:
// every ingredient at or under its minimum gets a suggested quantity
// that restores stock to twice the minimum, costed at the current unit
// price.
func BuildListaCompras(ingredientes []models.Ingrediente) []ListaCompras {
	porProveedor := make(map[string]*ListaCompras)
	var orden []string

	for _, ing := range ingredientes {
		estado := ClassifyIngrediente(ing)
		if estado == StockOptimo {
			continue
		}

		cantidad := ing.StockMinimo*2 - ing.StockActual
		if cantidad <= 0 {
			continue
		}
		costo := math.Round(cantidad*ing.PrecioUnitario*100) / 100

		proveedor := ProveedorSinAsignar
		if ing.ProveedorPrincipal != nil && *ing.ProveedorPrincipal != "" {
			proveedor = *ing.ProveedorPrincipal
		}

		lista, ok := porProveedor[proveedor]
		if !ok {
			lista = &ListaCompras{Proveedor: proveedor}
			porProveedor[proveedor] = lista
			orden = append(orden, proveedor)
		}

		lista.Items = append(lista.Items, CompraSugerida{
			Ingrediente:      ing,
			EstadoStock:      estado,
			CantidadSugerida: cantidad,
			CostoEstimado:    costo,
		})
		lista.CostoEstimado = math.Round((lista.CostoEstimado+costo)*100) / 100
	}

	out := make([]ListaCompras, 0, len(orden))
	for _, proveedor := range orden {
		out = append(out, *porProveedor[proveedor])
	}
	return out
}
