package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

type SupplierController struct {
	DB *gorm.DB
}

func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db}
}

type proveedorView struct {
	Nombre       string  `json:"nombre"`
	Ingredientes int     `json:"ingredientes"`
	ValorStock   float64 `json:"valor_stock"`
}

// GetAllProveedores derives the supplier directory from
// ingredientes.proveedor_principal. There is no proveedores table; the
// directory is a grouping over the inventory.
func (sc *SupplierController) GetAllProveedores(c *gin.Context) {
	var ingredientes []models.Ingrediente
	if err := sc.DB.
		Where("activo = ? AND proveedor_principal IS NOT NULL", true).
		Find(&ingredientes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	byNombre := make(map[string]*proveedorView)
	var orden []string
	for _, ing := range ingredientes {
		nombre := *ing.ProveedorPrincipal
		if nombre == "" {
			continue
		}
		view, ok := byNombre[nombre]
		if !ok {
			view = &proveedorView{Nombre: nombre}
			byNombre[nombre] = view
			orden = append(orden, nombre)
		}
		view.Ingredientes++
		view.ValorStock += ing.StockActual * ing.PrecioUnitario
	}

	proveedores := make([]proveedorView, 0, len(orden))
	for _, nombre := range orden {
		proveedores = append(proveedores, *byNombre[nombre])
	}

	utils.RespondJSON(c, http.StatusOK, "List of proveedores", proveedores)
}
