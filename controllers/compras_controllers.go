package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/services"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

type ComprasController struct {
	DB *gorm.DB
}

func NewComprasController(db *gorm.DB) *ComprasController {
	return &ComprasController{DB: db}
}

// GetListaCompras -> purchase list derived from current stock levels,
// grouped by primary supplier. Nothing is stored; the list is a pure
// derivation over the active inventory.
func (cc *ComprasController) GetListaCompras(c *gin.Context) {
	var ingredientes []models.Ingrediente
	if err := cc.DB.
		Where("activo = ?", true).
		Order("proveedor_principal").
		Order("nombre").
		Find(&ingredientes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	listas := services.BuildListaCompras(ingredientes)

	var costoTotal float64
	var items int
	for _, lista := range listas {
		costoTotal += lista.CostoEstimado
		items += len(lista.Items)
	}

	utils.RespondJSON(c, http.StatusOK, "Lista de compras", gin.H{
		"proveedores":  listas,
		"items":        items,
		"costo_total":  costoTotal,
	})
}
