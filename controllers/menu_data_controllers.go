package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/config"
	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

// MenuDataController serves the reference data the order-composition
// screen needs: entradas, the fixed-price menus and the combo prices.
type MenuDataController struct {
	DB *gorm.DB
}

func NewMenuDataController(db *gorm.DB) *MenuDataController {
	return &MenuDataController{DB: db}
}

// GetEntradas -> active appetizers
func (mc *MenuDataController) GetEntradas(c *gin.Context) {
	var entradas []models.Entrada
	if err := mc.DB.Where("activa = ?", true).Order("nombre").Find(&entradas).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of entradas", entradas)
}

// GetMenus -> active fixed-price menus plus the configured combo prices
func (mc *MenuDataController) GetMenus(c *gin.Context) {
	var menus []models.MenuDelDia
	if err := mc.DB.Where("activo = ?", true).Order("nombre").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	precios := config.GetMenuPrecios()
	utils.RespondJSON(c, http.StatusOK, "List of menus", gin.H{
		"menus": menus,
		"precios": gin.H{
			"completo":     precios.Completo,
			"solo_entrada": precios.SoloEntrada,
			"solo_segundo": precios.SoloSegundo,
		},
	})
}
