package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/services"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats -> admin dashboard rollup
func (dc *DashboardController) GetStats(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != "admin" {
		utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
		return
	}

	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalPedidos    int64   `json:"total_pedidos"`
		PedidosHoy      int64   `json:"pedidos_hoy"`
		PedidosAbiertos int64   `json:"pedidos_abiertos"`
		VentasHoy       float64 `json:"ventas_hoy"`
		MesasOcupadas   int64   `json:"mesas_ocupadas"`
		AlertasStock    int     `json:"alertas_stock"`
	}

	if err := dc.DB.Model(&models.Pedido{}).Count(&stats.TotalPedidos).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	dc.DB.Model(&models.Pedido{}).
		Where("DATE(hora_pedido) = ?", today).
		Count(&stats.PedidosHoy)
	dc.DB.Model(&models.Pedido{}).
		Where("estado IN ?", models.EstadosAbiertos).
		Count(&stats.PedidosAbiertos)

	var ventas *float64
	dc.DB.Model(&models.Pedido{}).
		Where("DATE(hora_pedido) = ?", today).
		Select("SUM(total)").
		Scan(&ventas)
	if ventas != nil {
		stats.VentasHoy = *ventas
	}

	dc.DB.Model(&models.Pedido{}).
		Where("estado IN ? AND mesa_id IS NOT NULL", models.EstadosAbiertos).
		Distinct("mesa_id").
		Count(&stats.MesasOcupadas)

	var ingredientes []models.Ingrediente
	if err := dc.DB.Where("activo = ?", true).Find(&ingredientes).Error; err == nil {
		for _, ing := range ingredientes {
			if services.ClassifyIngrediente(ing) == services.StockBajo {
				stats.AlertasStock++
			}
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
