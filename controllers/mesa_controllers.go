package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/live"
	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/services"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

type MesaController struct {
	DB     *gorm.DB
	Tables *services.TableService
}

func NewMesaController(db *gorm.DB) *MesaController {
	return &MesaController{DB: db, Tables: services.NewTableService(db)}
}

// CreateMesa
func (mc *MesaController) CreateMesa(c *gin.Context) {
	var req struct {
		Numero    int    `json:"numero" binding:"required"`
		Capacidad int    `json:"capacidad"`
		Estado    string `json:"estado"` // optional, default libre
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	mesa := models.Mesa{
		Numero:    req.Numero,
		Capacidad: req.Capacidad,
		Estado:    models.MesaLibre,
		Activa:    true,
	}
	if mesa.Capacidad <= 0 {
		mesa.Capacidad = 4
	}
	if req.Estado != "" {
		mesa.Estado = req.Estado
	}

	if err := mc.DB.Create(&mesa).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastMesaCreate(mesa)
	utils.InfoLogger.Printf("New mesa created: %d (estado=%s)", mesa.Numero, mesa.Estado)
	utils.RespondJSON(c, http.StatusCreated, "Mesa created", mesa)
}

// GetAllMesas -> board view: stored rows plus the derived estado
// (ocupada whenever an open pedido references the mesa) and the
// occupancy minutes, recomputed per request.
func (mc *MesaController) GetAllMesas(c *gin.Context) {
	views, err := mc.Tables.MesasConPedidos(time.Now())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of mesas", views)
}

// UpdateMesaEstado -> change the STORED estado (libre/ocupada/reservada).
// The effective estado may still override this to ocupada.
func (mc *MesaController) UpdateMesaEstado(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		Estado string `json:"estado" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch body.Estado {
	case models.MesaLibre, models.MesaOcupada, models.MesaReservada:
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("estado must be libre, ocupada or reservada"))
		return
	}

	var mesa models.Mesa
	if err := mc.DB.First(&mesa, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	mesa.Estado = body.Estado
	mesa.UpdatedAt = time.Now()
	if err := mc.DB.Save(&mesa).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastMesaUpdate(mesa)
	utils.RespondJSON(c, http.StatusOK, "Mesa updated", mesa)
}

// DeactivateMesa -> soft delete
func (mc *MesaController) DeactivateMesa(c *gin.Context) {
	id := c.Param("id")

	var mesa models.Mesa
	if err := mc.DB.First(&mesa, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	mesa.Activa = false
	mesa.UpdatedAt = time.Now()
	if err := mc.DB.Save(&mesa).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastMesaDelete(mesa)
	utils.RespondJSON(c, http.StatusOK, "Mesa deactivated", gin.H{"id": mesa.ID})
}
