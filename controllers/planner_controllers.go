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

type PlannerController struct {
	DB *gorm.DB
}

func NewPlannerController(db *gorm.DB) *PlannerController {
	return &PlannerController{DB: db}
}

// GetSemana -> the week starting at ?desde= (default: this Monday),
// one summary per day with cost/revenue/progress derivations.
func (pl *PlannerController) GetSemana(c *gin.Context) {
	desde := mondayOf(time.Now())
	if raw := c.Query("desde"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("desde must be YYYY-MM-DD"))
			return
		}
		desde = parsed
	}
	hasta := desde.AddDate(0, 0, 7)

	var filas []models.MenuPlanDia
	if err := pl.DB.
		Preload("Plato").
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Order("fecha").
		Find(&filas).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	porDia := make(map[string][]models.MenuPlanDia)
	for _, fila := range filas {
		key := fila.Fecha.Format("2006-01-02")
		porDia[key] = append(porDia[key], fila)
	}

	dias := make([]services.PlanDiaResumen, 0, 7)
	for d := 0; d < 7; d++ {
		fecha := desde.AddDate(0, 0, d).Format("2006-01-02")
		dias = append(dias, services.ResumenPlanDia(fecha, porDia[fecha]))
	}

	utils.RespondJSON(c, http.StatusOK, "Plan semanal", dias)
}

// CreatePlanDia -> schedule one plato on one day
func (pl *PlannerController) CreatePlanDia(c *gin.Context) {
	var req struct {
		Fecha              string `json:"fecha" binding:"required"`
		PlatoID            uint   `json:"plato_id" binding:"required"`
		PorcionesEstimadas int    `json:"porciones_estimadas"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("fecha must be YYYY-MM-DD"))
		return
	}

	var plato models.Plato
	if err := pl.DB.First(&plato, req.PlatoID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	fila := models.MenuPlanDia{
		Fecha:              fecha,
		PlatoID:            plato.ID,
		PorcionesEstimadas: req.PorcionesEstimadas,
	}
	if err := pl.DB.Create(&fila).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Plan dia created", fila)
}

// RegisterVenta bumps the sold-portions counter for a planned day row.
func (pl *PlannerController) RegisterVenta(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Porciones int `json:"porciones" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var fila models.MenuPlanDia
	if err := pl.DB.First(&fila, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	fila.PorcionesVendidas += body.Porciones
	if fila.PorcionesVendidas < 0 {
		fila.PorcionesVendidas = 0
	}
	fila.UpdatedAt = time.Now()

	if err := pl.DB.Save(&fila).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Venta registered", fila)
}

func mondayOf(t time.Time) time.Time {
	day := t
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, -1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
