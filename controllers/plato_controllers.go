package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/services"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

type PlatoController struct {
	DB *gorm.DB
}

func NewPlatoController(db *gorm.DB) *PlatoController {
	return &PlatoController{DB: db}
}

// GetAllPlatos -> active carta ordered by categoria, nombre
func (pc *PlatoController) GetAllPlatos(c *gin.Context) {
	query := pc.DB.Where("activo = ?", true).Order("categoria").Order("nombre")
	if categoria := c.Query("categoria"); categoria != "" && categoria != "todos" {
		query = query.Where("categoria = ?", categoria)
	}

	var platos []models.Plato
	if err := query.Find(&platos).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of platos", platos)
}

// CreatePlato -> margen_porcentaje always derived, never taken from the body
func (pc *PlatoController) CreatePlato(c *gin.Context) {
	var req struct {
		Nombre             string  `json:"nombre" binding:"required"`
		Categoria          string  `json:"categoria" binding:"required"`
		Descripcion        *string `json:"descripcion"`
		PrecioBase         float64 `json:"precio_base"`
		CostoTotal         float64 `json:"costo_total"`
		TiempoPreparacion  int     `json:"tiempo_preparacion"`
		PorcionesPorReceta int     `json:"porciones_por_receta"`
		EsCombinable       bool    `json:"es_combinable"`
		IncluyeArroz       bool    `json:"incluye_arroz"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.PorcionesPorReceta <= 0 {
		req.PorcionesPorReceta = 1
	}

	plato := models.Plato{
		Nombre:             req.Nombre,
		Categoria:          req.Categoria,
		Descripcion:        req.Descripcion,
		PrecioBase:         req.PrecioBase,
		CostoTotal:         req.CostoTotal,
		MargenPorcentaje:   services.Margin(req.PrecioBase, req.CostoTotal),
		TiempoPreparacion:  req.TiempoPreparacion,
		PorcionesPorReceta: req.PorcionesPorReceta,
		EsCombinable:       req.EsCombinable,
		IncluyeArroz:       req.IncluyeArroz,
		Activo:             true,
	}

	if err := pc.DB.Create(&plato).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New plato created: %s (margen=%.1f%%)", plato.Nombre, plato.MargenPorcentaje)
	utils.RespondJSON(c, http.StatusCreated, "Plato created", plato)
}

// UpdatePlato -> any precio/costo change rewrites the stored margen in
// the same update so it can never go stale.
func (pc *PlatoController) UpdatePlato(c *gin.Context) {
	id := c.Param("id")

	var plato models.Plato
	if err := pc.DB.First(&plato, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Nombre             *string  `json:"nombre"`
		Categoria          *string  `json:"categoria"`
		Descripcion        *string  `json:"descripcion"`
		PrecioBase         *float64 `json:"precio_base"`
		CostoTotal         *float64 `json:"costo_total"`
		TiempoPreparacion  *int     `json:"tiempo_preparacion"`
		PorcionesPorReceta *int     `json:"porciones_por_receta"`
		EsCombinable       *bool    `json:"es_combinable"`
		IncluyeArroz       *bool    `json:"incluye_arroz"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Nombre != nil {
		plato.Nombre = *req.Nombre
	}
	if req.Categoria != nil {
		plato.Categoria = *req.Categoria
	}
	if req.Descripcion != nil {
		plato.Descripcion = req.Descripcion
	}
	if req.PrecioBase != nil {
		plato.PrecioBase = *req.PrecioBase
	}
	if req.CostoTotal != nil {
		plato.CostoTotal = *req.CostoTotal
	}
	if req.TiempoPreparacion != nil {
		plato.TiempoPreparacion = *req.TiempoPreparacion
	}
	if req.PorcionesPorReceta != nil && *req.PorcionesPorReceta > 0 {
		plato.PorcionesPorReceta = *req.PorcionesPorReceta
	}
	if req.EsCombinable != nil {
		plato.EsCombinable = *req.EsCombinable
	}
	if req.IncluyeArroz != nil {
		plato.IncluyeArroz = *req.IncluyeArroz
	}

	plato.MargenPorcentaje = services.Margin(plato.PrecioBase, plato.CostoTotal)
	plato.UpdatedAt = time.Now()

	if err := pc.DB.Save(&plato).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Plato updated", plato)
}

// DeactivatePlato -> soft delete via activo flag
func (pc *PlatoController) DeactivatePlato(c *gin.Context) {
	id := c.Param("id")

	var plato models.Plato
	if err := pc.DB.First(&plato, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	plato.Activo = false
	plato.UpdatedAt = time.Now()
	if err := pc.DB.Save(&plato).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Plato deactivated: %s", plato.Nombre)
	utils.RespondJSON(c, http.StatusOK, "Plato deactivated", gin.H{"id": plato.ID})
}

// DuplicatePlato clones a plato (and its recetas) as an inactive draft
// the staff can tweak before publishing.
func (pc *PlatoController) DuplicatePlato(c *gin.Context) {
	id := c.Param("id")

	var plato models.Plato
	if err := pc.DB.Preload("Recetas").First(&plato, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	copia := plato
	copia.ID = 0
	copia.Nombre = fmt.Sprintf("%s (copia)", plato.Nombre)
	copia.Activo = false
	copia.Recetas = nil
	copia.CreatedAt = time.Now()
	copia.UpdatedAt = time.Now()

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&copia).Error; err != nil {
			return err
		}
		for _, receta := range plato.Recetas {
			nueva := receta
			nueva.ID = 0
			nueva.PlatoID = copia.ID
			if err := tx.Create(&nueva).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Plato duplicated", copia)
}

// GetRecetas -> the plato's bill of materials joined with ingredients
func (pc *PlatoController) GetRecetas(c *gin.Context) {
	id := c.Param("id")

	var recetas []models.Receta
	if err := pc.DB.
		Preload("Ingrediente").
		Where("plato_id = ?", id).
		Order("es_principal DESC").
		Find(&recetas).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Recetas del plato", recetas)
}

// AddReceta -> append one ingredient line to the plato's recipe
func (pc *PlatoController) AddReceta(c *gin.Context) {
	id := c.Param("id")

	var plato models.Plato
	if err := pc.DB.First(&plato, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		IngredienteID uint    `json:"ingrediente_id" binding:"required"`
		Cantidad      float64 `json:"cantidad" binding:"required"`
		Unidad        string  `json:"unidad" binding:"required"`
		EsPrincipal   bool    `json:"es_principal"`
		Notas         *string `json:"notas"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	receta := models.Receta{
		PlatoID:       plato.ID,
		IngredienteID: req.IngredienteID,
		Cantidad:      req.Cantidad,
		Unidad:        req.Unidad,
		EsPrincipal:   req.EsPrincipal,
		Notas:         req.Notas,
	}

	if err := pc.DB.Create(&receta).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Receta added", receta)
}

// GetRecipeCost totals the plato's recipe at current ingredient prices.
// Missing ingredient references are costed at zero, not failed.
func (pc *PlatoController) GetRecipeCost(c *gin.Context) {
	id := c.Param("id")

	var recetas []models.Receta
	if err := pc.DB.Where("plato_id = ?", id).Find(&recetas).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	lookup := func(ingredienteID uint) (models.Ingrediente, bool) {
		var ing models.Ingrediente
		if err := pc.DB.First(&ing, ingredienteID).Error; err != nil {
			return models.Ingrediente{}, false
		}
		return ing, true
	}

	costo := services.RecipeCost(recetas, lookup)
	utils.RespondJSON(c, http.StatusOK, "Costo de receta", gin.H{
		"plato_id":    c.Param("id"),
		"costo_total": costo,
		"lineas":      len(recetas),
	})
}

// GetPlatosMetricas -> carta dashboard numbers
func (pc *PlatoController) GetPlatosMetricas(c *gin.Context) {
	var platos []models.Plato
	if err := pc.DB.Where("activo = ?", true).Find(&platos).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Platos metricas",
		services.CalcPlatosMetricas(platos))
}
