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

type IngredientController struct {
	DB *gorm.DB
}

func NewIngredientController(db *gorm.DB) *IngredientController {
	return &IngredientController{DB: db}
}

// ingredienteView decorates a row with its derived stock bucket, which
// is computed per response and never stored.
type ingredienteView struct {
	models.Ingrediente
	EstadoStock services.EstadoStock `json:"estado_stock"`
}

// GetAllIngredientes -> active rows ordered by categoria, nombre, with
// derived estado_stock. ?categoria= filters, ?estado= filters by bucket.
func (ic *IngredientController) GetAllIngredientes(c *gin.Context) {
	query := ic.DB.Where("activo = ?", true).Order("categoria").Order("nombre")
	if categoria := c.Query("categoria"); categoria != "" && categoria != "todos" {
		query = query.Where("categoria = ?", categoria)
	}

	var ingredientes []models.Ingrediente
	if err := query.Find(&ingredientes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	estadoFilter := c.Query("estado")
	views := make([]ingredienteView, 0, len(ingredientes))
	for _, ing := range ingredientes {
		estado := services.ClassifyIngrediente(ing)
		if estadoFilter != "" && estadoFilter != string(estado) {
			continue
		}
		views = append(views, ingredienteView{Ingrediente: ing, EstadoStock: estado})
	}

	utils.RespondJSON(c, http.StatusOK, "List of ingredientes", views)
}

// CreateIngrediente
func (ic *IngredientController) CreateIngrediente(c *gin.Context) {
	var req struct {
		Nombre             string  `json:"nombre" binding:"required"`
		Categoria          string  `json:"categoria" binding:"required"`
		UnidadMedida       string  `json:"unidad_medida" binding:"required"`
		PrecioUnitario     float64 `json:"precio_unitario"`
		StockActual        float64 `json:"stock_actual"`
		StockMinimo        float64 `json:"stock_minimo"`
		MermaPorcentaje    float64 `json:"merma_porcentaje"`
		ProveedorPrincipal *string `json:"proveedor_principal"`
		Notas              *string `json:"notas"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ing := models.Ingrediente{
		Nombre:             req.Nombre,
		Categoria:          req.Categoria,
		UnidadMedida:       req.UnidadMedida,
		PrecioUnitario:     req.PrecioUnitario,
		StockActual:        req.StockActual,
		StockMinimo:        req.StockMinimo,
		MermaPorcentaje:    req.MermaPorcentaje,
		ProveedorPrincipal: req.ProveedorPrincipal,
		Notas:              req.Notas,
		Activo:             true,
	}

	if err := ic.DB.Create(&ing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New ingrediente created: %s (%s)", ing.Nombre, ing.Categoria)
	utils.RespondJSON(c, http.StatusCreated, "Ingrediente created", ingredienteView{
		Ingrediente: ing,
		EstadoStock: services.ClassifyIngrediente(ing),
	})
}

// UpdateStock -> PATCH stock_actual only
func (ic *IngredientController) UpdateStock(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		StockActual *float64 `json:"stock_actual" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if *body.StockActual < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("stock_actual must not be negative"))
		return
	}

	var ing models.Ingrediente
	if err := ic.DB.First(&ing, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	ing.StockActual = *body.StockActual
	ing.UpdatedAt = time.Now()
	if err := ic.DB.Save(&ing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Stock updated", ingredienteView{
		Ingrediente: ing,
		EstadoStock: services.ClassifyIngrediente(ing),
	})
}

// UpdatePrecio -> PATCH precio_unitario only
func (ic *IngredientController) UpdatePrecio(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		PrecioUnitario *float64 `json:"precio_unitario" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if *body.PrecioUnitario < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("precio_unitario must not be negative"))
		return
	}

	var ing models.Ingrediente
	if err := ic.DB.First(&ing, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	ing.PrecioUnitario = *body.PrecioUnitario
	ing.UpdatedAt = time.Now()
	if err := ic.DB.Save(&ing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Precio updated", ing)
}

// UpdateIngrediente -> general edit
func (ic *IngredientController) UpdateIngrediente(c *gin.Context) {
	id := c.Param("id")

	var ing models.Ingrediente
	if err := ic.DB.First(&ing, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Nombre             *string  `json:"nombre"`
		Categoria          *string  `json:"categoria"`
		UnidadMedida       *string  `json:"unidad_medida"`
		PrecioUnitario     *float64 `json:"precio_unitario"`
		StockActual        *float64 `json:"stock_actual"`
		StockMinimo        *float64 `json:"stock_minimo"`
		MermaPorcentaje    *float64 `json:"merma_porcentaje"`
		ProveedorPrincipal *string  `json:"proveedor_principal"`
		Notas              *string  `json:"notas"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Nombre != nil {
		ing.Nombre = *req.Nombre
	}
	if req.Categoria != nil {
		ing.Categoria = *req.Categoria
	}
	if req.UnidadMedida != nil {
		ing.UnidadMedida = *req.UnidadMedida
	}
	if req.PrecioUnitario != nil {
		ing.PrecioUnitario = *req.PrecioUnitario
	}
	if req.StockActual != nil {
		ing.StockActual = *req.StockActual
	}
	if req.StockMinimo != nil {
		ing.StockMinimo = *req.StockMinimo
	}
	if req.MermaPorcentaje != nil {
		ing.MermaPorcentaje = *req.MermaPorcentaje
	}
	if req.ProveedorPrincipal != nil {
		ing.ProveedorPrincipal = req.ProveedorPrincipal
	}
	if req.Notas != nil {
		ing.Notas = req.Notas
	}
	ing.UpdatedAt = time.Now()

	if err := ic.DB.Save(&ing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Ingrediente updated", ingredienteView{
		Ingrediente: ing,
		EstadoStock: services.ClassifyIngrediente(ing),
	})
}

// DeactivateIngrediente -> soft-delete, never removes the row
func (ic *IngredientController) DeactivateIngrediente(c *gin.Context) {
	id := c.Param("id")

	var ing models.Ingrediente
	if err := ic.DB.First(&ing, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	ing.Activo = false
	ing.UpdatedAt = time.Now()
	if err := ic.DB.Save(&ing).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Ingrediente deactivated: %s", ing.Nombre)
	utils.RespondJSON(c, http.StatusOK, "Ingrediente deactivated", gin.H{"id": ing.ID})
}

// GetInventarioMetricas -> dashboard numbers for the inventory screen
func (ic *IngredientController) GetInventarioMetricas(c *gin.Context) {
	var ingredientes []models.Ingrediente
	if err := ic.DB.Where("activo = ?", true).Find(&ingredientes).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventario metricas",
		services.CalcInventarioMetricas(ingredientes))
}
