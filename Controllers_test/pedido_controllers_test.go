package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/controllers"
	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

func setupTestDBForPedidos(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:pedidoctrl_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Pedido{}, &models.PedidoItem{}, &models.Plato{},
		&models.Entrada{}, &models.Mesa{}, &models.User{},
	); err != nil {
		t.Fatal(err)
	}
	return db
}

func setupPedidoRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	ctrl := controllers.NewPedidoController(db)
	router.GET("/pedidos", ctrl.GetPedidosAbiertos)
	router.GET("/pedidos/:id", ctrl.GetPedidoByID)
	router.POST("/pedidos", ctrl.CreatePedido)
	router.PATCH("/pedidos/:id/estado", ctrl.UpdateEstado)
	return router
}

func TestCreatePedidoLocalPersistsEverything(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPedidos(t)
	router := setupPedidoRouter(db)

	mesa := models.Mesa{Numero: 2, Capacidad: 4, Estado: models.MesaLibre, Activa: true}
	db.Create(&mesa)
	plato := models.Plato{Nombre: "Lomo Saltado", Categoria: "platos_principales",
		PrecioBase: 15.00, PorcionesPorReceta: 1, Activo: true}
	db.Create(&plato)

	payload := map[string]interface{}{
		"tipo_pedido": "local",
		"mesa_id":     mesa.ID,
		"items": []map[string]interface{}{
			{"plato_id": plato.ID, "cantidad": 2},
		},
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/pedidos", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Data struct {
			ID           uint    `json:"id"`
			NumeroPedido string  `json:"numero_pedido"`
			Estado       string  `json:"estado"`
			Total        float64 `json:"total"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.NumeroPedido, "PED-")
	assert.Equal(t, models.EstadoPendiente, resp.Data.Estado)
	assert.Equal(t, 30.00, resp.Data.Total)

	// Repeated plato merged into one line of quantity 2
	var items []models.PedidoItem
	assert.NoError(t, db.Where("pedido_id = ?", resp.Data.ID).Find(&items).Error)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Cantidad)
	assert.Equal(t, 15.00, items[0].PrecioUnitario)
	assert.False(t, items[0].EsMenu)

	// Dine-in submission flips the mesa in the same transaction
	var storedMesa models.Mesa
	assert.NoError(t, db.First(&storedMesa, mesa.ID).Error)
	assert.Equal(t, models.MesaOcupada, storedMesa.Estado)
}

func TestCreatePedidoComboUsesConfiguredPrice(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPedidos(t)
	router := setupPedidoRouter(db)

	mesa := models.Mesa{Numero: 1, Capacidad: 4, Estado: models.MesaLibre, Activa: true}
	db.Create(&mesa)
	plato := models.Plato{Nombre: "Seco de Pollo", Categoria: "menu_del_dia",
		PrecioBase: 20.00, PorcionesPorReceta: 1, Activo: true}
	db.Create(&plato)
	entrada := models.Entrada{Nombre: "Papa a la Huancaina", Activa: true}
	db.Create(&entrada)

	payload := map[string]interface{}{
		"tipo_pedido": "local",
		"mesa_id":     mesa.ID,
		"items": []map[string]interface{}{
			{"plato_id": plato.ID, "kind": "combo_full", "entrada_id": entrada.ID},
		},
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/pedidos", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Data struct {
			ID    uint    `json:"id"`
			Total float64 `json:"total"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Combo price comes from configuration, never from precio_base
	assert.Equal(t, 13.00, resp.Data.Total)

	var items []models.PedidoItem
	assert.NoError(t, db.Where("pedido_id = ?", resp.Data.ID).Find(&items).Error)
	assert.Len(t, items, 1)
	assert.True(t, items[0].EsMenu)
	if assert.NotNil(t, items[0].PrecioMenu) {
		assert.Equal(t, 13.00, *items[0].PrecioMenu)
	}
	if assert.NotNil(t, items[0].EntradaID) {
		assert.Equal(t, entrada.ID, *items[0].EntradaID)
	}
}

func TestCreatePedidoNoteLandsOnMergedLine(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPedidos(t)
	router := setupPedidoRouter(db)

	mesa := models.Mesa{Numero: 4, Capacidad: 4, Estado: models.MesaLibre, Activa: true}
	db.Create(&mesa)
	lomo := models.Plato{Nombre: "Lomo Saltado", Categoria: "platos_principales",
		PrecioBase: 15.00, PorcionesPorReceta: 1, Activo: true}
	db.Create(&lomo)
	causa := models.Plato{Nombre: "Causa", Categoria: "entradas",
		PrecioBase: 8.00, PorcionesPorReceta: 1, Activo: true}
	db.Create(&causa)

	// The third item merges into the first line; its note must land
	// there, not on the causa line.
	payload := map[string]interface{}{
		"tipo_pedido": "local",
		"mesa_id":     mesa.ID,
		"items": []map[string]interface{}{
			{"plato_id": lomo.ID},
			{"plato_id": causa.ID},
			{"plato_id": lomo.ID, "observaciones": "sin cebolla"},
		},
	}
	payloadBytes, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", "/pedidos", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var items []models.PedidoItem
	assert.NoError(t, db.Where("pedido_id = ?", resp.Data.ID).Order("id").Find(&items).Error)
	assert.Len(t, items, 2)

	assert.Equal(t, lomo.ID, items[0].PlatoID)
	assert.Equal(t, 2, items[0].Cantidad)
	if assert.NotNil(t, items[0].Observaciones) {
		assert.Equal(t, "sin cebolla", *items[0].Observaciones)
	}

	assert.Equal(t, causa.ID, items[1].PlatoID)
	assert.Nil(t, items[1].Observaciones)
}

func TestCreatePedidoValidationErrors(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPedidos(t)
	router := setupPedidoRouter(db)

	plato := models.Plato{Nombre: "Causa", Categoria: "entradas",
		PrecioBase: 8.00, PorcionesPorReceta: 1, Activo: true}
	db.Create(&plato)

	post := func(payload map[string]interface{}) *httptest.ResponseRecorder {
		payloadBytes, _ := json.Marshal(payload)
		req, _ := http.NewRequest("POST", "/pedidos", bytes.NewBuffer(payloadBytes))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// No lines at all
	w := post(map[string]interface{}{
		"tipo_pedido": "local",
		"mesa_id":     1,
		"items":       []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Dine-in without a mesa
	w = post(map[string]interface{}{
		"tipo_pedido": "local",
		"items":       []map[string]interface{}{{"plato_id": plato.ID}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Delivery without a customer name
	w = post(map[string]interface{}{
		"tipo_pedido": "delivery",
		"items":       []map[string]interface{}{{"plato_id": plato.ID}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown tipo
	w = post(map[string]interface{}{
		"tipo_pedido": "drive_thru",
		"items":       []map[string]interface{}{{"plato_id": plato.ID}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing persisted by the failed attempts
	var count int64
	db.Model(&models.Pedido{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateEstadoWalksChain(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPedidos(t)
	router := setupPedidoRouter(db)

	nombre := "Rosa Flores"
	pedido := models.Pedido{
		NumeroPedido:  "PED-20250716-134502-a1b2c3d4",
		TipoPedido:    models.PedidoParaLlevar,
		ClienteNombre: &nombre,
		Estado:        models.EstadoPendiente,
	}
	db.Create(&pedido)

	patch := func(estado string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]interface{}{"estado": estado})
		req, _ := http.NewRequest("PATCH", "/pedidos/1/estado", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Skipping straight to listo is rejected
	assert.Equal(t, http.StatusBadRequest, patch(models.EstadoListo).Code)

	assert.Equal(t, http.StatusOK, patch(models.EstadoPreparando).Code)
	assert.Equal(t, http.StatusOK, patch(models.EstadoListo).Code)
	assert.Equal(t, http.StatusOK, patch(models.EstadoEntregado).Code)

	var stored models.Pedido
	assert.NoError(t, db.First(&stored, pedido.ID).Error)
	assert.Equal(t, models.EstadoEntregado, stored.Estado)
	assert.NotNil(t, stored.HoraEntrega)

	// Entregado is terminal
	assert.Equal(t, http.StatusBadRequest, patch(models.EstadoPendiente).Code)

	// Delivered pedidos drop off the open board
	req, _ := http.NewRequest("GET", "/pedidos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Data)
}
