package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/router"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main back-office flow:
// 0. Seed admin user, mesa and platos, then login -> token
// 1. Create a dine-in pedido (a la carte + combo)
// 2. Mesa board shows the mesa as ocupada
// 3. Walk the estado chain to entregado
// 4. The pedido drops off the open board
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	token := loginTest(t, r)

	pedidoID := createPedidoTest(t, r, token)

	checkMesaOcupadaTest(t, r, token)

	walkEstadosTest(t, r, pedidoID, token)

	checkBoardEmptyTest(t, r, token)
}

// setupIntegrationDB -> migrate everything into in-memory SQLite + seed
func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Ingrediente{},
		&models.Plato{},
		&models.Receta{},
		&models.Entrada{},
		&models.MenuDelDia{},
		&models.Mesa{},
		&models.Pedido{},
		&models.PedidoItem{},
		&models.MenuPlanDia{},
		&models.DBChange{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Name:     "Admin Kerry",
		Email:    "admin@kerrys.pe",
		Password: string(hashedPassword),
		Role:     "admin",
	})

	db.Create(&models.Mesa{Numero: 1, Capacidad: 4, Estado: models.MesaLibre, Activa: true})

	db.Create(&models.Plato{
		Nombre: "Lomo Saltado", Categoria: "platos_principales",
		PrecioBase: 15.00, CostoTotal: 8.50, MargenPorcentaje: 43.3,
		PorcionesPorReceta: 1, Activo: true,
	})
	db.Create(&models.Plato{
		Nombre: "Seco de Pollo", Categoria: "menu_del_dia",
		PrecioBase: 12.00, CostoTotal: 5.00, MargenPorcentaje: 58.3,
		PorcionesPorReceta: 1, Activo: true,
	})
	db.Create(&models.Entrada{Nombre: "Papa a la Huancaina", Activa: true})

	return db
}

func loginTest(t *testing.T, r *gin.Engine) string {
	body := map[string]string{
		"email":    "admin@kerrys.pe",
		"password": "secret123",
	}
	bodyBytes, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("loginTest fail: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Status {
		t.Fatalf("loginTest: status=false, msg=%s", resp.Message)
	}
	if resp.Data.Token == "" {
		t.Fatalf("loginTest: token empty")
	}
	return resp.Data.Token
}

// createPedidoTest -> POST /pedidos => 201 => estado=pendiente, total 43
// (2x lomo 15.00 a la carte + 1 combo completo at the fixed 13.00)
func createPedidoTest(t *testing.T, r *gin.Engine, token string) uint {
	bodyData := map[string]interface{}{
		"tipo_pedido": "local",
		"mesa_id":     1,
		"items": []map[string]interface{}{
			{"plato_id": 1, "cantidad": 2, "observaciones": "sin aji"},
			{"plato_id": 2, "kind": "combo_full", "entrada_id": 1},
		},
	}
	bodyBytes, _ := json.Marshal(bodyData)

	req := httptest.NewRequest(http.MethodPost, "/pedidos", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("createPedidoTest: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			ID           uint    `json:"id"`
			NumeroPedido string  `json:"numero_pedido"`
			Estado       string  `json:"estado"`
			Total        float64 `json:"total"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Status {
		t.Fatalf("createPedidoTest: status=false, msg=%s", resp.Message)
	}
	if resp.Data.Estado != models.EstadoPendiente {
		t.Fatalf("createPedidoTest: expected estado 'pendiente', got %s", resp.Data.Estado)
	}
	if resp.Data.Total != 43.00 {
		t.Fatalf("createPedidoTest: expected total 43.00, got %.2f", resp.Data.Total)
	}
	return resp.Data.ID
}

// checkMesaOcupadaTest -> GET /mesas => mesa 1 derived ocupada
func checkMesaOcupadaTest(t *testing.T, r *gin.Engine, token string) {
	req := httptest.NewRequest(http.MethodGet, "/mesas", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("checkMesaOcupadaTest: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			Numero         int    `json:"numero"`
			EstadoEfectivo string `json:"estado_efectivo"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Data) != 1 {
		t.Fatalf("checkMesaOcupadaTest: expected 1 mesa, got %d", len(resp.Data))
	}
	if resp.Data[0].EstadoEfectivo != models.MesaOcupada {
		t.Fatalf("checkMesaOcupadaTest: expected ocupada, got %s", resp.Data[0].EstadoEfectivo)
	}
}

// walkEstadosTest -> pendiente -> preparando -> listo -> entregado
func walkEstadosTest(t *testing.T, r *gin.Engine, pedidoID uint, token string) {
	for _, estado := range []string{
		models.EstadoPreparando,
		models.EstadoListo,
		models.EstadoEntregado,
	} {
		bodyBytes, _ := json.Marshal(map[string]string{"estado": estado})

		url := "/pedidos/" + strconv.Itoa(int(pedidoID)) + "/estado"
		req := httptest.NewRequest(http.MethodPatch, url, bytes.NewBuffer(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("walkEstadosTest(%s): expected 200, got %d, body=%s", estado, w.Code, w.Body.String())
		}
	}
}

// checkBoardEmptyTest -> entregado pedidos are off the open board
func checkBoardEmptyTest(t *testing.T, r *gin.Engine, token string) {
	req := httptest.NewRequest(http.MethodGet, "/pedidos", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("checkBoardEmptyTest: expected 200, got %d", w.Code)
	}

	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Data) != 0 {
		t.Fatalf("checkBoardEmptyTest: expected empty board, got %d pedidos", len(resp.Data))
	}
}
