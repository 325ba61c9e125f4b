package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/models"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:ordersvc_"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Mesa{}, &models.Plato{}, &models.Entrada{},
		&models.Pedido{}, &models.PedidoItem{},
	); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestGenerateNumeroPedido(t *testing.T) {
	now := time.Date(2025, 7, 16, 13, 45, 2, 0, time.UTC)

	n1 := GenerateNumeroPedido(now)
	n2 := GenerateNumeroPedido(now)

	assert.Contains(t, n1, "PED-20250716-134502-")
	// Same second, still distinct
	assert.NotEqual(t, n1, n2)
}

func TestSubmitLocalFlipsMesa(t *testing.T) {
	db := setupOrderTestDB(t)

	mesa := models.Mesa{Numero: 4, Capacidad: 4, Estado: models.MesaLibre, Activa: true}
	db.Create(&mesa)
	plato := models.Plato{Nombre: "Seco de Pollo", PrecioBase: 17.00, Activo: true}
	db.Create(&plato)

	cp := NewComposer()
	cp.AddLine(plato, LineaALaCarta, nil)
	cp.AddLine(plato, LineaALaCarta, nil)

	svc := NewOrderService(db)
	pedido, err := svc.Submit(cp, SubmitInput{
		TipoPedido: models.PedidoLocal,
		MesaID:     &mesa.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.EstadoPendiente, pedido.Estado)
	assert.Equal(t, 34.00, pedido.Total)
	assert.Equal(t, pedido.Subtotal, pedido.Total)

	var items []models.PedidoItem
	db.Where("pedido_id = ?", pedido.ID).Find(&items)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Cantidad)
	assert.Equal(t, 17.00, items[0].PrecioUnitario)
	assert.False(t, items[0].EsMenu)

	// Stored mesa state flipped inside the same submission
	var stored models.Mesa
	db.First(&stored, mesa.ID)
	assert.Equal(t, models.MesaOcupada, stored.Estado)
}

func TestSubmitDeliveryLeavesMesasAlone(t *testing.T) {
	db := setupOrderTestDB(t)

	plato := models.Plato{Nombre: "Tallarin Saltado", PrecioBase: 15.00, Activo: true}
	db.Create(&plato)

	nombre := "Rosa Quispe"
	cp := NewComposer()
	cp.AddLine(plato, LineaALaCarta, nil)

	svc := NewOrderService(db)
	pedido, err := svc.Submit(cp, SubmitInput{
		TipoPedido:    models.PedidoDelivery,
		ClienteNombre: &nombre,
	})
	assert.NoError(t, err)
	assert.Nil(t, pedido.MesaID)
	assert.Equal(t, 15.00, pedido.Total)
}

func TestSubmitComboItemCarriesPrecioMenu(t *testing.T) {
	db := setupOrderTestDB(t)

	plato := models.Plato{Nombre: "Aji de Pollo", PrecioBase: 16.00, EsCombinable: true, Activo: true}
	db.Create(&plato)
	entrada := models.Entrada{Nombre: "Papa a la Huancaina", Activa: true}
	db.Create(&entrada)

	nombre := "Carlos"
	cp := NewComposer()
	cp.AddLine(plato, LineaMenuCompleto, &entrada.ID)

	svc := NewOrderService(db)
	pedido, err := svc.Submit(cp, SubmitInput{
		TipoPedido:    models.PedidoParaLlevar,
		ClienteNombre: &nombre,
	})
	assert.NoError(t, err)

	var items []models.PedidoItem
	db.Where("pedido_id = ?", pedido.ID).Find(&items)
	assert.Len(t, items, 1)
	assert.True(t, items[0].EsMenu)
	assert.NotNil(t, items[0].PrecioMenu)
	assert.Equal(t, items[0].PrecioUnitario, *items[0].PrecioMenu)
	assert.NotNil(t, items[0].EntradaID)
	assert.Equal(t, entrada.ID, *items[0].EntradaID)
}

func TestSubmitRejectsInvalidDraft(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := NewOrderService(db)

	// Empty draft never reaches the database
	_, err := svc.Submit(NewComposer(), SubmitInput{TipoPedido: models.PedidoLocal})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	var count int64
	db.Model(&models.Pedido{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAdvanceEstadoWalksForward(t *testing.T) {
	db := setupOrderTestDB(t)

	pedido := models.Pedido{
		NumeroPedido: "PED-TEST-0001",
		TipoPedido:   models.PedidoParaLlevar,
		Estado:       models.EstadoPendiente,
		HoraPedido:   time.Now(),
	}
	db.Create(&pedido)

	svc := NewOrderService(db)

	updated, err := svc.AdvanceEstado(pedido.ID, models.EstadoPreparando)
	assert.NoError(t, err)
	assert.Equal(t, models.EstadoPreparando, updated.Estado)

	updated, err = svc.AdvanceEstado(pedido.ID, models.EstadoListo)
	assert.NoError(t, err)
	assert.Equal(t, models.EstadoListo, updated.Estado)

	updated, err = svc.AdvanceEstado(pedido.ID, models.EstadoEntregado)
	assert.NoError(t, err)
	assert.Equal(t, models.EstadoEntregado, updated.Estado)
	assert.NotNil(t, updated.HoraEntrega)
}

func TestAdvanceEstadoRejectsSkips(t *testing.T) {
	db := setupOrderTestDB(t)

	pedido := models.Pedido{
		NumeroPedido: "PED-TEST-0002",
		TipoPedido:   models.PedidoParaLlevar,
		Estado:       models.EstadoPendiente,
		HoraPedido:   time.Now(),
	}
	db.Create(&pedido)

	svc := NewOrderService(db)

	// Skipping preparando is not allowed
	_, err := svc.AdvanceEstado(pedido.ID, models.EstadoListo)
	assert.Error(t, err)

	// Backward moves are not allowed
	_, err = svc.AdvanceEstado(pedido.ID, models.EstadoPendiente)
	assert.Error(t, err)

	var stored models.Pedido
	db.First(&stored, pedido.ID)
	assert.Equal(t, models.EstadoPendiente, stored.Estado)
	assert.Nil(t, stored.HoraEntrega)
}

func TestAdvanceEstadoEntregadoIsTerminal(t *testing.T) {
	db := setupOrderTestDB(t)

	pedido := models.Pedido{
		NumeroPedido: "PED-TEST-0003",
		TipoPedido:   models.PedidoParaLlevar,
		Estado:       models.EstadoEntregado,
		HoraPedido:   time.Now(),
	}
	db.Create(&pedido)

	svc := NewOrderService(db)
	_, err := svc.AdvanceEstado(pedido.ID, models.EstadoPendiente)
	assert.Error(t, err)
}

func TestPedidosAbiertosExcludesEntregados(t *testing.T) {
	db := setupOrderTestDB(t)

	db.Create(&models.Pedido{NumeroPedido: "PED-A", TipoPedido: models.PedidoParaLlevar,
		Estado: models.EstadoPendiente, HoraPedido: time.Now()})
	db.Create(&models.Pedido{NumeroPedido: "PED-B", TipoPedido: models.PedidoParaLlevar,
		Estado: models.EstadoEntregado, HoraPedido: time.Now()})

	svc := NewOrderService(db)
	pedidos, err := svc.PedidosAbiertos()
	assert.NoError(t, err)
	assert.Len(t, pedidos, 1)
	assert.Equal(t, "PED-A", pedidos[0].NumeroPedido)
}
