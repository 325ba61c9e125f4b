package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/models"
)

// OrderService persists composed pedidos and drives their estado
// lifecycle.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// GenerateNumeroPedido builds a readable, sortable and
// collision-resistant order number. The time prefix keeps tickets
// scannable on the board; the uuid suffix keeps two submissions inside
// the same second from colliding.
func GenerateNumeroPedido(now time.Time) string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("PED-%s-%s", now.Format("20060102-150405"), suffix)
}

// SubmitInput is everything outside the cart that a submission needs.
type SubmitInput struct {
	TipoPedido        string
	MesaID            *uint
	ClienteNombre     *string
	ClienteTelefono   *string
	DireccionDelivery *string
	MozoResponsable   *string
	TiempoPreparacion *int
	Observaciones     *string
}

// Submit validates the draft and persists it atomically: the pedido
// header, one pedido_item per line, and the mesa flip to ocupada for
// dine-in all commit or roll back together.
func (os *OrderService) Submit(cp *Composer, in SubmitInput) (*models.Pedido, error) {
	if err := cp.Validate(in.TipoPedido, in.MesaID, in.ClienteNombre); err != nil {
		return nil, err
	}

	now := time.Now()
	total := cp.Total()

	pedido := models.Pedido{
		NumeroPedido:      GenerateNumeroPedido(now),
		TipoPedido:        in.TipoPedido,
		Estado:            models.EstadoPendiente,
		MesaID:            in.MesaID,
		ClienteNombre:     in.ClienteNombre,
		ClienteTelefono:   in.ClienteTelefono,
		DireccionDelivery: in.DireccionDelivery,
		MozoResponsable:   in.MozoResponsable,
		Subtotal:          total,
		Total:             total,
		HoraPedido:        now,
		TiempoPreparacion: in.TiempoPreparacion,
		Observaciones:     in.Observaciones,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := os.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pedido).Error; err != nil {
			return err
		}

		for _, linea := range cp.Lineas() {
			item := models.PedidoItem{
				PedidoID:       pedido.ID,
				PlatoID:        linea.Plato.ID,
				EntradaID:      linea.EntradaID,
				Cantidad:       linea.Cantidad,
				PrecioUnitario: linea.PrecioUnitario,
				EsMenu:         linea.EsMenu(),
				Observaciones:  linea.Observaciones,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if linea.EsMenu() {
				precio := linea.PrecioUnitario
				item.PrecioMenu = &precio
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		if in.TipoPedido == models.PedidoLocal && in.MesaID != nil {
			if err := tx.Model(&models.Mesa{}).
				Where("id = ?", *in.MesaID).
				Update("estado", models.MesaOcupada).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &pedido, nil
}

// siguienteEstado maps each estado to the only one reachable from it.
var siguienteEstado = map[string]string{
	models.EstadoPendiente:  models.EstadoPreparando,
	models.EstadoPreparando: models.EstadoListo,
	models.EstadoListo:      models.EstadoEntregado,
}

// AdvanceEstado moves a pedido one step forward. Skipping states or
// moving backward is rejected; entregado is terminal and stamps
// hora_entrega.
func (os *OrderService) AdvanceEstado(pedidoID uint, nuevoEstado string) (*models.Pedido, error) {
	var pedido models.Pedido
	if err := os.DB.Preload("Items").First(&pedido, pedidoID).Error; err != nil {
		return nil, err
	}

	next, ok := siguienteEstado[pedido.Estado]
	if !ok {
		return nil, fmt.Errorf("el pedido %s ya fue entregado", pedido.NumeroPedido)
	}
	if nuevoEstado != next {
		return nil, fmt.Errorf("transicion invalida: %s -> %s", pedido.Estado, nuevoEstado)
	}

	now := time.Now()
	pedido.Estado = nuevoEstado
	pedido.UpdatedAt = now
	if nuevoEstado == models.EstadoEntregado {
		pedido.HoraEntrega = &now
	}

	if err := os.DB.Save(&pedido).Error; err != nil {
		return nil, err
	}
	return &pedido, nil
}

// PedidosAbiertos fetches open pedidos (estado != entregado), newest
// first, items joined with plato/entrada and the mesa reference.
func (os *OrderService) PedidosAbiertos() ([]models.Pedido, error) {
	var pedidos []models.Pedido
	err := os.DB.
		Preload("Items.Plato").
		Preload("Items.Entrada").
		Preload("Mesa").
		Where("estado <> ?", models.EstadoEntregado).
		Order("hora_pedido DESC").
		Find(&pedidos).Error
	return pedidos, err
}
