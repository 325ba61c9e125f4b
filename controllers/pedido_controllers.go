package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/live"
	"github.com/alimentosKerrys/grub-genius-system/models"
	"github.com/alimentosKerrys/grub-genius-system/services"
	"github.com/alimentosKerrys/grub-genius-system/utils"
)

type PedidoController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewPedidoController(db *gorm.DB) *PedidoController {
	return &PedidoController{DB: db, Orders: services.NewOrderService(db)}
}

// GetPedidosAbiertos -> live board: everything except entregado,
// newest first, items joined with plato/entrada/mesa.
func (pc *PedidoController) GetPedidosAbiertos(c *gin.Context) {
	pedidos, err := pc.Orders.PedidosAbiertos()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of pedidos", pedidos)
}

// GetPedidoByID -> detail with items
func (pc *PedidoController) GetPedidoByID(c *gin.Context) {
	id := c.Param("id")

	var pedido models.Pedido
	if err := pc.DB.
		Preload("Items.Plato").
		Preload("Items.Entrada").
		Preload("Mesa").
		First(&pedido, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pedido detail", pedido)
}

type pedidoItemReq struct {
	PlatoID       uint    `json:"plato_id" binding:"required"`
	Kind          string  `json:"kind"` // alacarte (default), combo_full, combo_entrada, combo_segundo
	EntradaID     *uint   `json:"entrada_id"`
	Cantidad      int     `json:"cantidad"`
	Observaciones *string `json:"observaciones"`
}

// CreatePedido composes the draft from the request body, validates it,
// and submits it atomically: header, items and the dine-in mesa flip
// commit or roll back together.
func (pc *PedidoController) CreatePedido(c *gin.Context) {
	var body struct {
		TipoPedido        string          `json:"tipo_pedido" binding:"required"`
		MesaID            *uint           `json:"mesa_id"`
		ClienteNombre     *string         `json:"cliente_nombre"`
		ClienteTelefono   *string         `json:"cliente_telefono"`
		DireccionDelivery *string         `json:"direccion_delivery"`
		TiempoPreparacion *int            `json:"tiempo_preparacion"`
		Observaciones     *string         `json:"observaciones"`
		Items             []pedidoItemReq `json:"items" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch body.TipoPedido {
	case models.PedidoLocal, models.PedidoDelivery, models.PedidoParaLlevar:
	default:
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("tipo_pedido must be local, delivery or para_llevar"))
		return
	}

	composer := services.NewComposer()
	for _, item := range body.Items {
		var plato models.Plato
		if err := pc.DB.First(&plato, item.PlatoID).Error; err != nil {
			// Missing plato is a data-quality gap, not a hard failure
			utils.ErrorLogger.Printf("pedido item references missing plato %d, skipping", item.PlatoID)
			continue
		}

		kind := services.LineaALaCarta
		switch item.Kind {
		case "", "alacarte":
		case "combo_full":
			kind = services.LineaMenuCompleto
		case "combo_entrada":
			kind = services.LineaSoloEntrada
		case "combo_segundo":
			kind = services.LineaSoloSegundo
		default:
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("unknown item kind %q", item.Kind))
			return
		}

		cantidad := item.Cantidad
		if cantidad <= 0 {
			cantidad = 1
		}
		idx := -1
		for i := 0; i < cantidad; i++ {
			idx = composer.AddLine(plato, kind, item.EntradaID)
		}
		if item.Observaciones != nil {
			// The add may have merged into an earlier line; the note
			// follows the line, replacing any note already on it.
			composer.SetObservaciones(idx, *item.Observaciones)
		}
	}

	var mozo *string
	if userID, exists := c.Get("userID"); exists {
		var user models.User
		if err := pc.DB.First(&user, userID).Error; err == nil {
			mozo = &user.Name
		}
	}

	pedido, err := pc.Orders.Submit(composer, services.SubmitInput{
		TipoPedido:        body.TipoPedido,
		MesaID:            body.MesaID,
		ClienteNombre:     body.ClienteNombre,
		ClienteTelefono:   body.ClienteTelefono,
		DireccionDelivery: body.DireccionDelivery,
		MozoResponsable:   mozo,
		TiempoPreparacion: body.TiempoPreparacion,
		Observaciones:     body.Observaciones,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder),
			errors.Is(err, services.ErrMissingTable),
			errors.Is(err, services.ErrMissingCustomer):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	live.BroadcastPedidoCreate(*pedido)
	live.BroadcastStaffNotification(fmt.Sprintf("Nuevo pedido %s (%s)", pedido.NumeroPedido, pedido.TipoPedido))

	utils.InfoLogger.Printf("Pedido created: %s total=%s", pedido.NumeroPedido, utils.FormatSoles(pedido.Total))
	utils.RespondJSON(c, http.StatusCreated, "Pedido created", pedido)
}

// UpdateEstado advances the pedido exactly one estado forward.
func (pc *PedidoController) UpdateEstado(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Estado string `json:"estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var pedido models.Pedido
	if err := pc.DB.First(&pedido, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	updated, err := pc.Orders.AdvanceEstado(pedido.ID, body.Estado)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	live.BroadcastPedidoUpdate(*updated)
	utils.RespondJSON(c, http.StatusOK, "Estado updated", updated)
}
