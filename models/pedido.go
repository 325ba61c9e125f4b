package models

import "time"

// Order types.
const (
	PedidoLocal      = "local"
	PedidoDelivery   = "delivery"
	PedidoParaLlevar = "para_llevar"
)

// Order lifecycle, strictly forward one step at a time.
const (
	EstadoPendiente  = "pendiente"
	EstadoPreparando = "preparando"
	EstadoListo      = "listo"
	EstadoEntregado  = "entregado"
)

type Pedido struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	NumeroPedido      string       `gorm:"type:varchar(50);not null;uniqueIndex" json:"numero_pedido"`
	TipoPedido        string       `gorm:"type:varchar(20);not null" json:"tipo_pedido"`
	Estado            string       `gorm:"type:varchar(20);not null;default:'pendiente';index" json:"estado"`
	MesaID            *uint        `gorm:"index" json:"mesa_id,omitempty"`
	Mesa              *Mesa        `gorm:"foreignKey:MesaID" json:"mesa,omitempty"`
	ClienteNombre     *string      `gorm:"type:varchar(255)" json:"cliente_nombre,omitempty"`
	ClienteTelefono   *string      `gorm:"type:varchar(30)" json:"cliente_telefono,omitempty"`
	DireccionDelivery *string      `gorm:"type:text" json:"direccion_delivery,omitempty"`
	MozoResponsable   *string      `gorm:"type:varchar(255)" json:"mozo_responsable,omitempty"`
	Subtotal          float64      `gorm:"type:decimal(10,2);not null;default:0.00" json:"subtotal"`
	Total             float64      `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	HoraPedido        time.Time    `gorm:"not null" json:"hora_pedido"`
	HoraEntrega       *time.Time   `json:"hora_entrega,omitempty"`
	TiempoPreparacion *int         `json:"tiempo_preparacion,omitempty"`
	Observaciones     *string      `gorm:"type:text" json:"observaciones,omitempty"`
	CreatedAt         time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"not null" json:"updated_at"`
	Items             []PedidoItem `gorm:"foreignKey:PedidoID" json:"items"`
}

func (Pedido) TableName() string {
	return "pedidos"
}

// EstadosAbiertos are the estados that keep a pedido on the live board
// and its mesa effectively occupied.
var EstadosAbiertos = []string{EstadoPendiente, EstadoPreparando, EstadoListo}
