package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/models"
)

// MesaView is a mesa with its derived state and, when occupied by an
// open pedido, that pedido's summary.
type MesaView struct {
	models.Mesa
	EstadoEfectivo   string         `json:"estado_efectivo"`
	PedidoActual     *PedidoResumen `json:"pedido_actual,omitempty"`
	MinutosOcupacion int            `json:"minutos_ocupacion"`
}

type PedidoResumen struct {
	ID           uint      `json:"id"`
	NumeroPedido string    `json:"numero_pedido"`
	Total        float64   `json:"total"`
	Estado       string    `json:"estado"`
	HoraPedido   time.Time `json:"hora_pedido"`
}

// EffectiveState derives the state a mesa should display: any open
// pedido referencing it overrides the stored estado to ocupada.
func EffectiveState(mesa models.Mesa, openPedidos []models.Pedido) string {
	for _, p := range openPedidos {
		if p.MesaID != nil && *p.MesaID == mesa.ID {
			return models.MesaOcupada
		}
	}
	return mesa.Estado
}

// OccupancyMinutes is how long the pedido has held the mesa, truncated
// to whole minutes. Recomputed on every read, never stored.
func OccupancyMinutes(horaPedido, now time.Time) int {
	return int(now.Sub(horaPedido).Minutes())
}

// TableService builds the mesa board read model.
type TableService struct {
	DB *gorm.DB
}

func NewTableService(db *gorm.DB) *TableService {
	return &TableService{DB: db}
}

// MesasConPedidos returns active mesas cross-referenced with open
// pedidos, ordered by numero.
func (ts *TableService) MesasConPedidos(now time.Time) ([]MesaView, error) {
	var mesas []models.Mesa
	if err := ts.DB.Where("activa = ?", true).Order("numero").Find(&mesas).Error; err != nil {
		return nil, err
	}

	var abiertos []models.Pedido
	if err := ts.DB.
		Where("estado IN ?", models.EstadosAbiertos).
		Find(&abiertos).Error; err != nil {
		return nil, err
	}

	views := make([]MesaView, 0, len(mesas))
	for _, mesa := range mesas {
		view := MesaView{
			Mesa:           mesa,
			EstadoEfectivo: EffectiveState(mesa, abiertos),
		}
		for _, p := range abiertos {
			if p.MesaID != nil && *p.MesaID == mesa.ID {
				view.PedidoActual = &PedidoResumen{
					ID:           p.ID,
					NumeroPedido: p.NumeroPedido,
					Total:        p.Total,
					Estado:       p.Estado,
					HoraPedido:   p.HoraPedido,
				}
				view.MinutosOcupacion = OccupancyMinutes(p.HoraPedido, now)
				break
			}
		}
		views = append(views, view)
	}
	return views, nil
}
