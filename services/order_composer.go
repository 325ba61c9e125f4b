package services

import (
	"errors"

	"github.com/alimentosKerrys/grub-genius-system/config"
	"github.com/alimentosKerrys/grub-genius-system/models"
)

// LineaKind tags what a draft line actually is. Modeling the combo
// variants explicitly keeps impossible flag combinations (a side-only
// combo with no entrada, an a-la-carte line with a combo price...)
// unrepresentable.
type LineaKind string

const (
	LineaALaCarta     LineaKind = "alacarte"
	LineaMenuCompleto LineaKind = "combo_full"    // entrada + segundo at the full menu price
	LineaSoloEntrada  LineaKind = "combo_entrada" // entrada only
	LineaSoloSegundo  LineaKind = "combo_segundo" // segundo only
)

// Linea is one draft line of a pedido under composition.
type Linea struct {
	Kind           LineaKind
	Plato          models.Plato
	EntradaID      *uint // set for combo_full / combo_entrada
	Cantidad       int
	PrecioUnitario float64
	Observaciones  *string
}

// EsMenu reports whether the line bills at a fixed combo price.
func (l Linea) EsMenu() bool {
	return l.Kind != LineaALaCarta
}

// Composer accumulates draft lines for one pedido. It is not safe for
// concurrent use; each staff member composes on their own draft.
type Composer struct {
	lineas  []Linea
	precios config.MenuPrecios
}

func NewComposer() *Composer {
	return &Composer{precios: config.GetMenuPrecios()}
}

// comboPrice picks the configured fixed price for a combo kind. These
// never derive from the underlying plato's own price.
func (cp *Composer) comboPrice(kind LineaKind) float64 {
	switch kind {
	case LineaMenuCompleto:
		return cp.precios.Completo
	case LineaSoloEntrada:
		return cp.precios.SoloEntrada
	default:
		return cp.precios.SoloSegundo
	}
}

// AddLine merges into an existing line with the same
// (plato, kind, entrada) key, bumping its cantidad by one; otherwise it
// appends a new line with cantidad 1. It returns the index of the line
// it touched so callers can attach notes to the right line even when
// the add merged into an earlier one.
func (cp *Composer) AddLine(plato models.Plato, kind LineaKind, entradaID *uint) int {
	for i := range cp.lineas {
		if cp.lineas[i].matches(plato.ID, kind, entradaID) {
			cp.lineas[i].Cantidad++
			return i
		}
	}

	precio := plato.PrecioBase
	if kind != LineaALaCarta {
		precio = cp.comboPrice(kind)
	}

	cp.lineas = append(cp.lineas, Linea{
		Kind:           kind,
		Plato:          plato,
		EntradaID:      entradaID,
		Cantidad:       1,
		PrecioUnitario: precio,
	})
	return len(cp.lineas) - 1
}

func (l Linea) matches(platoID uint, kind LineaKind, entradaID *uint) bool {
	if l.Plato.ID != platoID || l.Kind != kind {
		return false
	}
	if (l.EntradaID == nil) != (entradaID == nil) {
		return false
	}
	return l.EntradaID == nil || *l.EntradaID == *entradaID
}

// SetQuantity sets line i's cantidad; n <= 0 removes the line.
func (cp *Composer) SetQuantity(i, n int) {
	if i < 0 || i >= len(cp.lineas) {
		return
	}
	if n <= 0 {
		cp.lineas = append(cp.lineas[:i], cp.lineas[i+1:]...)
		return
	}
	cp.lineas[i].Cantidad = n
}

// SetObservaciones attaches a note to line i. A later note on the same
// line replaces the earlier one.
func (cp *Composer) SetObservaciones(i int, notas string) {
	if i < 0 || i >= len(cp.lineas) {
		return
	}
	cp.lineas[i].Observaciones = &notas
}

// Lineas returns a copy of the current draft lines.
func (cp *Composer) Lineas() []Linea {
	out := make([]Linea, len(cp.lineas))
	copy(out, cp.lineas)
	return out
}

// Total recomputes the sum of precio*cantidad on every call. It is deliberately
// not cached: any mutation path would otherwise have to invalidate it.
func (cp *Composer) Total() float64 {
	var total float64
	for _, l := range cp.lineas {
		total += l.PrecioUnitario * float64(l.Cantidad)
	}
	return total
}

// Validation failures for a draft pedido.
var (
	ErrEmptyOrder      = errors.New("el pedido no tiene platos")
	ErrMissingTable    = errors.New("debe seleccionar una mesa")
	ErrMissingCustomer = errors.New("debe ingresar el nombre del cliente")
)

// Validate runs the synchronous pre-submit checks: a draft needs at
// least one line, a mesa when dining in, a customer name otherwise.
// It must pass before any persistence is attempted.
func (cp *Composer) Validate(tipoPedido string, mesaID *uint, clienteNombre *string) error {
	if len(cp.lineas) == 0 {
		return ErrEmptyOrder
	}
	if tipoPedido == models.PedidoLocal && mesaID == nil {
		return ErrMissingTable
	}
	if tipoPedido != models.PedidoLocal && (clienteNombre == nil || *clienteNombre == "") {
		return ErrMissingCustomer
	}
	return nil
}
