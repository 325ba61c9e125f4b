package live

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/alimentosKerrys/grub-genius-system/models"
)

// Event types pushed over the back-office live feed.
const (
	EventMesaCreate    = "mesa_create"
	EventMesaUpdate    = "mesa_update"
	EventMesaDelete    = "mesa_delete"
	EventPedidoCreate  = "pedido_create"
	EventPedidoUpdate  = "pedido_update"
	EventStockUpdate   = "stock_update"
	EventPlatoUpdate   = "plato_update"
	EventStockAlert    = "stock_alert"
	EventStaffNotif    = "staff_notification"
	EventDashboardSync = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected back-office client (admin, mozo, cocina).
// Notification order is not guaranteed to match write order; clients
// are expected to re-fetch the affected collection on every event
// rather than patch local state.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastMesaCreate(mesa models.Mesa) {
	broadcast(Message{Event: EventMesaCreate, Data: mesa})
}

func BroadcastMesaUpdate(mesa models.Mesa) {
	broadcast(Message{Event: EventMesaUpdate, Data: mesa})
}

func BroadcastMesaDelete(mesa models.Mesa) {
	broadcast(Message{Event: EventMesaDelete, Data: mesa})
}

func BroadcastPedidoCreate(pedido models.Pedido) {
	broadcast(Message{Event: EventPedidoCreate, Data: pedido})
}

func BroadcastPedidoUpdate(pedido models.Pedido) {
	broadcast(Message{Event: EventPedidoUpdate, Data: pedido})
}

func BroadcastStockUpdate(ing models.Ingrediente) {
	broadcast(Message{Event: EventStockUpdate, Data: ing})
}

func BroadcastPlatoUpdate(plato models.Plato) {
	broadcast(Message{Event: EventPlatoUpdate, Data: plato})
}

// BroadcastStockAlert flags an ingredient that fell to the bajo bucket.
func BroadcastStockAlert(ing models.Ingrediente) {
	broadcast(Message{Event: EventStockAlert, Data: ing})
}

func BroadcastStaffNotification(message string) {
	broadcast(Message{Event: EventStaffNotif, Data: message})
}

func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("live: marshal broadcast: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(hub.clients, conn)
		}
	}
}
