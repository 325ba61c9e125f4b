package services

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/live"
	"github.com/alimentosKerrys/grub-genius-system/models"
)

// ChangeMonitor polls the db_changes audit table and rebroadcasts each
// row change over the live hub. Clients re-fetch on notify, so delivery
// order does not need to match write order.
type ChangeMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration
}

func NewChangeMonitor(db *gorm.DB) *ChangeMonitor {
	return &ChangeMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

func (cm *ChangeMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.checkChanges()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

func (cm *ChangeMonitor) Stop() {
	close(cm.StopChan)
}

func (cm *ChangeMonitor) checkChanges() {
	var changes []models.DBChange

	tx := cm.DB.Begin()

	if err := tx.Where("processed = ?", false).
		Order("changed_at ASC").
		Limit(100).
		Find(&changes).Error; err != nil {
		tx.Rollback()
		log.Printf("Error fetching changes: %v", err)
		return
	}

	for _, change := range changes {
		switch change.TableName {
		case "mesas":
			cm.processMesaChange(change)
		case "pedidos":
			cm.processPedidoChange(change)
		case "ingredientes":
			cm.processIngredienteChange(change)
		case "platos":
			cm.processPlatoChange(change)
		}

		if err := tx.Model(&models.DBChange{}).
			Where("id = ?", change.ID).
			Update("processed", true).Error; err != nil {
			tx.Rollback()
			log.Printf("Error marking change as processed: %v", err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing change batch: %v", err)
		tx.Rollback()
		return
	}

	if len(changes) > 0 {
		log.Printf("Processed %d row changes", len(changes))
	}
}

func (cm *ChangeMonitor) processMesaChange(change models.DBChange) {
	var mesa models.Mesa

	if change.ActionType != "DELETE" {
		if err := cm.DB.First(&mesa, change.RecordID).Error; err != nil {
			log.Printf("Error fetching mesa %d: %v", change.RecordID, err)
			return
		}
	}

	switch change.ActionType {
	case "INSERT":
		live.BroadcastMesaCreate(mesa)
	case "UPDATE":
		live.BroadcastMesaUpdate(mesa)
	case "DELETE":
		live.BroadcastMesaDelete(models.Mesa{ID: uint(change.RecordID)})
	}
}

func (cm *ChangeMonitor) processPedidoChange(change models.DBChange) {
	if change.ActionType == "DELETE" {
		return
	}

	var pedido models.Pedido
	if err := cm.DB.Preload("Items").First(&pedido, change.RecordID).Error; err != nil {
		log.Printf("Error fetching pedido %d: %v", change.RecordID, err)
		return
	}

	if change.ActionType == "INSERT" {
		live.BroadcastPedidoCreate(pedido)
		return
	}
	live.BroadcastPedidoUpdate(pedido)
}

func (cm *ChangeMonitor) processIngredienteChange(change models.DBChange) {
	if change.ActionType == "DELETE" {
		return
	}

	var ing models.Ingrediente
	if err := cm.DB.First(&ing, change.RecordID).Error; err != nil {
		log.Printf("Error fetching ingrediente %d: %v", change.RecordID, err)
		return
	}

	live.BroadcastStockUpdate(ing)
	if ClassifyIngrediente(ing) == StockBajo {
		live.BroadcastStockAlert(ing)
	}
}

func (cm *ChangeMonitor) processPlatoChange(change models.DBChange) {
	if change.ActionType == "DELETE" {
		return
	}

	var plato models.Plato
	if err := cm.DB.First(&plato, change.RecordID).Error; err != nil {
		log.Printf("Error fetching plato %d: %v", change.RecordID, err)
		return
	}
	live.BroadcastPlatoUpdate(plato)
}
