package scheduler

import (
	"github.com/robfig/cron/v3"

	"github.com/somap/somap-backend/internal/app/repository"
	"github.com/somap/somap-backend/pkg/logger"
)

// StockScheduler runs a nightly reconciliation between the advisory
// stock_unidades counter on each producto and the movement ledger. The
// ledger is authoritative; drift is reported, never auto-corrected.
type StockScheduler struct {
	cron           *cron.Cron
	productoRepo   repository.ProductoRepository
	inventarioRepo repository.InventarioRepository
}

func NewStockScheduler(
	productoRepo repository.ProductoRepository,
	inventarioRepo repository.InventarioRepository,
) *StockScheduler {
	return &StockScheduler{
		cron:           cron.New(),
		productoRepo:   productoRepo,
		inventarioRepo: inventarioRepo,
	}
}

func (s *StockScheduler) Start() error {
	// Nightly at 03:00, when the back office is idle.
	_, err := s.cron.AddFunc("0 3 * * *", s.ReconcileStock)
	if err != nil {
		logger.Error("Failed to add cron job for stock reconciliation", err)
		return err
	}

	s.cron.Start()
	logger.Info("Stock reconciliation scheduler started (daily at 03:00)", nil)
	return nil
}

func (s *StockScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Stock reconciliation scheduler stopped", nil)
}

// ReconcileStock compares every producto counter against the ledger
// sum and logs each mismatch.
func (s *StockScheduler) ReconcileStock() {
	logger.Info("Starting stock reconciliation", nil)

	productos, err := s.productoRepo.FindAll(repository.ProductoFilter{})
	if err != nil {
		logger.Error("Failed to list productos for reconciliation", err)
		return
	}

	drift := 0
	for _, producto := range productos {
		stock, err := s.inventarioRepo.StockActual(producto.ID)
		if err != nil {
			logger.Error("Failed to compute stock during reconciliation", err, map[string]interface{}{
				"id_producto": producto.ID,
			})
			continue
		}
		if stock != producto.StockUnidades {
			drift++
			logger.Warn("Stock counter drift detected", map[string]interface{}{
				"id_producto":    producto.ID,
				"sku":            producto.SKU,
				"contador":       producto.StockUnidades,
				"stock_libro":    stock,
			})
		}
	}

	logger.Info("Stock reconciliation finished", map[string]interface{}{
		"productos": len(productos),
		"drift":     drift,
	})
}
