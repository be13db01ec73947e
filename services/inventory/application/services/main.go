package services

import (
	"time"

	"github.com/baustelle-app/lager/pkg/app"
	"github.com/baustelle-app/lager/pkg/kvstore"
	"github.com/baustelle-app/lager/pkg/logger"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
	"github.com/baustelle-app/lager/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer container of the inventory context.
type Services struct {
	Ledger           *LedgerService
	Catalog          *CatalogService
	Stock            *StockService
	PurchaseRequests *PurchaseRequestService
	Reorder          *ReorderService
}

// Repositories bundles the storage the services run on. Production wires
// postgres; tests wire the in-memory store.
type Repositories struct {
	Items            repositories.ItemRepository
	Locations        repositories.LocationRepository
	Ledger           repositories.LedgerRepository
	PurchaseRequests repositories.PurchaseRequestRepository
}

// Options tunes the ledger and the reorder worker. Zero values take defaults.
type Options struct {
	MaxAttempts     int
	BulkConcurrency int
	ReorderClaims   Claimer
	ReorderTTL      time.Duration
}

// NewServices wires every inventory service over repos.
func NewServices(repos Repositories, opts Options, log logger.Logger) *Services {
	return &Services{
		Ledger:           NewLedgerService(repos.Items, repos.Locations, repos.Ledger, opts.MaxAttempts, opts.BulkConcurrency, log),
		Catalog:          NewCatalogService(repos.Items, repos.Locations, repos.Ledger),
		Stock:            NewStockService(repos.Ledger),
		PurchaseRequests: NewPurchaseRequestService(repos.PurchaseRequests),
		Reorder:          NewReorderService(repos.Items, repos.PurchaseRequests, opts.ReorderClaims, opts.ReorderTTL, log),
	}
}

// New wires the inventory services against PostgreSQL and the outbox.
func New(a *app.Application) *Services {
	repos := Repositories{
		Items:            postgres.NewItemRepository(a.Db),
		Locations:        postgres.NewLocationRepository(a.Db),
		Ledger:           postgres.NewLedgerRepository(a.Db, a.EventBus),
		PurchaseRequests: postgres.NewPurchaseRequestRepository(a.Db),
	}
	opts := Options{
		MaxAttempts:     a.Config.LedgerMaxAttempts,
		BulkConcurrency: a.Config.BulkInitConcurrency,
		ReorderTTL:      a.Config.ReorderMarkerTTL,
	}
	if a.Redis != nil {
		opts.ReorderClaims = kvstore.NewMarker(a.Redis, "reorder")
	}
	return NewServices(repos, opts, a.Logger)
}
