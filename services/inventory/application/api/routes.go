package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/baustelle-app/lager/pkg/app"
	"github.com/baustelle-app/lager/pkg/auth"
	"github.com/baustelle-app/lager/pkg/config"
	"github.com/baustelle-app/lager/services/inventory/application/handlers"
	appsvcs "github.com/baustelle-app/lager/services/inventory/application/services"
	"github.com/baustelle-app/lager/services/inventory/application/workflows"
)

// InventoryRoutes wires the inventory services and registers their
// endpoints on r.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	var starter handlers.BulkInitStarter
	if a.TemporalClient != nil {
		starter = workflows.NewStarter(a.TemporalClient)
	}

	r.Group(func(r chi.Router) {
		if a.SessionStore != nil {
			r.Use(auth.Authenticate(a.SessionStore, a.Logger, a.Config.AuthRequired))
		}
		Mount(r, svcs, a.Config.Environment == config.EnvProduction, starter)
	})
}

// Mount registers the inventory endpoints. The async bulk endpoint is only
// mounted when starter is non-nil.
func Mount(r chi.Router, svcs *appsvcs.Services, isProduction bool, starter handlers.BulkInitStarter) {
	base := handlers.NewBase(svcs, isProduction)

	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", handlers.NewGetBalancesHandler(base).Execute)
		r.Get("/summary", handlers.NewGetSummaryHandler(base).Execute)
		r.Get("/low-stock", handlers.NewGetLowStockHandler(base).Execute)
		r.Post("/transactions", handlers.NewPostTransactionHandler(base).Execute)
		r.Get("/transactions", handlers.NewListTransactionsHandler(base).Execute)
		r.Get("/transactions/{id}", handlers.NewGetTransactionHandler(base).Execute)
		r.Post("/bulk-init", handlers.NewPostBulkInitHandler(base).Execute)
		if starter != nil {
			r.Post("/bulk-init/async", handlers.NewPostBulkInitAsyncHandler(base, starter).Execute)
		}
	})

	r.Get("/barcode/{code}", handlers.NewGetBarcodeHandler(base).Execute)

	r.Route("/items", func(r chi.Router) {
		r.Post("/", handlers.NewPostItemHandler(base).Execute)
		r.Get("/", handlers.NewListItemsHandler(base).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(base).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(base).Execute)
	})

	r.Route("/locations", func(r chi.Router) {
		r.Post("/", handlers.NewPostLocationHandler(base).Execute)
		r.Get("/", handlers.NewListLocationsHandler(base).Execute)
	})

	r.Route("/purchase-requests", func(r chi.Router) {
		r.Post("/", handlers.NewPostPurchaseRequestHandler(base).Execute)
		r.Get("/", handlers.NewListPurchaseRequestsHandler(base).Execute)
		r.Patch("/{id}/status", handlers.NewPatchPurchaseRequestStatusHandler(base).Execute)
	})
}
