package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

// ItemFilter narrows catalog listings. Nil fields do not filter.
type ItemFilter struct {
	Type     *models.ItemType
	IsActive *bool
}

// ItemRepository is the persistence interface for the item catalog.
type ItemRepository interface {
	// Save inserts a new item. A duplicate barcode yields ErrBarcodeTaken.
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	GetByBarcode(ctx context.Context, barcode string) (*models.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*models.Item, error)
	// Deactivate clears the active flag. Items are never deleted.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// LocationRepository is the persistence interface for storage locations.
type LocationRepository interface {
	Save(ctx context.Context, loc *models.StorageLocation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.StorageLocation, error)
	// List orders by name. A nil isActive returns every location.
	List(ctx context.Context, isActive *bool) ([]*models.StorageLocation, error)
}

// BalanceFilter narrows balance listings. Nil fields do not filter.
type BalanceFilter struct {
	ItemID     *uuid.UUID
	LocationID *uuid.UUID
}

// TransactionFilter narrows the transaction log. Results are newest first.
type TransactionFilter struct {
	ItemID     *uuid.UUID
	LocationID *uuid.UUID
	OperatorID *uuid.UUID
	Limit      int
}

// LedgerRepository owns balances and the append-only transaction log.
type LedgerRepository interface {
	// GetBalance returns ErrBalanceNotFound when the pair has never moved.
	GetBalance(ctx context.Context, itemID, locationID uuid.UUID) (*models.Balance, error)

	// Commit writes txn.AfterQuantity as the new balance and appends txn to
	// the log, atomically. The write only succeeds if the stored balance is
	// still at expectedVersion; zero means the row must not exist yet.
	// A lost race returns ErrConflict and leaves nothing behind. A reused
	// idempotency key returns ErrDuplicateIdempotencyKey.
	Commit(ctx context.Context, txn *models.Transaction, expectedVersion int64) error

	GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*models.Transaction, error)

	ListBalances(ctx context.Context, filter BalanceFilter) ([]*models.BalanceView, error)
	// StockByItem lists every balance row of one item, joined with the
	// location name, ordered by location name.
	StockByItem(ctx context.Context, itemID uuid.UUID) ([]*models.StockAtLocation, error)
	ItemTotal(ctx context.Context, itemID uuid.UUID) (decimal.Decimal, error)
	// Summary aggregates active items across locations, ordered by name.
	Summary(ctx context.Context) ([]*models.StockSummary, error)
}

// PurchaseRequestRepository persists purchase requests.
type PurchaseRequestRepository interface {
	// Create assigns RequestNumber and inserts pr. A second request for the
	// same SourceEventID yields ErrDuplicateReorder.
	Create(ctx context.Context, pr *models.PurchaseRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PurchaseRequest, error)
	List(ctx context.Context, status *models.PurchaseRequestStatus) ([]*models.PurchaseRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.PurchaseRequestStatus) (*models.PurchaseRequest, error)
}
