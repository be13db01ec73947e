package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/pkg/database"
	"github.com/baustelle-app/lager/pkg/events"
	"github.com/baustelle-app/lager/services/inventory/domain"
	domainevents "github.com/baustelle-app/lager/services/inventory/domain/events"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
	"github.com/baustelle-app/lager/services/inventory/infrastructure/persistence/postgres/db"
)

const constraintIdempotencyKey = "transactions_idempotency_key_key"

// LedgerRepository implements repositories.LedgerRepository against
// PostgreSQL. Balances are guarded by their version column.
type LedgerRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewLedgerRepository returns a LedgerRepository. When bus is non-nil every
// commit also writes a TransactionRecordedEvent to the outbox in the same
// SQL transaction.
func NewLedgerRepository(database *database.Database, bus *events.EventBus) *LedgerRepository {
	return &LedgerRepository{db: database, bus: bus}
}

func (r *LedgerRepository) GetBalance(ctx context.Context, itemID, locationID uuid.UUID) (*models.Balance, error) {
	row, err := db.New(r.db.DB()).GetBalance(ctx, db.GetBalanceParams{ItemID: itemID, LocationID: locationID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}
		return nil, fmt.Errorf("query balance: %w", err)
	}
	return &models.Balance{
		ItemID:     row.ItemID,
		LocationID: row.LocationID,
		Quantity:   row.Quantity,
		Version:    row.Version,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

// Commit moves the balance from expectedVersion to expectedVersion+1 and
// appends txn. Zero affected rows mean another writer got there first.
//
// The item row is locked for the length of the transaction so that the
// item total recorded on txn, and published with it, is exact even when
// other locations of the same item are written concurrently.
func (r *LedgerRepository) Commit(ctx context.Context, txn *models.Transaction, expectedVersion int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)

		if _, err := q.LockItemForLedger(ctx, txn.ItemID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrItemNotFound
			}
			return fmt.Errorf("lock item: %w", err)
		}

		var (
			n   int64
			err error
		)
		if expectedVersion == 0 {
			n, err = q.InsertBalance(ctx, db.InsertBalanceParams{
				ItemID:     txn.ItemID,
				LocationID: txn.LocationID,
				Quantity:   txn.AfterQuantity,
				UpdatedAt:  txn.CreatedAt,
			})
		} else {
			n, err = q.UpdateBalance(ctx, db.UpdateBalanceParams{
				Quantity:        txn.AfterQuantity,
				UpdatedAt:       txn.CreatedAt,
				ItemID:          txn.ItemID,
				LocationID:      txn.LocationID,
				ExpectedVersion: expectedVersion,
			})
		}
		if err != nil {
			return mapWriteError("write balance", err)
		}
		if n == 0 {
			return domain.ErrConflict
		}

		params := db.InsertTransactionParams{
			ID:              txn.ID,
			ItemID:          txn.ItemID,
			LocationID:      txn.LocationID,
			TransactionType: string(txn.Type),
			Quantity:        txn.Quantity,
			BeforeQuantity:  txn.BeforeQuantity,
			AfterQuantity:   txn.AfterQuantity,
			OperatorID:      txn.OperatorID,
			Notes:           nullString(txn.Notes),
			IdempotencyKey:  nullString(txn.IdempotencyKey),
			CreatedAt:       txn.CreatedAt,
		}
		if txn.Reference != nil {
			params.ReferenceType = sql.NullString{String: txn.Reference.Type, Valid: true}
			params.ReferenceID = uuid.NullUUID{UUID: txn.Reference.ID, Valid: true}
		}
		if err := q.InsertTransaction(ctx, params); err != nil {
			if database.IsUniqueViolation(err, constraintIdempotencyKey) {
				return domain.ErrDuplicateIdempotencyKey
			}
			return mapWriteError("insert transaction", err)
		}

		total, err := q.ItemTotal(ctx, txn.ItemID)
		if err != nil {
			return fmt.Errorf("item total: %w", err)
		}
		txn.ItemTotalAfter = total

		if r.bus != nil {
			evt := domainevents.NewTransactionRecorded(txn)
			if err := r.bus.PublishTx(ctx, tx, domainevents.TopicTransactionRecorded, evt); err != nil {
				return fmt.Errorf("publish transaction recorded: %w", err)
			}
		}
		return nil
	})
}

// mapWriteError turns constraint violations the ledger can hit into domain
// errors. A foreign key failure means the item or location vanished.
func mapWriteError(op string, err error) error {
	code, constraint := database.PgErrorCode(err)
	switch code {
	case database.CodeForeignKeyViolation:
		return fmt.Errorf("%s: %w (%s)", op, domain.ErrNotFound, constraint)
	case database.CodeUniqueViolation, database.CodeSerializationFailure:
		return domain.ErrConflict
	case database.CodeNumericOutOfRange:
		return fmt.Errorf("%s: %w: quantity out of range", op, domain.ErrInvalidArgument)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *LedgerRepository) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	row, err := db.New(r.db.DB()).GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("query transaction: %w", err)
	}
	return rowToTransaction(row), nil
}

func (r *LedgerRepository) FindByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error) {
	row, err := db.New(r.db.DB()).GetTransactionByIdempotencyKey(ctx, sql.NullString{String: key, Valid: true})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("query transaction by idempotency key: %w", err)
	}
	return rowToTransaction(row), nil
}

func (r *LedgerRepository) ListTransactions(ctx context.Context, filter repositories.TransactionFilter) ([]*models.Transaction, error) {
	rows, err := db.New(r.db.DB()).ListTransactions(ctx, db.ListTransactionsParams{
		ItemID:     nullUUID(filter.ItemID),
		LocationID: nullUUID(filter.LocationID),
		OperatorID: nullUUID(filter.OperatorID),
		RowLimit:   int32(filter.Limit), //nolint:gosec // bounded by the stock service
	})
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	txns := make([]*models.Transaction, len(rows))
	for i, row := range rows {
		txns[i] = rowToTransaction(row)
	}
	return txns, nil
}

func (r *LedgerRepository) ListBalances(ctx context.Context, filter repositories.BalanceFilter) ([]*models.BalanceView, error) {
	rows, err := db.New(r.db.DB()).ListBalances(ctx, db.ListBalancesParams{
		ItemID:     nullUUID(filter.ItemID),
		LocationID: nullUUID(filter.LocationID),
	})
	if err != nil {
		return nil, fmt.Errorf("query balances: %w", err)
	}
	out := make([]*models.BalanceView, len(rows))
	for i, row := range rows {
		out[i] = &models.BalanceView{
			Balance: models.Balance{
				ItemID:     row.ItemID,
				LocationID: row.LocationID,
				Quantity:   row.Quantity,
				Version:    row.Version,
				UpdatedAt:  row.UpdatedAt,
			},
			ItemName:     row.ItemName,
			Unit:         row.Unit,
			LocationName: row.LocationName,
		}
	}
	return out, nil
}

func (r *LedgerRepository) StockByItem(ctx context.Context, itemID uuid.UUID) ([]*models.StockAtLocation, error) {
	rows, err := db.New(r.db.DB()).StockByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("query stock by item: %w", err)
	}
	out := make([]*models.StockAtLocation, len(rows))
	for i, row := range rows {
		out[i] = &models.StockAtLocation{
			LocationID:   row.LocationID,
			LocationName: row.LocationName,
			Quantity:     row.Quantity,
		}
	}
	return out, nil
}

func (r *LedgerRepository) ItemTotal(ctx context.Context, itemID uuid.UUID) (decimal.Decimal, error) {
	total, err := db.New(r.db.DB()).ItemTotal(ctx, itemID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum item stock: %w", err)
	}
	return total, nil
}

func (r *LedgerRepository) Summary(ctx context.Context) ([]*models.StockSummary, error) {
	rows, err := db.New(r.db.DB()).StockSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stock summary: %w", err)
	}
	out := make([]*models.StockSummary, len(rows))
	for i, row := range rows {
		out[i] = &models.StockSummary{
			ItemID:        row.ItemID,
			ItemName:      row.ItemName,
			Type:          models.ItemType(row.ItemType),
			Unit:          row.Unit,
			TotalQuantity: row.TotalQuantity,
			LocationCount: int(row.LocationCount),
			MinStockLevel: row.MinStockLevel,
		}
	}
	return out, nil
}

var _ repositories.LedgerRepository = (*LedgerRepository)(nil)
