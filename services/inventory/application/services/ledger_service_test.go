package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baustelle-app/lager/pkg/logger"
	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
	"github.com/baustelle-app/lager/services/inventory/infrastructure/persistence/memory"
)

type fixture struct {
	store    *memory.Store
	svc      *Services
	item     *models.Item
	location *models.StorageLocation
	operator uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	svc := NewServices(reposFor(store), Options{MaxAttempts: 5, BulkConcurrency: 4}, logger.Discard())
	svc.Ledger.backoff = 0

	item, err := svc.Catalog.CreateItem(context.Background(), CreateItemInput{
		Name:          "Schraube M8",
		Unit:          "Stk",
		Barcode:       ptr("4006381333931"),
		MinStockLevel: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	loc, err := svc.Catalog.CreateLocation(context.Background(), "Regal A", nil, nil)
	require.NoError(t, err)

	return &fixture{store: store, svc: svc, item: item, location: loc, operator: uuid.New()}
}

func reposFor(store *memory.Store) Repositories {
	return Repositories{
		Items:            store.Items(),
		Locations:        store.Locations(),
		Ledger:           store.Ledger(),
		PurchaseRequests: store.PurchaseRequests(),
	}
}

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (f *fixture) record(t *testing.T, typ models.TransactionType, qty string) (*models.Transaction, error) {
	t.Helper()
	return f.svc.Ledger.RecordTransaction(context.Background(), RecordRequest{
		ItemID:     f.item.ID,
		LocationID: f.location.ID,
		Type:       typ,
		Quantity:   dec(qty),
		OperatorID: f.operator,
	})
}

func (f *fixture) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	b, err := f.store.Ledger().GetBalance(context.Background(), f.item.ID, f.location.ID)
	if errors.Is(err, domain.ErrBalanceNotFound) {
		return decimal.Zero
	}
	require.NoError(t, err)
	return b.Quantity
}

func TestRecordTransaction_ExampleScenario(t *testing.T) {
	f := newFixture(t)

	txn, err := f.record(t, models.TransactionInitial, "100")
	require.NoError(t, err)
	assert.True(t, txn.BeforeQuantity.Equal(dec("0")))
	assert.True(t, txn.AfterQuantity.Equal(dec("100")))

	txn, err = f.record(t, models.TransactionOut, "30")
	require.NoError(t, err)
	assert.True(t, txn.BeforeQuantity.Equal(dec("100")))
	assert.True(t, txn.AfterQuantity.Equal(dec("70")))

	_, err = f.record(t, models.TransactionOut, "80")
	var short *domain.InsufficientStockError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, "70", short.Available)
	assert.Equal(t, "80", short.Requested)
	assert.True(t, f.balance(t).Equal(dec("70")))

	txn, err = f.record(t, models.TransactionAdjust, "65")
	require.NoError(t, err)
	assert.True(t, txn.BeforeQuantity.Equal(dec("70")))
	assert.True(t, txn.AfterQuantity.Equal(dec("65")))

	txn, err = f.record(t, models.TransactionIn, "10.5")
	require.NoError(t, err)
	assert.True(t, txn.AfterQuantity.Equal(dec("75.5")))
	assert.True(t, f.balance(t).Equal(dec("75.5")))
	assert.Equal(t, 4, f.store.TransactionCount())
}

func TestRecordTransaction_SumOfEffects(t *testing.T) {
	f := newFixture(t)
	steps := []struct {
		typ models.TransactionType
		qty string
	}{
		{models.TransactionInitial, "12"},
		{models.TransactionIn, "8.25"},
		{models.TransactionOut, "5"},
		{models.TransactionAdjust, "40"},
		{models.TransactionOut, "39.5"},
		{models.TransactionIn, "0"},
	}

	sum := decimal.Zero
	for _, step := range steps {
		txn, err := f.record(t, step.typ, step.qty)
		require.NoError(t, err, "%s %s", step.typ, step.qty)
		assert.True(t, f.balance(t).Equal(txn.AfterQuantity), "read after commit")
		sum = sum.Add(txn.Delta())
	}
	assert.True(t, f.balance(t).Equal(sum), "balance %s, sum of deltas %s", f.balance(t), sum)
}

func TestRecordTransaction_Validation(t *testing.T) {
	f := newFixture(t)
	base := RecordRequest{
		ItemID:     f.item.ID,
		LocationID: f.location.ID,
		Type:       models.TransactionIn,
		Quantity:   dec("1"),
		OperatorID: f.operator,
	}

	tests := []struct {
		name   string
		mutate func(*RecordRequest)
		want   error
	}{
		{"unknown type", func(r *RecordRequest) { r.Type = "transfer" }, domain.ErrInvalidArgument},
		{"negative quantity", func(r *RecordRequest) { r.Quantity = dec("-1") }, domain.ErrInvalidArgument},
		{"missing item", func(r *RecordRequest) { r.ItemID = uuid.Nil }, domain.ErrInvalidArgument},
		{"missing location", func(r *RecordRequest) { r.LocationID = uuid.Nil }, domain.ErrInvalidArgument},
		{"missing operator", func(r *RecordRequest) { r.OperatorID = uuid.Nil }, domain.ErrInvalidArgument},
		{"unknown item", func(r *RecordRequest) { r.ItemID = uuid.New() }, domain.ErrItemNotFound},
		{"unknown location", func(r *RecordRequest) { r.LocationID = uuid.New() }, domain.ErrLocationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, err := f.svc.Ledger.RecordTransaction(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Zero(t, f.store.TransactionCount(), "rejected requests must not write")
}

func TestRecordTransaction_OutNeverGoesNegative(t *testing.T) {
	f := newFixture(t)
	_, err := f.record(t, models.TransactionOut, "1")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = f.store.Ledger().GetBalance(context.Background(), f.item.ID, f.location.ID)
	assert.ErrorIs(t, err, domain.ErrBalanceNotFound, "failed out must not create a balance row")
	assert.Zero(t, f.store.TransactionCount())
}

func TestRecordTransaction_AdjustIsExact(t *testing.T) {
	f := newFixture(t)
	_, err := f.record(t, models.TransactionInitial, "17")
	require.NoError(t, err)

	for _, target := range []string{"3", "0", "250.125"} {
		txn, err := f.record(t, models.TransactionAdjust, target)
		require.NoError(t, err)
		assert.True(t, txn.AfterQuantity.Equal(dec(target)))
		assert.True(t, f.balance(t).Equal(dec(target)))
	}
}

func TestRecordTransaction_ConcurrentOutDrainsExactly(t *testing.T) {
	const n = 50
	f := newFixture(t)
	_, err := f.record(t, models.TransactionInitial, fmt.Sprint(n))
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool)
		errs []error
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			txn, err := f.record(t, models.TransactionOut, "1")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			seen[txn.BeforeQuantity.String()+">"+txn.AfterQuantity.String()] = true
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	assert.Len(t, seen, n, "every out must see a distinct before/after pair")
	assert.True(t, f.balance(t).IsZero())

	_, err = f.record(t, models.TransactionOut, "1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRecordTransaction_TwoInstancesShareStore(t *testing.T) {
	const n = 40
	f := newFixture(t)
	other := NewServices(reposFor(f.store), Options{MaxAttempts: 2}, logger.Discard())
	other.Ledger.backoff = 0
	ledgers := []*LedgerService{f.svc.Ledger, other.Ledger}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledgers[i%2].RecordTransaction(context.Background(), RecordRequest{
				ItemID:     f.item.ID,
				LocationID: f.location.ID,
				Type:       models.TransactionIn,
				Quantity:   dec("1"),
				OperatorID: f.operator,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, n, succeeded+conflicts)
	assert.True(t, f.balance(t).Equal(decimal.NewFromInt(int64(succeeded))), "no lost updates")
	assert.Equal(t, succeeded, f.store.TransactionCount(), "conflicts must not log")
}

// conflictingLedger loses every version race.
type conflictingLedger struct {
	repositories.LedgerRepository
	commits int
}

func (c *conflictingLedger) Commit(context.Context, *models.Transaction, int64) error {
	c.commits++
	return domain.ErrConflict
}

func TestRecordTransaction_RetriesAreBounded(t *testing.T) {
	f := newFixture(t)
	ledger := &conflictingLedger{LedgerRepository: f.store.Ledger()}
	svc := NewLedgerService(f.store.Items(), f.store.Locations(), ledger, 3, 1, logger.Discard())
	svc.backoff = 0

	_, err := svc.RecordTransaction(context.Background(), RecordRequest{
		ItemID:     f.item.ID,
		LocationID: f.location.ID,
		Type:       models.TransactionIn,
		Quantity:   dec("5"),
		OperatorID: f.operator,
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 3, ledger.commits)
	assert.Zero(t, f.store.TransactionCount())
	assert.Zero(t, svc.locks.size(), "lock must be released")
}

func TestRecordTransaction_CancelledWhileBackingOff(t *testing.T) {
	f := newFixture(t)
	ledger := &conflictingLedger{LedgerRepository: f.store.Ledger()}
	svc := NewLedgerService(f.store.Items(), f.store.Locations(), ledger, 5, 1, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.RecordTransaction(ctx, RecordRequest{
		ItemID:     f.item.ID,
		LocationID: f.location.ID,
		Type:       models.TransactionIn,
		Quantity:   dec("5"),
		OperatorID: f.operator,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecordTransaction_IdempotencyKey(t *testing.T) {
	f := newFixture(t)
	req := RecordRequest{
		ItemID:         f.item.ID,
		LocationID:     f.location.ID,
		Type:           models.TransactionIn,
		Quantity:       dec("5"),
		OperatorID:     f.operator,
		IdempotencyKey: "delivery-4711",
	}

	first, err := f.svc.Ledger.RecordTransaction(context.Background(), req)
	require.NoError(t, err)
	again, err := f.svc.Ledger.RecordTransaction(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, f.balance(t).Equal(dec("5")), "replay must not re-apply")
	assert.Equal(t, 1, f.store.TransactionCount())

	req.Quantity = dec("6")
	_, err = f.svc.Ledger.RecordTransaction(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrIdempotencyKeyReused)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	req.IdempotencyKey = string(make([]byte, 256))
	_, err = f.svc.Ledger.RecordTransaction(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRecordTransaction_ConcurrentSameIdempotencyKey(t *testing.T) {
	const n = 10
	f := newFixture(t)

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			txn, err := f.svc.Ledger.RecordTransaction(context.Background(), RecordRequest{
				ItemID:         f.item.ID,
				LocationID:     f.location.ID,
				Type:           models.TransactionIn,
				Quantity:       dec("2"),
				OperatorID:     f.operator,
				IdempotencyKey: "scan-1",
			})
			if assert.NoError(t, err) {
				ids[i] = txn.ID
			}
		}()
	}
	wg.Wait()

	for _, id := range ids[1:] {
		assert.Equal(t, ids[0], id)
	}
	assert.True(t, f.balance(t).Equal(dec("2")))
}

func TestBulkInitialize_PartialSuccess(t *testing.T) {
	f := newFixture(t)
	other, err := f.svc.Catalog.CreateLocation(context.Background(), "Container 2", nil, nil)
	require.NoError(t, err)
	op := f.operator.String()

	res, err := f.svc.Ledger.BulkInitialize(context.Background(), []BulkEntry{
		{ItemID: f.item.ID.String(), LocationID: f.location.ID.String(), OperatorID: op, Quantity: "100"},
		{ItemID: "not-a-uuid", LocationID: f.location.ID.String(), OperatorID: op, Quantity: "1"},
		{ItemID: f.item.ID.String(), LocationID: other.ID.String(), OperatorID: op, Quantity: "25"},
		{ItemID: uuid.NewString(), LocationID: f.location.ID.String(), OperatorID: op, Quantity: "1"},
		{ItemID: f.item.ID.String(), LocationID: other.ID.String(), OperatorID: op, Quantity: "-3"},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 3, res.Failed)
	require.Len(t, res.Results, 5)
	for i, r := range res.Results {
		assert.Equal(t, i, r.Index)
	}
	assert.True(t, res.Results[0].Success)
	assert.Equal(t, "initial count", *res.Results[0].Transaction.Notes)
	assert.ErrorIs(t, res.Results[1].Err, domain.ErrInvalidArgument)
	assert.Equal(t, "not-a-uuid", res.Results[1].ItemID)
	assert.True(t, res.Results[2].Success)
	assert.ErrorIs(t, res.Results[3].Err, domain.ErrItemNotFound)
	assert.ErrorIs(t, res.Results[4].Err, domain.ErrInvalidArgument)

	total, err := f.store.Ledger().ItemTotal(context.Background(), f.item.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("125")))
}

func TestBulkInitialize_MalformedRowsFailAlone(t *testing.T) {
	f := newFixture(t)
	item, loc, op := f.item.ID.String(), f.location.ID.String(), f.operator.String()

	res, err := f.svc.Ledger.BulkInitialize(context.Background(), []BulkEntry{
		{ItemID: item, LocationID: loc, OperatorID: op, Quantity: "40"},
		{ItemID: item, LocationID: loc, OperatorID: op},
		{ItemID: item, LocationID: loc, OperatorID: op, Quantity: "abc"},
		{ItemID: item, LocationID: loc, OperatorID: op, Quantity: "0.0001"},
		{ItemID: item, LocationID: loc, OperatorID: op, Quantity: "1", Notes: strings.Repeat("x", 2001)},
		{ItemID: item, LocationID: loc, OperatorID: op, Quantity: " 2.5 "},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 4, res.Failed)
	for _, i := range []int{1, 2, 3, 4} {
		assert.ErrorIs(t, res.Results[i].Err, domain.ErrInvalidArgument, "entry %d", i)
	}
	assert.Contains(t, res.Results[1].Err.Error(), "quantity is required")
	assert.Contains(t, res.Results[2].Err.Error(), "not a number")
	assert.True(t, f.balance(t).Equal(dec("42.5")))
}

func TestBulkInitialize_Empty(t *testing.T) {
	f := newFixture(t)
	res, err := f.svc.Ledger.BulkInitialize(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Results)
}
