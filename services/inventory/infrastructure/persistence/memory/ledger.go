package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
)

// LedgerRepository implements repositories.LedgerRepository.
type LedgerRepository struct{ s *Store }

var _ repositories.LedgerRepository = (*LedgerRepository)(nil)

func (r *LedgerRepository) GetBalance(_ context.Context, itemID, locationID uuid.UUID) (*models.Balance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.balances[balanceKey{itemID, locationID}]
	if !ok {
		return nil, domain.ErrBalanceNotFound
	}
	c := *b
	return &c, nil
}

func (r *LedgerRepository) Commit(_ context.Context, txn *models.Transaction, expectedVersion int64) error {
	r.s.mu.Lock()

	key := balanceKey{txn.ItemID, txn.LocationID}
	current, exists := r.s.balances[key]
	switch {
	case expectedVersion == 0 && exists:
		r.s.mu.Unlock()
		return domain.ErrConflict
	case expectedVersion != 0 && (!exists || current.Version != expectedVersion):
		r.s.mu.Unlock()
		return domain.ErrConflict
	}
	if txn.IdempotencyKey != nil {
		if _, dup := r.s.idemKeys[*txn.IdempotencyKey]; dup {
			r.s.mu.Unlock()
			return domain.ErrDuplicateIdempotencyKey
		}
	}

	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = r.s.now()
	}
	r.s.balances[key] = &models.Balance{
		ItemID:     txn.ItemID,
		LocationID: txn.LocationID,
		Quantity:   txn.AfterQuantity,
		Version:    expectedVersion + 1,
		UpdatedAt:  txn.CreatedAt,
	}
	txn.ItemTotalAfter = r.itemTotalLocked(txn.ItemID)

	stored := copyTxn(txn)
	r.s.txns = append(r.s.txns, stored)
	r.s.txnByID[stored.ID] = stored
	if stored.IdempotencyKey != nil {
		r.s.idemKeys[*stored.IdempotencyKey] = stored
	}
	hooks := r.s.onCommit
	r.s.mu.Unlock()

	for _, fn := range hooks {
		fn(copyTxn(stored))
	}
	return nil
}

func (r *LedgerRepository) GetTransaction(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.txnByID[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return copyTxn(t), nil
}

func (r *LedgerRepository) FindByIdempotencyKey(_ context.Context, key string) (*models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.idemKeys[key]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return copyTxn(t), nil
}

func (r *LedgerRepository) ListTransactions(_ context.Context, f repositories.TransactionFilter) ([]*models.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	pos := make(map[*models.Transaction]int, len(r.s.txns))
	matched := make([]*models.Transaction, 0)
	for i, t := range r.s.txns {
		if f.ItemID != nil && t.ItemID != *f.ItemID {
			continue
		}
		if f.LocationID != nil && t.LocationID != *f.LocationID {
			continue
		}
		if f.OperatorID != nil && t.OperatorID != *f.OperatorID {
			continue
		}
		pos[t] = i
		matched = append(matched, t)
	}
	sortNewestFirst(matched, pos)

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	out := make([]*models.Transaction, len(matched))
	for i, t := range matched {
		out[i] = copyTxn(t)
	}
	return out, nil
}

func (r *LedgerRepository) ListBalances(_ context.Context, f repositories.BalanceFilter) ([]*models.BalanceView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.BalanceView, 0, len(r.s.balances))
	for key, b := range r.s.balances {
		if f.ItemID != nil && key.item != *f.ItemID {
			continue
		}
		if f.LocationID != nil && key.location != *f.LocationID {
			continue
		}
		view := &models.BalanceView{Balance: *b}
		if item, ok := r.s.items[key.item]; ok {
			view.ItemName = item.Name.String()
			view.Unit = item.Unit
		}
		if loc, ok := r.s.locations[key.location]; ok {
			view.LocationName = loc.Name
		}
		out = append(out, view)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemName != out[j].ItemName {
			return strings.ToLower(out[i].ItemName) < strings.ToLower(out[j].ItemName)
		}
		return out[i].LocationName < out[j].LocationName
	})
	return out, nil
}

func (r *LedgerRepository) StockByItem(_ context.Context, itemID uuid.UUID) ([]*models.StockAtLocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.StockAtLocation, 0)
	for key, b := range r.s.balances {
		if key.item != itemID {
			continue
		}
		row := &models.StockAtLocation{LocationID: key.location, Quantity: b.Quantity}
		if loc, ok := r.s.locations[key.location]; ok {
			row.LocationName = loc.Name
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocationName < out[j].LocationName })
	return out, nil
}

func (r *LedgerRepository) ItemTotal(_ context.Context, itemID uuid.UUID) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.itemTotalLocked(itemID), nil
}

func (r *LedgerRepository) itemTotalLocked(itemID uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for key, b := range r.s.balances {
		if key.item == itemID {
			total = total.Add(b.Quantity)
		}
	}
	return total
}

func (r *LedgerRepository) Summary(_ context.Context) ([]*models.StockSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.StockSummary, 0, len(r.s.items))
	for _, item := range r.s.items {
		if !item.IsActive {
			continue
		}
		row := &models.StockSummary{
			ItemID:        item.ID,
			ItemName:      item.Name.String(),
			Type:          item.Type,
			Unit:          item.Unit,
			TotalQuantity: decimal.Zero,
			MinStockLevel: item.MinStockLevel,
		}
		for key, b := range r.s.balances {
			if key.item != item.ID {
				continue
			}
			row.TotalQuantity = row.TotalQuantity.Add(b.Quantity)
			if b.Quantity.IsPositive() {
				row.LocationCount++
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].ItemName) < strings.ToLower(out[j].ItemName)
	})
	return out, nil
}
