package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
)

const (
	DefaultTransactionLimit = 50
	MaxTransactionLimit     = 500
)

// StockService answers read-only questions about balances and history.
type StockService struct {
	ledger repositories.LedgerRepository
}

func NewStockService(ledger repositories.LedgerRepository) *StockService {
	return &StockService{ledger: ledger}
}

func (s *StockService) ListBalances(ctx context.Context, itemID, locationID *uuid.UUID) ([]*models.BalanceView, error) {
	rows, err := s.ledger.ListBalances(ctx, repositories.BalanceFilter{ItemID: itemID, LocationID: locationID})
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	return rows, nil
}

// ListTransactions returns the log newest first. A zero limit means the
// default of 50; anything outside 1..500 is rejected.
func (s *StockService) ListTransactions(ctx context.Context, filter repositories.TransactionFilter) ([]*models.Transaction, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultTransactionLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxTransactionLimit {
		return nil, domain.Invalid("limit must be between 1 and %d", MaxTransactionLimit)
	}
	txns, err := s.ledger.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

func (s *StockService) GetTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	txn, err := s.ledger.GetTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return txn, nil
}

func (s *StockService) Summary(ctx context.Context) ([]*models.StockSummary, error) {
	rows, err := s.ledger.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	return rows, nil
}

// LowStock is the summary restricted to items at or below min stock.
func (s *StockService) LowStock(ctx context.Context) ([]*models.StockSummary, error) {
	rows, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]*models.StockSummary, 0, len(rows))
	for _, row := range rows {
		if row.IsLow() {
			low = append(low, row)
		}
	}
	return low, nil
}
