package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
)

func TestStock_ListTransactionsLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.record(t, models.TransactionInitial, "10")
	require.NoError(t, err)
	for range 3 {
		_, err := f.record(t, models.TransactionOut, "1")
		require.NoError(t, err)
	}

	txns, err := f.svc.Stock.ListTransactions(ctx, repositories.TransactionFilter{ItemID: &f.item.ID})
	require.NoError(t, err)
	require.Len(t, txns, 4)
	assert.True(t, txns[0].AfterQuantity.Equal(dec("7")), "newest first")
	assert.Equal(t, models.TransactionInitial, txns[3].Type)

	txns, err = f.svc.Stock.ListTransactions(ctx, repositories.TransactionFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, txns, 2)

	other := uuid.New()
	txns, err = f.svc.Stock.ListTransactions(ctx, repositories.TransactionFilter{OperatorID: &other})
	require.NoError(t, err)
	assert.Empty(t, txns)

	for _, limit := range []int{-1, 501} {
		_, err = f.svc.Stock.ListTransactions(ctx, repositories.TransactionFilter{Limit: limit})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "limit %d", limit)
	}
}

func TestStock_BalancesAndSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.record(t, models.TransactionInitial, "8")
	require.NoError(t, err)

	rows, err := f.svc.Stock.ListBalances(ctx, &f.item.ID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Schraube M8", rows[0].ItemName)
	assert.Equal(t, "Regal A", rows[0].LocationName)
	assert.Equal(t, int64(1), rows[0].Version)

	missing := uuid.New()
	rows, err = f.svc.Stock.ListBalances(ctx, nil, &missing)
	require.NoError(t, err)
	assert.Empty(t, rows)

	summary, err := f.svc.Stock.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.True(t, summary[0].TotalQuantity.Equal(dec("8")))
	assert.Equal(t, 1, summary[0].LocationCount)

	low, err := f.svc.Stock.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1, "8 is below the threshold of 10")

	_, err = f.record(t, models.TransactionIn, "5")
	require.NoError(t, err)
	low, err = f.svc.Stock.LowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, low)
}

func TestStock_GetTransaction(t *testing.T) {
	f := newFixture(t)
	txn, err := f.record(t, models.TransactionInitial, "1")
	require.NoError(t, err)

	got, err := f.svc.Stock.GetTransaction(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.Equal(t, txn.ID, got.ID)

	_, err = f.svc.Stock.GetTransaction(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
