package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"

	"github.com/baustelle-app/lager/pkg/logger"
	appsvcs "github.com/baustelle-app/lager/services/inventory/application/services"
	"github.com/baustelle-app/lager/services/inventory/infrastructure/persistence/memory"
)

func newLedger(t *testing.T) (*appsvcs.Services, *memory.Store, string, string) {
	t.Helper()
	store := memory.NewStore()
	svcs := appsvcs.NewServices(appsvcs.Repositories{
		Items:            store.Items(),
		Locations:        store.Locations(),
		Ledger:           store.Ledger(),
		PurchaseRequests: store.PurchaseRequests(),
	}, appsvcs.Options{}, logger.Discard())

	item, err := svcs.Catalog.CreateItem(context.Background(), appsvcs.CreateItemInput{Name: "Bewehrungsstahl", Unit: "kg"})
	require.NoError(t, err)
	loc, err := svcs.Catalog.CreateLocation(context.Background(), "Lagerplatz Süd", nil, nil)
	require.NoError(t, err)
	return svcs, store, item.ID.String(), loc.ID.String()
}

func TestBulkInitializeWorkflow(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()

	svcs, store, itemID, locID := newLedger(t)
	env.RegisterActivity(&Activities{Ledger: svcs.Ledger})

	op := uuid.NewString()
	entries := []appsvcs.BulkEntry{
		{ItemID: itemID, LocationID: locID, OperatorID: op, Quantity: "500"},
		{ItemID: "garbage", LocationID: locID, OperatorID: op, Quantity: "1"},
	}
	for range 25 {
		entries = append(entries, appsvcs.BulkEntry{ItemID: itemID, LocationID: locID, OperatorID: op, Quantity: "2"})
	}

	env.ExecuteWorkflow(BulkInitializeWorkflow, BulkInitializeInput{Entries: entries})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var summary BulkInitializeSummary
	require.NoError(t, env.GetWorkflowResult(&summary))
	assert.Equal(t, 27, summary.Total)
	assert.Equal(t, 26, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.Results[1].Success)
	assert.Contains(t, summary.Results[1].Error, "item_id")
	assert.Equal(t, 26, store.TransactionCount())

	total, err := store.Ledger().ItemTotal(context.Background(), uuid.MustParse(itemID))
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(550)))
}

func TestBulkInitializeWorkflow_TransientFailureIsReported(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()

	a := &Activities{}
	env.RegisterActivity(a)
	env.OnActivity(a.InitializeEntry, mock.Anything, mock.Anything).
		Return(EntryOutcome{}, errors.New("database unavailable"))

	env.ExecuteWorkflow(BulkInitializeWorkflow, BulkInitializeInput{Entries: []appsvcs.BulkEntry{
		{ItemID: uuid.NewString(), LocationID: uuid.NewString(), OperatorID: uuid.NewString(), Quantity: "1"},
	}})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var summary BulkInitializeSummary
	require.NoError(t, env.GetWorkflowResult(&summary))
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, summary.Results[0].Error, "database unavailable")
}

func TestActivities_RetryIsIdempotent(t *testing.T) {
	svcs, store, itemID, locID := newLedger(t)
	a := &Activities{Ledger: svcs.Ledger}
	in := EntryInput{
		Index:          0,
		Entry:          appsvcs.BulkEntry{ItemID: itemID, LocationID: locID, OperatorID: uuid.NewString(), Quantity: "7"},
		IdempotencyKey: "bulk-init-test/0",
	}

	first, err := a.InitializeEntry(context.Background(), in)
	require.NoError(t, err)
	second, err := a.InitializeEntry(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first.TransactionID, second.TransactionID)
	assert.Equal(t, 1, store.TransactionCount())
}
