package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

func TestCatalog_CreateItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item, err := f.svc.Catalog.CreateItem(ctx, CreateItemInput{Name: " Rüttelplatte ", Type: "maschine"})
	require.NoError(t, err)
	assert.Equal(t, models.ItemName("Rüttelplatte"), item.Name)
	assert.Equal(t, models.ItemTypeMaschine, item.Type)
	assert.Equal(t, "Stk", item.Unit)

	_, err = f.svc.Catalog.CreateItem(ctx, CreateItemInput{Name: "Doppelt", Barcode: ptr("4006381333931")})
	assert.ErrorIs(t, err, domain.ErrBarcodeTaken)

	_, err = f.svc.Catalog.CreateItem(ctx, CreateItemInput{Name: "Werkzeug", Type: "tool"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.svc.Catalog.CreateItem(ctx, CreateItemInput{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidItemName)
}

func TestCatalog_ListItemsLowStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sand, err := f.svc.Catalog.CreateItem(ctx, CreateItemInput{Name: "Sand", Unit: "t", MinStockLevel: decimal.NewFromInt(2)})
	require.NoError(t, err)

	_, err = f.record(t, models.TransactionInitial, "4")
	require.NoError(t, err)
	_, err = f.svc.Ledger.RecordTransaction(ctx, RecordRequest{
		ItemID: sand.ID, LocationID: f.location.ID, Type: models.TransactionInitial,
		Quantity: dec("50"), OperatorID: f.operator,
	})
	require.NoError(t, err)

	all, err := f.svc.Catalog.ListItems(ctx, ListItemsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	low, err := f.svc.Catalog.ListItems(ctx, ListItemsInput{LowStock: true})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, f.item.ID, low[0].ID)

	_, err = f.svc.Catalog.ListItems(ctx, ListItemsInput{Type: ptr("tool")})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCatalog_DeactivateItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.Catalog.DeactivateItem(ctx, f.item.ID))
	item, err := f.svc.Catalog.GetItem(ctx, f.item.ID)
	require.NoError(t, err)
	assert.False(t, item.IsActive)

	active, err := f.svc.Catalog.ListItems(ctx, ListItemsInput{IsActive: ptr(true)})
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.ErrorIs(t, f.svc.Catalog.DeactivateItem(ctx, uuid.New()), domain.ErrNotFound)
}

func TestCatalog_Locations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Catalog.CreateLocation(ctx, "Container 1", nil, ptr("Nord"))
	require.NoError(t, err)

	locs, err := f.svc.Catalog.ListLocations(ctx, nil)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, "Container 1", locs[0].Name)
	assert.Equal(t, "Regal A", locs[1].Name)

	_, err = f.svc.Catalog.CreateLocation(ctx, " ", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCatalog_LookupBarcode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	yard, err := f.svc.Catalog.CreateLocation(ctx, "Lagerplatz", nil, nil)
	require.NoError(t, err)

	_, err = f.record(t, models.TransactionInitial, "70")
	require.NoError(t, err)
	_, err = f.svc.Ledger.RecordTransaction(ctx, RecordRequest{
		ItemID: f.item.ID, LocationID: yard.ID, Type: models.TransactionIn,
		Quantity: dec("30"), OperatorID: f.operator,
	})
	require.NoError(t, err)

	res, err := f.svc.Catalog.LookupBarcode(ctx, " 4006381333931 ")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, f.item.ID, res.Item.ID)
	assert.True(t, res.CurrentStock.Equal(dec("100")))
	require.Len(t, res.Locations, 2)
	assert.Equal(t, "Lagerplatz", res.Locations[0].LocationName)
	assert.True(t, res.Locations[1].Quantity.Equal(dec("70")))

	res, err = f.svc.Catalog.LookupBarcode(ctx, "0000000000000")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Item)

	_, err = f.svc.Catalog.LookupBarcode(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
