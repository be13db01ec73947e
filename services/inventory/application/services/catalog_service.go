package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
)

// CreateItemInput carries the fields of a new catalog item.
type CreateItemInput struct {
	Name          string
	Type          string
	Unit          string
	Barcode       *string
	MinStockLevel decimal.Decimal
}

// ListItemsInput filters the catalog. LowStock keeps only items at or
// below their reorder threshold.
type ListItemsInput struct {
	Type     *string
	IsActive *bool
	LowStock bool
}

// BarcodeLookup is the answer to a scan. Found is false for an unknown code.
type BarcodeLookup struct {
	Found        bool
	Item         *models.Item
	CurrentStock decimal.Decimal
	Locations    []*models.StockAtLocation
}

// CatalogService manages items and storage locations and answers barcode
// scans.
type CatalogService struct {
	items     repositories.ItemRepository
	locations repositories.LocationRepository
	ledger    repositories.LedgerRepository
}

func NewCatalogService(
	items repositories.ItemRepository,
	locations repositories.LocationRepository,
	ledger repositories.LedgerRepository,
) *CatalogService {
	return &CatalogService{items: items, locations: locations, ledger: ledger}
}

// CreateItem validates and persists a catalog item.
func (s *CatalogService) CreateItem(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	name, err := models.NewItemName(in.Name)
	if err != nil {
		return nil, err
	}
	typ, err := models.ParseItemType(in.Type)
	if err != nil {
		return nil, err
	}
	item, err := models.NewItem(name, typ, in.Unit, in.Barcode, in.MinStockLevel)
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

func (s *CatalogService) GetItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *CatalogService) ListItems(ctx context.Context, in ListItemsInput) ([]*models.Item, error) {
	var filter repositories.ItemFilter
	if in.Type != nil {
		typ, err := models.ParseItemType(*in.Type)
		if err != nil {
			return nil, err
		}
		filter.Type = &typ
	}
	filter.IsActive = in.IsActive

	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if !in.LowStock {
		return items, nil
	}

	summary, err := s.ledger.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stock summary: %w", err)
	}
	low := make(map[uuid.UUID]bool, len(summary))
	for _, row := range summary {
		if row.IsLow() {
			low[row.ItemID] = true
		}
	}
	out := items[:0]
	for _, item := range items {
		if low[item.ID] {
			out = append(out, item)
		}
	}
	return out, nil
}

// DeactivateItem hides an item from the active catalog. Its history and
// balances stay.
func (s *CatalogService) DeactivateItem(ctx context.Context, id uuid.UUID) error {
	if err := s.items.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate item: %w", err)
	}
	return nil
}

func (s *CatalogService) CreateLocation(ctx context.Context, name string, description, zone *string) (*models.StorageLocation, error) {
	loc, err := models.NewStorageLocation(name, description, zone)
	if err != nil {
		return nil, err
	}
	if err := s.locations.Save(ctx, loc); err != nil {
		return nil, fmt.Errorf("save location: %w", err)
	}
	return loc, nil
}

func (s *CatalogService) ListLocations(ctx context.Context, isActive *bool) ([]*models.StorageLocation, error) {
	locs, err := s.locations.List(ctx, isActive)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locs, nil
}

// LookupBarcode resolves a scanned code to its item and per-location stock.
// An unknown code is not an error.
func (s *CatalogService) LookupBarcode(ctx context.Context, code string) (*BarcodeLookup, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.Invalid("barcode is required")
	}
	item, err := s.items.GetByBarcode(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return &BarcodeLookup{Found: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("look up barcode: %w", err)
	}

	stock, err := s.ledger.StockByItem(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("load stock for item %s: %w", item.ID, err)
	}
	total := decimal.Zero
	for _, row := range stock {
		total = total.Add(row.Quantity)
	}
	return &BarcodeLookup{Found: true, Item: item, CurrentStock: total, Locations: stock}, nil
}
