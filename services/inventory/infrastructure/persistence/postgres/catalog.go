// Package postgres implements the inventory repositories on PostgreSQL
// through the sqlc queries in ./db.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/baustelle-app/lager/pkg/database"
	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
	"github.com/baustelle-app/lager/services/inventory/infrastructure/persistence/postgres/db"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db *database.Database
}

func NewItemRepository(database *database.Database) *ItemRepository {
	return &ItemRepository{db: database}
}

// Save inserts item. Returns ErrBarcodeTaken when another item already
// carries the barcode.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	q := db.New(r.db.DB())
	if err := q.InsertItem(ctx, db.InsertItemParams{
		ID:            item.ID,
		Name:          item.Name.String(),
		ItemType:      string(item.Type),
		Unit:          item.Unit,
		Barcode:       nullString(item.Barcode),
		MinStockLevel: item.MinStockLevel,
		IsActive:      item.IsActive,
		CreatedAt:     item.CreatedAt,
	}); err != nil {
		if database.IsUniqueViolation(err, "items_barcode_key") {
			return domain.ErrBarcodeTaken
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return rowToItem(row), nil
}

func (r *ItemRepository) GetByBarcode(ctx context.Context, barcode string) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetItemByBarcode(ctx, sql.NullString{String: barcode, Valid: true})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item by barcode: %w", err)
	}
	return rowToItem(row), nil
}

func (r *ItemRepository) List(ctx context.Context, filter repositories.ItemFilter) ([]*models.Item, error) {
	params := db.ListItemsParams{IsActive: nullBool(filter.IsActive)}
	if filter.Type != nil {
		params.ItemType = sql.NullString{String: string(*filter.Type), Valid: true}
	}
	rows, err := db.New(r.db.DB()).ListItems(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	items := make([]*models.Item, len(rows))
	for i, row := range rows {
		items[i] = rowToItem(row)
	}
	return items, nil
}

func (r *ItemRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeactivateItem(ctx, id)
	if err != nil {
		return fmt.Errorf("deactivate item: %w", err)
	}
	if n == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// LocationRepository implements repositories.LocationRepository against PostgreSQL.
type LocationRepository struct {
	db *database.Database
}

func NewLocationRepository(database *database.Database) *LocationRepository {
	return &LocationRepository{db: database}
}

func (r *LocationRepository) Save(ctx context.Context, loc *models.StorageLocation) error {
	if err := db.New(r.db.DB()).InsertStorageLocation(ctx, db.InsertStorageLocationParams{
		ID:          loc.ID,
		Name:        loc.Name,
		Description: nullString(loc.Description),
		Zone:        nullString(loc.Zone),
		IsActive:    loc.IsActive,
		CreatedAt:   loc.CreatedAt,
	}); err != nil {
		return fmt.Errorf("insert storage location: %w", err)
	}
	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.StorageLocation, error) {
	row, err := db.New(r.db.DB()).GetStorageLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("query storage location: %w", err)
	}
	return rowToLocation(row), nil
}

func (r *LocationRepository) List(ctx context.Context, isActive *bool) ([]*models.StorageLocation, error) {
	rows, err := db.New(r.db.DB()).ListStorageLocations(ctx, nullBool(isActive))
	if err != nil {
		return nil, fmt.Errorf("query storage locations: %w", err)
	}
	locs := make([]*models.StorageLocation, len(rows))
	for i, row := range rows {
		locs[i] = rowToLocation(row)
	}
	return locs, nil
}

var (
	_ repositories.ItemRepository     = (*ItemRepository)(nil)
	_ repositories.LocationRepository = (*LocationRepository)(nil)
)
