package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
)

// ItemRepository implements repositories.ItemRepository.
type ItemRepository struct{ s *Store }

var _ repositories.ItemRepository = (*ItemRepository)(nil)

func (r *ItemRepository) Save(_ context.Context, item *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if item.Barcode != nil {
		if _, taken := r.s.barcodes[*item.Barcode]; taken {
			return domain.ErrBarcodeTaken
		}
		r.s.barcodes[*item.Barcode] = item.ID
	}
	r.s.items[item.ID] = copyItem(item)
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return copyItem(item), nil
}

func (r *ItemRepository) GetByBarcode(_ context.Context, barcode string) (*models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.barcodes[barcode]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return copyItem(r.s.items[id]), nil
}

func (r *ItemRepository) List(_ context.Context, filter repositories.ItemFilter) ([]*models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Item, 0, len(r.s.items))
	for _, item := range r.s.items {
		if filter.Type != nil && item.Type != *filter.Type {
			continue
		}
		if filter.IsActive != nil && item.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, copyItem(item))
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name.String()) < strings.ToLower(out[j].Name.String())
	})
	return out, nil
}

func (r *ItemRepository) Deactivate(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	item.IsActive = false
	return nil
}

// LocationRepository implements repositories.LocationRepository.
type LocationRepository struct{ s *Store }

var _ repositories.LocationRepository = (*LocationRepository)(nil)

func (r *LocationRepository) Save(_ context.Context, loc *models.StorageLocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.locations[loc.ID] = copyLocation(loc)
	return nil
}

func (r *LocationRepository) GetByID(_ context.Context, id uuid.UUID) (*models.StorageLocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	loc, ok := r.s.locations[id]
	if !ok {
		return nil, domain.ErrLocationNotFound
	}
	return copyLocation(loc), nil
}

func (r *LocationRepository) List(_ context.Context, isActive *bool) ([]*models.StorageLocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.StorageLocation, 0, len(r.s.locations))
	for _, loc := range r.s.locations {
		if isActive != nil && loc.IsActive != *isActive {
			continue
		}
		out = append(out, copyLocation(loc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
