package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
)

// PurchaseRequestRepository implements repositories.PurchaseRequestRepository.
type PurchaseRequestRepository struct{ s *Store }

var _ repositories.PurchaseRequestRepository = (*PurchaseRequestRepository)(nil)

func (r *PurchaseRequestRepository) Create(_ context.Context, pr *models.PurchaseRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[pr.ItemID]; !ok {
		return domain.ErrItemNotFound
	}
	if pr.SourceEventID != nil {
		if _, dup := r.s.requestSources[*pr.SourceEventID]; dup {
			return domain.ErrDuplicateReorder
		}
		r.s.requestSources[*pr.SourceEventID] = pr.ID
	}
	r.s.requestSeq++
	pr.RequestNumber = models.FormatRequestNumber(pr.CreatedAt, r.s.requestSeq)
	r.s.requests[pr.ID] = copyRequest(pr)
	return nil
}

func (r *PurchaseRequestRepository) GetByID(_ context.Context, id uuid.UUID) (*models.PurchaseRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	pr, ok := r.s.requests[id]
	if !ok {
		return nil, domain.ErrPurchaseRequestNotFound
	}
	return copyRequest(pr), nil
}

func (r *PurchaseRequestRepository) List(_ context.Context, status *models.PurchaseRequestStatus) ([]*models.PurchaseRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.PurchaseRequest, 0, len(r.s.requests))
	for _, pr := range r.s.requests {
		if status != nil && pr.Status != *status {
			continue
		}
		out = append(out, copyRequest(pr))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].RequestNumber > out[j].RequestNumber
	})
	return out, nil
}

func (r *PurchaseRequestRepository) UpdateStatus(_ context.Context, id uuid.UUID, status models.PurchaseRequestStatus) (*models.PurchaseRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	pr, ok := r.s.requests[id]
	if !ok {
		return nil, domain.ErrPurchaseRequestNotFound
	}
	pr.Status = status
	pr.UpdatedAt = r.s.now()
	return copyRequest(pr), nil
}
