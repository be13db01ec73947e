package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
)

type PurchaseRequestService struct {
	repo repositories.PurchaseRequestRepository
}

func NewPurchaseRequestService(repo repositories.PurchaseRequestRepository) *PurchaseRequestService {
	return &PurchaseRequestService{repo: repo}
}

// Create opens a pending request. The repository assigns the number.
func (s *PurchaseRequestService) Create(ctx context.Context, itemID uuid.UUID, quantity decimal.Decimal, reason string, createdBy *uuid.UUID) (*models.PurchaseRequest, error) {
	pr, err := models.NewPurchaseRequest(itemID, quantity, reason, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, pr); err != nil {
		return nil, fmt.Errorf("create purchase request: %w", err)
	}
	return pr, nil
}

func (s *PurchaseRequestService) List(ctx context.Context, status *string) ([]*models.PurchaseRequest, error) {
	var filter *models.PurchaseRequestStatus
	if status != nil {
		st, err := models.ParsePurchaseRequestStatus(*status)
		if err != nil {
			return nil, err
		}
		filter = &st
	}
	prs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list purchase requests: %w", err)
	}
	return prs, nil
}

func (s *PurchaseRequestService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.PurchaseRequest, error) {
	st, err := models.ParsePurchaseRequestStatus(status)
	if err != nil {
		return nil, err
	}
	pr, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, fmt.Errorf("update purchase request: %w", err)
	}
	return pr, nil
}
