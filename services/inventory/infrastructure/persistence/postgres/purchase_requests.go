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

const constraintSourceEvent = "purchase_requests_source_event_id_key"

// PurchaseRequestRepository implements repositories.PurchaseRequestRepository.
// Request numbers come from the inventory.purchase_request_number_seq sequence.
type PurchaseRequestRepository struct {
	db *database.Database
}

func NewPurchaseRequestRepository(database *database.Database) *PurchaseRequestRepository {
	return &PurchaseRequestRepository{db: database}
}

func (r *PurchaseRequestRepository) Create(ctx context.Context, pr *models.PurchaseRequest) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		seq, err := q.NextPurchaseRequestNumber(ctx)
		if err != nil {
			return fmt.Errorf("next request number: %w", err)
		}
		number := models.FormatRequestNumber(pr.CreatedAt, seq)

		if err := q.InsertPurchaseRequest(ctx, db.InsertPurchaseRequestParams{
			ID:            pr.ID,
			RequestNumber: number,
			ItemID:        pr.ItemID,
			Quantity:      pr.Quantity,
			Reason:        pr.Reason,
			Status:        string(pr.Status),
			CreatedBy:     nullUUID(pr.CreatedBy),
			SourceEventID: nullUUID(pr.SourceEventID),
			CreatedAt:     pr.CreatedAt,
			UpdatedAt:     pr.UpdatedAt,
		}); err != nil {
			if database.IsUniqueViolation(err, constraintSourceEvent) {
				return domain.ErrDuplicateReorder
			}
			if code, _ := database.PgErrorCode(err); code == database.CodeForeignKeyViolation {
				return domain.ErrItemNotFound
			}
			return fmt.Errorf("insert purchase request: %w", err)
		}
		pr.RequestNumber = number
		return nil
	})
}

func (r *PurchaseRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PurchaseRequest, error) {
	row, err := db.New(r.db.DB()).GetPurchaseRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPurchaseRequestNotFound
		}
		return nil, fmt.Errorf("query purchase request: %w", err)
	}
	return rowToPurchaseRequest(row), nil
}

func (r *PurchaseRequestRepository) List(ctx context.Context, status *models.PurchaseRequestStatus) ([]*models.PurchaseRequest, error) {
	var filter sql.NullString
	if status != nil {
		filter = sql.NullString{String: string(*status), Valid: true}
	}
	rows, err := db.New(r.db.DB()).ListPurchaseRequests(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query purchase requests: %w", err)
	}
	out := make([]*models.PurchaseRequest, len(rows))
	for i, row := range rows {
		out[i] = rowToPurchaseRequest(row)
	}
	return out, nil
}

func (r *PurchaseRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PurchaseRequestStatus) (*models.PurchaseRequest, error) {
	row, err := db.New(r.db.DB()).UpdatePurchaseRequestStatus(ctx, db.UpdatePurchaseRequestStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPurchaseRequestNotFound
		}
		return nil, fmt.Errorf("update purchase request status: %w", err)
	}
	return rowToPurchaseRequest(row), nil
}

var _ repositories.PurchaseRequestRepository = (*PurchaseRequestRepository)(nil)
