package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baustelle-app/lager/pkg/logger"
	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/events"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
	domainsvcs "github.com/baustelle-app/lager/services/inventory/domain/services"
)

// Claimer guards against handling one event twice. kvstore.Marker
// satisfies it.
type Claimer interface {
	Claim(ctx context.Context, id string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, id string) error
}

// ReorderService opens purchase requests when an outgoing movement takes an
// item to or below its minimum stock.
type ReorderService struct {
	items    repositories.ItemRepository
	requests repositories.PurchaseRequestRepository
	claims   Claimer
	ttl      time.Duration
	log      logger.Logger
}

// NewReorderService wires the reorder check. claims may be nil, in which
// case the purchase request table's source event constraint is the only
// dedupe.
func NewReorderService(
	items repositories.ItemRepository,
	requests repositories.PurchaseRequestRepository,
	claims Claimer,
	ttl time.Duration,
	log logger.Logger,
) *ReorderService {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &ReorderService{
		items:    items,
		requests: requests,
		claims:   claims,
		ttl:      ttl,
		log:      log.With("component", "reorder"),
	}
}

// HandleTransaction checks one recorded transaction. It returns the request
// it opened, or nil when no reorder was due. A returned error means the
// event should be redelivered.
func (s *ReorderService) HandleTransaction(ctx context.Context, evt events.TransactionRecordedEvent) (*models.PurchaseRequest, error) {
	typ := models.TransactionType(evt.Type)
	if typ != models.TransactionOut && typ != models.TransactionAdjust {
		return nil, nil
	}
	delta := evt.Delta()
	if !delta.IsNegative() {
		return nil, nil
	}

	item, err := s.items.GetByID(ctx, evt.ItemID)
	if err != nil {
		return nil, fmt.Errorf("load item for reorder: %w", err)
	}
	if !item.IsActive || !item.MinStockLevel.IsPositive() {
		return nil, nil
	}

	// The totals were taken when the entry committed. Later movements do not
	// change whether this one crossed.
	total := evt.ItemTotalAfter
	if !domainsvcs.CrossedReorderPoint(evt.ItemTotalBefore, total, item.MinStockLevel) {
		return nil, nil
	}

	eventKey := evt.EventID.String()
	if s.claims != nil {
		ok, err := s.claims.Claim(ctx, eventKey, s.ttl)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.log.DebugContext(ctx, "reorder already handled", "event_id", eventKey)
			return nil, nil
		}
	}

	qty := domainsvcs.ReorderQuantity(total, item.MinStockLevel)
	pr, err := models.NewPurchaseRequest(item.ID, qty, models.ReasonAutomaticReorder, nil)
	if err != nil {
		// a quantity the request cannot hold will not fix itself on redelivery
		s.log.WarnContext(ctx, "reorder skipped", "item_id", item.ID, "quantity", qty.String(), "error", err)
		return nil, nil
	}
	sourceID := evt.EventID
	pr.SourceEventID = &sourceID

	if err := s.requests.Create(ctx, pr); err != nil {
		if errors.Is(err, domain.ErrDuplicateReorder) {
			return nil, nil
		}
		s.release(ctx, eventKey)
		return nil, fmt.Errorf("open purchase request: %w", err)
	}

	s.log.InfoContext(ctx, "automatic reorder opened",
		"request_number", pr.RequestNumber,
		"item_id", item.ID,
		"quantity", qty.String(),
		"total", total.String(),
		"min_stock", item.MinStockLevel.String(),
		"transaction_id", evt.TransactionID,
	)
	return pr, nil
}

func (s *ReorderService) release(ctx context.Context, key string) {
	if s.claims == nil {
		return
	}
	if err := s.claims.Release(ctx, key); err != nil {
		s.log.WarnContext(ctx, "release reorder marker", "event_id", key, "error", err)
	}
}
