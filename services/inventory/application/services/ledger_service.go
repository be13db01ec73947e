package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/baustelle-app/lager/pkg/logger"
	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
	domainsvcs "github.com/baustelle-app/lager/services/inventory/domain/services"
)

const (
	defaultMaxAttempts  = 5
	defaultRetryBackoff = 5 * time.Millisecond
	maxIdempotencyKey   = 255
)

// RecordRequest is one stock movement to record.
type RecordRequest struct {
	ItemID     uuid.UUID
	LocationID uuid.UUID
	Type       models.TransactionType
	Quantity   decimal.Decimal
	OperatorID uuid.UUID
	Notes      *string
	Reference  *models.Reference
	// IdempotencyKey, when set, makes a repeated request return the
	// transaction committed by the first one.
	IdempotencyKey string
}

// LedgerService records stock movements and keeps balances consistent
// with the transaction log.
//
// Movements on one (item, location) pair are serialized in-process by a
// keyed mutex. Across processes the repository's version check rejects a
// stale write with ErrConflict and the service re-reads and retries, up to
// maxAttempts times.
type LedgerService struct {
	items       repositories.ItemRepository
	locations   repositories.LocationRepository
	ledger      repositories.LedgerRepository
	locks       *keyedMutex
	maxAttempts int
	backoff     time.Duration
	bulkWorkers int
	log         logger.Logger
	tracer      trace.Tracer
	metrics     *ledgerMetrics
	now         func() time.Time
}

// NewLedgerService wires the ledger. Non-positive maxAttempts and
// bulkWorkers fall back to 5 and 4.
func NewLedgerService(
	items repositories.ItemRepository,
	locations repositories.LocationRepository,
	ledger repositories.LedgerRepository,
	maxAttempts int,
	bulkWorkers int,
	log logger.Logger,
) *LedgerService {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if bulkWorkers <= 0 {
		bulkWorkers = 4
	}
	return &LedgerService{
		items:       items,
		locations:   locations,
		ledger:      ledger,
		locks:       newKeyedMutex(),
		maxAttempts: maxAttempts,
		backoff:     defaultRetryBackoff,
		bulkWorkers: bulkWorkers,
		log:         log.With("component", "ledger"),
		tracer:      otel.Tracer(instrumentationName),
		metrics:     newLedgerMetrics(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RecordTransaction validates req, applies it to the current balance and
// commits the new balance together with the log entry.
//
// Errors wrap one of domain.ErrInvalidArgument, ErrNotFound,
// ErrInsufficientStock, ErrConflict or ErrAlreadyExists. On any error
// nothing has been written.
func (s *LedgerService) RecordTransaction(ctx context.Context, req RecordRequest) (*models.Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.RecordTransaction", trace.WithAttributes(
		attribute.String("item_id", req.ItemID.String()),
		attribute.String("location_id", req.LocationID.String()),
		attribute.String("transaction_type", string(req.Type)),
	))
	defer span.End()
	start := time.Now()

	txn, err := s.record(ctx, req)
	s.metrics.took(ctx, float64(time.Since(start).Microseconds())/1000)
	if err != nil {
		s.metrics.rejectedOne(ctx, reason(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, reason(err))
		return nil, err
	}
	span.SetAttributes(attribute.String("transaction_id", txn.ID.String()))
	return txn, nil
}

func (s *LedgerService) record(ctx context.Context, req RecordRequest) (*models.Transaction, error) {
	if err := validateRecordRequest(req); err != nil {
		return nil, err
	}

	if req.IdempotencyKey != "" {
		existing, err := s.ledger.FindByIdempotencyKey(ctx, req.IdempotencyKey)
		switch {
		case err == nil:
			return s.replay(ctx, existing, req)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("look up idempotency key: %w", err)
		}
	}

	if _, err := s.items.GetByID(ctx, req.ItemID); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}
	if _, err := s.locations.GetByID(ctx, req.LocationID); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	unlock, err := s.locks.Lock(ctx, req.ItemID.String()+"/"+req.LocationID.String())
	if err != nil {
		return nil, fmt.Errorf("wait for balance lock: %w", err)
	}
	defer unlock()

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		txn, err := s.attempt(ctx, req)
		switch {
		case err == nil:
			s.metrics.recordedOne(ctx, string(txn.Type))
			s.log.InfoContext(ctx, "transaction recorded",
				"transaction_id", txn.ID,
				"item_id", txn.ItemID,
				"location_id", txn.LocationID,
				"transaction_type", txn.Type,
				"quantity", txn.Quantity.String(),
				"before", txn.BeforeQuantity.String(),
				"after", txn.AfterQuantity.String(),
				"attempt", attempt,
			)
			return txn, nil
		case errors.Is(err, domain.ErrDuplicateIdempotencyKey):
			// a concurrent request with the same key committed first
			existing, findErr := s.ledger.FindByIdempotencyKey(ctx, req.IdempotencyKey)
			if findErr != nil {
				return nil, fmt.Errorf("load transaction for idempotency key: %w", findErr)
			}
			return s.replay(ctx, existing, req)
		case errors.Is(err, domain.ErrConflict):
			s.metrics.conflict(ctx)
			s.log.DebugContext(ctx, "balance changed concurrently, retrying",
				"item_id", req.ItemID, "location_id", req.LocationID, "attempt", attempt)
			if attempt < s.maxAttempts {
				if err := s.wait(ctx, attempt); err != nil {
					return nil, err
				}
			}
		default:
			return nil, err
		}
	}

	s.log.WarnContext(ctx, "giving up after repeated balance conflicts",
		"item_id", req.ItemID, "location_id", req.LocationID, "attempts", s.maxAttempts)
	return nil, fmt.Errorf("%w: balance of item %s at location %s changed on each of %d attempts",
		domain.ErrConflict, req.ItemID, req.LocationID, s.maxAttempts)
}

// attempt is one read-compute-commit round.
func (s *LedgerService) attempt(ctx context.Context, req RecordRequest) (*models.Transaction, error) {
	current := decimal.Zero
	var version int64
	bal, err := s.ledger.GetBalance(ctx, req.ItemID, req.LocationID)
	switch {
	case err == nil:
		current, version = bal.Quantity, bal.Version
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("read balance: %w", err)
	}

	next, err := domainsvcs.NextQuantity(req.Type, current, req.Quantity)
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		ID:             uuid.New(),
		ItemID:         req.ItemID,
		LocationID:     req.LocationID,
		Type:           req.Type,
		Quantity:       req.Quantity,
		BeforeQuantity: current,
		AfterQuantity:  next,
		OperatorID:     req.OperatorID,
		Notes:          req.Notes,
		Reference:      req.Reference,
		CreatedAt:      s.now(),
	}
	if req.IdempotencyKey != "" {
		key := req.IdempotencyKey
		txn.IdempotencyKey = &key
	}

	if err := s.ledger.Commit(ctx, txn, version); err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrDuplicateIdempotencyKey) {
			return nil, err
		}
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return txn, nil
}

// replay answers a repeated idempotency key with the original transaction.
func (s *LedgerService) replay(ctx context.Context, existing *models.Transaction, req RecordRequest) (*models.Transaction, error) {
	asked := &models.Transaction{ItemID: req.ItemID, LocationID: req.LocationID, Type: req.Type, Quantity: req.Quantity}
	if !existing.SameRequest(asked) {
		return nil, domain.ErrIdempotencyKeyReused
	}
	s.log.InfoContext(ctx, "idempotent replay", "transaction_id", existing.ID, "idempotency_key", req.IdempotencyKey)
	return existing, nil
}

// wait sleeps a jittered, linearly growing delay before the next attempt.
func (s *LedgerService) wait(ctx context.Context, attempt int) error {
	d := s.backoff * time.Duration(attempt)
	if d > 0 {
		d += time.Duration(rand.Int64N(int64(d)))
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func validateRecordRequest(req RecordRequest) error {
	if !req.Type.IsValid() {
		return domain.ErrInvalidTransactionType
	}
	if err := domainsvcs.ValidateQuantity(req.Quantity); err != nil {
		return err
	}
	if req.ItemID == uuid.Nil {
		return domain.Invalid("item_id is required")
	}
	if req.LocationID == uuid.Nil {
		return domain.Invalid("location_id is required")
	}
	if req.OperatorID == uuid.Nil {
		return domain.Invalid("operator_id is required")
	}
	if len(req.IdempotencyKey) > maxIdempotencyKey {
		return domain.Invalid("idempotency key must not exceed %d characters", maxIdempotencyKey)
	}
	return nil
}

// reason names the error kind for metrics and span status.
func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}
