package services

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

const (
	defaultInitialNote = "initial count"
	maxNoteLength      = 2000
)

// BulkEntry is one row of an opening stock count. Every field arrives as
// text so that a malformed row fails only its own entry.
type BulkEntry struct {
	ItemID     string
	LocationID string
	OperatorID string
	Quantity   string
	Notes      string
}

// BulkEntryResult reports the outcome of one entry, in input order.
type BulkEntryResult struct {
	Index       int
	ItemID      string
	Success     bool
	Transaction *models.Transaction
	Err         error
}

// BulkResult summarizes a bulk initialization.
type BulkResult struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []BulkEntryResult
}

// BulkInitialize records an initial transaction per entry. Entries are
// independent: a failed entry is reported and the rest still apply. The
// only error returned is ctx's, when it ends before every entry ran.
func (s *LedgerService) BulkInitialize(ctx context.Context, entries []BulkEntry) (*BulkResult, error) {
	res := &BulkResult{Total: len(entries), Results: make([]BulkEntryResult, len(entries))}
	var succeeded atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.bulkWorkers)
	for i, entry := range entries {
		g.Go(func() error {
			r := BulkEntryResult{Index: i, ItemID: entry.ItemID}
			txn, err := s.InitializeEntry(gctx, entry, "")
			if err != nil {
				r.Err = err
			} else {
				r.Success = true
				r.Transaction = txn
				succeeded.Add(1)
			}
			res.Results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	res.Succeeded = int(succeeded.Load())
	res.Failed = res.Total - res.Succeeded
	s.log.InfoContext(ctx, "bulk initialization finished",
		"total", res.Total, "succeeded", res.Succeeded, "failed", res.Failed)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// InitializeEntry parses entry and records it as an initial transaction.
func (s *LedgerService) InitializeEntry(ctx context.Context, entry BulkEntry, idempotencyKey string) (*models.Transaction, error) {
	itemID, err := parseID("item_id", entry.ItemID)
	if err != nil {
		return nil, err
	}
	locationID, err := parseID("location_id", entry.LocationID)
	if err != nil {
		return nil, err
	}
	operatorID, err := parseID("operator_id", entry.OperatorID)
	if err != nil {
		return nil, err
	}
	quantity, err := parseQuantity(entry.Quantity)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(entry.Notes) > maxNoteLength {
		return nil, domain.Invalid("notes must be at most %d characters", maxNoteLength)
	}
	note := strings.TrimSpace(entry.Notes)
	if note == "" {
		note = defaultInitialNote
	}
	return s.RecordTransaction(ctx, RecordRequest{
		ItemID:         itemID,
		LocationID:     locationID,
		Type:           models.TransactionInitial,
		Quantity:       quantity,
		OperatorID:     operatorID,
		Notes:          &note,
		IdempotencyKey: idempotencyKey,
	})
}

func parseQuantity(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, domain.Invalid("quantity is required")
	}
	q, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.Invalid("quantity %q is not a number", s)
	}
	return q, nil
}

func parseID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q is not a valid id", domain.ErrInvalidArgument, field, s)
	}
	return id, nil
}
