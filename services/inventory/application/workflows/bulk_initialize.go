// Package workflows runs long bulk initializations on Temporal so that a
// large opening count survives API restarts.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	pkgworkflows "github.com/baustelle-app/lager/pkg/workflows"
	appsvcs "github.com/baustelle-app/lager/services/inventory/application/services"
	"github.com/baustelle-app/lager/services/inventory/domain"
)

const (
	// entries in flight per workflow
	batchSize = 20

	activityTimeout = 30 * time.Second
)

type BulkInitializeInput struct {
	Entries []appsvcs.BulkEntry
}

// EntryInput is one activity call. The idempotency key makes a retried
// activity return the transaction it already committed.
type EntryInput struct {
	Index          int
	Entry          appsvcs.BulkEntry
	IdempotencyKey string
}

type EntryOutcome struct {
	Index         int
	ItemID        string
	Success       bool
	TransactionID string
	Error         string
}

type BulkInitializeSummary struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []EntryOutcome
}

// BulkInitializeWorkflow records an initial transaction per entry. Like the
// synchronous endpoint, entries fail independently.
func BulkInitializeWorkflow(ctx workflow.Context, in BulkInitializeInput) (BulkInitializeSummary, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: activityTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumAttempts:    5,
		},
	})
	logger := workflow.GetLogger(ctx)
	workflowID := workflow.GetInfo(ctx).WorkflowExecution.ID

	summary := BulkInitializeSummary{Total: len(in.Entries), Results: make([]EntryOutcome, len(in.Entries))}
	var a *Activities
	for start := 0; start < len(in.Entries); start += batchSize {
		end := min(start+batchSize, len(in.Entries))
		futures := make([]workflow.Future, 0, end-start)
		for i := start; i < end; i++ {
			futures = append(futures, workflow.ExecuteActivity(ctx, a.InitializeEntry, EntryInput{
				Index:          i,
				Entry:          in.Entries[i],
				IdempotencyKey: fmt.Sprintf("%s/%d", workflowID, i),
			}))
		}
		for j, f := range futures {
			i := start + j
			var out EntryOutcome
			if err := f.Get(ctx, &out); err != nil {
				out = EntryOutcome{Index: i, ItemID: in.Entries[i].ItemID, Error: err.Error()}
			}
			summary.Results[i] = out
			if out.Success {
				summary.Succeeded++
			}
		}
	}
	summary.Failed = summary.Total - summary.Succeeded

	logger.Info("bulk initialization finished",
		"total", summary.Total, "succeeded", summary.Succeeded, "failed", summary.Failed)
	return summary, nil
}

// Activities holds the dependencies of the bulk initialization activities.
type Activities struct {
	Ledger *appsvcs.LedgerService
}

// InitializeEntry records one entry. Rejections by the ledger are reported
// in the outcome; only transient failures are returned as errors and retried.
func (a *Activities) InitializeEntry(ctx context.Context, in EntryInput) (EntryOutcome, error) {
	out := EntryOutcome{Index: in.Index, ItemID: in.Entry.ItemID}
	txn, err := a.Ledger.InitializeEntry(ctx, in.Entry, in.IdempotencyKey)
	if err != nil {
		if isRejection(err) {
			out.Error = err.Error()
			return out, nil
		}
		return out, err
	}
	out.Success = true
	out.TransactionID = txn.ID.String()
	return out, nil
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrInvalidArgument) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrAlreadyExists)
}

// Register adds the bulk initialization workflow and activities to w.
func Register(w worker.Worker, ledger *appsvcs.LedgerService) {
	w.RegisterWorkflow(BulkInitializeWorkflow)
	w.RegisterActivity(&Activities{Ledger: ledger})
}

// Starter launches bulk initializations on the configured task queue.
type Starter struct {
	tc *pkgworkflows.TemporalClient
}

func NewStarter(tc *pkgworkflows.TemporalClient) *Starter {
	return &Starter{tc: tc}
}

func (s *Starter) StartBulkInitialize(ctx context.Context, entries []appsvcs.BulkEntry) (string, string, error) {
	run, err := s.tc.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        "bulk-init-" + uuid.NewString(),
		TaskQueue: s.tc.TaskQueue,
	}, BulkInitializeWorkflow, BulkInitializeInput{Entries: entries})
	if err != nil {
		return "", "", fmt.Errorf("start bulk initialization: %w", err)
	}
	return run.GetID(), run.GetRunID(), nil
}
