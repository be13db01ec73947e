// Package consumers holds the inventory context's event handlers. They run
// in cmd/worker.
package consumers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/baustelle-app/lager/pkg/events"
	"github.com/baustelle-app/lager/pkg/logger"
	"github.com/baustelle-app/lager/services/inventory/application/services"
	"github.com/baustelle-app/lager/services/inventory/domain"
	domainevents "github.com/baustelle-app/lager/services/inventory/domain/events"
)

// Reorder returns the handler for inventory.transaction_recorded. Handlers
// must be idempotent; the bus redelivers on error.
func Reorder(svc *services.ReorderService, log logger.Logger) events.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeJSON[domainevents.TransactionRecordedEvent](msg)
		if err != nil {
			// a payload that does not decode never will
			log.ErrorContext(ctx, "dropping undecodable transaction event",
				"message_id", msg.UUID, "error", err)
			return nil
		}

		if _, err := svc.HandleTransaction(ctx, evt); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				log.WarnContext(ctx, "reorder skipped, item gone",
					"item_id", evt.ItemID, "event_id", evt.EventID)
				return nil
			}
			return err
		}
		return nil
	}
}

// Register subscribes every inventory consumer on bus and drains their error
// channels into the log until ctx is done.
func Register(ctx context.Context, bus *events.EventBus, svcs *services.Services, log logger.Logger) error {
	errCh, err := bus.Subscribe(ctx, domainevents.TopicTransactionRecorded, Reorder(svcs.Reorder, log))
	if err != nil {
		return err
	}
	go func() {
		for err := range errCh {
			log.ErrorContext(ctx, "subscriber error",
				"topic", domainevents.TopicTransactionRecorded,
				"error", err,
			)
		}
	}()

	log.Info("event subscribers registered", "topics", []string{domainevents.TopicTransactionRecorded})
	return nil
}
