package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

// TopicTransactionRecorded is published through the outbox in the same SQL
// transaction that commits a ledger entry.
const TopicTransactionRecorded = "inventory.transaction_recorded"

// TransactionRecordedEvent describes one committed ledger entry.
type TransactionRecordedEvent struct {
	EventID        uuid.UUID       `json:"event_id"` // dedupe key for consumers
	Version        int             `json:"version"`  // schema version
	TransactionID  uuid.UUID       `json:"transaction_id"`
	ItemID         uuid.UUID       `json:"item_id"`
	LocationID     uuid.UUID       `json:"location_id"`
	Type           string          `json:"transaction_type"`
	Quantity       decimal.Decimal `json:"quantity"`
	BeforeQuantity decimal.Decimal `json:"before_quantity"`
	AfterQuantity  decimal.Decimal `json:"after_quantity"`
	OperatorID     uuid.UUID       `json:"operator_id"`
	OccurredAt     time.Time       `json:"occurred_at"`

	// Item-wide stock around this entry, taken inside the committing SQL
	// transaction. Consumers must not re-read the current total instead.
	ItemTotalBefore decimal.Decimal `json:"item_total_before"`
	ItemTotalAfter  decimal.Decimal `json:"item_total_after"`
}

// EventVersion is the schema version of TransactionRecordedEvent. Version 2
// added the item totals.
const EventVersion = 2

// NewTransactionRecorded builds the event for txn.
func NewTransactionRecorded(txn *models.Transaction) TransactionRecordedEvent {
	return TransactionRecordedEvent{
		EventID:        uuid.New(),
		Version:        EventVersion,
		TransactionID:  txn.ID,
		ItemID:         txn.ItemID,
		LocationID:     txn.LocationID,
		Type:           string(txn.Type),
		Quantity:       txn.Quantity,
		BeforeQuantity: txn.BeforeQuantity,
		AfterQuantity:  txn.AfterQuantity,
		OperatorID:     txn.OperatorID,
		OccurredAt:     txn.CreatedAt,

		ItemTotalBefore: txn.ItemTotalBefore(),
		ItemTotalAfter:  txn.ItemTotalAfter,
	}
}

// Delta is the signed change the transaction applied.
func (e TransactionRecordedEvent) Delta() decimal.Decimal {
	return e.AfterQuantity.Sub(e.BeforeQuantity)
}
