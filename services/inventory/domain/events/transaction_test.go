package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain/events"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

func TestNewTransactionRecorded(t *testing.T) {
	txn := &models.Transaction{
		ID:             uuid.New(),
		ItemID:         uuid.New(),
		LocationID:     uuid.New(),
		Type:           models.TransactionOut,
		Quantity:       decimal.RequireFromString("8"),
		BeforeQuantity: decimal.RequireFromString("25"),
		AfterQuantity:  decimal.RequireFromString("17"),
		OperatorID:     uuid.New(),
		CreatedAt:      time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		ItemTotalAfter: decimal.RequireFromString("40"),
	}

	evt := events.NewTransactionRecorded(txn)

	if evt.EventID == uuid.Nil {
		t.Error("EventID must be generated")
	}
	if evt.Version != events.EventVersion {
		t.Errorf("Version: got %d", evt.Version)
	}
	if evt.TransactionID != txn.ID || evt.ItemID != txn.ItemID || evt.LocationID != txn.LocationID {
		t.Error("ids must be copied from the transaction")
	}
	if evt.Type != "out" {
		t.Errorf("Type: got %q", evt.Type)
	}
	if !evt.Delta().Equal(decimal.NewFromInt(-8)) {
		t.Errorf("Delta: got %s", evt.Delta())
	}
	if !evt.ItemTotalBefore.Equal(decimal.NewFromInt(48)) || !evt.ItemTotalAfter.Equal(decimal.NewFromInt(40)) {
		t.Errorf("item totals: got %s -> %s, want 48 -> 40", evt.ItemTotalBefore, evt.ItemTotalAfter)
	}
	if !evt.OccurredAt.Equal(txn.CreatedAt) {
		t.Errorf("OccurredAt: got %v", evt.OccurredAt)
	}
}

func TestTransactionRecordedEvent_JSONFieldNames(t *testing.T) {
	evt := events.NewTransactionRecorded(&models.Transaction{
		ID:       uuid.New(),
		Type:     models.TransactionIn,
		Quantity: decimal.NewFromInt(5),
	})

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	for _, field := range []string{
		"event_id", "version", "transaction_id", "item_id", "location_id", "transaction_type",
		"quantity", "before_quantity", "after_quantity", "operator_id", "occurred_at",
		"item_total_before", "item_total_after",
	} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}

	var decoded events.TransactionRecordedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if !decoded.Quantity.Equal(evt.Quantity) {
		t.Errorf("Quantity: got %s, want %s", decoded.Quantity, evt.Quantity)
	}
}

func TestTopicTransactionRecorded_Value(t *testing.T) {
	if events.TopicTransactionRecorded != "inventory.transaction_recorded" {
		t.Errorf("unexpected topic %q", events.TopicTransactionRecorded)
	}
}
