package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/baustelle-app/lager/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func TestRetryWithBackoff(t *testing.T) {
	tests := []struct {
		name      string
		failUntil int
		wantCalls int
		wantErr   bool
	}{
		{"success on first attempt", 0, 1, false},
		{"success after retries", 2, 3, false},
		{"exhausts retries", 99, defaultMaxRetries, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			handler := func(context.Context, *message.Message) error {
				calls++
				if calls <= tt.failUntil {
					return errors.New("transient")
				}
				return nil
			}
			err := retryWithBackoff(context.Background(), message.NewMessage("id", nil), handler,
				defaultMaxRetries, time.Millisecond, logger.Discard())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls: got %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	handler := func(context.Context, *message.Message) error {
		calls++
		return errors.New("boom")
	}
	err := retryWithBackoff(ctx, message.NewMessage("id", nil), handler, defaultMaxRetries, time.Second, logger.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestNewEventBus_RequiresDatabaseURL(t *testing.T) {
	if _, err := NewEventBus(Options{}, logger.Discard()); err == nil {
		t.Fatal("expected error without database url")
	}
}

func TestStartForwarder_NonForwarderMode(t *testing.T) {
	bus := &EventBus{useForwarder: false}
	if err := bus.StartForwarder(context.Background()); err == nil {
		t.Fatal("expected error for non-forwarder EventBus")
	}
}

type stockMoved struct {
	ItemID   string `json:"item_id"`
	Quantity string `json:"quantity"`
}

func TestJSONMessage_RoundTrip(t *testing.T) {
	msg, err := NewJSONMessage(stockMoved{ItemID: "bolt-M8", Quantity: "8"})
	if err != nil {
		t.Fatalf("NewJSONMessage: %v", err)
	}
	if msg.UUID == "" {
		t.Error("message UUID must be set")
	}
	if msg.Metadata.Get("content_type") != "application/json" {
		t.Errorf("content_type: got %q", msg.Metadata.Get("content_type"))
	}

	got, err := DecodeJSON[stockMoved](msg)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if got.ItemID != "bolt-M8" || got.Quantity != "8" {
		t.Errorf("unexpected payload: %+v", got)
	}

	if _, err := DecodeJSON[stockMoved](message.NewMessage("x", []byte("{"))); err == nil {
		t.Error("expected decode error for truncated payload")
	}
}

func TestInjectTrace_RoundTrip(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "commit")
	defer span.End()

	msg := message.NewMessage("id", nil)
	injectTrace(ctx, []*message.Message{msg})

	carrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		carrier[k] = v
	}
	got := trace.SpanFromContext(otel.GetTextMapPropagator().Extract(context.Background(), carrier))
	if got.SpanContext().TraceID() != span.SpanContext().TraceID() {
		t.Errorf("trace ID mismatch: want %s, got %s", span.SpanContext().TraceID(), got.SpanContext().TraceID())
	}
}

func TestLoggerAdapter_With(t *testing.T) {
	var a watermill.LoggerAdapter = NewLoggerAdapter(logger.Discard())
	if a.With(watermill.LogFields{"topic": "inventory.transaction_recorded"}) == nil {
		t.Fatal("With must return an adapter")
	}
}
