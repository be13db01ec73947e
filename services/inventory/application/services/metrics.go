package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/baustelle-app/lager/services/inventory"

type ledgerMetrics struct {
	recorded  metric.Int64Counter
	conflicts metric.Int64Counter
	rejected  metric.Int64Counter
	duration  metric.Float64Histogram
}

// newLedgerMetrics registers the ledger instruments on the global meter
// provider. An instrument that fails to register falls back to a no-op.
func newLedgerMetrics() *ledgerMetrics {
	meter := otel.Meter(instrumentationName)
	fallback := noop.NewMeterProvider().Meter(instrumentationName)

	m := &ledgerMetrics{}
	var err error
	if m.recorded, err = meter.Int64Counter("ledger.transactions.recorded",
		metric.WithDescription("Committed ledger transactions.")); err != nil {
		m.recorded, _ = fallback.Int64Counter("ledger.transactions.recorded")
	}
	if m.conflicts, err = meter.Int64Counter("ledger.cas.conflicts",
		metric.WithDescription("Balance writes that lost a version race and were retried.")); err != nil {
		m.conflicts, _ = fallback.Int64Counter("ledger.cas.conflicts")
	}
	if m.rejected, err = meter.Int64Counter("ledger.transactions.rejected",
		metric.WithDescription("Transactions refused before or during commit.")); err != nil {
		m.rejected, _ = fallback.Int64Counter("ledger.transactions.rejected")
	}
	if m.duration, err = meter.Float64Histogram("ledger.record.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("Time to record one transaction, including retries.")); err != nil {
		m.duration, _ = fallback.Float64Histogram("ledger.record.duration")
	}
	return m
}

func (m *ledgerMetrics) recordedOne(ctx context.Context, txnType string) {
	m.recorded.Add(ctx, 1, metric.WithAttributes(attribute.String("transaction_type", txnType)))
}

func (m *ledgerMetrics) conflict(ctx context.Context) {
	m.conflicts.Add(ctx, 1)
}

func (m *ledgerMetrics) rejectedOne(ctx context.Context, code string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", code)))
}

func (m *ledgerMetrics) took(ctx context.Context, ms float64) {
	m.duration.Record(ctx, ms)
}
