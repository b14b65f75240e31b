package observe_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/MSathish01/VoiceBill/internal/observe"
)

func TestNewMetrics_RecordsOnPrivateProvider(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			t.Errorf("provider shutdown: %v", err)
		}
	})

	m, err := observe.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	ctx := context.Background()
	m.ParseDuration.Record(ctx, 0.002)
	m.SegmentsParsed.Add(ctx, 2, metric.WithAttributes(attribute.String("kind", "complete")))
	m.CorrectionsApplied.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "diglossia")))
	m.ItemsCommitted.Add(ctx, 1)
	m.ActiveSessions.Add(ctx, 1)
	m.ActiveSessions.Add(ctx, -1)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	got := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			got[md.Name] = true
		}
	}
	for _, name := range []string{
		"voicebill.parse.duration",
		"voicebill.segments.parsed",
		"voicebill.corrections.applied",
		"voicebill.items.committed",
		"voicebill.sessions.active",
	} {
		if !got[name] {
			t.Errorf("metric %q was not collected; got %v", name, got)
		}
	}
}
