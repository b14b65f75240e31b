// Package observe provides the observability primitives for VoiceBill:
// OpenTelemetry metric instruments and the SDK provider setup that bridges
// them to a Prometheus /metrics endpoint.
//
// Tests should construct their own [Metrics] via [NewMetrics] with a private
// [metric.MeterProvider] to avoid cross-test pollution; the server wires one
// from the global provider installed by [InitProvider].
package observe

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name for all VoiceBill metrics.
const meterName = "github.com/MSathish01/VoiceBill"

// Metrics holds the metric instruments recorded by the transcript parsing
// service. The underlying OTel types are safe for concurrent use.
type Metrics struct {
	// ParseDuration tracks the latency of one full-transcript parse.
	ParseDuration metric.Float64Histogram

	// SegmentsParsed counts parsed items emitted per transcript update.
	// Attribute: attribute.String("kind", "complete"|"partial").
	SegmentsParsed metric.Int64Counter

	// CorrectionsApplied counts formalizer substitutions. Attribute:
	//   attribute.String("kind", "diglossia"|"asr_error")
	CorrectionsApplied metric.Int64Counter

	// ItemsCommitted counts items auto-committed by the session tracker.
	ItemsCommitted metric.Int64Counter

	// ActiveSessions tracks currently connected listening sessions.
	ActiveSessions metric.Int64UpDownCounter
}

// parseLatencyBuckets are histogram bucket boundaries in seconds, tuned for
// an in-process parser that should stay well under a frame of UI latency.
var parseLatencyBuckets = []float64{
	0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
}

// NewMetrics creates all instruments on the given provider. It returns an
// error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ParseDuration, err = m.Float64Histogram("voicebill.parse.duration",
		metric.WithDescription("Latency of one continuous-transcript parse."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(parseLatencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.SegmentsParsed, err = m.Int64Counter("voicebill.segments.parsed",
		metric.WithDescription("Transcript segments parsed, by kind."),
	); err != nil {
		return nil, err
	}
	if met.CorrectionsApplied, err = m.Int64Counter("voicebill.corrections.applied",
		metric.WithDescription("Formalizer substitutions applied, by kind."),
	); err != nil {
		return nil, err
	}
	if met.ItemsCommitted, err = m.Int64Counter("voicebill.items.committed",
		metric.WithDescription("Items auto-committed by the session tracker."),
	); err != nil {
		return nil, err
	}
	if met.ActiveSessions, err = m.Int64UpDownCounter("voicebill.sessions.active",
		metric.WithDescription("Currently connected listening sessions."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// Default creates a [Metrics] on the global meter provider. Call after
// [InitProvider] so the instruments land on the Prometheus bridge.
func Default() (*Metrics, error) {
	return NewMetrics(otel.GetMeterProvider())
}
