// Package telemetry implements the Clew Facade's extract_from_telemetry
// entry point (spec.md §4.8): a deterministic, threshold-based mapping from
// runtime telemetry fields to Constraints.
package telemetry

import (
	"strconv"

	"github.com/oxhq/ananke/internal/constraint"
)

// latencyP99BoundMillis and errorRateThreshold are the two fixed thresholds
// spec.md §4.8 names explicitly; crossing either emits a Constraint at
// telemetryConfidence.
const (
	latencyP99BoundMillis = 100.0
	errorRateThreshold    = 0.01
	telemetryConfidence   = 0.95
)

// Telemetry is the in-memory shape of the telemetry struct spec.md §6
// describes as external input; the core does no I/O to obtain it.
type Telemetry struct {
	LatencyP99Millis float64
	ErrorRate        float64
}

// Extract maps telemetry to Constraints deterministically: the same input
// always yields the same output, and no threshold crossing yields an empty
// ConstraintSet, never an error.
func Extract(t Telemetry) constraint.ConstraintSet {
	var out []constraint.Constraint

	if t.LatencyP99Millis > latencyP99BoundMillis {
		out = append(out, constraint.Constraint{
			Name:        "latency_bound",
			Kind:        constraint.KindPerformance,
			SourceTag:   constraint.SourceTelemetry,
			Confidence:  telemetryConfidence,
			Description: "observed p99 latency exceeds the 100ms bound",
			Metadata:    map[string]string{"latency_p99_millis": strconv.FormatFloat(t.LatencyP99Millis, 'f', -1, 64)},
		})
	}

	if t.ErrorRate > errorRateThreshold {
		out = append(out, constraint.Constraint{
			Name:        "error_rate",
			Kind:        constraint.KindOperational,
			SourceTag:   constraint.SourceTelemetry,
			Confidence:  telemetryConfidence,
			Description: "observed error rate exceeds the 0.01 bound",
			Metadata:    map[string]string{"error_rate": strconv.FormatFloat(t.ErrorRate, 'f', -1, 64)},
		})
	}

	return constraint.ConstraintSet{
		Constraints: out,
		Diagnostics: constraint.Diagnostics{StrategyUsed: "telemetry"},
	}
}
