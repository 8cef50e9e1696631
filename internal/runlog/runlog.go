package runlog

import (
	"context"
	"time"

	"quotecheck/internal/schema"
)

// EventAnalyze is the event name stamped on every /analyze record.
const EventAnalyze = "quotecheck_analyze"

// Record is one append-only observability line per /analyze request. It is
// the minimal run-trace spine: grep/jq friendly, batch-analyzable later
// without a database.
type Record struct {
	Event         string                    `json:"event"`
	CreatedAt     time.Time                 `json:"created_at"`
	RequestID     string                    `json:"request_id"`
	PromptVersion string                    `json:"prompt_version"`
	Model         string                    `json:"model"`
	LatencyMS     int64                     `json:"latency_ms"`
	SchemaValid   bool                      `json:"schema_valid"`
	NumItems      int                       `json:"num_items"`
	RiskCounts    map[string]int            `json:"risk_counts"`
	Uncertainty   schema.UncertaintyMarkers `json:"uncertainty"`
	Error         string                    `json:"error,omitempty"`
}

// Logger appends run records. Logging is best-effort and observability-only:
// callers log and swallow errors, never fail the request over them.
type Logger interface {
	Log(ctx context.Context, rec Record) error
	Close() error
}
