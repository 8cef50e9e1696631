package runlog

import "context"

// NoOp is a run logger that discards every record. Used when the run log is
// disabled and as a safe default in tests.
type NoOp struct{}

// NewNoOp creates a new no-op run logger.
func NewNoOp() *NoOp {
	return &NoOp{}
}

func (*NoOp) Log(context.Context, Record) error { return nil }

func (*NoOp) Close() error { return nil }
