package engine

import "errors"

// Error kinds for the two engine operations. Causes are wrapped with %w so
// callers can classify with errors.Is; nothing in the engine recovers or
// swallows locally.
var (
	ErrIngestion   = errors.New("ingestion failed")
	ErrAggregation = errors.New("aggregation failed")
)
