// Package engine defines the contract with the accessibility analysis engine.
// The session state machine and the background worker are written against
// this interface regardless of whether it is backed by the built-in mock or,
// eventually, a real scanner.
package engine

import (
	"context"

	"auditor/pkg/domain"
)

// Engine analyzes a single target URL and produces an immutable result.
//
// Failures carry a semantic kind from pkg/serrors:
//   - ErrTimeout when the analysis did not finish in time,
//   - ErrUnavailable when the target host could not be reached,
//   - ErrInternal for any engine-side failure.
//
// Analyze must honor ctx cancellation promptly; a canceled context returns
// ctx.Err (wrapped), never a partial result.
//
//go:generate mockgen -package mockengine -source=interface.go -destination=mock/mockengine.go *
type Engine interface {
	Analyze(ctx context.Context, url string) (*domain.AnalysisResult, error)
}
