package worker

import (
	"context"
	"fmt"
	"time"

	"auditor/internal/auditor"
	"auditor/pkg/domain"
	"auditor/pkg/engine"
	"auditor/pkg/logger"
	"auditor/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// AuditWorker is a River worker that runs the accessibility analysis engine
// for one URL per job and fans the outcome out to every pending audit of that
// URL.
//
// Jobs are unique per URL, so a single job may serve audit rows from several
// users. Before running the engine the worker checks that at least one pending
// audit still exists; when all requesters deleted their audits in the meantime
// the job completes without doing work. On engine failure the pending rows
// record the error and their attempt count, but only flip to failed once the
// attempts reach MaxAttempts, since River retries the job until then.
type AuditWorker struct {
	river.WorkerDefaults[auditor.JobArgs]

	engine  engine.Engine
	storage storage.Storage
	options AuditWorkerOptions
}

// AuditWorkerOptions configure a single job execution.
type AuditWorkerOptions struct {
	// Timeout bounds one engine run.
	Timeout time.Duration
	// MaxAttempts mirrors the job's retry budget; pending audits flip to
	// failed when their attempts reach it.
	MaxAttempts int
}

// NewAuditWorker constructs an AuditWorker from its collaborators.
func NewAuditWorker(eng engine.Engine, st storage.Storage, options AuditWorkerOptions) *AuditWorker {
	return &AuditWorker{
		engine:  eng,
		storage: st,
		options: options,
	}
}

// Work executes a single audit job.
func (w *AuditWorker) Work(ctx context.Context, job *river.Job[auditor.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("URL", job.Args.URL))

	pending, err := w.storage.PendingAuditCountByURL(ctx, job.Args.URL)
	if err != nil {
		logger.Error(ctx, "error counting pending audits", zap.Error(err))

		return fmt.Errorf("could not count pending audits: %w", err)
	}
	if pending == 0 {
		// every requester deleted their audit while the job was queued
		logger.Info(ctx, "no pending audits left, skipping")

		return nil
	}

	engineCtx := ctx
	if w.options.Timeout > 0 {
		var cancel context.CancelFunc
		engineCtx, cancel = context.WithTimeout(ctx, w.options.Timeout)
		defer cancel()
	}

	result, err := w.engine.Analyze(engineCtx, job.Args.URL)
	if err != nil {
		logger.Error(ctx, "error analyzing URL", zap.Error(err))

		lastError := err.Error()
		if updateErr := w.storage.UpdatePendingAuditsByURL(ctx, job.Args.URL, storage.AuditUpdates{
			Status:      domain.AuditStatusFailed,
			LastError:   &lastError,
			MaxAttempts: w.options.MaxAttempts,
		}); updateErr != nil {
			logger.Error(ctx, "error recording audit failure", zap.Error(updateErr))

			return fmt.Errorf("could not record audit failure: %w", updateErr)
		}

		// returning the error lets River retry with backoff until the job's
		// attempt budget runs out
		return fmt.Errorf("could not analyze URL: %w", err)
	}

	empty := ""
	if err := w.storage.UpdatePendingAuditsByURL(ctx, job.Args.URL, storage.AuditUpdates{
		Status:    domain.AuditStatusCompleted,
		Result:    result,
		LastError: &empty,
	}); err != nil {
		logger.Error(ctx, "error storing audit result", zap.Error(err))

		return fmt.Errorf("could not store audit result: %w", err)
	}

	logger.Info(ctx, "URL audited successfully", zap.Int("score", result.Score))

	return nil
}
