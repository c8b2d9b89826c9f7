package auditor

import (
	"context"
	"fmt"
	"time"

	"auditor/internal/config"
	"auditor/internal/target"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"
)

// Options configure how audit jobs are enqueued and how results are cached.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing an audit job before marking it failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a completed result makes new
	// audit requests for the same URL reuse that result instead of enqueueing
	// a duplicate job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Audit.MaxAttempts,
		ResultCacheTTL: cfg.Audit.ResultCacheTTL,
	}
}

// auditor is the concrete implementation of the Auditor interface.
// It coordinates persistence with the storage layer and job enqueueing.
type auditor struct {
	options Options
	storage storage.Storage
}

// Enqueue stores a new audit request for the given URL and user, and attempts
// to enqueue a background job to process it. If a recent completed result
// exists for the same URL (within ResultCacheTTL), the new audit is
// immediately marked as completed with that result.
func (a auditor) Enqueue(ctx context.Context, userID domain.UserID, URL string) (*domain.Audit, error) {
	URL, err := target.Normalize(URL)
	if err != nil {
		return nil, err
	}

	var audit *domain.Audit
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreAudits(ctx, domain.Audit{
			UserID: userID,
			URL:    URL,
			Status: domain.AuditStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store audit: %w", err)
		}
		audit = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			URL:             URL,
			maxAttempts:     a.options.MaxAttempts,
			uniqueJobPeriod: a.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, another job already exists for this URL.
		// river unique jobs prevent duplicate jobs for the same URL.
		if !jobAdded {
			// if the existing job already completed, reuse its result for the
			// new audit instead of waiting for the worker
			lastResult, err := tx.LastCompletedAuditByURL(ctx, URL)
			if err != nil {
				return fmt.Errorf("could not get last completed audit: %w", err)
			}

			if lastResult != nil {
				updated, err := tx.UpdateAuditByID(ctx, audit.ID, storage.AuditUpdates{
					Status: domain.AuditStatusCompleted,
					Result: lastResult.Result,
				})
				if err != nil {
					return fmt.Errorf("could not update audit: %w", err)
				}
				audit = updated
			} // else: the job is in the queue and will be processed soon.
			// The worker updates all pending audits by URL upon completion.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue URL: %w", err)
	}

	return audit, nil
}

// UserAudits returns a page of audits for the given user filtered by status.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (a auditor) UserAudits(ctx context.Context,
	userID domain.UserID,
	status domain.AuditStatus,
	cursor string,
	limit uint) ([]domain.Audit, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := a.storage.UserAudits(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user audits: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Audits, next, nil
}

// Result fetches a single audit by ID for the given user. It returns a
// not-found error when no matching audit exists.
func (a auditor) Result(ctx context.Context, userID domain.UserID, auditID domain.AuditID) (*domain.Audit, error) {
	res, err := a.storage.AuditByID(ctx, userID, auditID)
	if err != nil {
		return nil, fmt.Errorf("could not get audit result: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "audit not found")
	}

	return res, nil
}

// Delete removes an audit belonging to the given user. If the audit does not
// exist, a not-found error is returned. Jobs are not cancelled here because
// other pending audits may still depend on the same URL job.
func (a auditor) Delete(ctx context.Context, userID domain.UserID, auditID domain.AuditID) error {
	res, err := a.storage.DeleteAudit(ctx, userID, auditID)
	if err != nil {
		return fmt.Errorf("could not delete audit: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "audit not found")
	}

	// the queue job stays untouched because other audits may depend on it.
	// The worker checks for remaining pending audits before processing.

	return nil
}

// New creates a new Auditor instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Auditor {
	return &auditor{
		options: options,
		storage: storage,
	}
}
