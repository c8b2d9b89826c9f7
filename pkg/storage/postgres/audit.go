package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	auditsTable = "audits"
)

func (p *PgSQL) StoreAudits(ctx context.Context, audits ...domain.Audit) ([]domain.Audit, error) {
	if len(audits) == 0 {
		return nil, nil
	}

	pgAudits, err := domainAuditsToPg(audits)
	if err != nil {
		return nil, err
	}

	var result []PgAudit
	if err := p.Builder.Insert(auditsTable).
		Rows(pgAudits).
		Returning(&PgAudit{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store audits into pg: %w", err)
	}

	return pgAuditsToDomain(result)
}

// UpdatePendingAuditsByURL updates all pending audits for the given URL with
// the provided fields. Attempts is incremented by 1 and updated_at is set.
// When moving to Failed with MaxAttempts > 0, status only flips once the
// incremented attempts reach the threshold, otherwise the row stays pending
// for the next retry.
func (p *PgSQL) UpdatePendingAuditsByURL(ctx context.Context, URL string, updates storage.AuditUpdates) error {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     updates.Status,
	}
	if updates.Status == domain.AuditStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.AuditStatusFailed))
	}
	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	_, err := p.Builder.Update(auditsTable).
		Set(rec).Where(
		goqu.I("url").Eq(URL),
		goqu.I("status").Eq(string(domain.AuditStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending audits by url in pg: %w", err)
	}

	return nil
}

// UpdateAuditByID updates a single audit by ID, ignoring soft-deleted rows,
// and returns the updated record.
func (p *PgSQL) UpdateAuditByID(ctx context.Context, id domain.AuditID, updates storage.AuditUpdates) (*domain.Audit, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = updates.Status
	}
	if updates.Result != nil {
		b, err := json.Marshal(updates.Result)
		if err != nil {
			return nil, fmt.Errorf("could not marshal result: %w", err)
		}

		rec["result"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgAudit
	found, err := p.Builder.Update(auditsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgAudit{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update audit by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PendingAuditCountByURL counts pending, non-deleted audits for a URL across
// all users.
func (p *PgSQL) PendingAuditCountByURL(ctx context.Context, URL string) (int64, error) {
	count, err := p.Builder.From(auditsTable).
		Where(
			goqu.I("url").Eq(URL),
			goqu.I("status").Eq(string(domain.AuditStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending audits by url in pg: %w", err)
	}

	return count, nil
}

// DeleteAudit performs a soft delete by setting the deleted_at timestamp for
// a given audit id and user, returning the deleted record.
func (p *PgSQL) DeleteAudit(ctx context.Context, userID domain.UserID, id domain.AuditID) (*domain.Audit, error) {
	var row PgAudit
	found, err := p.Builder.Update(auditsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgAudit{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete audit in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserAudits returns a page of audits for a user filtered by optional status
// and cursor, ordered by created_at DESC, id DESC.
func (p *PgSQL) UserAudits(ctx context.Context,
	userID domain.UserID,
	status domain.AuditStatus,
	cursor time.Time,
	limit uint) (storage.UserAudits, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(auditsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgAudit
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserAudits{}, fmt.Errorf("could not fetch user audits from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgAuditsToDomain(rows)
	if err != nil {
		return storage.UserAudits{}, err
	}

	return storage.UserAudits{
		Audits:     domainRows,
		NextCursor: nextCursor,
	}, nil
}

// AuditByID returns an audit by its ID, excluding soft-deleted rows.
func (p *PgSQL) AuditByID(ctx context.Context, userID domain.UserID, id domain.AuditID) (*domain.Audit, error) {
	var row PgAudit
	found, err := p.Builder.From(auditsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch audit by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LastCompletedAuditByURL returns the most recent completed audit for a URL
// across all users, or nil when none exists.
func (p *PgSQL) LastCompletedAuditByURL(ctx context.Context, URL string) (*domain.Audit, error) {
	var row PgAudit
	found, err := p.Builder.From(auditsTable).
		Where(
			goqu.I("url").Eq(URL),
			goqu.I("status").Eq(string(domain.AuditStatusCompleted)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed audit by url: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
