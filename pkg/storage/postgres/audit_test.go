package postgres_test

import (
	"context"
	"testing"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/engine/axemock"
	"auditor/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreAudits(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	URL1 := "https://example.com"
	URL2 := "https://example.org"

	t.Run("store single audit", func(t *testing.T) {
		t.Parallel()

		a := domain.Audit{
			UserID: userID,
			URL:    URL1,
			Status: domain.AuditStatusPending,
		}

		res, err := pgSQL.StoreAudits(ctx, a)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, URL1, res[0].URL)
		require.Nil(t, res[0].Result)
	})

	t.Run("store multiple audits", func(t *testing.T) {
		t.Parallel()

		a1 := domain.Audit{UserID: userID, URL: URL1, Status: domain.AuditStatusPending}
		a2 := domain.Audit{UserID: userID, URL: URL2, Status: domain.AuditStatusPending}

		res, err := pgSQL.StoreAudits(ctx, a1, a2)
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store empty audits", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreAudits(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_UpdatePendingAuditsByURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	urlA := "https://example.com/a"
	urlB := "https://example.com/b"

	a1 := domain.Audit{UserID: userID, URL: urlA, Status: domain.AuditStatusPending}
	a2 := domain.Audit{UserID: userID, URL: urlA, Status: domain.AuditStatusPending}
	a3 := domain.Audit{UserID: userID, URL: urlA, Status: domain.AuditStatusCompleted}
	a4 := domain.Audit{UserID: userID, URL: urlB, Status: domain.AuditStatusPending}
	ins, err := pgSQL.StoreAudits(ctx, a1, a2, a3, a4)
	require.NoError(t, err)
	require.Len(t, ins, 4)

	// complete only the pending audits for urlA and clear last_error
	empty := ""
	err = pgSQL.UpdatePendingAuditsByURL(ctx, urlA, storage.AuditUpdates{
		Status:    domain.AuditStatusCompleted,
		Result:    axemock.SampleResult(),
		LastError: &empty,
	})
	require.NoError(t, err)

	page, err := pgSQL.UserAudits(ctx, userID, "", time.Time{}, 50)
	require.NoError(t, err)

	byID := map[uuid.UUID]domain.Audit{}
	for _, a := range page.Audits {
		byID[uuid.UUID(a.ID)] = a
	}

	for i := range 2 {
		a := byID[uuid.UUID(ins[i].ID)]
		require.Equal(t, domain.AuditStatusCompleted, a.Status)
		require.EqualValues(t, 1, a.Attempts)
		require.False(t, a.UpdatedAt.IsZero())
		require.Empty(t, a.LastError)
		require.NotNil(t, a.Result)
		require.Equal(t, 85, a.Result.Score)
	}
	// the already completed row keeps attempts 0
	require.EqualValues(t, 0, byID[uuid.UUID(ins[2].ID)].Attempts)
	// urlB stays pending
	require.Equal(t, domain.AuditStatusPending, byID[uuid.UUID(ins[3].ID)].Status)
}

func TestPgSQL_UpdatePendingAuditsByURL_FailedRespectsMaxAttempts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	url := "https://flaky.example"

	ins, err := pgSQL.StoreAudits(ctx, domain.Audit{UserID: userID, URL: url, Status: domain.AuditStatusPending})
	require.NoError(t, err)
	require.Len(t, ins, 1)

	boom := "engine unavailable"
	fail := storage.AuditUpdates{
		Status:      domain.AuditStatusFailed,
		LastError:   &boom,
		MaxAttempts: 2,
	}

	// first failure: attempts 0 -> 1, below threshold, stays pending
	require.NoError(t, pgSQL.UpdatePendingAuditsByURL(ctx, url, fail))
	got, err := pgSQL.AuditByID(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.AuditStatusPending, got.Status)
	require.EqualValues(t, 1, got.Attempts)
	require.Equal(t, boom, got.LastError)

	// second failure: attempts 1 -> 2, reaches threshold, flips to failed
	require.NoError(t, pgSQL.UpdatePendingAuditsByURL(ctx, url, fail))
	got, err = pgSQL.AuditByID(ctx, userID, ins[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.AuditStatusFailed, got.Status)
	require.EqualValues(t, 2, got.Attempts)
}

func TestPgSQL_UpdateAuditByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	ins, err := pgSQL.StoreAudits(ctx, domain.Audit{
		UserID: userID,
		URL:    "https://byid.example",
		Status: domain.AuditStatusPending,
	})
	require.NoError(t, err)
	require.Len(t, ins, 1)

	updated, err := pgSQL.UpdateAuditByID(ctx, ins[0].ID, storage.AuditUpdates{
		Status: domain.AuditStatusCompleted,
		Result: axemock.SampleResult(),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.AuditStatusCompleted, updated.Status)
	require.NotNil(t, updated.Result)
	require.Equal(t, 85, updated.Result.Score)
	require.False(t, updated.UpdatedAt.IsZero())

	// unknown id updates nothing
	updated, err = pgSQL.UpdateAuditByID(ctx, domain.AuditID(uuid.New()), storage.AuditUpdates{
		Status: domain.AuditStatusCompleted,
	})
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestPgSQL_PendingAuditCountByURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	url := "https://count.example"
	u1 := domain.UserID(uuid.New())
	u2 := domain.UserID(uuid.New())

	_, err := pgSQL.StoreAudits(ctx,
		domain.Audit{UserID: u1, URL: url, Status: domain.AuditStatusPending},
		domain.Audit{UserID: u2, URL: url, Status: domain.AuditStatusPending},
		domain.Audit{UserID: u1, URL: url, Status: domain.AuditStatusCompleted},
		domain.Audit{UserID: u1, URL: "https://other.example", Status: domain.AuditStatusPending},
	)
	require.NoError(t, err)

	// pending rows are counted across users
	count, err := pgSQL.PendingAuditCountByURL(ctx, url)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestPgSQL_DeleteAudit(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	stored, err := pgSQL.StoreAudits(ctx, domain.Audit{
		UserID: userID,
		URL:    "https://delete.me",
		Status: domain.AuditStatusPending,
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	id := stored[0].ID

	deleted, err := pgSQL.DeleteAudit(ctx, userID, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, id, deleted.ID)

	// soft-deleted rows are invisible to reads
	got, err := pgSQL.AuditByID(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, got)

	page, err := pgSQL.UserAudits(ctx, userID, "", time.Time{}, 10)
	require.NoError(t, err)
	require.Empty(t, page.Audits)

	// deleting again finds nothing
	deleted, err = pgSQL.DeleteAudit(ctx, userID, id)
	require.NoError(t, err)
	require.Nil(t, deleted)

	// wrong user cannot delete
	other := domain.UserID(uuid.New())
	stored, err = pgSQL.StoreAudits(ctx, domain.Audit{
		UserID: userID,
		URL:    "https://keep.me",
		Status: domain.AuditStatusPending,
	})
	require.NoError(t, err)
	deleted, err = pgSQL.DeleteAudit(ctx, other, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestPgSQL_UserAudits_PaginationAndStatusFilter(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	for i := range 5 {
		status := domain.AuditStatusPending
		if i%2 == 0 {
			status = domain.AuditStatusCompleted
		}
		_, err := pgSQL.StoreAudits(ctx, domain.Audit{
			UserID: userID,
			URL:    "https://page.example",
			Status: status,
		})
		require.NoError(t, err)
		// distinct created_at values keep the cursor unambiguous
		time.Sleep(10 * time.Millisecond)
	}

	// first page
	page, err := pgSQL.UserAudits(ctx, userID, "", time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, page.Audits, 2)
	require.NotNil(t, page.NextCursor)
	require.True(t, page.Audits[0].CreatedAt.After(page.Audits[1].CreatedAt))

	// second page via cursor
	page2, err := pgSQL.UserAudits(ctx, userID, "", *page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Audits, 2)
	for _, a := range page2.Audits {
		require.True(t, a.CreatedAt.Before(*page.NextCursor))
	}

	// last page has no next cursor
	page3, err := pgSQL.UserAudits(ctx, userID, "", *page2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page3.Audits, 1)
	require.Nil(t, page3.NextCursor)

	// status filter
	completed, err := pgSQL.UserAudits(ctx, userID, domain.AuditStatusCompleted, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, completed.Audits, 3)
	for _, a := range completed.Audits {
		require.Equal(t, domain.AuditStatusCompleted, a.Status)
	}
}

func TestPgSQL_LastCompletedAuditByURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	url := "https://cached.example"
	userID := domain.UserID(uuid.New())

	// no completed audit yet
	got, err := pgSQL.LastCompletedAuditByURL(ctx, url)
	require.NoError(t, err)
	require.Nil(t, got)

	_, err = pgSQL.StoreAudits(ctx, domain.Audit{UserID: userID, URL: url, Status: domain.AuditStatusPending})
	require.NoError(t, err)
	got, err = pgSQL.LastCompletedAuditByURL(ctx, url)
	require.NoError(t, err)
	require.Nil(t, got, "pending audits do not count")

	err = pgSQL.UpdatePendingAuditsByURL(ctx, url, storage.AuditUpdates{
		Status: domain.AuditStatusCompleted,
		Result: axemock.SampleResult(),
	})
	require.NoError(t, err)

	got, err = pgSQL.LastCompletedAuditByURL(ctx, url)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, url, got.URL)
	require.NotNil(t, got.Result)
	require.Equal(t, 85, got.Result.Score)
}
