package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"auditor/internal/auditor"
	"auditor/internal/worker"
	"auditor/pkg/domain"
	"auditor/pkg/engine/axemock"
	mockengine "auditor/pkg/engine/mock"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"
	mockstorage "auditor/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const jobURL = "https://example.com"

func newTestWorker(t *testing.T) (*mockengine.MockEngine, *mockstorage.MockStorage, *worker.AuditWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	eng := mockengine.NewMockEngine(ctrl)
	st := mockstorage.NewMockStorage(ctrl)
	w := worker.NewAuditWorker(eng, st, worker.AuditWorkerOptions{
		Timeout:     time.Second,
		MaxAttempts: 3,
	})

	return eng, st, w
}

func auditJob(url string) *river.Job[auditor.JobArgs] {
	return &river.Job[auditor.JobArgs]{
		JobRow: &rivertype.JobRow{ID: 1},
		Args:   auditor.JobArgs{URL: url},
	}
}

func TestAuditWorker_Work_Success(t *testing.T) {
	eng, st, w := newTestWorker(t)

	st.EXPECT().PendingAuditCountByURL(gomock.Any(), jobURL).Return(int64(2), nil)
	eng.EXPECT().Analyze(gomock.Any(), jobURL).Return(axemock.SampleResult(), nil)
	st.EXPECT().UpdatePendingAuditsByURL(gomock.Any(), jobURL, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.AuditUpdates) error {
			require.Equal(t, domain.AuditStatusCompleted, updates.Status)
			require.NotNil(t, updates.Result)
			require.Equal(t, 85, updates.Result.Score)
			require.NotNil(t, updates.LastError)
			require.Empty(t, *updates.LastError, "previous error is cleared")

			return nil
		},
	)

	require.NoError(t, w.Work(context.Background(), auditJob(jobURL)))
}

func TestAuditWorker_Work_SkipsWhenNoPendingAudits(t *testing.T) {
	_, st, w := newTestWorker(t)

	// every requester deleted their audit; the engine must not run
	st.EXPECT().PendingAuditCountByURL(gomock.Any(), jobURL).Return(int64(0), nil)

	require.NoError(t, w.Work(context.Background(), auditJob(jobURL)))
}

func TestAuditWorker_Work_EngineFailureMarksFailed(t *testing.T) {
	eng, st, w := newTestWorker(t)

	engineErr := serrors.With(serrors.ErrUnavailable, "target unreachable")
	st.EXPECT().PendingAuditCountByURL(gomock.Any(), jobURL).Return(int64(1), nil)
	eng.EXPECT().Analyze(gomock.Any(), jobURL).Return(nil, engineErr)
	st.EXPECT().UpdatePendingAuditsByURL(gomock.Any(), jobURL, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.AuditUpdates) error {
			require.Equal(t, domain.AuditStatusFailed, updates.Status)
			require.Equal(t, 3, updates.MaxAttempts)
			require.NotNil(t, updates.LastError)
			require.Contains(t, *updates.LastError, "target unreachable")

			return nil
		},
	)

	err := w.Work(context.Background(), auditJob(jobURL))
	require.Error(t, err, "job must be retried by the queue")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestAuditWorker_Work_PropagatesStorageErrors(t *testing.T) {
	eng, st, w := newTestWorker(t)

	// count fails
	st.EXPECT().PendingAuditCountByURL(gomock.Any(), jobURL).Return(int64(0), errors.New("count err"))
	require.Error(t, w.Work(context.Background(), auditJob(jobURL)))

	// result update fails
	st.EXPECT().PendingAuditCountByURL(gomock.Any(), jobURL).Return(int64(1), nil)
	eng.EXPECT().Analyze(gomock.Any(), jobURL).Return(axemock.SampleResult(), nil)
	st.EXPECT().UpdatePendingAuditsByURL(gomock.Any(), jobURL, gomock.Any()).Return(errors.New("update err"))
	require.Error(t, w.Work(context.Background(), auditJob(jobURL)))

	// failure update fails
	st.EXPECT().PendingAuditCountByURL(gomock.Any(), jobURL).Return(int64(1), nil)
	eng.EXPECT().Analyze(gomock.Any(), jobURL).Return(nil, errors.New("engine err"))
	st.EXPECT().UpdatePendingAuditsByURL(gomock.Any(), jobURL, gomock.Any()).Return(errors.New("update err"))
	require.Error(t, w.Work(context.Background(), auditJob(jobURL)))
}
