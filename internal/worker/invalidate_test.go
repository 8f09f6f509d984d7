package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shortener/internal/resolver"
	"shortener/internal/worker"
	"shortener/pkg/cache"
	mockcache "shortener/pkg/cache/mock"
	"shortener/pkg/logger"
	"shortener/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, keys ...string) *river.Job[resolver.InvalidateJobArgs] {
	return &river.Job[resolver.InvalidateJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   resolver.NewInvalidateJobArgs(keys, 5),
	}
}

func newTestWorker(t *testing.T) (*mockcache.MockBackend, *worker.InvalidateWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := mockcache.NewMockBackend(ctrl)
	c, err := cache.New(backend, cache.Options{})
	require.NoError(t, err)

	return backend, worker.NewInvalidateWorker(c)
}

func TestInvalidateWorker_Work_Success(t *testing.T) {
	backend, w := newTestWorker(t)

	backend.EXPECT().Del(gomock.Any(), "u-a@b.com").Return(nil)
	backend.EXPECT().Del(gomock.Any(), "u-k1").Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "u-a@b.com", "u-k1")))
}

func TestInvalidateWorker_Work_FailureIsRetried(t *testing.T) {
	backend, w := newTestWorker(t)
	boom := errors.New("connection refused")

	backend.EXPECT().Del(gomock.Any(), "d-example.com").Return(boom)

	err := w.Work(context.Background(), makeJob(2, "d-example.com"))
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	// a plain error, not a cancellation, so River schedules another attempt
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestInvalidateWorker_Work_NoKeys(t *testing.T) {
	// no expectations: any backend call fails the test
	_, w := newTestWorker(t)

	require.NoError(t, w.Work(context.Background(), makeJob(3)))
}

func TestInvalidateJobArgs_InsertOpts(t *testing.T) {
	args := resolver.NewInvalidateJobArgs([]string{"h-www.example.com"}, 7)

	require.Equal(t, "InvalidateCacheJob", args.Kind())
	opts := args.InsertOpts()
	require.Equal(t, 7, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Contains(t, opts.UniqueOpts.ByState, rivertype.JobStateRunning)
}
