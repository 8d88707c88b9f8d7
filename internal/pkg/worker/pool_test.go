package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/internal/pkg/logger"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func newTestPools(t *testing.T) *Pools {
	t.Helper()
	pools, err := NewPools(context.Background(), PoolConfig{
		GeneralPoolSize: 4,
		EventPoolSize:   2,
	})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestSubmitRunsTask(t *testing.T) {
	pools := newTestPools(t)

	done := make(chan struct{})
	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		close(done)
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}

func TestSubmitRejectsCancelledContext(t *testing.T) {
	pools := newTestPools(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pools.General.Submit(ctx, func(ctx context.Context) {
		t.Fatal("task must not run with a cancelled context")
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSubmitDetachedSurvivesRequestCancellation(t *testing.T) {
	pools := newTestPools(t)

	var (
		mu  sync.Mutex
		ran bool
	)
	done := make(chan struct{})
	err := pools.SubmitDetached(func(ctx context.Context) {
		mu.Lock()
		ran = true
		mu.Unlock()
		close(done)
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached task did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	require.True(t, ran)
}

func TestPanicInTaskIsRecovered(t *testing.T) {
	pools := newTestPools(t)

	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		panic("boom")
	})
	require.NoError(t, err)

	// A panicking task must not poison the pool for subsequent tasks.
	done := make(chan struct{})
	require.Eventually(t, func() bool {
		err := pools.General.Submit(context.Background(), func(ctx context.Context) {
			select {
			case <-done:
			default:
				close(done)
			}
		})
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pool unusable after panic")
	}
}

func TestMetricsReportsCapacity(t *testing.T) {
	pools := newTestPools(t)

	metrics := pools.Metrics()
	general, ok := metrics["general"].(map[string]int)
	require.True(t, ok)
	require.Equal(t, 4, general["cap"])

	events, ok := metrics["events"].(map[string]int)
	require.True(t, ok)
	require.Equal(t, 2, events["cap"])
}
