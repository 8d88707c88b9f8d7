package domain

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/internal/pkg/logger"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestDispatchCollectsVetoes(t *testing.T) {
	d := NewDispatcher(nil)
	name := EventName("thing.before_save")

	d.Register(name, func(ctx context.Context, e *Event) (string, error) {
		return "no", nil
	})
	d.Register(name, func(ctx context.Context, e *Event) (string, error) {
		return "", nil
	})
	d.Register(name, func(ctx context.Context, e *Event) (string, error) {
		return "also no", nil
	})

	vetoes := d.Dispatch(context.Background(), NewEvent(name, "thing", "t-1", "tester", nil))
	require.Equal(t, []string{"no", "also no"}, vetoes)
}

func TestDispatchHandlerErrorDoesNotVeto(t *testing.T) {
	d := NewDispatcher(nil)
	name := EventName("thing.before_save")

	d.Register(name, func(ctx context.Context, e *Event) (string, error) {
		return "ignored veto", errors.New("handler broke")
	})

	vetoes := d.Dispatch(context.Background(), NewEvent(name, "thing", "t-1", "tester", nil))
	require.Empty(t, vetoes)
}

func TestDispatchUnknownEventIsNoop(t *testing.T) {
	d := NewDispatcher(nil)
	vetoes := d.Dispatch(context.Background(), NewEvent(EventName("nobody.listens"), "thing", "t-1", "tester", nil))
	require.Empty(t, vetoes)
}

func TestAsyncHandlersRunOnSubmitterAndCannotVeto(t *testing.T) {
	var (
		mu       sync.Mutex
		ran      bool
		submitCh = make(chan struct{})
	)

	d := NewDispatcher(func(task func(ctx context.Context)) error {
		go func() {
			task(context.Background())
			close(submitCh)
		}()
		return nil
	})

	name := EventName("thing.after_save")
	d.RegisterAsync(name, func(ctx context.Context, e *Event) (string, error) {
		mu.Lock()
		ran = true
		mu.Unlock()
		return "async veto is ignored", nil
	})

	vetoes := d.Dispatch(context.Background(), NewEvent(name, "thing", "t-1", "tester", nil))
	require.Empty(t, vetoes)

	<-submitCh
	mu.Lock()
	defer mu.Unlock()
	require.True(t, ran)
}

func TestAsyncHandlersRunInlineWithoutSubmitter(t *testing.T) {
	d := NewDispatcher(nil)

	ran := false
	name := EventName("thing.after_save")
	d.RegisterAsync(name, func(ctx context.Context, e *Event) (string, error) {
		ran = true
		return "", nil
	})

	d.Dispatch(context.Background(), NewEvent(name, "thing", "t-1", "tester", nil))
	require.True(t, ran)
}
