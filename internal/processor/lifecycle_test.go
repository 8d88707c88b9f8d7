package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"lattice-cms.io/lattice/internal/domain"
	"lattice-cms.io/lattice/internal/lexicon"
	apperrors "lattice-cms.io/lattice/internal/pkg/errors"
	"lattice-cms.io/lattice/internal/pkg/logger"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

type widget struct {
	ID   string
	Name string
}

// policyFunc adapts a function to the Policy interface.
type policyFunc func(ctx context.Context, permission string) bool

func (f policyFunc) Can(ctx context.Context, permission string) bool { return f(ctx, permission) }

var allowAll = policyFunc(func(context.Context, string) bool { return true })

func newTestRuntime(t *testing.T, policy Policy) *Runtime {
	t.Helper()
	lex, err := lexicon.New()
	require.NoError(t, err)
	return &Runtime{
		Lexicon: lex,
		Events:  domain.NewDispatcher(nil),
		Policy:  policy,
	}
}

func TestRunDeniesMissingPermission(t *testing.T) {
	rt := newTestRuntime(t, policyFunc(func(_ context.Context, perm string) bool {
		return perm != "widget:save"
	}))

	var initialized bool
	p := &CreateProcessor[widget]{
		Runtime:            rt,
		Actor:              "tester",
		ObjectType:         "widget",
		ID:                 "w-1",
		RequiredPermission: "widget:save",
		Set: func(ctx context.Context) error {
			initialized = true
			return nil
		},
		Save: func(ctx context.Context) (*widget, error) {
			return &widget{ID: "w-1"}, nil
		},
	}

	resp := p.Run(context.Background())
	require.False(t, resp.Success)
	require.Equal(t, rt.Lexicon.Get("permission_denied"), resp.Message)
	require.False(t, initialized, "denied processor must not initialize")
}

func TestRunStopsOnInitializeError(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	processed := false
	p := &GetProcessor[widget]{
		Runtime: rt,
		Props:   Properties{"id": "w-404"},
		Load: func(ctx context.Context, id string) (*widget, error) {
			return nil, apperrors.ErrNotFound
		},
		Project: func(w *widget) interface{} {
			processed = true
			return w
		},
	}

	resp := p.Run(context.Background())
	require.False(t, resp.Success)
	require.Equal(t, rt.Lexicon.Get("not_found"), resp.Message)
	require.False(t, processed)
}

func TestGetRequiresPrimaryKey(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	p := &GetProcessor[widget]{
		Runtime: rt,
		Props:   Properties{},
		Load: func(ctx context.Context, id string) (*widget, error) {
			t.Fatal("load must not run without a primary key")
			return nil, nil
		},
	}

	resp := p.Run(context.Background())
	require.False(t, resp.Success)
	require.Equal(t, rt.Lexicon.Get("missing_primary_key"), resp.Message)
}

func TestCreatePipelineOrdering(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	var steps []string
	record := func(name string) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			steps = append(steps, name)
			return nil
		}
	}

	rt.Events.Register(domain.EventName("widget.before_save"), func(ctx context.Context, e *domain.Event) (string, error) {
		steps = append(steps, "before_event")
		require.Equal(t, "new", e.Data["mode"])
		return "", nil
	})
	rt.Events.Register(domain.EventName("widget.after_save"), func(ctx context.Context, e *domain.Event) (string, error) {
		steps = append(steps, "after_event")
		return "", nil
	})

	p := &CreateProcessor[widget]{
		Runtime:     rt,
		Actor:       "tester",
		ObjectType:  "widget",
		ID:          "w-1",
		BeforeEvent: domain.EventName("widget.before_save"),
		AfterEvent:  domain.EventName("widget.after_save"),
		BeforeSet:   record("before_set"),
		Set:         record("set"),
		BeforeSave:  record("before_save"),
		Validate: func(ctx context.Context) []apperrors.FieldError {
			steps = append(steps, "validate")
			return nil
		},
		Save: func(ctx context.Context) (*widget, error) {
			steps = append(steps, "save")
			return &widget{ID: "w-1", Name: "Widget"}, nil
		},
		AfterSave: func(ctx context.Context, w *widget) error {
			steps = append(steps, "after_save")
			return nil
		},
	}

	resp := p.Run(context.Background())
	require.True(t, resp.Success)
	require.Equal(t, []string{
		"before_set", "set", "before_save", "validate",
		"before_event", "save", "after_save", "after_event",
	}, steps)
}

func TestCreateValidationAbortsBeforeSave(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	p := &CreateProcessor[widget]{
		Runtime:    rt,
		ObjectType: "widget",
		ID:         "w-1",
		Validate: func(ctx context.Context) []apperrors.FieldError {
			return []apperrors.FieldError{{Field: "name", Message: "A name is required."}}
		},
		Save: func(ctx context.Context) (*widget, error) {
			t.Fatal("save must not run when validation fails")
			return nil, nil
		},
	}

	resp := p.Run(context.Background())
	require.False(t, resp.Success)
	require.Equal(t, KindBoth, resp.Kind())
	fe, ok := resp.FieldError("name")
	require.True(t, ok)
	require.Equal(t, "A name is required.", fe.Message)
}

func TestCreateVetoJoinsMessages(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	name := domain.EventName("widget.before_save")
	rt.Events.Register(name, func(ctx context.Context, e *domain.Event) (string, error) {
		return "first objection", nil
	})
	rt.Events.Register(name, func(ctx context.Context, e *domain.Event) (string, error) {
		return "second objection", nil
	})

	saved := false
	p := &CreateProcessor[widget]{
		Runtime:     rt,
		ObjectType:  "widget",
		ID:          "w-1",
		BeforeEvent: name,
		Save: func(ctx context.Context) (*widget, error) {
			saved = true
			return &widget{}, nil
		},
	}

	resp := p.Run(context.Background())
	require.False(t, resp.Success)
	require.Equal(t, "first objection\nsecond objection", resp.Message)
	require.False(t, saved, "vetoed operation must not persist")
}

func TestUpdateLoadsThenSaves(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	stored := &widget{ID: "w-1", Name: "Old"}
	p := &UpdateProcessor[widget]{
		Runtime:    rt,
		Props:      Properties{"id": "w-1", "name": "New"},
		ObjectType: "widget",
		Load: func(ctx context.Context, id string) (*widget, error) {
			require.Equal(t, "w-1", id)
			return stored, nil
		},
		Set: func(ctx context.Context, w *widget) error {
			w.Name = "New"
			return nil
		},
		Save: func(ctx context.Context) (*widget, error) {
			return stored, nil
		},
	}

	resp := p.Run(context.Background())
	require.True(t, resp.Success)
	require.Equal(t, "New", stored.Name)
}

func TestRemoveVetoKeepsObject(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	name := domain.EventName("widget.before_remove")
	rt.Events.Register(name, func(ctx context.Context, e *domain.Event) (string, error) {
		return "still referenced", nil
	})

	deleted := false
	p := &RemoveProcessor[widget]{
		Runtime:     rt,
		Props:       Properties{"id": "w-1"},
		ObjectType:  "widget",
		BeforeEvent: name,
		Load: func(ctx context.Context, id string) (*widget, error) {
			return &widget{ID: id}, nil
		},
		Delete: func(ctx context.Context, w *widget) error {
			deleted = true
			return nil
		},
	}

	resp := p.Run(context.Background())
	require.False(t, resp.Success)
	require.Equal(t, "still referenced", resp.Message)
	require.False(t, deleted)
}

func TestRemoveReturnsDeletedID(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	p := &RemoveProcessor[widget]{
		Runtime:    rt,
		Props:      Properties{"id": "w-9"},
		ObjectType: "widget",
		Load: func(ctx context.Context, id string) (*widget, error) {
			return &widget{ID: id}, nil
		},
		Delete: func(ctx context.Context, w *widget) error { return nil },
	}

	resp := p.Run(context.Background())
	require.True(t, resp.Success)
	require.Equal(t, map[string]interface{}{"id": "w-9"}, resp.Object)
}

func TestRemoveDeleteFailureIsTerminal(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	attempts := 0
	p := &RemoveProcessor[widget]{
		Runtime:    rt,
		Props:      Properties{"id": "w-1"},
		ObjectType: "widget",
		Load: func(ctx context.Context, id string) (*widget, error) {
			return &widget{ID: id}, nil
		},
		Delete: func(ctx context.Context, w *widget) error {
			attempts++
			return errors.New("storage gone")
		},
	}

	resp := p.Run(context.Background())
	require.False(t, resp.Success)
	require.Equal(t, rt.Lexicon.Get("remove_failed"), resp.Message)
	require.Equal(t, 1, attempts)
}

func TestLoadMissCarriesEntityCode(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	err := notFoundOr(rt, apperrors.ErrNotFound, "not_found", "WIDGET_NOT_FOUND")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, "WIDGET_NOT_FOUND", appErr.Code)

	// Empty code falls back to the generic not-found code.
	err = notFoundOr(rt, apperrors.ErrNotFound, "", "")
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Errors other than a miss pass through untouched.
	plain := errors.New("connection reset")
	require.Equal(t, plain, notFoundOr(rt, plain, "", ""))
}
