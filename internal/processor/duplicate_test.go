package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newDuplicateProcessor(rt *Runtime, props Properties, taken bool) *DuplicateProcessor[widget] {
	return &DuplicateProcessor[widget]{
		Runtime:    rt,
		Props:      props,
		ObjectType: "widget",
		Load: func(ctx context.Context, id string) (*widget, error) {
			return &widget{ID: id, Name: "Original"}, nil
		},
		NameOf: func(w *widget) string { return w.Name },
		Exists: func(ctx context.Context, name string) (bool, error) {
			return taken, nil
		},
		Copy: func(ctx context.Context, source *widget, newName string) (*widget, error) {
			return &widget{ID: "w-copy", Name: newName}, nil
		},
		ObjectID: func(w *widget) string { return w.ID },
	}
}

func TestDuplicateDerivesNameFromTemplate(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	p := newDuplicateProcessor(rt, Properties{"id": "w-1"}, false)
	resp := p.Run(context.Background())

	require.True(t, resp.Success)
	require.Equal(t, "Duplicate of Original", p.NewName())

	clone, ok := resp.Object.(*widget)
	require.True(t, ok)
	require.Equal(t, "Duplicate of Original", clone.Name)
}

func TestDuplicateExplicitNameWins(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	p := newDuplicateProcessor(rt, Properties{"id": "w-1", "name": "Fresh Copy"}, false)
	resp := p.Run(context.Background())

	require.True(t, resp.Success)
	require.Equal(t, "Fresh Copy", p.NewName())
}

func TestDuplicateNameCollisionFailsOnNameField(t *testing.T) {
	rt := newTestRuntime(t, allowAll)

	p := newDuplicateProcessor(rt, Properties{"id": "w-1"}, true)
	resp := p.Run(context.Background())

	require.False(t, resp.Success)
	fe, ok := resp.FieldError("name")
	require.True(t, ok)
	require.Contains(t, fe.Message, "Duplicate of Original")
}
