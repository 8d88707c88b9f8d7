package lexicon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoadsDefaultTopic(t *testing.T) {
	lex, err := New()
	require.NoError(t, err)
	require.True(t, lex.Has("permission_denied"))
	require.True(t, lex.Has("duplicate_of"))
}

func TestLoadUnknownTopicFails(t *testing.T) {
	lex, err := New()
	require.NoError(t, err)
	require.Error(t, lex.Load("no_such_topic"))
}

func TestLoadIsIdempotent(t *testing.T) {
	lex, err := New()
	require.NoError(t, err)
	require.NoError(t, lex.Load("property_set"))
	require.NoError(t, lex.Load("property_set"))
	require.True(t, lex.Has("property_set_not_found"))
}

func TestGetMissingKeyReturnsKey(t *testing.T) {
	lex, err := New()
	require.NoError(t, err)
	require.Equal(t, "totally_unknown_key", lex.Get("totally_unknown_key"))
}

func TestFormatInterpolatesPlaceholders(t *testing.T) {
	lex, err := New()
	require.NoError(t, err)

	got := lex.Format("duplicate_of", map[string]string{"name": "Base Template"})
	require.Equal(t, "Duplicate of Base Template", got)
}

func TestFormatLeavesUnknownPlaceholders(t *testing.T) {
	lex, err := New()
	require.NoError(t, err)

	got := lex.Format("duplicate_of", map[string]string{"other": "x"})
	require.Equal(t, "Duplicate of [[+name]]", got)
}
