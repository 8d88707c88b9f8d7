package processor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropertiesTypedGetters(t *testing.T) {
	props := Properties{
		"name":    "Blog",
		"limit":   "25",
		"start":   10,
		"binary":  "true",
		"tags":    []interface{}{"a", "b"},
		"details": map[string]interface{}{"k": "v"},
	}

	require.True(t, props.Has("name"))
	require.False(t, props.Has("missing"))

	require.Equal(t, "Blog", props.String("name"))
	require.Equal(t, "", props.String("missing"))
	require.Equal(t, "fallback", props.StringOr("missing", "fallback"))

	require.Equal(t, 25, props.Int("limit"))
	require.Equal(t, 10, props.IntOr("start", 0))
	require.Equal(t, 20, props.IntOr("missing", 20))

	require.True(t, props.Bool("binary"))
	require.False(t, props.Bool("missing"))

	require.Equal(t, []string{"a", "b"}, props.Strings("tags"))
	require.Equal(t, map[string]interface{}{"k": "v"}, props.Map("details"))
	require.Nil(t, props.Map("missing"))
}
