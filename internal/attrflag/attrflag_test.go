package attrflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/inputkit/internal/errors"
)

func TestParseValue(t *testing.T) {
	cases := map[string]any{
		"true":  true,
		"false": false,
		"null":  nil,
		"42":    42,
		"-3":    -3,
		"007":   "007",
		"1.5":   "1.5",
		"":      "",
		"True":  "True",
		"email": "email",
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseValue(in), "input %q", in)
	}
}

func TestParse(t *testing.T) {
	name, value, err := Parse("name=email")
	require.NoError(t, err)
	assert.Equal(t, "name", name)
	assert.Equal(t, "email", value)

	name, value, err = Parse("required")
	require.NoError(t, err)
	assert.Equal(t, "required", name)
	assert.Equal(t, true, value)

	_, value, err = Parse("pattern=a=b")
	require.NoError(t, err)
	assert.Equal(t, "a=b", value)

	_, value, err = Parse("value=")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestParseInvalid(t *testing.T) {
	for _, kv := range []string{"", "=x", `bad"name=1`, "a b=1"} {
		_, _, err := Parse(kv)
		assert.True(t, errors.HasCode(err, errors.CodeBadAttribute), "input %q: %v", kv, err)
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll([]string{"max=10", "disabled", "max=20", "id=null"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"max": 20, "disabled": true, "id": nil}, got)

	_, err = ParseAll([]string{"ok=1", "="})
	assert.Error(t, err)
}
