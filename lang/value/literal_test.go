package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vholub/ippc23/lang/value"
)

func TestFromLiteral(t *testing.T) {
	v, err := value.FromLiteral("int", "-42")
	require.NoError(t, err)
	assert.Equal(t, value.Int(-42), v)

	v, err = value.FromLiteral("bool", "true")
	require.NoError(t, err)
	assert.Equal(t, value.True, v)

	v, err = value.FromLiteral("string", "hi")
	require.NoError(t, err)
	assert.Equal(t, value.Str("hi"), v)

	v, err = value.FromLiteral("nil", "nil")
	require.NoError(t, err)
	assert.True(t, value.IsNil(v))

	_, err = value.FromLiteral("int", "nope")
	require.Error(t, err)
}

func TestValidIntText(t *testing.T) {
	assert.True(t, value.ValidIntText("42"))
	assert.True(t, value.ValidIntText("-1"))
	assert.False(t, value.ValidIntText("4.2"))
	assert.False(t, value.ValidIntText(""))
}

func TestValidBoolText(t *testing.T) {
	assert.True(t, value.ValidBoolText("true"))
	assert.True(t, value.ValidBoolText("false"))
	assert.False(t, value.ValidBoolText("True"))
}
