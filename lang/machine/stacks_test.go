package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/value"
)

func TestDataStackPushPop(t *testing.T) {
	var s dataStack
	_, err := s.pop()
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok)
	assert.Equal(t, diag.UnsetValue, de.Code)

	s.push(value.Int(1))
	s.push(value.Int(2))

	v, err := s.pop()
	require.NoError(t, err)
	assert.Equal(t, value.Int(2), v)

	s.clear()
	_, err = s.pop()
	require.Error(t, err)
}

func TestCallStackPushPop(t *testing.T) {
	var s callStack
	assert.True(t, s.empty())

	_, err := s.pop()
	require.Error(t, err)

	s.push(3)
	s.push(7)
	assert.False(t, s.empty())

	pc, err := s.pop()
	require.NoError(t, err)
	assert.Equal(t, 7, pc)

	pc, err = s.pop()
	require.NoError(t, err)
	assert.Equal(t, 3, pc)
	assert.True(t, s.empty())
}
