package input_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vholub/ippc23/lang/input"
)

func TestSourceNext(t *testing.T) {
	src, err := input.NewSource(strings.NewReader("one\ntwo\nthree"))
	assert.NoError(t, err)

	line, ok := src.Next()
	assert.True(t, ok)
	assert.Equal(t, "one", line)

	line, ok = src.Next()
	assert.True(t, ok)
	assert.Equal(t, "two", line)

	line, ok = src.Next()
	assert.True(t, ok)
	assert.Equal(t, "three", line)

	_, ok = src.Next()
	assert.False(t, ok)
}

func TestEmptySource(t *testing.T) {
	src := input.Empty()
	_, ok := src.Next()
	assert.False(t, ok)
}
