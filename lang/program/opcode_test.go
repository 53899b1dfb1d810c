package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vholub/ippc23/lang/program"
)

func TestLookupOpcodeCaseSensitive(t *testing.T) {
	op, ok := program.LookupOpcode("MOVE")
	require.True(t, ok)
	assert.Equal(t, program.MOVE, op)

	_, ok = program.LookupOpcode("move")
	assert.False(t, ok)

	_, ok = program.LookupOpcode("NOPE")
	assert.False(t, ok)
}

func TestSignatureMatches(t *testing.T) {
	sig := program.MOVE.Signature()
	require.Len(t, sig, 2)
	assert.True(t, sig[0].Matches(program.KindVar))
	assert.False(t, sig[0].Matches(program.KindLabel))
	assert.True(t, sig[1].Matches(program.KindInt))
	assert.True(t, sig[1].Matches(program.KindVar))

	assert.Equal(t, 0, program.ADDS.Arity())
	assert.Equal(t, 3, program.ADD.Arity())
}

func TestArgKindIsSymb(t *testing.T) {
	assert.True(t, program.KindVar.IsSymb())
	assert.True(t, program.KindNil.IsSymb())
	assert.False(t, program.KindLabel.IsSymb())
	assert.False(t, program.KindType.IsSymb())
}
