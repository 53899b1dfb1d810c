package loader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/loader"
	"github.com/vholub/ippc23/lang/program"
)

func load(t *testing.T, xml string) ([]program.Instruction, error) {
	t.Helper()
	return loader.Load(strings.NewReader(xml))
}

func TestLoadHelloWrite(t *testing.T) {
	insts, err := load(t, `<?xml version="1.0"?>
<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR">
    <arg1 type="var">GF@a</arg1>
  </instruction>
  <instruction order="2" opcode="MOVE">
    <arg1 type="var">GF@a</arg1>
    <arg2 type="string">hello</arg2>
  </instruction>
  <instruction order="3" opcode="WRITE">
    <arg1 type="var">GF@a</arg1>
  </instruction>
</program>`)
	require.NoError(t, err)
	require.Len(t, insts, 3)
	assert.Equal(t, program.DEFVAR, insts[0].Opcode)
	assert.Equal(t, program.MOVE, insts[1].Opcode)
	assert.Equal(t, program.WRITE, insts[2].Opcode)
	assert.Equal(t, "hello", insts[1].Args[1].Text)
}

func TestLoadOrdersOutOfSource(t *testing.T) {
	insts, err := load(t, `<program language="IPPCODE23">
  <instruction order="2" opcode="WRITE"><arg1 type="int">2</arg1></instruction>
  <instruction order="1" opcode="WRITE"><arg1 type="int">1</arg1></instruction>
</program>`)
	require.NoError(t, err)
	require.Len(t, insts, 2)
	assert.Equal(t, "1", insts[0].Args[0].Text)
	assert.Equal(t, "2", insts[1].Args[0].Text)
}

func TestLoadDuplicateOrder(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="CREATEFRAME"></instruction>
  <instruction order="1" opcode="CREATEFRAME"></instruction>
</program>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadWrongRootElement(t *testing.T) {
	_, err := load(t, `<notprogram language="IPPcode23"></notprogram>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadUnsupportedLanguage(t *testing.T) {
	_, err := load(t, `<program language="pascal"></program>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadLanguageCaseInsensitive(t *testing.T) {
	_, err := load(t, `<program language="ippCode23"></program>`)
	require.NoError(t, err)
}

func TestLoadUnsupportedRootAttribute(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23" bogus="x"></program>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadMalformedXML(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23">`)
	requireExit(t, err, diag.XMLParse)
}

func TestLoadUnrecognizedOpcode(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="FROBNICATE"></instruction>
</program>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadWrongArity(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="CREATEFRAME">
    <arg1 type="int">1</arg1>
  </instruction>
</program>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadWrongOperandClass(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="MOVE">
    <arg1 type="int">1</arg1>
    <arg2 type="int">2</arg2>
  </instruction>
</program>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadGappedArgs(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="ADD">
    <arg1 type="var">GF@a</arg1>
    <arg3 type="int">1</arg3>
  </instruction>
</program>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadStringEscapeDecoding(t *testing.T) {
	insts, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="WRITE">
    <arg1 type="string">a\032b</arg1>
  </instruction>
</program>`)
	require.NoError(t, err)
	assert.Equal(t, "a b", insts[0].Args[0].Text)
}

func TestLoadInvalidIntLiteral(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="WRITE">
    <arg1 type="int">abc</arg1>
  </instruction>
</program>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadVarBodyRequiresFrame(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR">
    <arg1 type="var">noat</arg1>
  </instruction>
</program>`)
	requireExit(t, err, diag.Structure)
}

func TestLoadEmptyStringArgBody(t *testing.T) {
	insts, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="WRITE">
    <arg1 type="string"/>
  </instruction>
</program>`)
	require.NoError(t, err)
	assert.Equal(t, "", insts[0].Args[0].Text)
}

func TestLoadRejectsNestedElementInArgBody(t *testing.T) {
	_, err := load(t, `<program language="IPPcode23">
  <instruction order="1" opcode="WRITE">
    <arg1 type="string">foo<bar/>baz</arg1>
  </instruction>
</program>`)
	requireExit(t, err, diag.Structure)
}

func requireExit(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	de, ok := err.(*diag.Error)
	require.True(t, ok, "expected *diag.Error, got %T", err)
	assert.Equal(t, code, de.Code)
}
