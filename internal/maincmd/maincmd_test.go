package maincmd_test

import (
	"bytes"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/internal/filetest"
	"github.com/vholub/ippc23/internal/maincmd"
)

func runCmd(t *testing.T, args []string) (stdout, stderr string, code mainer.ExitCode) {
	t.Helper()
	var out, errBuf bytes.Buffer
	c := &maincmd.Cmd{}
	code = c.Main(args, mainer.Stdio{Stdout: &out, Stderr: &errBuf})
	return out.String(), errBuf.String(), code
}

var testUpdateGolden = false

// golden programs that read no input: each is run once and its stdout,
// stderr and exit code are diffed against testdata/out/<name>.{want,err,exit}.
var goldenPrograms = map[string]bool{"hello.xml": true, "divzero.xml": true}

func TestRunGoldenPrograms(t *testing.T) {
	srcDir, resultDir := "testdata", filepath.Join("testdata", "out")
	for _, fi := range filetest.SourceFiles(t, srcDir, ".xml") {
		if !goldenPrograms[fi.Name()] {
			continue
		}
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			stdout, stderr, code := runCmd(t, []string{
				"ippc23",
				"--source=" + filepath.Join(srcDir, fi.Name()),
				"--input=/dev/null",
			})
			filetest.DiffOutput(t, fi, stdout, resultDir, &testUpdateGolden)
			filetest.DiffErrors(t, fi, stderr, resultDir, &testUpdateGolden)
			filetest.DiffCustom(t, fi, "exit code", ".exit", strconv.Itoa(int(code)), resultDir, &testUpdateGolden)
		})
	}
}

func TestRunReadsInputFile(t *testing.T) {
	stdout, stderr, code := runCmd(t, []string{
		"ippc23",
		"--source=" + filepath.Join("testdata", "readback.xml"),
		"--input=" + filepath.Join("testdata", "readback.in"),
	})
	require.Empty(t, stderr)
	assert.Equal(t, mainer.ExitCode(0), code)
	assert.Equal(t, "42", stdout)
}

func TestValidateRequiresSourceOrInput(t *testing.T) {
	_, stderr, code := runCmd(t, []string{"ippc23"})
	assert.Equal(t, mainer.ExitCode(diag.CLI), code)
	assert.NotEmpty(t, stderr)
}

func TestMissingSourceFileReportsInFile(t *testing.T) {
	_, stderr, code := runCmd(t, []string{"ippc23", "--source=testdata/does-not-exist.xml"})
	assert.Equal(t, mainer.ExitCode(diag.InFile), code)
	assert.NotEmpty(t, stderr)
}

func TestHelpPrintsUsage(t *testing.T) {
	stdout, _, code := runCmd(t, []string{"ippc23", "--help"})
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, stdout, "ippc23")
}

func TestVersionPrintsBuildInfo(t *testing.T) {
	c := &maincmd.Cmd{BuildVersion: "1.2.3", BuildDate: "2026-07-31"}
	var out, errBuf bytes.Buffer
	code := c.Main([]string{"ippc23", "--version"}, mainer.Stdio{Stdout: &out, Stderr: &errBuf})
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out.String(), "1.2.3")
}

