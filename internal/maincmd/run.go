package maincmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"

	"github.com/vholub/ippc23/internal/diag"
	"github.com/vholub/ippc23/lang/input"
	"github.com/vholub/ippc23/lang/loader"
	"github.com/vholub/ippc23/lang/machine"
)

// run loads the program named by c.Source (or stdin) and interprets it
// against the input lines named by c.Input (or stdin), reporting the
// result through stdio and returning the exit code the process should
// terminate with.
func run(ctx context.Context, stdio mainer.Stdio, c *Cmd, cfg RuntimeConfig) mainer.ExitCode {
	sourceFile, closeSource, err := openOrStdin(c.Source, stdio.Stdin)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.ExitCode(diag.InFile)
	}
	defer closeSource()

	insts, err := loader.Load(sourceFile)
	if err != nil {
		return reportDiag(stdio, err)
	}

	thread, err := machine.NewFromProgram(insts)
	if err != nil {
		return reportDiag(stdio, err)
	}

	inputFile, closeInput, err := openOrStdin(c.Input, stdio.Stdin)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.ExitCode(diag.InFile)
	}
	defer closeInput()

	src, err := input.NewSource(inputFile)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.ExitCode(diag.InFile)
	}

	thread.Stdout = stdio.Stdout
	thread.Stderr = stdio.Stderr
	thread.Input = src
	thread.MaxSteps = cfg.MaxSteps

	code, err := thread.Run()
	if err != nil {
		return reportDiag(stdio, err)
	}
	return mainer.ExitCode(code)
}

// openOrStdin opens path if non-empty, else returns stdin and a no-op
// closer. At most one of the program's two input channels (source XML,
// input lines) falls back to stdin; Cmd.Validate already rejected the
// case where both would.
func openOrStdin(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, diag.InFilef("cannot open %q: %v", path, err)
	}
	return f, f.Close, nil
}

func reportDiag(stdio mainer.Stdio, err error) mainer.ExitCode {
	if de, ok := err.(*diag.Error); ok {
		fmt.Fprintf(stdio.Stderr, "%s\n", de.Error())
		return mainer.ExitCode(de.Code)
	}
	fmt.Fprintf(stdio.Stderr, "%s\n", err)
	return mainer.ExitCode(diag.InFile)
}
