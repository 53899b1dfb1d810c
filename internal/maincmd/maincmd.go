package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/vholub/ippc23/internal/diag"
)

const binName = "ippc23"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [--source=<file>] [--input=<file>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [--source=<file>] [--input=<file>]
       %[1]s -h|--help

Interpreter for the IPPcode23 instruction set, read from an XML source
representation.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print the build version and exit.
       --source=<file>            Read the XML program representation
                                 from <file>. If omitted, read it from
                                 standard input.
       --input=<file>             Read the program's input lines (for
                                 READ instructions) from <file>. If
                                 omitted, read them from standard
                                 input.

At least one of --source or --input must name a file, since standard
input can only feed one of the two.
`, binName)
)

// Cmd is the single ippc23 command: load an IPPcode23 program and run it.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool   `flag:"h,help"`
	Version bool   `flag:"v,version"`
	Source  string `flag:"source"`
	Input   string `flag:"input"`

	args []string
}

func (c *Cmd) SetArgs(args []string)      { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool) {}

// Validate enforces that standard input isn't asked to serve both the
// program source and its input lines at once (spec CLI contract).
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if c.Source == "" && c.Input == "" {
		return diag.CLIf("at least one of --source or --input must be given")
	}
	return nil
}

// Main parses args, dispatches to Help or to running a program, and maps
// every failure onto the interpreter's exit-code taxonomy.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(diag.CLI)
	}

	if c.Help {
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	}
	if c.Version {
		fmt.Fprintf(stdio.Stdout, "%s version %s (built %s)\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	cfg, err := loadRuntimeConfig()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid runtime configuration: %s\n", err)
		return mainer.ExitCode(diag.CLI)
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	return run(ctx, stdio, c, cfg)
}
