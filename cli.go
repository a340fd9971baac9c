package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"snes816/log"
)

type runMode byte

const (
	runROMMode runMode = iota
	romInfoMode
	versionMode
)

type CLI struct {
	Run     RunCmd     `cmd:"" help:"Run a ROM headlessly for N frames." default:"withargs"`
	RomInfo RomInfoCmd `cmd:"" help:"Print the ROM size and its reset vector." name:"rom-info"`
	Version VersionCmd `cmd:"" help:"Show the emulator core's version."`

	Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

	mode runMode
}

type RunCmd struct {
	RomPath string `arg:"" name:"/path/to/rom" help:"Raw cartridge image to load." required:"true" type:"existingfile"`

	Frames    int      `name:"frames" help:"Number of frames to run." default:"60"`
	Trace     *outfile `name:"trace" help:"Write a per-instruction trace log." placeholder:"FILE|stdout|stderr"`
	DumpState *outfile `name:"dump-state" help:"Write a JSON snapshot after the run." placeholder:"FILE|stdout|stderr"`
}

type RomInfoCmd struct {
	RomPath string `arg:"" name:"/path/to/rom" type:"existingfile"`
}

type VersionCmd struct{}

var cliVars = kong.Vars{
	"log_help": "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("snes816"),
		kong.Description("headless 65C816/SNES core runner."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		cliVars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "rom-info </path/to/rom>":
		cfg.mode = romInfoMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runROMMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s
  As a special case, the following values are accepted:
    - no                     Disable debug and info logging (warnings still shown).
    - all                    Enable all logs.
`
		var mods []string
		for _, m := range log.ModuleNames() {
			mods = append(mods, "    - "+m)
		}
		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(mods, "\n"))
	}
	return nil
}

type logModMask log.ModuleMask

// Decode implements kong.MapperValue, turning a comma-separated module
// list into a module mask.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			*lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if *lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		*lm = logModMask(log.ModuleMaskAll)
	}
	log.EnableDebugModules(log.ModuleMask(*lm))
	return nil
}

// outfile decodes FILE|stdout|stderr into an io.WriteCloser.
type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+": "+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
