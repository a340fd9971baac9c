package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"snes816/cpu"
	"snes816/log"
	"snes816/snapshot"
	"snes816/system"
)

const coreVersion = "0.1.0"

func main() {
	applyRunConfigLogging(LoadRunConfigOrDefault())
	cfg := parseArgs(os.Args[1:])

	switch cfg.mode {
	case versionMode:
		fmt.Println("snes816", coreVersion)
	case romInfoMode:
		runRomInfo(cfg.RomInfo)
	default:
		runROM(cfg.Run)
	}
}

// applyRunConfigLogging pre-enables the modules named in the user's
// saved config.toml, before the --log CLI flag (if given) adds to it.
func applyRunConfigLogging(cfg RunConfig) {
	if cfg.LogModules == "" {
		return
	}
	var mask log.ModuleMask
	for _, name := range strings.Split(cfg.LogModules, ",") {
		if mod, ok := log.ModuleByName(name); ok {
			mask |= mod.Mask()
		}
	}
	log.EnableDebugModules(mask)
}

func runRomInfo(cmd RomInfoCmd) {
	rom, err := os.ReadFile(cmd.RomPath)
	checkf(err, "failed to read ROM")

	s := system.New()
	checkf(s.LoadROM(rom), "failed to parse ROM")

	fmt.Printf("size: %d bytes\n", len(rom))
	fmt.Printf("reset PC: $%04X\n", s.Bus.LastVectors.RESET)
}

func runROM(cmd RunCmd) {
	rom, err := os.ReadFile(cmd.RomPath)
	checkf(err, "failed to read ROM")

	s := system.New()
	checkf(s.LoadROM(rom), "failed to parse ROM")
	s.PowerOn()

	if cmd.Trace != nil {
		defer cmd.Trace.Close()
		s.CPU.SetDebugger(&traceDebugger{w: cmd.Trace, c: s.CPU})
	}

	for i := 0; i < cmd.Frames; i++ {
		s.RunFrame()
	}

	if cmd.DumpState != nil {
		defer cmd.DumpState.Close()
		data, err := snapshot.Capture(s).MarshalJSON()
		checkf(err, "failed to marshal snapshot")
		if _, err := cmd.DumpState.Write(data); err != nil {
			checkf(err, "failed to write snapshot")
		}
	}
}

// traceDebugger writes one disassembled line per executed instruction.
type traceDebugger struct {
	w io.Writer
	c *cpu.CPU
}

func (t *traceDebugger) Trace(pc uint16) {
	text, _ := cpu.Disassemble(t.c, t.c.PB, pc)
	fmt.Fprintf(t.w, "%02X:%04X  %s\n", t.c.PB, pc, text)
}

func (t *traceDebugger) Interrupt(prevPC, curPC uint16, isNMI bool) {
	kind := "IRQ"
	if isNMI {
		kind = "NMI"
	}
	fmt.Fprintf(t.w, "-- %s: $%04X -> $%04X\n", kind, prevPC, curPC)
}

func (t *traceDebugger) WatchRead(addr uint16)              {}
func (t *traceDebugger) WatchWrite(addr uint16, val uint16) {}
func (t *traceDebugger) Break(msg string)                   { fmt.Fprintf(t.w, "-- break: %s\n", msg) }
func (t *traceDebugger) Reset()                             { fmt.Fprintln(t.w, "-- reset") }
func (t *traceDebugger) FrameEnd()                          {}
