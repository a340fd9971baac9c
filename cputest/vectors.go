// Package cputest fans independent per-opcode self-checks of the
// dispatch table out across goroutines, one per opcode.
package cputest

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"snes816/cpu"
)

// VerifyOpcodeTable checks every one of the 256 dispatch-table entries
// concurrently and returns at most one error per opcode (its first
// defect), sorted by opcode. An empty slice means the table is complete
// and consistent.
func VerifyOpcodeTable() []error {
	ops := cpu.Opcodes()

	errs := make([]error, 256)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i := range ops {
		op := ops[i]
		g.Go(func() error {
			if !op.HasExec {
				errs[op.Opcode] = fmt.Errorf("opcode $%02X: no exec function registered", op.Opcode)
				return nil
			}
			if op.Cycles <= 0 {
				errs[op.Opcode] = fmt.Errorf("opcode $%02X (%s): non-positive base cycle count %d", op.Opcode, op.Mnemonic, op.Cycles)
				return nil
			}
			if op.Mnemonic == "" {
				errs[op.Opcode] = fmt.Errorf("opcode $%02X: has an exec function but no disassembler entry", op.Opcode)
			}
			return nil
		})
	}
	g.Wait()

	out := make([]error, 0, 256)
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
