package cpu

// State is the neutral, flat snapshot record for the CPU: registers,
// mode flags and the pending-interrupt lines, nothing else.
type State struct {
	A, X, Y, S, D uint16
	DB, PB        uint8
	PC            uint16
	P             uint8
	E             bool
	Cycles        int64
	NMIPending    bool
	IRQLine       bool
}

func (c *CPU) State() State {
	return State{
		A: c.A, X: c.X, Y: c.Y, S: c.S, D: c.D,
		DB: c.DB, PB: c.PB, PC: c.PC,
		P: uint8(c.P), E: c.E, Cycles: c.Cycles,
		NMIPending: c.nmiPending, IRQLine: c.irqLine,
	}
}

func (c *CPU) Restore(s State) {
	c.A, c.X, c.Y, c.S, c.D = s.A, s.X, s.Y, s.S, s.D
	c.DB, c.PB, c.PC = s.DB, s.PB, s.PC
	c.P = Flag(s.P)
	c.E = s.E
	c.Cycles = s.Cycles
	c.nmiPending = s.NMIPending
	c.irqLine = s.IRQLine
}
