package cpu

// OpcodeInfo is the externally-visible shape of one opTable/disasmOps
// entry, exported only so cputest can fan out self-checks over it.
type OpcodeInfo struct {
	Opcode   uint8
	Mnemonic string
	Cycles   int
	HasExec  bool
}

// Opcodes returns a snapshot of the full 256-entry dispatch table.
func Opcodes() [256]OpcodeInfo {
	var out [256]OpcodeInfo
	for i := 0; i < 256; i++ {
		out[i] = OpcodeInfo{
			Opcode:   uint8(i),
			Mnemonic: disasmOps[i].Mnemonic,
			Cycles:   opTable[i].cycles,
			HasExec:  opTable[i].exec != nil,
		}
	}
	return out
}
