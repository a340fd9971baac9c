// Hand-written String method for Flag: it renders all eight status bits
// as letters in NVMXDIZC order, uppercase when set and lowercase when
// clear. It is not stringer output, which would name single constants.

package cpu

func (f Flag) String() string {
	letters := [8]byte{'n', 'v', 'm', 'x', 'd', 'i', 'z', 'c'}
	bits := [8]Flag{FlagN, FlagV, FlagM, FlagX, FlagD, FlagI, FlagZ, FlagC}
	var out [8]byte
	for i, b := range bits {
		if f&b != 0 {
			out[i] = letters[i] - 'a' + 'A'
		} else {
			out[i] = letters[i]
		}
	}
	return string(out[:])
}
