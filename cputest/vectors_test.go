package cputest

import "testing"

func TestVerifyOpcodeTableIsClean(t *testing.T) {
	errs := VerifyOpcodeTable()
	for _, err := range errs {
		t.Error(err)
	}
}
