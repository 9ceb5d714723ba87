package target

import "testing"

func TestCell(t *testing.T) {
	if got, want := Cell(), "byte [r8 + r9]"; got != want {
		t.Errorf("Cell() = %q, want %q", got, want)
	}
}

func TestRegisterRolesAreDistinct(t *testing.T) {
	if BaseReg == PtrReg {
		t.Fatalf("base and pointer registers collide on %q", BaseReg)
	}
}
