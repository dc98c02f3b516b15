package pcc

import (
	"testing"
)

func TestSymbolEquality(t *testing.T) {
	num := Terminal{Name: "NUM", Pattern: "[0-9]+"}
	num2 := Terminal{Name: "NUM", Pattern: "[0-9]+"}
	if num != num2 {
		t.Errorf("expected terminals with equal fields to be equal")
	}
	other := Terminal{Name: "NUM", Pattern: "[0-9]*"}
	if num == other {
		t.Errorf("expected terminals with different patterns to be distinct")
	}
	if Symbol(num) == Symbol(Nonterminal{Name: "NUM"}) {
		t.Errorf("expected terminal and nonterminal of the same name to be distinct")
	}
}

func TestSymbolAsMapKey(t *testing.T) {
	m := map[Symbol]int{
		Terminal{Name: "A", Pattern: "a"}: 1,
		Nonterminal{Name: "A"}:            2,
	}
	if m[Terminal{Name: "A", Pattern: "a"}] != 1 {
		t.Errorf("terminal key not found in map")
	}
	if m[Nonterminal{Name: "A"}] != 2 {
		t.Errorf("nonterminal key not found in map")
	}
}

func TestSentinels(t *testing.T) {
	if EOF == Epsilon {
		t.Errorf("EOF and Epsilon must be distinct")
	}
	if IsSymbolName(EOF.Name) || IsSymbolName(Epsilon.Name) {
		t.Errorf("reserved names must not be legal symbol names")
	}
}

func TestSymbolString(t *testing.T) {
	a := Terminal{Name: "A", Pattern: "a"}
	x := Nonterminal{Name: "x"}
	ss := SymbolString{a, x}
	if !ss.Eq(SymbolString{a, x}) {
		t.Errorf("expected symbol strings to compare equal")
	}
	if ss.Eq(SymbolString{x, a}) {
		t.Errorf("expected order to matter for symbol strings")
	}
	ext := ss.Append(a)
	if len(ss) != 2 || len(ext) != 3 {
		t.Errorf("Append must not modify the receiver")
	}
	if ss.String() != "[A x]" {
		t.Errorf("unexpected string representation: %s", ss.String())
	}
}

func TestNames(t *testing.T) {
	valid := []string{"expr", "Expr", "e1", "a_b_c", "NUM", "T_2"}
	for _, name := range valid {
		if !IsSymbolName(name) {
			t.Errorf("expected %q to be a valid symbol name", name)
		}
	}
	invalid := []string{"", "1a", "_x", "a-b", "a b", "'a'"}
	for _, name := range invalid {
		if IsSymbolName(name) {
			t.Errorf("expected %q to be rejected as a symbol name", name)
		}
	}
	if !IsTokenName("NUM") || !IsTokenName("T_2") {
		t.Errorf("expected uppercase identifiers to be token names")
	}
	if IsTokenName("Num") || IsTokenName("num") || IsTokenName("_EOF") {
		t.Errorf("expected non-uppercase identifiers to fail the token name check")
	}
}
