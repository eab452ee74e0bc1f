package constant_test

import (
	"strings"
	"testing"

	"github.com/rajan221209/Chemistry-Calculator/internal/constant"
)

func TestTable_SymbolsAreNotReserved(t *testing.T) {
	const reserved = "0123456789+-*/^()√."
	for _, d := range constant.Table() {
		if strings.ContainsRune(reserved, d.Symbol) {
			t.Fatalf("constant %q collides with a reserved character", d.Symbol)
		}
		if d.Expansion == "" {
			t.Fatalf("constant %q has an empty expansion", d.Symbol)
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		symbol rune
		want   string
		ok     bool
	}{
		{symbol: constant.Pi, want: "3.141592653589793", ok: true},
		{symbol: 'K', want: "9 * 10^9", ok: true},
		{symbol: 'h', want: "6.626 * 10^-34", ok: true},
		{symbol: 'c', want: "3 * 10^8", ok: true},
		{symbol: 'x', ok: false},
	}
	for _, tt := range tests {
		got, ok := constant.Expand(tt.symbol)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("Expand(%q) = %q, %v; want %q, %v", tt.symbol, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSubstitute_ReplacesEveryOccurrence(t *testing.T) {
	got := constant.Substitute("K+K*c")
	want := "(9 * 10^9)+(9 * 10^9)*(3 * 10^8)"
	if got != want {
		t.Fatalf("Substitute = %q, want %q", got, want)
	}
}

func TestTable_ReturnsCopy(t *testing.T) {
	tbl := constant.Table()
	tbl[0].Expansion = "0"
	if got, _ := constant.Expand(constant.Pi); got == "0" {
		t.Fatal("Table exposed the internal slice")
	}
}
