package bracket_test

import (
	"testing"

	"github.com/rajan221209/Chemistry-Calculator/internal/bracket"
)

func TestAccept(t *testing.T) {
	tests := []struct {
		buffer string
		ch     rune
		want   bool
	}{
		{buffer: "", ch: ')', want: false},
		{buffer: "", ch: '(', want: true},
		{buffer: "(", ch: ')', want: true},
		{buffer: "()", ch: ')', want: false},
		{buffer: "((2+3)", ch: ')', want: true},
		{buffer: "(2)(3)", ch: ')', want: false},
		{buffer: "2+3", ch: '7', want: true},
		{buffer: ")", ch: 'x', want: true},
	}
	for _, tt := range tests {
		if got := bracket.Accept(tt.buffer, tt.ch); got != tt.want {
			t.Errorf("Accept(%q, %q) = %v, want %v", tt.buffer, tt.ch, got, tt.want)
		}
	}
}

func TestDepth(t *testing.T) {
	if got := bracket.Depth("((1+2)*(3"); got != 2 {
		t.Fatalf("Depth = %d, want 2", got)
	}
	if got := bracket.Depth(""); got != 0 {
		t.Fatalf("Depth(empty) = %d, want 0", got)
	}
}
