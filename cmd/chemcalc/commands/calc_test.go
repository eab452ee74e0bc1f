package commands

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/evaluator"
	"github.com/rajan221209/Chemistry-Calculator/internal/remote"
	"github.com/rajan221209/Chemistry-Calculator/internal/server"
)

func TestCalcOnce(t *testing.T) {
	ctx := context.Background()
	srv := server.New(evaluator.New(), log.New(io.Discard, "", 0))
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	tests := []struct {
		line string
		want domain.Display
	}{
		{line: "2(3+1)", want: "8.000000 x 10^0"},
		{line: "sqrt16", want: "4.000000 x 10^0"},
		{line: "2 pi", want: "6.283185 x 10^0"},
		{line: "(2+3", want: domain.ErrorText},
	}
	for _, tt := range tests {
		local, err := calcOnce(ctx, evaluator.New(), nil, tt.line)
		if err != nil {
			t.Fatalf("local calcOnce(%q): %v", tt.line, err)
		}
		if local.Display != tt.want {
			t.Errorf("local calcOnce(%q) = %q, want %q", tt.line, local.Display, tt.want)
		}

		rc := remote.NewHTTP(ts.URL, ts.Client())
		got, err := calcOnce(ctx, evaluator.New(), rc, tt.line)
		if err != nil {
			t.Fatalf("remote calcOnce(%q): %v", tt.line, err)
		}
		if got.Display != tt.want {
			t.Errorf("remote calcOnce(%q) = %q, want %q", tt.line, got.Display, tt.want)
		}
		if got.Display.IsError() != (tt.want == domain.ErrorText) {
			t.Errorf("remote calcOnce(%q) IsError = %v", tt.line, got.Display.IsError())
		}
	}

	if srv.Len() != 0 {
		t.Fatalf("server still holds %d sessions", srv.Len())
	}
}
