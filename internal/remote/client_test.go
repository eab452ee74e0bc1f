package remote_test

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/evaluator"
	"github.com/rajan221209/Chemistry-Calculator/internal/remote"
	"github.com/rajan221209/Chemistry-Calculator/internal/server"
	"github.com/rajan221209/Chemistry-Calculator/internal/services/calculator"
	"github.com/rajan221209/Chemistry-Calculator/internal/store"
)

func newClient(t *testing.T) (*remote.Client, *server.Server) {
	t.Helper()
	srv := server.New(evaluator.New(), log.New(io.Discard, "", 0))
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return remote.NewHTTP(ts.URL, ts.Client()), srv
}

func TestClient_SessionFlow(t *testing.T) {
	ctx := context.Background()
	c, srv := newClient(t)

	var created domain.SessionID
	c.OnCreate = func(id domain.SessionID) { created = id }

	got, err := c.Press(ctx, []rune("√(4+5)")...)
	if err != nil {
		t.Fatalf("Press: %v", err)
	}
	if got != "√(4+5)" || created == "" || created != c.ID {
		t.Fatalf("Press = %q, created=%q id=%q", got, created, c.ID)
	}

	out, err := c.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !out.OK() || out.Display != "3.000000 x 10^0" || out.Normalized != "sqrt((4+5))" {
		t.Fatalf("outcome = %+v", out)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := c.Press(ctx, '(', '2'); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if got, err := c.Backspace(ctx); err != nil || got != "(" {
		t.Fatalf("Backspace = %q, err=%v", got, err)
	}
	out, err = c.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !errors.Is(out.Err, domain.ErrEvaluation) || out.Display != domain.ErrorText {
		t.Fatalf("outcome = %+v", out)
	}
	if text, err := c.Text(ctx); err != nil || text != domain.ErrorText {
		t.Fatalf("Text = %q, err=%v", text, err)
	}

	hist, err := c.History(ctx, 10)
	if err != nil || len(hist) != 2 {
		t.Fatalf("History = %+v, err=%v", hist, err)
	}

	if err := c.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if srv.Len() != 0 {
		t.Fatalf("server still holds %d sessions", srv.Len())
	}
}

func TestClient_PressMatchesLocalService(t *testing.T) {
	ctx := context.Background()
	c, _ := newClient(t)
	dir := t.TempDir()
	local := calculator.New(
		evaluator.New(),
		store.NewSessionFileStore(dir, ""),
		store.NewHistoryFileStore(dir, "", 0),
	)

	presses := [][]rune{
		{'2', 'p', 'i', ' ', '+', '1'},
		{'s', 'q', 'r', 't', '9', ')'},
		{'(', '√', '4', ')', 'π'},
	}
	for _, keys := range presses {
		got, err := c.Press(ctx, keys...)
		if err != nil {
			t.Fatalf("remote Press(%q): %v", string(keys), err)
		}
		want, err := local.Press(ctx, keys...)
		if err != nil {
			t.Fatalf("local Press(%q): %v", string(keys), err)
		}
		if got != want {
			t.Fatalf("after Press(%q): remote=%q local=%q", string(keys), got, want)
		}
	}

	rout, err := c.Evaluate(ctx)
	if err != nil {
		t.Fatalf("remote Evaluate: %v", err)
	}
	lout, err := local.Evaluate(ctx)
	if err != nil {
		t.Fatalf("local Evaluate: %v", err)
	}
	if rout.Display != lout.Display || rout.Normalized != lout.Normalized {
		t.Fatalf("remote=%+v local=%+v", rout, lout)
	}
}

func TestClient_Normalize(t *testing.T) {
	c, _ := newClient(t)
	got, err := c.Normalize(context.Background(), "2π")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "2*(3.141592653589793)" {
		t.Fatalf("Normalize = %q", got)
	}
}

func TestClient_UnknownSession(t *testing.T) {
	c, _ := newClient(t)
	c.ID = "missing"
	_, err := c.Text(context.Background())
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("Text err = %v, want 404", err)
	}
}
