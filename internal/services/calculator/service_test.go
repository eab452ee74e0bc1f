package calculator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/evaluator"
	"github.com/rajan221209/Chemistry-Calculator/internal/services/calculator"
	"github.com/rajan221209/Chemistry-Calculator/internal/store"
)

func newService(t *testing.T, home string) *calculator.Service {
	t.Helper()
	return calculator.New(
		evaluator.New(),
		store.NewSessionFileStore(home, ""),
		store.NewHistoryFileStore(home, "", 10),
	)
}

func TestService_PersistsBufferAcrossInstances(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()

	first := newService(t, home)
	if _, err := first.Press(ctx, []rune("2(3+1")...); err != nil {
		t.Fatalf("Press: %v", err)
	}

	second := newService(t, home)
	got, err := second.Press(ctx, ')', ')')
	if err != nil {
		t.Fatalf("Press: %v", err)
	}
	if got != "2(3+1)" {
		t.Fatalf("Text = %q, want %q", got, "2(3+1)")
	}

	out, err := second.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if out.Display != "8.000000 x 10^0" || out.Normalized != "2*(3+1)" {
		t.Fatalf("outcome = %+v", out)
	}

	third := newService(t, home)
	text, err := third.Text(ctx)
	if err != nil || text != "8.000000 x 10^0" {
		t.Fatalf("Text = %q, err=%v", text, err)
	}
}

func TestService_EvaluateRecordsHistory(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir())

	if _, err := svc.Press(ctx, []rune("√16")...); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if _, err := svc.Evaluate(ctx); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := svc.Press(ctx, []rune("(2+3")...); err != nil {
		t.Fatalf("Press: %v", err)
	}
	out, err := svc.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !errors.Is(out.Err, domain.ErrEvaluation) || out.Display != domain.ErrorText {
		t.Fatalf("outcome = %+v", out)
	}

	hist, err := svc.History(ctx, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("history len = %d, want 2", len(hist))
	}
	if !hist[0].OK || hist[0].Display != "4.000000 x 10^0" || hist[0].Normalized != "sqrt(16)" {
		t.Fatalf("history[0] = %+v", hist[0])
	}
	if hist[1].OK || hist[1].Display != domain.ErrorText || hist[1].Input != "(2+3" {
		t.Fatalf("history[1] = %+v", hist[1])
	}
}

func TestService_Backspace(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, t.TempDir())

	if got, err := svc.Backspace(ctx); err != nil || got != "" {
		t.Fatalf("Backspace on empty = %q, err=%v", got, err)
	}
	if _, err := svc.Press(ctx, '1', '2'); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if got, err := svc.Backspace(ctx); err != nil || got != "1" {
		t.Fatalf("Backspace = %q, err=%v", got, err)
	}
}

func TestService_RestoreDropsUnbalancedClose(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()
	if err := store.NewSessionFileStore(home, "").SaveSnapshot(domain.Snapshot{Text: "1)+(2"}); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	svc := newService(t, home)
	got, err := svc.Text(ctx)
	if err != nil || got != "1+(2" {
		t.Fatalf("Text = %q, err=%v", got, err)
	}
}
