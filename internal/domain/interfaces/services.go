package interfaces

import (
	"context"

	domaintypes "github.com/rajan221209/Chemistry-Calculator/internal/domain/types"
)

// CalculatorService drives one calculator session on behalf of a caller.
//
// The local implementation persists the session between invocations; the
// remote implementation forwards every call to a chemcalcd server.
type CalculatorService interface {
	Press(ctx context.Context, keys ...rune) (domaintypes.Display, error)
	Clear(ctx context.Context) error
	Backspace(ctx context.Context) (domaintypes.Display, error)
	Evaluate(ctx context.Context) (domaintypes.Outcome, error)
	Text(ctx context.Context) (domaintypes.Display, error)
	History(ctx context.Context, limit int) ([]domaintypes.HistoryEntry, error)
}
