package domain

import (
	interfaces "github.com/rajan221209/Chemistry-Calculator/internal/domain/interfaces"
	types "github.com/rajan221209/Chemistry-Calculator/internal/domain/types"
)

// ErrorText is re-exported for callers that only import domain.
const ErrorText = types.ErrorText

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID    = types.SessionID
	Display      = types.Display
	Outcome      = types.Outcome
	HistoryEntry = types.HistoryEntry
	Snapshot     = types.Snapshot
	State        = types.State
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Evaluator         = interfaces.Evaluator
	CalculatorService = interfaces.CalculatorService
	SnapshotStore     = interfaces.SnapshotStore
	HistoryStore      = interfaces.HistoryStore
)
