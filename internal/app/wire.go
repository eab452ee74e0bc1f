package app

import (
	"net/http"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/evaluator"
	"github.com/rajan221209/Chemistry-Calculator/internal/remote"
	calculatorsvc "github.com/rajan221209/Chemistry-Calculator/internal/services/calculator"
	"github.com/rajan221209/Chemistry-Calculator/internal/store"
)

// Wire bundles the stores, services, and clients for the CLI.
type Wire struct {
	Calculator domain.CalculatorService
	Evaluator  domain.Evaluator
	Snapshots  domain.SnapshotStore
	History    domain.HistoryStore
	Remote     *remote.Client // nil unless cfg.RemoteURL is set
	HTTP       *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	ev := evaluator.New()

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if cfg.RemoteURL != "" {
		rc := remote.NewHTTP(cfg.RemoteURL, httpClient)
		rc.ID = domain.SessionID(cfg.SessionID)
		return &Wire{
			Calculator: rc,
			Evaluator:  ev,
			Remote:     rc,
			HTTP:       httpClient,
		}, nil
	}

	// File-based stores
	snapshotStore := store.NewSessionFileStore(cfg.Home, cfg.Passphrase)
	historyStore := store.NewHistoryFileStore(cfg.Home, cfg.Passphrase, cfg.HistoryLimit)

	return &Wire{
		Calculator: calculatorsvc.New(ev, snapshotStore, historyStore),
		Evaluator:  ev,
		Snapshots:  snapshotStore,
		History:    historyStore,
		HTTP:       httpClient,
	}, nil
}
