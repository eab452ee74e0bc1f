package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rajan221209/Chemistry-Calculator/internal/app"
	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
)

var (
	home       string
	passphrase string
	configPath string
	appCtx     *app.App

	remoteURL    string
	sessionID    string
	historyLimit int
)

func Execute() error {
	root := &cobra.Command{
		Use:          "chemcalc",
		Short:        "Scientific calculator with physical constants",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(app.Config{
				Home:         home,
				Passphrase:   passphrase,
				RemoteURL:    remoteURL,
				SessionID:    sessionID,
				HistoryLimit: historyLimit,
			}, configPath)
			if err != nil {
				return err
			}
			if a.Remote != nil {
				a.Remote.OnCreate = func(id domain.SessionID) {
					fmt.Fprintf(os.Stderr, "remote session %s (reuse with --session %s)\n", id, id)
				}
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.chemcalc)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to seal saved state")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "chemcalcd base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&sessionID, "session", "", "remote session id to reuse")
	root.PersistentFlags().IntVar(&historyLimit, "history-limit", 0, "evaluations kept in history (default 100)")

	root.AddCommand(
		keyCmd(), clearCmd(), backCmd(),
		evalCmd(), showCmd(), historyCmd(),
		calcCmd(), normalizeCmd(), constantsCmd(),
		replCmd(),
	)
	return root.Execute()
}
