package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rajan221209/Chemistry-Calculator/internal/constant"
	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/keypad"
	"github.com/rajan221209/Chemistry-Calculator/internal/normalize"
	"github.com/rajan221209/Chemistry-Calculator/internal/remote"
	"github.com/rajan221209/Chemistry-Calculator/internal/session"
)

var errEvaluation = errors.New(domain.ErrorText)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expr>",
		Short: "Evaluate an expression in a fresh session",
		Long: "Type the expression into a new, unsaved session and evaluate it. " +
			"With --remote the session is created on the server and deleted afterwards. " +
			"Exits non-zero when the result is Error.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rc *remote.Client
			if appCtx.Remote != nil {
				rc = remote.NewHTTP(appCtx.Remote.Base, appCtx.Remote.HTTP)
			}
			out, err := calcOnce(cmd.Context(), appCtx.Evaluator, rc, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(out.Display)
			if out.Display.IsError() {
				cmd.SilenceErrors = true
				return errEvaluation
			}
			return nil
		},
	}
}

// calcOnce types line into a fresh session and evaluates it: a throwaway
// server session when rc is set, a local one otherwise.
func calcOnce(ctx context.Context, ev domain.Evaluator, rc *remote.Client, line string) (domain.Outcome, error) {
	keys := keypad.Runes(line)
	if rc == nil {
		s := session.New(ev)
		for _, k := range keys {
			s.Append(k)
		}
		return s.Evaluate(), nil
	}

	defer func() { _ = rc.Close(ctx) }()
	if _, err := rc.Press(ctx, keys...); err != nil {
		return domain.Outcome{}, err
	}
	return rc.Evaluate(ctx)
}

func normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <expr>",
		Short: "Print the expression the evaluator would see",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := string(keypad.Runes(strings.Join(args, " ")))
			if appCtx.Remote != nil {
				n, err := appCtx.Remote.Normalize(cmd.Context(), raw)
				if err != nil {
					return err
				}
				fmt.Println(n)
				return nil
			}
			fmt.Println(normalize.Normalize(raw))
			return nil
		},
	}
}

func constantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List the constant symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range constant.Table() {
				fmt.Printf("%c  %s\n", d.Symbol, d.Expansion)
			}
			return nil
		},
	}
}
