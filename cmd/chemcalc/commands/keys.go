package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajan221209/Chemistry-Calculator/internal/keypad"
)

func keyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key <name>...",
		Short: "Press keys on the saved session",
		Long: "Press one or more keys. A key is a single character or one of the " +
			"names pi, sqrt, root. A ')' with no open '(' to close is ignored.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]rune, 0, len(args))
			for _, a := range args {
				r, err := keypad.Parse(a)
				if err != nil {
					return err
				}
				keys = append(keys, r)
			}
			text, err := appCtx.Calculator.Press(cmd.Context(), keys...)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the input buffer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Calculator.Clear(cmd.Context())
		},
	}
}

func backCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "back",
		Aliases: []string{"backspace"},
		Short:   "Remove the last character of the input buffer",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := appCtx.Calculator.Backspace(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}
