package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the input buffer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := appCtx.Calculator.Evaluate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(out.Display)
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the input buffer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := appCtx.Calculator.Text(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recent evaluations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.Calculator.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, e := range entries {
				at := time.Unix(e.AtUTC, 0).Local().Format(time.DateTime)
				fmt.Printf("%s  %s = %s\n", at, e.Input, e.Display)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show (0 for all)")
	return cmd
}
