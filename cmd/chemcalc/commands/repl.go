package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/keypad"
)

const (
	replHistoryFile = "repl_history"
	replPrompt      = "calc> "
	replBanner      = "chemcalc REPL. Ctrl+C cancels input, Ctrl+D exits. Type :help for commands."
	replHelp        = `
Each line is typed into a cleared buffer and evaluated.
Use pi for π and sqrt for √; K, h and c are physical constants.

REPL commands:
  :help            Show this help
  :quit / :exit    Exit the REPL
  :show            Print the current buffer
  :clear           Clear the buffer
  :back            Delete the last key
  :history [n]     Print the last n evaluations (default 10)
`
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive calculator session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context(), appCtx.Calculator, filepath.Join(appCtx.Config.Home, replHistoryFile))
		},
	}
}

func runREPL(ctx context.Context, calc domain.CalculatorService, histPath string) error {
	fmt.Println(replBanner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, ":") {
			done, err := replCommand(ctx, calc, line)
			if err != nil {
				fmt.Println(err)
			}
			if done {
				break
			}
			continue
		}

		display, err := evalLine(ctx, calc, line)
		if err != nil {
			return err
		}
		fmt.Println(display)
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

// evalLine clears the buffer, types line into it and evaluates.
func evalLine(ctx context.Context, calc domain.CalculatorService, line string) (domain.Display, error) {
	if err := calc.Clear(ctx); err != nil {
		return "", err
	}
	if _, err := calc.Press(ctx, keypad.Runes(line)...); err != nil {
		return "", err
	}
	out, err := calc.Evaluate(ctx)
	if err != nil {
		return "", err
	}
	return out.Display, nil
}

// replCommand handles the colon meta-commands.
func replCommand(ctx context.Context, calc domain.CalculatorService, line string) (exit bool, err error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Print(replHelp)

	case ":quit", ":exit":
		return true, nil

	case ":show":
		text, err := calc.Text(ctx)
		if err != nil {
			return false, err
		}
		fmt.Println(text)

	case ":clear":
		if err := calc.Clear(ctx); err != nil {
			return false, err
		}

	case ":back":
		text, err := calc.Backspace(ctx)
		if err != nil {
			return false, err
		}
		fmt.Println(text)

	case ":history":
		n := 10
		if len(fields) > 1 {
			v, err := strconv.Atoi(fields[1])
			if err != nil {
				return false, fmt.Errorf("usage: :history [n]")
			}
			n = v
		}
		entries, err := calc.History(ctx, n)
		if err != nil {
			return false, err
		}
		for _, e := range entries {
			fmt.Printf("%s = %s\n", e.Input, e.Display)
		}

	default:
		fmt.Println("unknown command. Type :help for help.")
	}
	return false, nil
}
