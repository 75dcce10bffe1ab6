package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	symath "github.com/symath/symath"
)

var historyPath string

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("●")
	statusFailed = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("●")
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Reads one expression per line and prints the engine's result. The glyph
before the prompt reflects engine health: green after a successful
dispatch, red after a failure.

With --history, inputs and outputs are persisted to a SQLite database.`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVar(&historyPath, "history", "", "path to a SQLite history database")
}

func runRepl(cmd *cobra.Command, args []string) error {
	engine := symath.NewEngine(symath.WithLogger(logger))
	session := uuid.NewString()

	var store *HistoryStore
	if historyPath != "" {
		var err error
		store, err = OpenHistory(historyPath)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer store.Close()
	}

	fmt.Println("symath: type an expression, or \"quit\" to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		status := statusOK
		if !engine.Healthy() {
			status = statusFailed
		}
		fmt.Print(status + " " + promptStyle.Render("> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		result := engine.Dispatch(line)
		if strings.HasPrefix(result, "Error:") {
			fmt.Println(errorStyle.Render(result))
		} else {
			fmt.Println(resultStyle.Render(result))
		}

		if store != nil {
			if err := store.Append(session, line, result); err != nil {
				logger.Warn("failed to record history", zap.Error(err))
			}
		}
	}
	return scanner.Err()
}
