// browser is an interactive terminal UI for searching, filtering and
// exporting the tickets served by the ticket API.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/spec-kit/ticket-browser/internal/browser"
	"github.com/spec-kit/ticket-browser/internal/client"
	"github.com/spec-kit/ticket-browser/internal/config"
	"github.com/spec-kit/ticket-browser/internal/observability"
	"github.com/spec-kit/ticket-browser/internal/view"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var (
		apiURL    string
		pageSize  int
		exportDir string
		sortKey   string
		order     string
		locale    string
		logOutput string
	)
	flagSet := pflag.NewFlagSet("browser", pflag.ContinueOnError)
	flagSet.StringVar(&apiURL, "api-url", cfg.Client.APIURL, "base URL of the ticket API")
	flagSet.IntVar(&pageSize, "page-size", cfg.Client.PageSize, "tickets per page (10, 20, 50 or 100)")
	flagSet.StringVar(&exportDir, "export-dir", cfg.Client.ExportDir, "directory CSV exports are written to")
	flagSet.StringVar(&sortKey, "sort", string(view.SortByID), "initial sort key (id, priority, title)")
	flagSet.StringVar(&order, "order", string(view.Descending), "initial sort order (asc, desc)")
	flagSet.StringVar(&locale, "locale", "en", "BCP 47 locale used to order titles")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	initial := view.Order{Key: view.SortKey(sortKey), Direction: view.Direction(order)}
	if !initial.Valid() {
		return fmt.Errorf("invalid sort %q %q", sortKey, order)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	logger := zap.NewNop()
	if logOutput != "" {
		logger, err = observability.NewLogger(config.LoggerConfig{Level: cfg.Logger.Level, Output: logOutput})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync() //nolint:errcheck
	}

	api := client.New(apiURL, client.WithTimeout(cfg.Client.Timeout), client.WithLogger(logger))
	session := view.NewSession(api,
		view.WithPageSize(pageSize),
		view.WithSort(initial.Key, initial.Direction),
		view.WithCollator(tag),
	)
	model := browser.NewModel(session,
		browser.WithLogger(logger),
		browser.WithExportDir(exportDir),
	)

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
