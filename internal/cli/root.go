package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hafizd/campusplan/internal/config"
	"github.com/hafizd/campusplan/internal/logger"
	"github.com/hafizd/campusplan/internal/storage"
	"github.com/hafizd/campusplan/internal/store"
	"github.com/hafizd/campusplan/internal/ui"
)

// NewRootCommand creates the top-level Cobra command hosting every
// subcommand and the TUI launcher.
func NewRootCommand(ctx context.Context, st *store.Store, backend storage.Backend, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campusplan",
		Short: "Plan and track personal events from your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := ui.NewModel(ctx, st, backend, cfg)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newAddCommand(st),
		newEditCommand(st),
		newDeleteCommand(st),
		newToggleCommand(st),
		newShowCommand(st),
		newListCommand(st, cfg),
		newSearchCommand(st),
		newStatsCommand(st),
		newTagsCommand(st),
		newExportCommand(st),
		newImportCommand(st),
		newThemeCommand(backend),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand wires the configuration, backend, and store, then
// executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	backend, cleanup, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	st := store.New(backend, logger.New("store"))
	if err := st.Load(); err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	cmd := NewRootCommand(ctx, st, backend, cfg)
	return cmd.Execute()
}

// Main is a helper used by cmd/campusplan/main.go to keep wiring
// contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openBackend(cfg *config.Config) (storage.Backend, func(), error) {
	base := cfg.BasePath
	if base == "" {
		resolved, err := storage.ResolveBasePath()
		if err != nil {
			return nil, nil, err
		}
		base = resolved
	}

	if cfg.Backend == config.BackendSQLite {
		kv, err := storage.OpenSQLite(sqlitePath(base))
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil
	}

	kv, err := storage.NewFileKV(base)
	if err != nil {
		return nil, nil, err
	}
	return kv, func() {}, nil
}
