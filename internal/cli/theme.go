package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hafizd/campusplan/internal/storage"
	"github.com/hafizd/campusplan/internal/version"
)

func newThemeCommand(backend storage.Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or change the persisted theme preference.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current := storage.LoadTheme(backend)
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), current)
				return nil
			}

			next := args[0]
			switch next {
			case storage.ThemeLight, storage.ThemeDark:
			case "toggle":
				next = storage.ThemeLight
				if current == storage.ThemeLight {
					next = storage.ThemeDark
				}
			default:
				return fmt.Errorf("invalid theme %q (expected light|dark|toggle)", next)
			}

			if err := storage.SaveTheme(backend, next); err != nil {
				return fmt.Errorf("save theme: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}
}
