package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hafizd/campusplan/internal/storage"
	"github.com/hafizd/campusplan/internal/store"
)

func newExportCommand(st *store.Store) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the collection to a JSON file.",
		Long:  "export writes the full collection as indented JSON. Without an argument the file is named campus_events_<date>.json; \"-\" writes to stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events := st.All()
			if len(events) == 0 {
				return fmt.Errorf("no events to export")
			}

			target := storage.ExportFileName(time.Now())
			if len(args) == 1 {
				target = args[0]
			}

			if target == "-" {
				return storage.ExportJSON(cmd.OutOrStdout(), events)
			}

			file, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := storage.ExportJSON(file, events); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d events to %s\n", len(events), target)
			return nil
		},
	}

	return cmd
}

func newImportCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the collection from a JSON file.",
		Long:  "import parses the file, applies the lenient structural validation, and replaces the whole collection. Any violation aborts the import and leaves the collection unchanged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer file.Close()

			events, err := storage.ImportJSON(file)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			st.SetEvents(events)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d events\n", len(events))
			return nil
		},
	}
}
