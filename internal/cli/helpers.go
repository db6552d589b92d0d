package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hafizd/campusplan/internal/event"
)

func formatEvent(e event.Event) string {
	status := "todo"
	if e.Completed {
		status = "done"
	}

	builder := strings.Builder{}
	builder.Grow(48 + len(e.Title) + len(e.Tag))

	builder.WriteString("[")
	builder.WriteString(status)
	builder.WriteString("] ")
	builder.WriteString(e.Date)
	builder.WriteString(" (")
	builder.WriteString(string(e.Duration))
	builder.WriteString("h) ")
	builder.WriteString(e.Title)
	builder.WriteString(" #")
	builder.WriteString(e.Tag)

	return builder.String()
}

func printEvents(cmd *cobra.Command, events []event.Event) {
	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "(no events)")
		return
	}
	for _, e := range events {
		fmt.Fprintf(out, "%s  %s\n", e.ID, formatEvent(e))
	}
}

// printValidationErrors reports one line per failing field, in a fixed
// field order so output is predictable.
func printValidationErrors(cmd *cobra.Command, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, errs[field])
	}
}

func sqlitePath(base string) string {
	return filepath.Join(base, "campusplan.db")
}
