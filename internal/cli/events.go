package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hafizd/campusplan/internal/event"
	"github.com/hafizd/campusplan/internal/store"
)

func newAddCommand(st *store.Store) *cobra.Command {
	var fields event.Fields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new event.",
		Long:  "add validates the supplied fields and appends a new event to the planner.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := event.ValidateForm(fields); len(errs) > 0 {
				printValidationErrors(cmd, errs)
				return fmt.Errorf("validation failed")
			}

			created := st.Add(fields)
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s  %s\n", created.ID, formatEvent(created))
			return nil
		},
	}

	cmd.Flags().StringVar(&fields.Title, "title", "", "Event title (required)")
	cmd.Flags().StringVar(&fields.Date, "date", "", "Event date in YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&fields.Duration, "duration", "", "Duration in hours, 0-24 (required)")
	cmd.Flags().StringVar(&fields.Tag, "tag", "", "Category tag: letters, spaces, hyphens (required)")
	cmd.Flags().StringVar(&fields.Description, "description", "", "Optional free-text description")

	return cmd
}

func newEditCommand(st *store.Store) *cobra.Command {
	var (
		title       string
		date        string
		duration    string
		tag         string
		description string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Modify an event by id.",
		Long:  "edit updates only the fields whose flags are set; everything else is preserved.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var partial event.Partial
			errs := make(map[string]string)

			capture := func(name string, value string, dst **string) {
				if !cmd.Flags().Changed(name) {
					return
				}
				if msg := event.ValidateField(name, value); msg != "" {
					errs[name] = msg
					return
				}
				*dst = &value
			}

			capture("title", title, &partial.Title)
			capture("date", date, &partial.Date)
			capture("duration", duration, &partial.Duration)
			capture("tag", tag, &partial.Tag)
			capture("description", description, &partial.Description)

			if len(errs) > 0 {
				printValidationErrors(cmd, errs)
				return fmt.Errorf("validation failed")
			}
			if partial == (event.Partial{}) {
				return fmt.Errorf("nothing to update: set at least one field flag")
			}

			if !st.Update(args[0], partial) {
				return fmt.Errorf("no event with id %q", args[0])
			}

			updated, _ := st.Get(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s  %s\n", updated.ID, formatEvent(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&date, "date", "", "New date in YYYY-MM-DD")
	cmd.Flags().StringVar(&duration, "duration", "", "New duration in hours")
	cmd.Flags().StringVar(&tag, "tag", "", "New tag")
	cmd.Flags().StringVar(&description, "description", "", "New description")

	return cmd
}

func newDeleteCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an event by id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !st.Delete(args[0]) {
				return fmt.Errorf("no event with id %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func newToggleCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip an event between todo and done.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !st.ToggleComplete(args[0]) {
				return fmt.Errorf("no event with id %q", args[0])
			}
			toggled, _ := st.Get(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Toggled %s  %s\n", toggled.ID, formatEvent(toggled))
			return nil
		},
	}
}

func newShowCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print every field of an event.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := st.Get(args[0])
			if !ok {
				return fmt.Errorf("no event with id %q", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:          %s\n", e.ID)
			fmt.Fprintf(out, "title:       %s\n", e.Title)
			fmt.Fprintf(out, "date:        %s\n", e.Date)
			fmt.Fprintf(out, "duration:    %sh\n", e.Duration)
			fmt.Fprintf(out, "tag:         %s\n", e.Tag)
			if e.Description != "" {
				fmt.Fprintf(out, "description: %s\n", e.Description)
			}
			status := "todo"
			if e.Completed {
				status = "done"
			}
			fmt.Fprintf(out, "status:      %s\n", status)
			fmt.Fprintf(out, "created:     %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "updated:     %s\n", e.UpdatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
