package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hafizd/campusplan/internal/config"
	"github.com/hafizd/campusplan/internal/event"
	"github.com/hafizd/campusplan/internal/query"
	"github.com/hafizd/campusplan/internal/store"
)

func newListCommand(st *store.Store, cfg *config.Config) *cobra.Command {
	var (
		tagFlag    string
		searchFlag string
		sortFlag   string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, optionally filtered, searched, and sorted.",
		Long:  "list runs the query pipeline over the collection: filter by tag, then free-text search, then sort.",
		RunE: func(cmd *cobra.Command, args []string) error {
			events := st.All()
			events = query.FilterByTag(events, tagFlag)
			events = query.Search(events, searchFlag)
			events = query.Sort(events, sortFlag)

			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if events == nil {
					events = []event.Event{}
				}
				return enc.Encode(events)
			}

			printEvents(cmd, events)
			return nil
		},
	}

	cmd.Flags().StringVar(&tagFlag, "tag", query.FilterAll, "Only show events with this tag")
	cmd.Flags().StringVar(&searchFlag, "search", "", "Free-text search (regex, falling back to substring)")
	cmd.Flags().StringVar(&sortFlag, "sort", cfg.DefaultSort, "Sort key: date, title, or duration")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit results as JSON")

	return cmd
}

var searchMarkStyle = lipgloss.NewStyle().Reverse(true)

func newSearchCommand(st *store.Store) *cobra.Command {
	var (
		tagFlag  string
		sortFlag string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search events and highlight what matched.",
		Long:  "search matches the query against title, tag, and description. A query that compiles as a regular expression is used as one; anything else matches as a plain substring.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher := query.NewMatcher(args[0])

			events := st.All()
			events = query.FilterByTag(events, tagFlag)
			events = query.Search(events, args[0])
			events = query.Sort(events, sortFlag)

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "(no matches)")
				return nil
			}

			mark := func(s string) string { return searchMarkStyle.Render(s) }
			for _, e := range events {
				line := e
				line.Title = query.Decorate(e.Title, matcher, mark)
				line.Tag = query.Decorate(e.Tag, matcher, mark)
				fmt.Fprintf(out, "%s  %s\n", e.ID, formatEvent(line))
				if e.Description != "" && matcher.Match(e.Description) {
					fmt.Fprintf(out, "    %s\n", query.Decorate(e.Description, matcher, mark))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tagFlag, "tag", query.FilterAll, "Only search events with this tag")
	cmd.Flags().StringVar(&sortFlag, "sort", "date", "Sort key: date, title, or duration")

	return cmd
}

func newStatsCommand(st *store.Store) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the collection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := st.Stats()

			if outputJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stats)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total events:   %d\n", stats.Total)
			fmt.Fprintf(out, "Completed:      %d\n", stats.Completed)
			fmt.Fprintf(out, "Total hours:    %s\n", stats.TotalHours)
			fmt.Fprintf(out, "Top tag:        %s\n", stats.TopTag)
			fmt.Fprintf(out, "Recent events:  %d\n", stats.Recent)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit stats as JSON")

	return cmd
}

func newTagsCommand(st *store.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the distinct tags in use.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tags := st.UniqueTags()
			if len(tags) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no tags)")
				return nil
			}
			for _, tag := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}
