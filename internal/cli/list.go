package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/kanban/filter"
	"taskboard/internal/kanban/models"
	"taskboard/internal/kanban/operations"
	"taskboard/internal/users"
)

var (
	listQuery    string
	listLabel    string
	listAssignee string
	listDue      string
	listColumns  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the board",
	Long: `Print every column with the tasks that pass the filters.

Filters combine: a task is shown only when it matches all of them.
  --q         case-insensitive title substring
  --label     Bug, Feature, Urgent or Improvement
  --assignee  user id or (fuzzy) name
  --due       exact due date, YYYY-MM-DD`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listQuery, "q", "", "Title substring")
	listCmd.Flags().StringVar(&listLabel, "label", "", "Label filter")
	listCmd.Flags().StringVar(&listAssignee, "assignee", "", "Assignee id or name")
	listCmd.Flags().StringVar(&listDue, "due", "", "Due date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listColumns, "columns", "", "Only these column ids (comma-separated)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	state, err := buildFilter(s.users, listQuery, listLabel, listAssignee, listDue)
	if err != nil {
		return err
	}

	printBoard(cmd.OutOrStdout(), s.ctrl, s.users, state, config.ParseCommaSeparated(listColumns))
	return nil
}

// buildFilter turns flag values into a filter state
func buildFilter(dir *users.Directory, query, label, assignee, due string) (filter.State, error) {
	state := filter.State{Query: query}

	l, ok := models.ParseLabel(label)
	if !ok {
		return filter.State{}, fmt.Errorf("unknown label %q", label)
	}
	state.Label = l

	if assignee != "" {
		u, err := dir.Find(assignee)
		if err != nil {
			return filter.State{}, err
		}
		state.AssigneeID = u.ID
	}

	d, err := models.ParseDate(due)
	if err != nil {
		return filter.State{}, fmt.Errorf("invalid due date %q: %w", due, err)
	}
	state.DueDate = d

	return state, nil
}

func printBoard(w io.Writer, ctrl *operations.Controller, dir *users.Directory, state filter.State, only []string) {
	board := ctrl.Board()

	if state.IsActive() {
		noticeColor.Fprintf(w, "Filter: %s\n\n", state.Describe())
	}

	shown := 0
	for _, col := range board.Columns {
		if len(only) > 0 && !contains(only, col.ID) {
			continue
		}

		tasks := filter.Column(board, col.ID, state)
		headerColor.Fprintf(w, "%s (%d/%d)\n", col.Title, len(tasks), len(col.TaskIDs))
		for _, t := range tasks {
			fmt.Fprintf(w, "  %s\n", formatTask(t, dir))
		}
		fmt.Fprintln(w)
		shown += len(tasks)
	}

	fmt.Fprintf(w, "%d task(s)\n", shown)
}

func formatTask(t models.Task, dir *users.Directory) string {
	parts := []string{fmt.Sprintf("[%s] %s", shortID(t.ID), t.Title)}
	if t.Label != nil {
		parts = append(parts, "#"+string(*t.Label))
	}
	if t.AssigneeID != "" {
		parts = append(parts, "@"+dir.Name(t.AssigneeID))
	}
	if t.DueDate != nil {
		parts = append(parts, "due "+t.DueDateString())
	}
	return strings.Join(parts, "  ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
