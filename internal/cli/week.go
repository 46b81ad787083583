package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"taskboard/internal/agenda"
	"taskboard/internal/kanban/models"
	"taskboard/internal/users"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Print tasks due in the next seven days",
	Args:  cobra.NoArgs,
	RunE:  runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	printWeek(cmd.OutOrStdout(), s.ctrl.Board(), s.users, time.Now())
	return nil
}

func printWeek(w io.Writer, board *models.Board, dir *users.Directory, today time.Time) {
	if agenda.HasDueOrOverdue(board, today) {
		alertColor.Fprintln(w, "You have tasks due today or overdue!")
		fmt.Fprintln(w)
	}

	if overdue := agenda.Overdue(board, today); len(overdue) > 0 {
		alertColor.Fprintln(w, "Overdue")
		for _, item := range overdue {
			fmt.Fprintf(w, "  %s  %s\n", item.Date.Format(models.DateLayout), formatItem(item, dir))
		}
		fmt.Fprintln(w)
	}

	for _, bucket := range agenda.Week(board, today) {
		header := bucket.Date.Format("Mon Jan 2")
		if bucket.IsToday(today) {
			todayColor.Fprintln(w, header+" (today)")
		} else {
			headerColor.Fprintln(w, header)
		}
		if len(bucket.Items) == 0 {
			fmt.Fprintln(w, "  -")
			continue
		}
		for _, item := range bucket.Items {
			fmt.Fprintf(w, "  %s\n", formatItem(item, dir))
		}
	}
}

func formatItem(item agenda.AgendaItem, dir *users.Directory) string {
	return fmt.Sprintf("%s [%s]", formatTask(item.Task, dir), item.ColumnTitle)
}
