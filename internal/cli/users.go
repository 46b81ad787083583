package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"taskboard/internal/users"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the users tasks can be assigned to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		printUsers(cmd.OutOrStdout(), s.users)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}

func printUsers(w io.Writer, dir *users.Directory) {
	for _, u := range dir.All() {
		fmt.Fprintf(w, "%-4s %s\n", u.ID, u.Name)
	}
}
