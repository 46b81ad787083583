package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"taskboard/internal/scanner"
)

var boardsCmd = &cobra.Command{
	Use:   "boards [dir]",
	Short: "List board directories that can be passed to --seed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		boards, err := scanner.FindBoards(root)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", root, err)
		}
		printBoards(cmd.OutOrStdout(), boards)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardsCmd)
}

func printBoards(w io.Writer, boards []scanner.BoardInfo) {
	if len(boards) == 0 {
		fmt.Fprintln(w, "No boards found")
		return
	}
	for _, b := range boards {
		fmt.Fprintf(w, "%-24s %s\n", b.Name, b.Path)
	}
}
