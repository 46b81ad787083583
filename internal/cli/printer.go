package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Colors follow the terminal: fatih/color disables itself when stdout is not
// a TTY or NO_COLOR is set.
var (
	headerColor = color.New(color.FgCyan, color.Bold)
	todayColor  = color.New(color.FgGreen, color.Bold)
	noticeColor = color.New(color.FgYellow)
	alertColor  = color.New(color.FgRed, color.Bold)
)

// printError reports a command failure on w
func printError(w io.Writer, err error) {
	alertColor.Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
}
