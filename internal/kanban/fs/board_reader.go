package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"taskboard/internal/kanban/models"
	"taskboard/internal/kanban/operations"
	"taskboard/internal/logs"
)

// ReadBoard reads boardPath/board.md and the task files it links to.
// H1 is the board name, each H2 starts a column and each link under it to
// a file in tasks/ adds that task to the column in order.
func ReadBoard(boardPath string) (*models.Board, error) {
	boardFilePath := filepath.Join(boardPath, "board.md")

	content, err := os.ReadFile(boardFilePath)
	if err != nil {
		return nil, err
	}

	board := models.NewBoard(filepath.Base(boardPath))

	reader := text.NewReader(content)
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var currentColumn *models.Column
	var walkErr error

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			headingText := strings.TrimSpace(string(node.Text(content)))

			if node.Level == 1 {
				board.Name = headingText
			} else if node.Level == 2 {
				if currentColumn != nil {
					board.Columns = append(board.Columns, *currentColumn)
				}
				id := operations.Slugify(headingText)
				if id == "" {
					// headings of punctuation only keep their text as id
					id = headingText
				}
				currentColumn = &models.Column{
					ID:      id,
					Title:   headingText,
					TaskIDs: []string{},
				}
			}

		case *ast.Link:
			dest := string(node.Destination)
			if !strings.HasPrefix(dest, "./tasks/") && !strings.HasPrefix(dest, "tasks/") {
				return ast.WalkContinue, nil
			}
			if currentColumn == nil {
				walkErr = fmt.Errorf("task link %s appears before any column", dest)
				return ast.WalkStop, nil
			}

			task, err := ReadTask(filepath.Join(boardPath, dest))
			if err != nil {
				walkErr = fmt.Errorf("reading %s: %w", dest, err)
				return ast.WalkStop, nil
			}
			if _, dup := board.Tasks[task.ID]; dup {
				walkErr = fmt.Errorf("duplicate task id %q in %s", task.ID, dest)
				return ast.WalkStop, nil
			}

			task.Status = currentColumn.ID
			board.Tasks[task.ID] = &task
			currentColumn.TaskIDs = append(currentColumn.TaskIDs, task.ID)
		}

		return ast.WalkContinue, nil
	})

	if walkErr != nil {
		return nil, walkErr
	}

	if currentColumn != nil {
		board.Columns = append(board.Columns, *currentColumn)
	}

	if err := operations.CheckConsistency(board); err != nil {
		return nil, fmt.Errorf("invalid board %s: %w", boardPath, err)
	}

	logs.Logger.Debugf("read board %q: %d columns, %d tasks", board.Name, len(board.Columns), len(board.Tasks))
	return board, nil
}
