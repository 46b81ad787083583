package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/kanban/models"
)

const boardFile = `# Sprint 12

## To Do

- [Design UI](./tasks/design-ui.md)
- [Set up project](./tasks/setup.md)

## In Progress!

- [Write types](tasks/types.md)

## Done
`

const designTask = `---
id: "1"
label: feature
assignee: u1
due: 2025-07-28
created: 2025-07-01T09:00:00Z
---
# Design UI

Sketch the board layout.

Include the filter bar.
`

const setupTask = `---
label: Improvement
assignee: u2
---
# Set up project

Initialize the repo.
`

const typesTask = `# Write types

Define the shared models.
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func setupBoard(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "board.md"), boardFile)
	writeFile(t, filepath.Join(dir, "tasks", "design-ui.md"), designTask)
	writeFile(t, filepath.Join(dir, "tasks", "setup.md"), setupTask)
	writeFile(t, filepath.Join(dir, "tasks", "types.md"), typesTask)
	return dir
}

func TestReadBoard_Columns(t *testing.T) {
	board, err := ReadBoard(setupBoard(t))
	require.NoError(t, err)

	assert.Equal(t, "Sprint 12", board.Name)
	require.Len(t, board.Columns, 3)

	assert.Equal(t, "to-do", board.Columns[0].ID)
	assert.Equal(t, "To Do", board.Columns[0].Title)
	assert.Equal(t, "in-progress", board.Columns[1].ID)
	assert.Equal(t, "In Progress!", board.Columns[1].Title)
	assert.Equal(t, "done", board.Columns[2].ID)
	assert.Empty(t, board.Columns[2].TaskIDs)
}

func TestReadBoard_Tasks(t *testing.T) {
	board, err := ReadBoard(setupBoard(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "setup"}, board.Columns[0].TaskIDs)
	assert.Equal(t, []string{"types"}, board.Columns[1].TaskIDs)
	require.Len(t, board.Tasks, 3)

	design := board.Tasks["1"]
	require.NotNil(t, design)
	assert.Equal(t, "Design UI", design.Title)
	assert.Equal(t, "Sketch the board layout.\nInclude the filter bar.", design.Description)
	assert.Equal(t, "to-do", design.Status)
	assert.True(t, models.SameLabel(models.LabelPtr(models.LabelFeature), design.Label))
	assert.Equal(t, "u1", design.AssigneeID)
	assert.Equal(t, "2025-07-28", design.DueDateString())
	assert.True(t, design.CreatedAt.Equal(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)))

	types := board.Tasks["types"]
	require.NotNil(t, types)
	assert.Equal(t, "in-progress", types.Status)
	assert.Nil(t, types.Label)
	assert.Empty(t, types.AssigneeID)
	assert.Nil(t, types.DueDate)
	assert.False(t, types.CreatedAt.IsZero())
}

func TestReadBoard_MissingBoardFile(t *testing.T) {
	_, err := ReadBoard(t.TempDir())
	assert.Error(t, err)
}

func TestReadBoard_MissingTaskFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "board.md"), "# B\n\n## Todo\n\n- [Gone](./tasks/gone.md)\n")

	_, err := ReadBoard(dir)
	assert.Error(t, err)
}

func TestReadBoard_DuplicateTaskLink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "board.md"), "# B\n\n## Todo\n\n- [A](./tasks/a.md)\n\n## Done\n\n- [A](./tasks/a.md)\n")
	writeFile(t, filepath.Join(dir, "tasks", "a.md"), "# A\n\nbody\n")

	_, err := ReadBoard(dir)
	assert.Error(t, err)
}

func TestReadBoard_DuplicateColumn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "board.md"), "# B\n\n## Todo\n\n## todo\n")

	_, err := ReadBoard(dir)
	assert.Error(t, err)
}

func TestReadBoard_PunctuationHeading(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "board.md"), "# B\n\n## !!!\n\n## ???\n")

	board, err := ReadBoard(dir)
	require.NoError(t, err)
	require.Len(t, board.Columns, 2)
	assert.Equal(t, "!!!", board.Columns[0].ID)
	assert.Equal(t, "???", board.Columns[1].ID)
	for _, col := range board.Columns {
		assert.NotEmpty(t, col.ID)
	}
}

func TestReadBoard_LinkBeforeColumn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "board.md"), "# B\n\n[A](./tasks/a.md)\n\n## Todo\n")
	writeFile(t, filepath.Join(dir, "tasks", "a.md"), "# A\n\nbody\n")

	_, err := ReadBoard(dir)
	assert.Error(t, err)
}

func TestReadBoard_IgnoresOtherLinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "board.md"), "# B\n\n## Todo\n\nSee [docs](https://example.com).\n")

	board, err := ReadBoard(dir)
	require.NoError(t, err)
	assert.Empty(t, board.Tasks)
	assert.Empty(t, board.Columns[0].TaskIDs)
}

func TestReadTask_BadLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.md")
	writeFile(t, path, "---\nlabel: chore\n---\n# X\n")

	_, err := ReadTask(path)
	assert.Error(t, err)
}

func TestReadTask_BadDue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.md")
	writeFile(t, path, "---\ndue: tomorrow\n---\n# X\n")

	_, err := ReadTask(path)
	assert.Error(t, err)
}

func TestReadTask_Untitled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.md")
	writeFile(t, path, "just text\n")

	task, err := ReadTask(path)
	require.NoError(t, err)
	assert.Equal(t, "x", task.ID)
	assert.Equal(t, "Untitled", task.Title)
	assert.Equal(t, "just text", task.Description)
}

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantID   string
		wantBody string
	}{
		{"with frontmatter", "---\nid: abc\n---\n# T\n", "abc", "# T\n"},
		{"no frontmatter", "# T\n", "", "# T\n"},
		{"unterminated", "---\nid: abc\n# T\n", "", "---\nid: abc\n# T\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := ParseFrontmatter([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, fm.ID)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
