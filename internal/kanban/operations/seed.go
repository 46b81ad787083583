package operations

import (
	"time"

	"taskboard/internal/kanban/models"
)

// IntakeColumnID is the column new tasks are created in by default
const IntakeColumnID = "todo"

// SeedBoard returns the built-in starting board
func SeedBoard(now time.Time) *models.Board {
	date := func(s string) *time.Time {
		d, _ := models.ParseDate(s)
		return d
	}

	board := models.NewBoard("Board",
		models.Column{ID: "todo", Title: "To-Do", TaskIDs: []string{"1", "2"}},
		models.Column{ID: "in-progress", Title: "In-Progress", TaskIDs: []string{"3"}},
		models.Column{ID: "done", Title: "Done", TaskIDs: []string{}},
	)

	board.Tasks["1"] = &models.Task{
		ID:          "1",
		Title:       "Design UI",
		Description: "Sketch the first version of the board UI.",
		Status:      "todo",
		CreatedAt:   now,
		Label:       models.LabelPtr(models.LabelFeature),
		AssigneeID:  "u1",
		DueDate:     date("2025-07-28"),
	}
	board.Tasks["2"] = &models.Task{
		ID:          "2",
		Title:       "Set up project",
		Description: "Initialize the project layout and tooling.",
		Status:      "todo",
		CreatedAt:   now,
		Label:       models.LabelPtr(models.LabelImprovement),
		AssigneeID:  "u2",
	}
	board.Tasks["3"] = &models.Task{
		ID:          "3",
		Title:       "Write types",
		Description: "Define the types for tasks and columns.",
		Status:      "in-progress",
		CreatedAt:   now,
		Label:       models.LabelPtr(models.LabelBug),
		AssigneeID:  "u3",
		DueDate:     date("2025-08-01"),
	}

	return board
}

// EmptyBoard returns a board with a single empty intake column
func EmptyBoard() *models.Board {
	return models.NewBoard("Board", models.Column{ID: IntakeColumnID, Title: "To-Do", TaskIDs: []string{}})
}
