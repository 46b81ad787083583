package operations

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskboard/internal/kanban/models"
	"taskboard/internal/users"
)

var testNow = time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

// tickingClock advances one second per call so entry order is visible in timestamps
func tickingClock() func() time.Time {
	t := testNow
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func newTestController(t *testing.T, board *models.Board) *Controller {
	t.Helper()
	c, err := NewController(board,
		WithClock(tickingClock()),
		WithIDGenerator(counterIDs()),
		WithUsers(users.Default()),
	)
	require.NoError(t, err)
	return c
}

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func kinds(task models.Task) []models.ActivityKind {
	out := make([]models.ActivityKind, len(task.Activity))
	for i, e := range task.Activity {
		out[i] = e.Kind
	}
	return out
}
