package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"To-Do", "to-do"},
		{"In Progress!", "in-progress"},
		{"  Done  ", "done"},
		{"QA / Review", "qa-review"},
		{"snake_case", "snake-case"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.input), tt.input)
	}
}

func TestUniqueID(t *testing.T) {
	taken := map[string]bool{"Review": true, "Review-2": true}
	assert.Equal(t, "Review-3", UniqueID("Review", func(s string) bool { return taken[s] }))
	assert.Equal(t, "Done", UniqueID("Done", func(s string) bool { return taken[s] }))
}
