package fs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"taskboard/internal/kanban/models"
)

// Frontmatter is the YAML header of a task file
type Frontmatter struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Assignee string `yaml:"assignee"`
	Due      string `yaml:"due"`
	Created  string `yaml:"created"`
}

// ReadTask reads a task file and parses its frontmatter and content.
// Status is left empty for the caller to fill in.
func ReadTask(taskPath string) (models.Task, error) {
	content, err := os.ReadFile(taskPath)
	if err != nil {
		return models.Task{}, err
	}

	fm, body, err := ParseFrontmatter(content)
	if err != nil {
		return models.Task{}, err
	}

	id := fm.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(taskPath), filepath.Ext(taskPath))
	}

	label, ok := models.ParseLabel(fm.Label)
	if !ok {
		return models.Task{}, fmt.Errorf("unknown label %q", fm.Label)
	}

	dueDate, err := models.ParseDate(fm.Due)
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid due date %q: %w", fm.Due, err)
	}

	createdAt, err := parseCreated(fm.Created)
	if err != nil {
		return models.Task{}, err
	}
	if createdAt.IsZero() {
		if info, err := os.Stat(taskPath); err == nil {
			createdAt = info.ModTime()
		}
	}

	return models.Task{
		ID:          id,
		Title:       extractTitle(body),
		Description: extractDescription(body),
		Label:       label,
		AssigneeID:  fm.Assignee,
		DueDate:     dueDate,
		CreatedAt:   createdAt,
	}, nil
}

// ParseFrontmatter splits YAML frontmatter from markdown content. Content
// without frontmatter yields an empty Frontmatter and the whole content.
func ParseFrontmatter(content []byte) (Frontmatter, string, error) {
	lines := bytes.Split(content, []byte("\n"))

	// Check if content starts with ---
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return Frontmatter{}, string(content), nil
	}

	// Find the closing ---
	var frontmatterEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == 0 {
		return Frontmatter{}, string(content), nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:frontmatterEnd], []byte("\n")), &fm); err != nil {
		return Frontmatter{}, "", fmt.Errorf("parsing frontmatter: %w", err)
	}

	body := bytes.Join(lines[frontmatterEnd+1:], []byte("\n"))
	return fm, string(body), nil
}

func parseCreated(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(models.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid created time %q", s)
	}
	return t, nil
}

func extractTitle(markdown string) string {
	reader := text.NewReader([]byte(markdown))
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading := n.(*ast.Heading)
			if heading.Level == 1 {
				title = string(n.Text([]byte(markdown)))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	if title == "" {
		title = "Untitled"
	}

	return title
}

// extractDescription joins the text of every paragraph, one per line
func extractDescription(markdown string) string {
	reader := text.NewReader([]byte(markdown))
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var paragraphs []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if n.Kind() == ast.KindHeading {
			return ast.WalkSkipChildren, nil
		}

		if n.Kind() == ast.KindParagraph {
			if para := strings.TrimSpace(string(n.Text([]byte(markdown)))); para != "" {
				paragraphs = append(paragraphs, para)
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.Join(paragraphs, "\n")
}
