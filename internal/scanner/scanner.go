package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"taskboard/internal/logs"
)

// BoardFile is the file that marks a directory as a board seed
const BoardFile = "board.md"

// BoardInfo describes a board directory found during a scan
type BoardInfo struct {
	Path string
	Name string // directory name, relative to the scan root
}

// FindBoards walks rootDir and returns every directory holding a board.md.
// Hidden and build directories are skipped, as are tasks/ directories
// that belong to a board.
func FindBoards(rootDir string) ([]BoardInfo, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", rootDir, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", rootDir)
	}

	var boards []BoardInfo
	if err := walkBoards(absRoot, absRoot, &boards); err != nil {
		return nil, err
	}

	sort.Slice(boards, func(i, j int) bool {
		return boards[i].Name < boards[j].Name
	})

	logs.Logger.Debugf("scanned %s: %d board(s)", absRoot, len(boards))
	return boards, nil
}

// IsBoardDir reports whether dir directly contains a board.md
func IsBoardDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, BoardFile))
	return err == nil && !info.IsDir()
}

func walkBoards(dir, rootDir string, boards *[]BoardInfo) error {
	if IsBoardDir(dir) {
		name, err := filepath.Rel(rootDir, dir)
		if err != nil {
			name = filepath.Base(dir)
		}
		if name == "." {
			name = filepath.Base(dir)
		}
		*boards = append(*boards, BoardInfo{Path: dir, Name: filepath.ToSlash(name)})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() || shouldSkipDir(entry.Name()) {
			continue
		}
		// tasks/ holds a board's task files, never nested boards
		if entry.Name() == "tasks" && IsBoardDir(dir) {
			continue
		}
		if err := walkBoards(filepath.Join(dir, entry.Name()), rootDir, boards); err != nil {
			return err
		}
	}

	return nil
}

// ResolveSeed turns a --seed argument into a board directory. A path that is
// itself a board is returned unchanged; otherwise the path is scanned and must
// contain exactly one board.
func ResolveSeed(path string) (string, error) {
	if IsBoardDir(path) {
		return path, nil
	}

	boards, err := FindBoards(path)
	if err != nil {
		return "", err
	}

	switch len(boards) {
	case 0:
		return "", fmt.Errorf("no %s found under %s", BoardFile, path)
	case 1:
		return boards[0].Path, nil
	}

	names := make([]string, len(boards))
	for i, b := range boards {
		names[i] = b.Name
	}
	return "", fmt.Errorf("%d boards found under %s, pick one of: %s", len(boards), path, strings.Join(names, ", "))
}

// shouldSkipDir returns true for directories that should be skipped during scanning
func shouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "node_modules", "vendor", "__pycache__", "target", "build", "dist":
		return true
	}
	return false
}
