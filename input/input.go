// Package input reads puzzle input files and resolves the repository's
// inputs/input<day>.txt naming convention.
package input

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is the directory searched for day inputs when no explicit path
// is given.
const DefaultDir = "inputs"

// DefaultPath returns the conventional input location for a day:
// inputs/input<day>.txt relative to the working directory.
func DefaultPath(day int) string {
	return filepath.Join(DefaultDir, fmt.Sprintf("input%d.txt", day))
}

// Resolve picks the explicit path when given, falling back to DefaultPath.
func Resolve(day int, explicit string) string {
	if explicit != "" {
		return explicit
	}

	return DefaultPath(day)
}

// ReadLines reads the file at path and returns its lines without trailing
// newlines. A missing or unreadable file surfaces as a wrapped *fs.PathError.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	// Some days ship long single-line inputs; grow past the default 64 KiB cap.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}

	return lines, nil
}
