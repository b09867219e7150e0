package report

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteJSON persists the report envelope as indented JSON, creating parent
// directories as needed.
func WriteJSON(path string, r Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, b)
}

// WriteMarkdown persists the Markdown rendering of a report.
func WriteMarkdown(path, markdown string) error {
	return writeFile(path, []byte(markdown))
}

func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
