package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var htmlRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

const htmlShell = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Reporte de Evaluación de Madurez en Gobernanza de IA</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 2em auto; padding: 0 1em; color: #222; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
th { background: #f0f0f0; }
code { background: #f5f5f5; padding: 0.1em 0.3em; }
</style>
</head>
<body>
%s</body>
</html>
`

// RenderHTML converts the report's Markdown rendering into a standalone
// HTML document.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := htmlRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return fmt.Sprintf(htmlShell, buf.String()), nil
}

// WriteHTML renders and writes the HTML export, creating parent
// directories as needed.
func WriteHTML(path, markdown string) error {
	html, err := RenderHTML(markdown)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	return os.WriteFile(path, []byte(html), 0o644)
}
