package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RunLog appends JSON-lines events describing a report generation run.
// A nil RunLog discards everything, so callers never guard their calls.
type RunLog struct {
	file *os.File
	enc  *json.Encoder
}

type runEvent struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Event     string                 `json:"event"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// DefaultRunLogPath places the run log next to the JSON report.
func DefaultRunLogPath(outJSONPath string) string {
	if strings.TrimSpace(outJSONPath) == "" {
		outJSONPath = "report.json"
	}
	return filepath.Join(filepath.Dir(outJSONPath), "evaluacion.run.log")
}

// OpenRunLog opens the run log for appending, creating parent directories
// as needed.
func OpenRunLog(path string) (*RunLog, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &RunLog{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

func (l *RunLog) Close() {
	if l == nil || l.file == nil {
		return
	}
	_ = l.file.Close()
}

func (l *RunLog) Info(event string, fields map[string]interface{}) {
	l.log("INFO", event, fields)
}

func (l *RunLog) Warn(event string, fields map[string]interface{}) {
	l.log("WARN", event, fields)
}

func (l *RunLog) log(level, event string, fields map[string]interface{}) {
	if l == nil || l.enc == nil {
		return
	}
	_ = l.enc.Encode(runEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Event:     event,
		Fields:    fields,
	})
}
