package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/catalog"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/evaluation"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/responses"
)

// Options controls a full report generation run.
type Options struct {
	OutJSONPath   string
	OutMDPath     string
	OutHTMLPath   string
	ChecksumsPath string
	RunLogPath    string
	WriteHTML     bool
}

// Generate evaluates the answers and writes every requested artifact: the
// JSON report, the Markdown rendering, the HTML export, the checksum
// manifest and the run log. An HTML rendering failure is logged and skipped
// rather than failing the run; the JSON and Markdown artifacts are the
// contract.
func Generate(cat *catalog.Catalog, ans responses.Answers, now time.Time, opts Options) (Report, error) {
	if strings.TrimSpace(opts.OutJSONPath) == "" {
		opts.OutJSONPath = "report.json"
	}
	if strings.TrimSpace(opts.ChecksumsPath) == "" {
		opts.ChecksumsPath = DefaultChecksumsPath(opts.OutJSONPath)
	}
	if strings.TrimSpace(opts.RunLogPath) == "" {
		opts.RunLogPath = DefaultRunLogPath(opts.OutJSONPath)
	}

	runLog, err := OpenRunLog(opts.RunLogPath)
	if err != nil {
		return Report{}, fmt.Errorf("opening run log: %w", err)
	}
	defer runLog.Close()

	rep := New(evaluation.Evaluate(cat, ans, now), now)
	runLog.Info("evaluation_completed", map[string]interface{}{
		"report_id": rep.ReportID,
		"iso":       rep.Result.ISO.Overall,
		"legal":     rep.Result.Regulation.Overall,
		"combinado": rep.Result.Combined,
	})

	if err := WriteJSON(opts.OutJSONPath, rep); err != nil {
		return rep, fmt.Errorf("writing %s: %w", opts.OutJSONPath, err)
	}
	artifacts := []string{opts.OutJSONPath}

	md := BuildMarkdown(rep, cat)
	if strings.TrimSpace(opts.OutMDPath) != "" {
		if err := WriteMarkdown(opts.OutMDPath, md); err != nil {
			return rep, fmt.Errorf("writing %s: %w", opts.OutMDPath, err)
		}
		artifacts = append(artifacts, opts.OutMDPath)
	}

	if opts.WriteHTML && strings.TrimSpace(opts.OutHTMLPath) != "" {
		if err := WriteHTML(opts.OutHTMLPath, md); err != nil {
			runLog.Warn("html_render_failed", map[string]interface{}{"error": err.Error()})
		} else {
			artifacts = append(artifacts, opts.OutHTMLPath)
		}
	}

	if err := WriteChecksums(opts.ChecksumsPath, artifacts); err != nil {
		return rep, fmt.Errorf("writing checksums: %w", err)
	}
	runLog.Info("artifacts_written", map[string]interface{}{"count": len(artifacts)})
	return rep, nil
}
