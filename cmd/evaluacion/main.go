package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/catalog"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/report"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/responses"
)

func main() {
	var answers string
	var orgType string
	var catalogDir string
	var outJSON string
	var outMD string
	var outHTML string
	var checksumsPath string
	var runLogPath string
	var noHTML bool

	flag.StringVar(&answers, "answers", "", "Answers as a query string (q1=3&q2=5...), or @file to read one from disk")
	flag.StringVar(&orgType, "organization-type", "", "Organization type id for the deadline countdown")
	flag.StringVar(&catalogDir, "catalog-dir", "", "Directory with catalog YAML files (default: embedded catalog)")
	flag.StringVar(&outJSON, "out-json", "report.json", "Output report.json path")
	flag.StringVar(&outMD, "out-md", "report.md", "Output report.md path")
	flag.StringVar(&outHTML, "out-html", "report.html", "Output report.html path")
	flag.StringVar(&checksumsPath, "checksums", "", "Output checksums.sha256 path (default next to out-json)")
	flag.StringVar(&runLogPath, "run-log", "", "Output run log path (default next to out-json)")
	flag.BoolVar(&noHTML, "no-html", false, "Disable report.html output")
	flag.Parse()

	raw := answers
	if strings.HasPrefix(raw, "@") {
		b, err := os.ReadFile(strings.TrimPrefix(raw, "@"))
		if err != nil {
			fmt.Fprintln(os.Stderr, "evaluacion error:", err)
			os.Exit(2)
		}
		raw = strings.TrimSpace(string(b))
	}
	ans, err := responses.ParseQueryString(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "evaluacion error: invalid answers:", err)
		os.Exit(2)
	}
	if orgType != "" {
		ans.OrganizationType = orgType
	}

	var cat *catalog.Catalog
	if catalogDir != "" {
		cat, err = catalog.LoadDir(catalogDir)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "evaluacion error:", err)
		os.Exit(2)
	}

	rep, err := report.Generate(cat, ans, time.Now(), report.Options{
		OutJSONPath:   outJSON,
		OutMDPath:     outMD,
		OutHTMLPath:   outHTML,
		ChecksumsPath: checksumsPath,
		RunLogPath:    runLogPath,
		WriteHTML:     !noHTML,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "evaluacion error:", err)
		os.Exit(2)
	}
	fmt.Printf("iso=%.1f legal=%.1f combinado=%.1f report=%s\n",
		rep.Result.ISO.Overall, rep.Result.Regulation.Overall, rep.Result.Combined, outJSON)
}
