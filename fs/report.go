package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ReportWriter saves generated reports as markdown files in a directory.
type ReportWriter struct {
	dir string
}

// NewReportWriter creates a writer rooted at the given directory.
func NewReportWriter(dir string) *ReportWriter {
	return &ReportWriter{dir: dir}
}

// Write saves a report named after the run timestamp and returns its path.
func (w *ReportWriter) Write(report string, ts time.Time) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, fmt.Sprintf("report_%s.md", ts.UTC().Format(versionTimeFormat)))
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return "", err
	}
	return path, nil
}
