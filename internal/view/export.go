package view

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/ticket-browser/internal/domain"
)

const csvHeader = "ID,Title,Description,Status,Priority,Queue,Language"

// WriteCSV writes tickets as CSV. Title and description are always quoted;
// the remaining text fields are quoted only when they need it. Rows are
// newline-separated with no trailing newline.
func WriteCSV(w io.Writer, tickets []domain.Ticket) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(csvHeader)
	for _, t := range tickets {
		bw.WriteByte('\n')
		fields := []string{
			strconv.FormatInt(t.ID, 10),
			quoteField(t.Title),
			quoteField(t.Description),
			optionalField(t.Status),
			optionalField(t.Priority),
			optionalField(t.Queue),
			optionalField(t.Language),
		}
		bw.WriteString(strings.Join(fields, ","))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func optionalField(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quoteField(s)
	}
	return s
}

// ExportFilename names an export file after the UTC date of now.
func ExportFilename(now time.Time) string {
	return "tickets_export_" + now.UTC().Format(time.DateOnly) + ".csv"
}

// writeExport creates the export file in dir and returns its path.
func writeExport(dir string, now time.Time, tickets []domain.Ticket) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}
	path := filepath.Join(dir, ExportFilename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if err := WriteCSV(f, tickets); err != nil {
		f.Close()
		return "", fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return path, nil
}
