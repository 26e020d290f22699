package export

import (
	"bytes"
	"fmt"
	"strings"
)

// TextExporter renders datasets as fixed-width plain text, suitable for
// email bodies or clipboard copy.
type TextExporter struct{}

// NewTextExporter constructs a text exporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Render produces an aligned plain-text table with an optional title.
func (e *TextExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("text export requires at least one header")
	}

	widths := make([]int, len(data.Headers))
	for i, header := range data.Headers {
		widths[i] = len(header)
	}
	for _, row := range data.Rows {
		for i, header := range data.Headers {
			if l := len(row[header]); l > widths[i] {
				widths[i] = l
			}
		}
	}

	buf := &bytes.Buffer{}
	if title != "" {
		buf.WriteString(title + "\n")
		buf.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	}

	writeLine := func(values []string) {
		cells := make([]string, len(values))
		for i, value := range values {
			cells[i] = fmt.Sprintf("%-*s", widths[i], value)
		}
		buf.WriteString(strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}

	writeLine(data.Headers)
	separators := make([]string, len(data.Headers))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	writeLine(separators)

	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		writeLine(record)
	}

	return buf.Bytes(), nil
}
