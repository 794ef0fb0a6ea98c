package dataformat

import (
	"fmt"
	"strings"

	"github.com/erraggy/convkit/internal/issues"
	"github.com/erraggy/convkit/internal/severity"
	"github.com/erraggy/convkit/value"
)

// csvValueColumn is the header used when rows are not mappings.
const csvValueColumn = "value"

// parseCSV reads a header line followed by data lines. Fields are split on
// every comma (quoted commas are not recognised) and trimmed. Missing
// trailing fields become "" and extra fields are dropped.
func parseCSV(text string) (value.Value, []issues.Issue) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return value.List(), nil
	}

	headers := splitCSVLine(lines[0])
	var notes []issues.Issue
	rows := make([]value.Value, 0, len(lines)-1)
	for i, line := range lines[1:] {
		fields := splitCSVLine(line)
		if len(fields) > len(headers) {
			notes = append(notes, issues.Issue{
				Path:     fmt.Sprintf("row %d", i+1),
				Message:  fmt.Sprintf("%d field(s) beyond the header were dropped", len(fields)-len(headers)),
				Severity: severity.SeverityWarning,
				Context:  "quoted commas are not supported; every comma separates fields",
			})
		}
		row := value.NewMapping()
		for j, h := range headers {
			cell := ""
			if j < len(fields) {
				cell = fields[j]
			}
			row.Set(h, value.String(cell))
		}
		rows = append(rows, value.Map(row))
	}
	return value.List(rows...), notes
}

func splitCSVLine(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// serializeCSV renders v as a header row plus one row per list item.
// A non-list value is treated as a one-element list. Nested values are
// written as compact JSON cells. Only cells holding a comma are quoted, so
// every other cell reads back unchanged through parseCSV.
func serializeCSV(v value.Value) string {
	rows := csvRows(v)
	if len(rows) == 0 {
		return ""
	}
	headers := csvHeaders(rows[0])

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvLine(headers))
	for _, row := range rows {
		record := make([]string, len(headers))
		if row.Kind() == value.KindMapping {
			for i, h := range headers {
				cell, _ := row.Get(h)
				record[i] = csvCell(cell)
			}
		} else {
			record[0] = csvCell(row)
		}
		lines = append(lines, csvLine(record))
	}
	return strings.Join(lines, "\n")
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		if strings.Contains(f, ",") {
			f = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		quoted[i] = f
	}
	return strings.Join(quoted, ",")
}

func csvRows(v value.Value) []value.Value {
	if items, ok := v.AsList(); ok {
		return items
	}
	return []value.Value{v}
}

func csvHeaders(first value.Value) []string {
	if first.Kind() == value.KindMapping && first.Len() > 0 {
		return first.Keys()
	}
	return []string{csvValueColumn}
}

func csvCell(v value.Value) string {
	if v.IsScalar() {
		return v.Text()
	}
	return serializeJSON(v, "")
}

// csvIssues reports the lossy parts of writing v as CSV.
func csvIssues(v value.Value) []issues.Issue {
	var notes []issues.Issue
	if v.Kind() != value.KindList {
		notes = append(notes, issues.Issue{
			Path:     "root",
			Message:  "top-level " + v.Kind().String() + " written as a single CSV row",
			Severity: severity.SeverityInfo,
		})
	}
	rows := csvRows(v)
	if len(rows) == 0 {
		return notes
	}
	headers := csvHeaders(rows[0])
	known := make(map[string]bool, len(headers))
	for _, h := range headers {
		known[h] = true
	}
	for i, row := range rows {
		path := fmt.Sprintf("root[%d]", i)
		if row.Kind() != value.KindMapping {
			if !row.IsScalar() {
				notes = append(notes, flattenedIssue(path))
			}
			continue
		}
		for _, key := range row.Keys() {
			cell, _ := row.Get(key)
			switch {
			case !known[key]:
				notes = append(notes, issues.Issue{
					Path:     path + "." + key,
					Message:  "key is not in the header row and was dropped",
					Severity: severity.SeverityWarning,
					Context:  "the header is taken from the first row",
				})
			case !cell.IsScalar():
				notes = append(notes, flattenedIssue(path+"."+key))
			}
		}
	}
	return notes
}

func flattenedIssue(path string) issues.Issue {
	return issues.Issue{
		Path:     path,
		Message:  "nested value flattened into a JSON cell",
		Severity: severity.SeverityWarning,
		Context:  "CSV cells hold scalars only",
	}
}
