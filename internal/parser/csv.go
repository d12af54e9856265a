// Package parser decodes imported checklist data: comma-separated response
// sheets and master requirement documents.
package parser

import (
	"regexp"
	"strings"
)

var lineBreakRe = regexp.MustCompile(`\r?\n`)

// Row maps header names to the raw text of one data line.
type Row map[string]string

// ParseCSV parses comma-separated text whose first line is a header row.
// Quoted fields may contain commas; doubled quotes inside a quoted field are
// unescaped. Nothing is coerced, and malformed quoting never fails: the scan
// simply keeps going with whatever quote state it ends up in.
func ParseCSV(text string) []Row {
	if text == "" {
		return nil
	}
	lines := lineBreakRe.Split(text, -1)
	if len(lines) < 2 {
		return nil
	}

	headers := parseLine(lines[0])

	var rows []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := parseLine(line)
		if len(values) == 1 && values[0] == "" {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(values) {
				row[h] = values[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// parseLine splits one line into fields in a single pass, tracking whether
// the scan is inside a quoted section.
func parseLine(line string) []string {
	var fields []string
	start := 0
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				fields = append(fields, unquote(line[start:i]))
				start = i + 1
			}
		}
	}
	return append(fields, unquote(line[start:]))
}

// unquote trims a raw field and strips one pair of surrounding quotes.
func unquote(field string) string {
	f := strings.TrimSpace(field)
	if len(f) >= 2 && f[0] == '"' && f[len(f)-1] == '"' {
		return strings.ReplaceAll(f[1:len(f)-1], `""`, `"`)
	}
	return f
}
