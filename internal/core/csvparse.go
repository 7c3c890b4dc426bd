package core

// csvparse.go turns the raw directory table into typed rows.
//
// The format is deliberately narrower than RFC 4180:
//   - a double quote toggles "inside quotes" and is never kept as content,
//     so a doubled "" inside a quoted field is two toggles, not a literal quote
//   - a comma inside quotes is literal, outside quotes it ends the field
//   - every field is trimmed
//
// Rows with fewer fields than the header are dropped without an error.
// Extra trailing fields are ignored.

import "strings"

// Delimiter separates fields on a line.
const Delimiter = ','

// ListDelimiter separates entries inside the Services and Eligibility cells.
const ListDelimiter = ";"

// Column names of the ingestion format, in canonical order.
const (
	ColID          = "ID"
	ColName        = "Name"
	ColCategory    = "Category"
	ColCity        = "City"
	ColAddress     = "Address"
	ColPhone       = "Phone"
	ColWebsite     = "Website"
	ColStatus      = "Status"
	ColServices    = "Services"
	ColEligibility = "Eligibility"
	ColDescription = "Description"
)

// Columns is the canonical header of the ingestion format.
var Columns = []string{
	ColID, ColName, ColCategory, ColCity, ColAddress, ColPhone,
	ColWebsite, ColStatus, ColServices, ColEligibility, ColDescription,
}

// HeaderIndex maps column names (lowercase) to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a header row.
// Keys are lowercased for case-insensitive matching.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

// Schema describes the header a table was parsed against.
type Schema struct {
	Header []string
	Index  HeaderIndex
}

// Arity is the number of fields a row must have to be accepted.
func (s Schema) Arity() int {
	return len(s.Header)
}

// cell returns the value of the named column, or "" when the header
// does not contain it.
func (s Schema) cell(fields []string, column string) string {
	pos, ok := s.Index[strings.ToLower(column)]
	if !ok || pos >= len(fields) {
		return ""
	}
	return fields[pos]
}

// Row is one accepted data row with every known column extracted.
// Values are trimmed but otherwise raw; normalization happens in Build.
type Row struct {
	Line        int // 1-based line number in the source text
	ID          string
	Name        string
	Category    string
	City        string
	Address     string
	Phone       string
	Website     string
	Status      string
	Services    string
	Eligibility string
	Description string
}

// Record converts raw fields into a Row. ok is false when the row has
// fewer fields than the header and must be skipped.
func (s Schema) Record(line int, fields []string) (Row, bool) {
	if len(fields) < s.Arity() {
		return Row{}, false
	}
	return Row{
		Line:        line,
		ID:          s.cell(fields, ColID),
		Name:        s.cell(fields, ColName),
		Category:    s.cell(fields, ColCategory),
		City:        s.cell(fields, ColCity),
		Address:     s.cell(fields, ColAddress),
		Phone:       s.cell(fields, ColPhone),
		Website:     s.cell(fields, ColWebsite),
		Status:      s.cell(fields, ColStatus),
		Services:    s.cell(fields, ColServices),
		Eligibility: s.cell(fields, ColEligibility),
		Description: s.cell(fields, ColDescription),
	}, true
}

// ParseLine splits one line into trimmed fields.
func ParseLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == Delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}

// ParseTable parses a header row followed by data rows. Short rows are
// skipped silently; the returned rows keep their input order.
func ParseTable(raw string) (Schema, []Row) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")

	header := ParseLine(strings.TrimRight(lines[0], "\r"))
	schema := Schema{Header: header, Index: MakeHeaderIndex(header)}

	rows := make([]Row, 0, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		fields := ParseLine(strings.TrimRight(lines[i], "\r"))
		row, ok := schema.Record(i+1, fields)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return schema, rows
}

// splitList splits a sub-list cell on ListDelimiter, dropping empties.
func splitList(cell string) []string {
	cell = strings.ReplaceAll(cell, `"`, "")
	if cell == "" {
		return []string{}
	}
	parts := strings.Split(cell, ListDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
