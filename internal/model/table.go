package model

// Schema describes the columns a loaded dataset carries.
// Optional column presence is decided once, at load time.
type Schema struct {
	Columns      []string `json:"columns"`
	HasEndTime   bool     `json:"has_end_time"`
	HasGender    bool     `json:"has_gender"`
	HasBirthYear bool     `json:"has_birth_year"`
}

// NewSchema builds a schema descriptor from a header row.
func NewSchema(columns []string) Schema {
	s := Schema{Columns: append([]string(nil), columns...)}
	for _, c := range columns {
		switch c {
		case ColEndTime:
			s.HasEndTime = true
		case ColGender:
			s.HasGender = true
		case ColBirthYear:
			s.HasBirthYear = true
		}
	}
	return s
}

// Has reports whether the schema contains the named column
func (s Schema) Has(column string) bool {
	for _, c := range s.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Table is an in-memory set of trip records for one city.
// Aggregators treat it as read-only.
type Table struct {
	City   string       `json:"city"`
	Schema Schema       `json:"schema"`
	Rows   []TripRecord `json:"rows"`
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Derive returns a new table with the same city and schema holding rows.
func (t *Table) Derive(rows []TripRecord) *Table {
	return &Table{City: t.City, Schema: t.Schema, Rows: rows}
}

// Page returns up to limit rows starting at offset.
// Out-of-range offsets yield an empty page.
func (t *Table) Page(offset, limit int) []TripRecord {
	n := t.Len()
	if offset < 0 {
		offset = 0
	}
	if offset >= n || limit <= 0 {
		return []TripRecord{}
	}
	end := offset + limit
	if end > n {
		end = n
	}
	return t.Rows[offset:end]
}
