package domain

import "strings"

// RecordSet is an immutable, source-ordered collection of script records.
// Reloading produces a new RecordSet; an existing one is never modified.
type RecordSet struct {
	byRow   map[int]int
	records []ScriptRecord
}

// NewRecordSet builds a record set, copying the input slice
func NewRecordSet(records []ScriptRecord) *RecordSet {
	copied := make([]ScriptRecord, len(records))
	copy(copied, records)

	byRow := make(map[int]int, len(copied))
	for i, r := range copied {
		byRow[r.SourceRow] = i
	}
	return &RecordSet{byRow: byRow, records: copied}
}

// EmptyRecordSet returns a set with no records
func EmptyRecordSet() *RecordSet {
	return NewRecordSet(nil)
}

// Len returns the number of records
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// All returns a copy of the records in source order
func (s *RecordSet) All() []ScriptRecord {
	if s == nil {
		return nil
	}
	result := make([]ScriptRecord, len(s.records))
	copy(result, s.records)
	return result
}

// ByRow looks up a record by its source row number
func (s *RecordSet) ByRow(row int) (ScriptRecord, bool) {
	if s == nil {
		return ScriptRecord{}, false
	}
	i, ok := s.byRow[row]
	if !ok {
		return ScriptRecord{}, false
	}
	return s.records[i], true
}

// Search returns records whose title contains the query (case-insensitive).
// A blank query returns every record.
func (s *RecordSet) Search(query string) []ScriptRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}

	var result []ScriptRecord
	if s == nil {
		return result
	}
	for _, r := range s.records {
		if strings.Contains(strings.ToLower(r.Title), q) {
			result = append(result, r)
		}
	}
	return result
}
