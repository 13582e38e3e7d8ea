package domain

// LookupSession owns the loaded record set and the current selection.
// The selection is a row number into the current set and never outlives it:
// Replace drops any selection.
type LookupSession struct {
	records  *RecordSet
	selected int // 0 means nothing selected
}

// NewLookupSession creates a session with an empty record set
func NewLookupSession() *LookupSession {
	return &LookupSession{records: EmptyRecordSet()}
}

// Records returns the current record set
func (s *LookupSession) Records() *RecordSet {
	return s.records
}

// Replace swaps in a freshly loaded record set and clears the selection
func (s *LookupSession) Replace(records *RecordSet) {
	if records == nil {
		records = EmptyRecordSet()
	}
	s.records = records
	s.selected = 0
}

// Select marks the record at the given source row as selected
func (s *LookupSession) Select(row int) (ScriptRecord, error) {
	record, ok := s.records.ByRow(row)
	if !ok {
		return ScriptRecord{}, ErrRecordNotFound
	}
	s.selected = row
	return record, nil
}

// Selected returns the selected record, or nil when nothing is selected
func (s *LookupSession) Selected() *ScriptRecord {
	if s.selected == 0 {
		return nil
	}
	record, ok := s.records.ByRow(s.selected)
	if !ok {
		return nil
	}
	return &record
}

// HasSelection reports whether a record is selected
func (s *LookupSession) HasSelection() bool {
	return s.Selected() != nil
}

// Clear drops the selection
func (s *LookupSession) Clear() {
	s.selected = 0
}
