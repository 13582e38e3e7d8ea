package domain

import "time"

// Fixed detail form labels
const (
	LabelContactReason = "Contact reason"
	LabelDateTime      = "Date and time"
	LabelID            = "ID"
	LabelIDNumber      = "ID number"
	LabelNotes         = "Notes"
	LabelPhoneNumbers  = "Phone numbers"
	LabelProbe         = "Probe"
	LabelProcess       = "Process"
)

// DefaultTimestampLayout renders the live "Date and time" field
const DefaultTimestampLayout = "2006-01-02 15:04:05"

// FormFieldDescriptor describes one input of the detail form.
// Label is also the key used when the form is exported as text.
type FormFieldDescriptor struct {
	InitialValue    string
	Label           string
	LiveUpdating    bool // Only the timestamp field
	Multiline       bool
	Placeholder     string
	ReadOnly        bool
	SeparatorBefore bool // Render a divider before this field
}

// FormatTimestamp renders t with layout, falling back to DefaultTimestampLayout
func FormatTimestamp(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	return t.Local().Format(layout)
}

// BuildDetailForm produces the ordered field list for a selected record.
// A nil record yields no fields.
func BuildDetailForm(record *ScriptRecord, now time.Time, timestampLayout string) []FormFieldDescriptor {
	if record == nil {
		return nil
	}

	fields := []FormFieldDescriptor{
		{
			Label:        LabelDateTime,
			InitialValue: FormatTimestamp(now, timestampLayout),
			ReadOnly:     true,
			LiveUpdating: true,
		},
		{Label: LabelID, Placeholder: DefaultPlaceholder(LabelID)},
		{Label: LabelIDNumber, Placeholder: DefaultPlaceholder(LabelIDNumber)},
		{Label: LabelPhoneNumbers, Placeholder: "Enter contact numbers"},
		{Label: LabelContactReason, InitialValue: record.Motive, Placeholder: DefaultPlaceholder(LabelContactReason), Multiline: true},
		{Label: LabelProbe, InitialValue: record.Probe, Placeholder: DefaultPlaceholder(LabelProbe), Multiline: true},
		{Label: LabelProcess, InitialValue: record.Process, Placeholder: DefaultPlaceholder(LabelProcess), Multiline: true},
	}

	for i, spec := range ParseFieldSpec(record.ExtraFieldsSpec) {
		fields = append(fields, FormFieldDescriptor{
			Label:           spec.Label,
			Placeholder:     spec.Placeholder,
			SeparatorBefore: i == 0,
		})
	}

	fields = append(fields, FormFieldDescriptor{
		Label:           LabelNotes,
		Placeholder:     DefaultPlaceholder(LabelNotes),
		Multiline:       true,
		SeparatorBefore: true,
	})

	return fields
}
