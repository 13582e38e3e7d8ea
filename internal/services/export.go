package services

import (
	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/ports"
)

// ExportResult carries the exported text whether or not the clipboard accepted it
type ExportResult struct {
	ClipboardErr error
	Copied       bool
	Text         string
}

// ExportService renders the detail form as text and places it on the clipboard
type ExportService struct {
	clipboard ports.Clipboard
}

// NewExportService creates a new ExportService
func NewExportService(clipboard ports.Clipboard) *ExportService {
	return &ExportService{clipboard: clipboard}
}

// Copy exports fields for the selected record.
// Clipboard failures are not errors: the text is returned for manual copying.
func (s *ExportService) Copy(session *domain.LookupSession, fields []domain.FieldValue) (ExportResult, error) {
	if session == nil || !session.HasSelection() {
		return ExportResult{}, domain.ErrNoSelection
	}
	if len(fields) == 0 {
		return ExportResult{}, domain.ErrNoFields
	}

	result := ExportResult{Text: domain.ExportText(fields)}
	if s.clipboard == nil {
		result.ClipboardErr = domain.ErrClipboardDenied
		return result, nil
	}

	if err := s.clipboard.WriteText(result.Text); err != nil {
		logging.Logger.Warn("Clipboard write failed, showing text for manual copy", "error", err)
		result.ClipboardErr = err
		return result, nil
	}

	result.Copied = true
	logging.Logger.Debug("Form copied to clipboard", "fields", len(fields))
	return result, nil
}
