package domain

import "errors"

var (
	ErrClipboardDenied   = errors.New("clipboard unavailable")
	ErrLookupNotFound    = errors.New("identifier not found")
	ErrNoFields          = errors.New("no fields to copy")
	ErrNoSelection       = errors.New("no record selected")
	ErrRecordNotFound    = errors.New("record not found")
	ErrSourceUnavailable = errors.New("spreadsheet source unavailable")
	ErrStoreUnavailable  = errors.New("preference store unavailable")
)
