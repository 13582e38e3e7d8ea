package ports

import "context"

// SheetSource reads the first sheet of a spreadsheet as a row matrix
type SheetSource interface {
	// ReadRows returns every row of the first sheet, cells as text.
	// Rows may have different lengths; trailing empty cells can be absent.
	ReadRows(ctx context.Context) ([][]string, error)

	// Location describes where the rows come from (path or URL)
	Location() string
}
