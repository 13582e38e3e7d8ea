package spreadsheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
	"github.com/callscripts/guion/internal/ports"
)

// NewSource returns an HTTP source for http(s) locations and a file source otherwise
func NewSource(location string) ports.SheetSource {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(location, nil)
	}
	return NewFileSource(location)
}

// FileSource reads the first sheet of a local workbook
type FileSource struct {
	path string
}

var _ ports.SheetSource = (*FileSource)(nil)

// NewFileSource creates a source for a workbook on disk
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Location implements SheetSource.Location
func (s *FileSource) Location() string {
	return s.path
}

// ReadRows implements SheetSource.ReadRows
func (s *FileSource) ReadRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(s.path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	defer f.Close()

	rows, err := readFirstSheet(f)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Spreadsheet loaded", "location", s.path, "rows", len(rows))
	return rows, nil
}

// HTTPSource downloads a workbook and reads its first sheet
type HTTPSource struct {
	client *http.Client
	url    string
}

var _ ports.SheetSource = (*HTTPSource)(nil)

// NewHTTPSource creates a source for a workbook served over HTTP.
// A nil client uses http.DefaultClient; requests are bounded only by the context.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{client: client, url: url}
}

// Location implements SheetSource.Location
func (s *HTTPSource) Location() string {
	return s.url
}

// ReadRows implements SheetSource.ReadRows
func (s *HTTPSource) ReadRows(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s returned %s", domain.ErrSourceUnavailable, s.url, resp.Status)
	}

	rows, err := readFirstSheet(resp.Body)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Spreadsheet downloaded", "location", s.url, "rows", len(rows))
	return rows, nil
}

func readFirstSheet(r io.Reader) ([][]string, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %w", domain.ErrSourceUnavailable, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrSourceUnavailable)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %s: %w", domain.ErrSourceUnavailable, sheets[0], err)
	}
	return rows, nil
}
