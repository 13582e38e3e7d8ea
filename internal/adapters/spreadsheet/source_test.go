package spreadsheet

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/callscripts/guion/internal/domain"
)

func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow(sheet, cellRef, &cells))
	}

	var buf bytes.Buffer
	require.NoError(t, book.Write(&buf))
	return buf.Bytes()
}

func TestFileSource_ReadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, os.WriteFile(path, buildWorkbook(t, [][]string{
		{"Billing Issue", "Plan:Which plan?"},
		{"Password reset"},
	}), 0644))

	source := NewFileSource(path)
	rows, err := source.ReadRows(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Billing Issue", rows[0][0])
	assert.Equal(t, "Plan:Which plan?", rows[0][1])
	assert.Equal(t, "Password reset", rows[1][0])
	assert.Equal(t, path, source.Location())
}

func TestFileSource_MissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "missing.xlsx"))

	_, err := source.ReadRows(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestFileSource_NotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	_, err := NewFileSource(path).ReadRows(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestHTTPSource_ReadRows(t *testing.T) {
	workbook := buildWorkbook(t, [][]string{{"Remote script"}})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		_, _ = w.Write(workbook)
	}))
	defer server.Close()

	rows, err := NewHTTPSource(server.URL, server.Client()).ReadRows(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Remote script", rows[0][0])
}

func TestHTTPSource_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPSource(server.URL, nil).ReadRows(context.Background())

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "404")
}

func TestNewHTTPSource_DefaultClientHasNoTimeout(t *testing.T) {
	source := NewHTTPSource("https://example.com/data.xlsx", nil)

	assert.Same(t, http.DefaultClient, source.client)
	assert.Zero(t, source.client.Timeout)
}

func TestNewSource(t *testing.T) {
	assert.IsType(t, &HTTPSource{}, NewSource("https://example.com/data.xlsx"))
	assert.IsType(t, &HTTPSource{}, NewSource("HTTP://example.com/data.xlsx"))
	assert.IsType(t, &FileSource{}, NewSource("/tmp/data.xlsx"))
}
