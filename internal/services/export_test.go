package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscripts/guion/internal/domain"
	portsmocks "github.com/callscripts/guion/internal/ports/mocks"
)

func selectedSession(t *testing.T) *domain.LookupSession {
	t.Helper()
	session := domain.NewLookupSession()
	session.Replace(domain.NewRecordSet([]domain.ScriptRecord{{Title: "T", SourceRow: 1}}))
	_, err := session.Select(1)
	require.NoError(t, err)
	return session
}

func TestExportService_CopyPreconditions(t *testing.T) {
	clipboard := portsmocks.NewMockClipboard(t)
	service := NewExportService(clipboard)

	_, err := service.Copy(domain.NewLookupSession(), []domain.FieldValue{{Label: "ID", Value: "1"}})
	assert.ErrorIs(t, err, domain.ErrNoSelection)

	_, err = service.Copy(nil, []domain.FieldValue{{Label: "ID", Value: "1"}})
	assert.ErrorIs(t, err, domain.ErrNoSelection)

	_, err = service.Copy(selectedSession(t), nil)
	assert.ErrorIs(t, err, domain.ErrNoFields)
}

func TestExportService_CopySuccess(t *testing.T) {
	clipboard := portsmocks.NewMockClipboard(t)
	clipboard.EXPECT().WriteText("ID: 42\nNOTES:\nline1\nline2").Return(nil)

	result, err := NewExportService(clipboard).Copy(selectedSession(t), []domain.FieldValue{
		{Label: "ID", Value: "42"},
		{Label: "Notes", Value: "line1\nline2"},
	})

	require.NoError(t, err)
	assert.True(t, result.Copied)
	assert.NoError(t, result.ClipboardErr)
	assert.Equal(t, "ID: 42\nNOTES:\nline1\nline2", result.Text)
}

func TestExportService_ClipboardFailureKeepsText(t *testing.T) {
	clipboard := portsmocks.NewMockClipboard(t)
	denied := errors.Join(domain.ErrClipboardDenied, errors.New("no display"))
	clipboard.EXPECT().WriteText("ID: 42").Return(denied)

	result, err := NewExportService(clipboard).Copy(selectedSession(t), []domain.FieldValue{{Label: "ID", Value: "42"}})

	require.NoError(t, err)
	assert.False(t, result.Copied)
	assert.ErrorIs(t, result.ClipboardErr, domain.ErrClipboardDenied)
	assert.Equal(t, "ID: 42", result.Text)
}
