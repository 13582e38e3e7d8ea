package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/callscripts/guion/internal/domain"
	portsmocks "github.com/callscripts/guion/internal/ports/mocks"
)

func agentRows() [][]string {
	return [][]string{
		{"ID", "Name"},
		{"12.345.678-K", "  Ana Pérez "},
		{"99999999", ""},
		{"11111111"},
	}
}

func TestAgentDirectory_LookupName(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
		wantErr  error
	}{
		{name: "normalized match", id: "12345678k", expected: "Ana Pérez"},
		{name: "unknown", id: "00000000", wantErr: domain.ErrLookupNotFound},
		{name: "empty name", id: "99999999", wantErr: domain.ErrLookupNotFound},
		{name: "missing name cell", id: "11111111", wantErr: domain.ErrLookupNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := portsmocks.NewMockSheetSource(t)
			source.EXPECT().ReadRows(mock.Anything).Return(agentRows(), nil)

			name, err := NewAgentDirectory(source).LookupName(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestAgentDirectory_SourceUnavailable(t *testing.T) {
	source := portsmocks.NewMockSheetSource(t)
	source.EXPECT().ReadRows(mock.Anything).Return(nil, errors.New("404"))
	source.EXPECT().Location().Return("agents.xlsx")

	_, err := NewAgentDirectory(source).LookupName(context.Background(), "x")

	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}
