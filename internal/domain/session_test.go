package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSession_SelectAndReplace(t *testing.T) {
	session := NewLookupSession()
	assert.False(t, session.HasSelection())
	assert.Equal(t, 0, session.Records().Len())

	session.Replace(NewRecordSet([]ScriptRecord{{Title: "A", SourceRow: 2}}))

	_, err := session.Select(1)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Nil(t, session.Selected())

	record, err := session.Select(2)
	require.NoError(t, err)
	assert.Equal(t, "A", record.Title)
	require.NotNil(t, session.Selected())

	session.Replace(NewRecordSet([]ScriptRecord{{Title: "B", SourceRow: 2}}))
	assert.Nil(t, session.Selected(), "reload must drop the selection")
}

func TestLookupSession_Clear(t *testing.T) {
	session := NewLookupSession()
	session.Replace(NewRecordSet([]ScriptRecord{{Title: "A", SourceRow: 1}}))
	_, _ = session.Select(1)

	session.Clear()
	session.Clear()

	assert.False(t, session.HasSelection())
}

func TestLookupSession_ReplaceNil(t *testing.T) {
	session := NewLookupSession()
	session.Replace(nil)
	assert.NotNil(t, session.Records())
}
