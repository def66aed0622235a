package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	log := NewLog(dir)

	require.NoError(t, log.Record("create_account", "1010 Cash", "acct-1"))
	require.NoError(t, log.Record("clear", "all data cleared", ""))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "create_account", entries[0].Action)
	assert.Equal(t, "1010 Cash", entries[0].Details)
	assert.Equal(t, "acct-1", entries[0].RefID)
	assert.WithinDuration(t, time.Now().UTC(), entries[0].Timestamp, time.Minute)
	assert.Equal(t, "clear", entries[1].Action)
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestMarshalUnmarshalEntry(t *testing.T) {
	e := Entry{
		Timestamp: time.Date(2024, 2, 14, 9, 30, 0, 0, time.UTC),
		Action:    "import",
		Details:   "state replaced, with a comma",
		RefID:     "",
	}

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)

	_, err = UnmarshalEntry([]string{"too", "short"})
	assert.Error(t, err)
}
