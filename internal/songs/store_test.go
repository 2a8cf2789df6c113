package songs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore(t *testing.T) *Store {
	t.Helper()
	st := NewStore()
	for _, r := range []Record{
		{Comment: "comment1", Song: "Song A", Artist: "Artist X"},
		{Comment: "comment2", Song: "Song B", Artist: "Artist Y"},
	} {
		require.True(t, st.Add(r))
	}
	return st
}

func TestRemoveArtist_LeavesArtistIndex(t *testing.T) {
	st := sampleStore(t)

	assert.Equal(t, 1, st.RemoveArtist("Artist Y"))

	assert.Equal(t, 1, st.Len())
	_, ok := st.Get("comment2")
	assert.False(t, ok)
	_, ok = st.Get("comment1")
	assert.True(t, ok)

	assert.Equal(t, []string{"Artist X", "Artist Y"}, st.Artists())
	assert.Equal(t, []string{"comment2"}, st.Comments("Artist Y"))

	// Removing again finds nothing left.
	assert.Equal(t, 0, st.RemoveArtist("Artist Y"))
}

func TestRecordsSkipsRemoved(t *testing.T) {
	st := sampleStore(t)
	require.True(t, st.Remove("comment1"))
	assert.False(t, st.Remove("comment1"))

	assert.Equal(t, []Record{{Comment: "comment2", Song: "Song B", Artist: "Artist Y"}}, st.Records())
	assert.Equal(t, []Answer{{Song: "Song B", Artist: "Artist Y"}}, st.Answers())
}

func TestAddRejectsRemovedComment(t *testing.T) {
	st := sampleStore(t)
	st.Remove("comment1")
	assert.False(t, st.Add(Record{Comment: "comment1", Song: "New", Artist: "Artist Z"}))
	assert.Equal(t, 1, st.Len())
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "Song A by Artist X", Answer{Song: "Song A", Artist: "Artist X"}.String())
}

func TestLoadedAnswersIncludeRemoved(t *testing.T) {
	st := sampleStore(t)
	st.RemoveArtist("Artist X")

	assert.Equal(t, []Answer{
		{Song: "Song A", Artist: "Artist X"},
		{Song: "Song B", Artist: "Artist Y"},
	}, st.LoadedAnswers())
	assert.Len(t, st.Answers(), 1)
}
