package songs

import "fmt"

// Answer identifies a song. Two records that name the same song by the same
// artist have equal answers even if their comments differ.
type Answer struct {
	Song   string
	Artist string
}

// String renders the answer the way options are shown to the player.
func (a Answer) String() string {
	return fmt.Sprintf("%s by %s", a.Song, a.Artist)
}

// Record is one parsed line of the song file: comment;song;artist.
type Record struct {
	// Comment is the quiz prompt and the unique key of the record.
	Comment string

	Song   string
	Artist string
}

// Answer returns the (song, artist) pair of the record.
func (r Record) Answer() Answer {
	return Answer{Song: r.Song, Artist: r.Artist}
}
