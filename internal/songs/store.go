package songs

// Store indexes records by comment and by artist.
//
// Removing a record only deletes it from the comment index. The artist index
// keeps listing its comments so that it always reflects the file as loaded.
type Store struct {
	records map[string]Answer
	order   []string
	loaded  map[string]Answer

	artists     map[string][]string
	artistOrder []string

	skipped []*MalformedRecordError
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]Answer),
		loaded:  make(map[string]Answer),
		artists: make(map[string][]string),
	}
}

// Add inserts a record. It returns false, leaving the store unchanged, if a
// record with the same comment was added before.
func (s *Store) Add(r Record) bool {
	// A removed record still owns its comment.
	if _, exists := s.loaded[r.Comment]; exists {
		return false
	}

	s.loaded[r.Comment] = r.Answer()
	s.records[r.Comment] = r.Answer()
	s.order = append(s.order, r.Comment)

	if _, ok := s.artists[r.Artist]; !ok {
		s.artistOrder = append(s.artistOrder, r.Artist)
	}
	s.artists[r.Artist] = append(s.artists[r.Artist], r.Comment)
	return true
}

// Len returns the number of records that have not been removed.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the answer for a comment.
func (s *Store) Get(comment string) (Answer, bool) {
	a, ok := s.records[comment]
	return a, ok
}

// Records returns the remaining records in the order they were loaded.
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.records))
	for _, c := range s.order {
		a, ok := s.records[c]
		if !ok {
			continue
		}
		out = append(out, Record{Comment: c, Song: a.Song, Artist: a.Artist})
	}
	return out
}

// Answers returns the answer of every remaining record, one entry per record.
// Records sharing a song contribute equal entries.
func (s *Store) Answers() []Answer {
	recs := s.Records()
	out := make([]Answer, len(recs))
	for i, r := range recs {
		out[i] = r.Answer()
	}
	return out
}

// LoadedAnswers returns the answer of every record ever added, including
// removed ones, in load order.
func (s *Store) LoadedAnswers() []Answer {
	out := make([]Answer, len(s.order))
	for i, c := range s.order {
		out[i] = s.loaded[c]
	}
	return out
}

// Artists returns every artist in the order first seen while loading.
func (s *Store) Artists() []string {
	return append([]string(nil), s.artistOrder...)
}

// Comments returns the comments loaded for an artist, including removed ones.
func (s *Store) Comments(artist string) []string {
	return append([]string(nil), s.artists[artist]...)
}

// Remove deletes a record from the comment index.
func (s *Store) Remove(comment string) bool {
	if _, ok := s.records[comment]; !ok {
		return false
	}
	delete(s.records, comment)
	return true
}

// RemoveArtist deletes every record of an artist and returns how many were
// still present.
func (s *Store) RemoveArtist(artist string) int {
	n := 0
	for _, c := range s.artists[artist] {
		if s.Remove(c) {
			n++
		}
	}
	return n
}

// Skipped returns the lines rejected while loading.
func (s *Store) Skipped() []*MalformedRecordError {
	return s.skipped
}
