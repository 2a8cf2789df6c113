// Package artists lets the player drop every question about artists they do
// not know.
package artists

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/songquiz/internal/console"
	"github.com/abhisek/songquiz/internal/songs"
	"github.com/abhisek/songquiz/internal/ui/theme"
)

// Result lists the answers given during filtering.
type Result struct {
	Kept    []string
	Dropped []string

	// RemovedRecords is the number of records deleted from the store.
	RemovedRecords int
}

// Filter asks, for each artist in the order first loaded, whether the player
// recognises them. Records of every artist answered with N are removed from st.
func Filter(st *songs.Store, p *console.Prompter, log *zap.Logger) (*Result, error) {
	res := &Result{}

	p.Println(theme.Title.Render("Select artists you recognise to start the quiz"))
	p.Println("Type Y if you recognise the artist and N if you don't:")

	for _, artist := range st.Artists() {
		p.Println(theme.Artist.Render(artist))
		known, err := p.YesNo()
		if err != nil {
			return res, fmt.Errorf("filter artist %q: %w", artist, err)
		}
		if known {
			res.Kept = append(res.Kept, artist)
			continue
		}

		n := st.RemoveArtist(artist)
		res.Dropped = append(res.Dropped, artist)
		res.RemovedRecords += n
		log.Debug("artist dropped", zap.String("artist", artist), zap.Int("records", n))
	}
	return res, nil
}
