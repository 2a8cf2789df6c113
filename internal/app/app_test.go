package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/songquiz/internal/config"
	"github.com/abhisek/songquiz/internal/session"
	"github.com/abhisek/songquiz/internal/songs"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

const fiveRecords = `Reminds me of summer;Song 1;Artist A
The guitar solo!;Song 2;Artist A
Saw them live in 2009;Song 3;Artist A
Best chorus ever;Song 4;Artist B
Played it on repeat;Song 5;Artist B
`

// player feeds the artist answers first, then answers every question
// correctly and declines to continue.
type player struct {
	out     *bytes.Buffer
	artists []string
	answers map[string]songs.Answer
	asked   int
}

func (p *player) Read(b []byte) (int, error) {
	tok := p.next(ansiSeq.ReplaceAllString(p.out.String(), ""))
	if tok == "" {
		return 0, io.EOF
	}
	return copy(b, tok+"\n"), nil
}

func (p *player) next(out string) string {
	if len(p.artists) > 0 {
		tok := p.artists[0]
		p.artists = p.artists[1:]
		return tok
	}
	if strings.HasSuffix(strings.TrimSpace(out), session.ContinuePrompt) {
		return "N"
	}

	i := strings.LastIndex(out, session.QuestionHeader)
	if i < 0 {
		return ""
	}
	lines := strings.Split(strings.TrimSpace(out[i:]), "\n")
	if len(lines) < 6 {
		return ""
	}
	want := p.answers[lines[1]].String()
	for n, line := range lines[2:6] {
		if strings.TrimPrefix(line, strconv.Itoa(n+1)+". ") == want {
			p.asked++
			return strconv.Itoa(n + 1)
		}
	}
	return ""
}

func writeSongs(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.txt")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestRun_DropArtistThenStopAfterFirstQuestion(t *testing.T) {
	path := writeSongs(t, fiveRecords)
	st, err := songs.Parse(strings.NewReader(fiveRecords), zaptest.NewLogger(t))
	require.NoError(t, err)
	answers := map[string]songs.Answer{}
	for _, r := range st.Records() {
		answers[r.Comment] = r.Answer()
	}

	var out bytes.Buffer
	in := &player{out: &out, artists: []string{"N", "Y"}, answers: answers}

	err = Run(context.Background(), Options{
		Config: &config.Config{SongsPath: path, Seed: 5},
		In:     in,
		Out:    &out,
		Logger: zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	text := ansiSeq.ReplaceAllString(out.String(), "")
	assert.Equal(t, 1, in.asked)
	assert.Equal(t, 1, strings.Count(text, session.QuestionHeader))
	assert.Contains(t, text, session.CorrectMsg)
	assert.Contains(t, text, session.FarewellMsg)
	assert.Contains(t, text, "You answered 1 of 1 correctly.")

	// Only Artist B comments may be asked.
	i := strings.Index(text, session.QuestionHeader)
	prompt := strings.Split(text[i:], "\n")[1]
	assert.Contains(t, []string{"Best chorus ever", "Played it on repeat"}, prompt)
}

func TestRun_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Config: &config.Config{SongsPath: filepath.Join(t.TempDir(), "nope.txt")},
		In:     strings.NewReader("Y"),
		Out:    &out,
		Logger: zaptest.NewLogger(t),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, songs.ErrFileNotFound))
	assert.Empty(t, out.String(), "nothing is asked when the file is missing")
}

func TestRun_AllArtistsDropped(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Config: &config.Config{SongsPath: writeSongs(t, fiveRecords)},
		In:     strings.NewReader("N N"),
		Out:    &out,
		Logger: zaptest.NewLogger(t),
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), session.NoQuestionsMsg)
}

func TestRun_InputClosedWhileFiltering(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Options{
		Config: &config.Config{SongsPath: writeSongs(t, fiveRecords)},
		In:     strings.NewReader(""),
		Out:    &out,
		Logger: zaptest.NewLogger(t),
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), session.InputClosedMsg)
}
