package songs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fieldSep separates comment, song and artist on a line.
const fieldSep = ";"

// Load reads the song file at path. A missing file returns an error wrapping
// ErrFileNotFound. Malformed lines are logged and skipped.
func Load(path string, log *zap.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open song file: %w", err)
	}
	defer f.Close()

	st, err := Parse(f, log)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	log.Debug("song file loaded",
		zap.String("path", path),
		zap.Int("records", st.Len()),
		zap.Int("artists", len(st.artistOrder)),
		zap.Int("skipped", len(st.skipped)),
	)
	return st, nil
}

// Parse builds a Store from comment;song;artist lines. The input is UTF-8; a
// leading byte order mark is dropped. Empty lines are ignored.
func Parse(r io.Reader, log *zap.Logger) (*Store, error) {
	st := NewStore()

	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	br := bufio.NewReader(decoded)
	lineNo := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read song file: %w", readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if line != "" {
			st.addLine(lineNo, line, log)
		}
		if readErr != nil {
			break
		}
	}
	return st, nil
}

// addLine parses one non-empty line into st, recording it as skipped when it
// is malformed or repeats a comment.
func (st *Store) addLine(lineNo int, line string, log *zap.Logger) {
	rec, err := parseLine(lineNo, line)
	if err == nil && !st.Add(rec) {
		err = &MalformedRecordError{Line: lineNo, Text: line, Reason: ReasonDuplicateComment}
	}
	if err != nil {
		log.Warn("skipping line", zap.Int("line", err.Line), zap.String("reason", err.Reason))
		st.skipped = append(st.skipped, err)
	}
}

// parseLine splits one non-empty line into a record.
func parseLine(lineNo int, line string) (Record, *MalformedRecordError) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != 3 {
		return Record{}, &MalformedRecordError{Line: lineNo, Text: line, Reason: ReasonFieldCount}
	}
	return Record{
		Comment: norm.NFC.String(fields[0]),
		Song:    norm.NFC.String(fields[1]),
		Artist:  norm.NFC.String(fields[2]),
	}, nil
}
