package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/songquiz/internal/artists"
	"github.com/abhisek/songquiz/internal/config"
	"github.com/abhisek/songquiz/internal/console"
	"github.com/abhisek/songquiz/internal/quiz"
	"github.com/abhisek/songquiz/internal/session"
	"github.com/abhisek/songquiz/internal/songs"
)

// Options holds the dependencies of a run.
type Options struct {
	Config *config.Config
	In     io.Reader
	Out    io.Writer
	Logger *zap.Logger
}

// Run loads the song file, lets the player filter artists and then runs the
// quiz. A missing song file is returned before anything is asked.
func Run(ctx context.Context, opts Options) error {
	sessionID := uuid.NewString()
	log := opts.Logger.With(zap.String("run_id", sessionID))

	log.Debug("phase", zap.Stringer("phase", session.PhaseLoading))
	st, err := songs.Load(opts.Config.SongsPath, log)
	if err != nil {
		return fmt.Errorf("load songs: %w", err)
	}

	log.Debug("phase", zap.Stringer("phase", session.PhaseFiltering))
	p := console.NewPrompter(opts.In, opts.Out)
	filtered, err := artists.Filter(st, p, log)
	if err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			p.Println(session.InputClosedMsg)
			return nil
		}
		return err
	}
	log.Debug("artists filtered",
		zap.Int("kept", len(filtered.Kept)),
		zap.Int("dropped", len(filtered.Dropped)),
		zap.Int("records_left", st.Len()),
	)

	runner := session.NewRunner(quiz.New(opts.Config.Seed), p, log)
	summary, err := runner.Run(ctx, st, sessionID)
	if err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}

	log.Debug("session finished",
		zap.String("reason", string(summary.Reason)),
		zap.Float64("accuracy", summary.Accuracy),
		zap.Int("questions", summary.TotalQuestions),
		zap.Int("correct", summary.TotalCorrect),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("duration", summary.Duration),
	)
	return nil
}
