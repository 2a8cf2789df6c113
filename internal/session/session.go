package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/songquiz/internal/console"
	"github.com/abhisek/songquiz/internal/quiz"
	"github.com/abhisek/songquiz/internal/songs"
	"github.com/abhisek/songquiz/internal/ui/theme"
)

// Lines printed by the runner.
const (
	QuestionHeader  = "What song was this commented on?"
	CorrectMsg      = "Correct!"
	ContinuePrompt  = "Would you like to continue? (Y for yes and N for no)"
	FarewellMsg     = "Thank you for playing!"
	CompleteMsg     = "Quiz complete. Thank you for playing!"
	NoQuestionsMsg  = "No questions available."
	NotEnoughMsg    = "Not enough data to build a question."
	InputClosedMsg  = "Input closed, exiting."
	incorrectFormat = "Incorrect. The correct answer is %d."
)

// IncorrectMsg returns the message shown after a wrong answer.
func IncorrectMsg(q *quiz.Question) string {
	return fmt.Sprintf(incorrectFormat, q.CorrectChoice())
}

// Feedback returns the unstyled verdict for a 1-based choice.
func Feedback(q *quiz.Question, choice int) string {
	if q.Check(choice) {
		return CorrectMsg
	}
	return IncorrectMsg(q)
}

// Runner presents questions for the records left in a store.
type Runner struct {
	gen *quiz.Generator
	p   *console.Prompter
	log *zap.Logger
}

// NewRunner creates a Runner.
func NewRunner(gen *quiz.Generator, p *console.Prompter, log *zap.Logger) *Runner {
	return &Runner{gen: gen, p: p, log: log}
}

// Run quizzes the player on every record in st, in random order, until the
// records run out or the player declines to continue. Closed input ends the
// session without an error.
func (r *Runner) Run(ctx context.Context, st *songs.Store, sessionID string) (*SessionSummary, error) {
	state := NewSessionState(st, r.gen, sessionID)
	log := r.log.With(zap.String("session_id", sessionID))

	if len(state.Order) == 0 {
		r.p.Println(NoQuestionsMsg)
		state.end(PhaseStopped, ReasonNoData)
		return BuildSummary(state), nil
	}
	log.Debug("session started", zap.Int("records", len(state.Order)))

	for state.Remaining() > 0 {
		if err := ctx.Err(); err != nil {
			state.end(PhaseAborted, "")
			return BuildSummary(state), err
		}

		rec := state.Order[state.Index]
		state.Index++

		q, err := r.build(state, rec, log)
		if errors.Is(err, quiz.ErrInsufficientData) {
			log.Warn("skipping question", zap.String("comment", rec.Comment), zap.Error(err))
			state.Skipped++
			continue
		}
		if err != nil {
			state.end(PhaseAborted, "")
			return BuildSummary(state), fmt.Errorf("question %d: %w", state.Index, err)
		}
		state.CurrentQuestion = q

		r.showQuestion(q)
		choice, err := r.p.Choice(1, quiz.NumOptions)
		if err != nil {
			return r.abort(state, err)
		}
		r.showFeedback(q, HandleAnswer(state, choice))

		r.p.Println(ContinuePrompt)
		more, err := r.p.YesNo()
		if err != nil {
			return r.abort(state, err)
		}
		if !more {
			r.p.Println(FarewellMsg)
			state.end(PhaseStopped, ReasonUserStopped)
			r.showScore(state)
			return BuildSummary(state), nil
		}
	}

	if state.TotalQuestions == 0 {
		r.p.Println(NotEnoughMsg)
		state.end(PhaseStopped, ReasonNotEnoughData)
		return BuildSummary(state), nil
	}

	r.p.Println(CompleteMsg)
	state.end(PhaseStopped, ReasonCompleted)
	r.showScore(state)
	return BuildSummary(state), nil
}

// build creates the question for rec, widening the wrong-answer pool to the
// dropped artists when the remaining records are too few. Options may then
// name artists the player filtered out.
func (r *Runner) build(state *SessionState, rec songs.Record, log *zap.Logger) (*quiz.Question, error) {
	q, err := r.gen.Build(rec.Comment, state.Pool, rec.Answer())
	if !errors.Is(err, quiz.ErrInsufficientData) || len(state.Fallback) <= len(state.Pool) {
		return q, err
	}
	log.Debug("using loaded answers for options", zap.String("comment", rec.Comment))
	return r.gen.Build(rec.Comment, state.Fallback, rec.Answer())
}

// abort ends the session after a failed read. Closed input is a normal way
// out; anything else is returned.
func (r *Runner) abort(state *SessionState, err error) (*SessionSummary, error) {
	if errors.Is(err, console.ErrInputClosed) {
		r.p.Println(InputClosedMsg)
		state.end(PhaseAborted, ReasonInputClosed)
		return BuildSummary(state), nil
	}
	state.end(PhaseAborted, "")
	return BuildSummary(state), fmt.Errorf("read answer: %w", err)
}

func (r *Runner) showQuestion(q *quiz.Question) {
	r.p.Println(QuestionHeader)
	r.p.Println(theme.Prompt.Render(q.Prompt))
	for i, opt := range q.Options {
		r.p.Printf("%s %s\n", theme.OptionNumber.Render(fmt.Sprintf("%d.", i+1)), opt)
	}
}

func (r *Runner) showFeedback(q *quiz.Question, correct bool) {
	if correct {
		r.p.Println(theme.Correct.Render(CorrectMsg))
		return
	}
	r.p.Println(theme.Incorrect.Render(IncorrectMsg(q)))
	r.p.Println()
}

func (r *Runner) showScore(state *SessionState) {
	if state.TotalQuestions == 0 {
		return
	}
	r.p.Println(theme.Hint.Render(fmt.Sprintf("You answered %d of %d correctly.", state.TotalCorrect, state.TotalQuestions)))
}
