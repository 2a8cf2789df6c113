package session

import (
	"time"

	"github.com/abhisek/songquiz/internal/quiz"
	"github.com/abhisek/songquiz/internal/songs"
)

// SessionPhase represents the current phase of a run.
type SessionPhase int

const (
	PhaseLoading   SessionPhase = iota // Reading the song file
	PhaseFiltering                     // Asking about artists
	PhaseQuizzing                      // Serving questions
	PhaseStopped                       // Finished, stopped by the player, or nothing to ask
	PhaseAborted                       // Missing song file or input closed
)

func (p SessionPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFiltering:
		return "filtering"
	case PhaseQuizzing:
		return "quizzing"
	case PhaseStopped:
		return "stopped"
	case PhaseAborted:
		return "aborted"
	}
	return "unknown"
}

// StopReason explains why a session ended.
type StopReason string

const (
	ReasonCompleted     StopReason = "completed"
	ReasonUserStopped   StopReason = "user-stopped"
	ReasonNoData        StopReason = "no-data"
	ReasonNotEnoughData StopReason = "not-enough-data"
	ReasonInputClosed   StopReason = "input-closed"
)

// SessionState tracks the runtime state of a quiz.
type SessionState struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Phase is the current session phase.
	Phase SessionPhase

	// Order is the presentation order of the records.
	Order []songs.Record

	// Pool holds the answer of every record still in play. Wrong options are
	// drawn from it.
	Pool []songs.Answer

	// Fallback holds every loaded answer, including those of dropped artists.
	// It is used when Pool is too small to offer three wrong answers.
	Fallback []songs.Answer

	// Index is the position in Order of the record being asked.
	Index int

	// CurrentQuestion is the active question (nil between questions).
	CurrentQuestion *quiz.Question

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// Skipped counts records for which no question could be built.
	Skipped int

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// Reason is set once the session has ended.
	Reason StopReason

	StartTime time.Time
	Elapsed   time.Duration
}

// NewSessionState snapshots the remaining records of st in a random order.
func NewSessionState(st *songs.Store, gen *quiz.Generator, sessionID string) *SessionState {
	order := st.Records()
	gen.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return &SessionState{
		SessionID: sessionID,
		Phase:     PhaseQuizzing,
		Order:     order,
		Pool:      st.Answers(),
		Fallback:  st.LoadedAnswers(),
		StartTime: time.Now(),
	}
}

// Remaining returns the number of records not yet asked.
func (s *SessionState) Remaining() int {
	return len(s.Order) - s.Index
}

// HandleAnswer scores a 1-based choice for the current question.
func HandleAnswer(state *SessionState, choice int) bool {
	q := state.CurrentQuestion
	if q == nil {
		return false
	}

	correct := q.Check(choice)
	state.LastAnswerCorrect = correct
	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
	}
	return correct
}

// end moves the session into a terminal phase.
func (s *SessionState) end(phase SessionPhase, reason StopReason) {
	s.Phase = phase
	s.Reason = reason
	s.CurrentQuestion = nil
	s.Elapsed = time.Since(s.StartTime)
}
