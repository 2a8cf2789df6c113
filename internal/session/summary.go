package session

import "time"

// SessionSummary holds the result of a finished session.
type SessionSummary struct {
	SessionID      string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Skipped        int
	Accuracy       float64
	Reason         StopReason
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(state *SessionState) *SessionSummary {
	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &SessionSummary{
		SessionID:      state.SessionID,
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Skipped:        state.Skipped,
		Accuracy:       accuracy,
		Reason:         state.Reason,
	}
}
