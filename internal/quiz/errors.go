package quiz

import (
	"errors"
	"fmt"
)

// ErrInsufficientData matches any InsufficientDataError.
var ErrInsufficientData = errors.New("insufficient data")

// InsufficientDataError indicates the answer pool does not hold enough answers
// that differ from the correct one.
type InsufficientDataError struct {
	Need int // distinct wrong answers required
	Have int // distinct wrong answers available
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need %d distinct wrong answers, have %d", e.Need, e.Have)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// InvalidQuestionError describes a question that breaks the multiple-choice
// constraints.
type InvalidQuestionError struct {
	Message string
}

func (e *InvalidQuestionError) Error() string {
	return "invalid question: " + e.Message
}
