package quiz

import "fmt"

// Validate checks that the options are mutually distinct, that exactly one
// of them is the answer, and that CorrectIndex points at it.
func (q *Question) Validate() error {
	if q.CorrectIndex < 0 || q.CorrectIndex >= NumOptions {
		return &InvalidQuestionError{Message: fmt.Sprintf("correct index %d out of range", q.CorrectIndex)}
	}

	matches := 0
	for i, opt := range q.Options {
		for j := i + 1; j < NumOptions; j++ {
			if opt == q.Options[j] {
				return &InvalidQuestionError{Message: fmt.Sprintf("duplicate option %q", opt)}
			}
		}
		if opt == q.Answer {
			matches++
		}
	}
	if matches != 1 {
		return &InvalidQuestionError{Message: fmt.Sprintf("answer appears %d times in options", matches)}
	}

	if q.Options[q.CorrectIndex] != q.Answer {
		return &InvalidQuestionError{Message: fmt.Sprintf("option %d is not the answer", q.CorrectChoice())}
	}
	return nil
}
