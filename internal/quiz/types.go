package quiz

import "github.com/abhisek/songquiz/internal/songs"

// NumOptions is the number of choices shown for every question.
const NumOptions = 4

// Question is a multiple-choice question built for one record.
type Question struct {
	// Prompt is the comment the player has to attribute to a song.
	Prompt string

	// Answer is the song the comment was written about.
	Answer songs.Answer

	// Options holds the correct answer and three distinct wrong answers in
	// display order.
	Options [NumOptions]songs.Answer

	// CorrectIndex is the 0-based position of Answer within Options.
	CorrectIndex int
}

// CorrectChoice returns the 1-based number the player must type.
func (q *Question) CorrectChoice() int {
	return q.CorrectIndex + 1
}

// Check reports whether the 1-based choice is the correct option.
func (q *Question) Check(choice int) bool {
	return choice == q.CorrectChoice()
}
