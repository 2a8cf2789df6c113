package quiz

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/songquiz/internal/songs"
)

// Generator builds shuffled multiple-choice questions.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A zero seed picks a time-based seed.
func New(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewWithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewWithRand creates a Generator that draws from rng.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Shuffle permutes n elements in place using swap.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.rng.Shuffle(n, swap)
}

// PickWrongAnswers scans a random permutation of pool and returns the first k
// distinct answers that differ from correct. Answers are compared by value, so
// another record for the same song never becomes a wrong answer.
func (g *Generator) PickWrongAnswers(pool []songs.Answer, correct songs.Answer, k int) ([]songs.Answer, error) {
	candidates := append([]songs.Answer(nil), pool...)
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	picked := make([]songs.Answer, 0, k)
	seen := make(map[songs.Answer]bool, k+1)
	seen[correct] = true
	for _, c := range candidates {
		if len(picked) == k {
			break
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		picked = append(picked, c)
	}

	if len(picked) < k {
		return nil, &InsufficientDataError{Need: k, Have: len(picked)}
	}
	return picked, nil
}

// Build creates a question for prompt whose correct answer is correct. Wrong
// answers are drawn from pool, which may contain correct itself.
func (g *Generator) Build(prompt string, pool []songs.Answer, correct songs.Answer) (*Question, error) {
	wrong, err := g.PickWrongAnswers(pool, correct, NumOptions-1)
	if err != nil {
		return nil, err
	}

	q := &Question{Prompt: prompt, Answer: correct}
	q.Options[0] = correct
	copy(q.Options[1:], wrong)
	q.CorrectIndex = g.shuffleOptions(&q.Options, 0)

	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("build question: %w", err)
	}
	return q, nil
}

// shuffleOptions runs Fisher-Yates over opts and returns the final position of
// the element that started at tracked.
func (g *Generator) shuffleOptions(opts *[NumOptions]songs.Answer, tracked int) int {
	for i := NumOptions - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		opts[i], opts[j] = opts[j], opts[i]
		switch tracked {
		case i:
			tracked = j
		case j:
			tracked = i
		}
	}
	return tracked
}
