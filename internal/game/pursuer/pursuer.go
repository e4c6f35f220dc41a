// Package pursuer models the chasing pawn: weighted step draws, catch and
// overrun detection, and the automatic movement cadence.
package pursuer

import (
	"math/rand"
	"time"

	"github.com/louisbranch/molehunt/internal/game/board"
	"github.com/louisbranch/molehunt/internal/random"
)

// Outcome is the terminal effect of a pursuer advance, if any.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeCaught means the pursuer landed on or passed the team pawn.
	OutcomeCaught
	// OutcomeReachedEnd means the pursuer reached the goal field.
	OutcomeReachedEnd
)

// HideCooldown is how long the pursuer pawn stays hidden on the shared
// display after an advance. Presentation only, movement is unaffected.
const HideCooldown = 180 * time.Second

// Pursuer is the chasing pawn.
type Pursuer struct {
	position int
}

// New places the pursuer at the given field.
func New(start int) *Pursuer {
	return &Pursuer{position: start}
}

// Position returns the pursuer's current field index.
func (p *Pursuer) Position() int {
	return p.position
}

// Advance draws a weighted step count and walks it one field at a time,
// checking for a catch after each step. With allowZero the draw is
// 0, 1 or 2 steps weighted 5:4:1; without it 1 or 2 steps weighted 4:1.
func (p *Pursuer) Advance(rng *rand.Rand, b *board.Board, teamIndex int, allowZero bool) (int, Outcome, error) {
	steps := []int{0, 1, 2}
	weights := []int{5, 4, 1}
	if !allowZero {
		steps = steps[1:]
		weights = []int{4, 1}
	}
	drawn, err := random.WeightedChoice(rng, steps, weights)
	if err != nil {
		return 0, OutcomeNone, err
	}

	for step := 0; step < drawn; step++ {
		p.position++
		if p.position >= teamIndex {
			return drawn, OutcomeCaught, nil
		}
		if p.position >= b.GoalIndex() {
			return drawn, OutcomeReachedEnd, nil
		}
	}
	if p.position >= teamIndex {
		return drawn, OutcomeCaught, nil
	}
	return drawn, OutcomeNone, nil
}

// AutoMoveInterval draws the delay until the next automatic pursuer advance.
// Easy sessions disable automatic movement; medium doubles the base delay.
// The base delay is uniform between 30 and 40 seconds.
func AutoMoveInterval(rng *rand.Rand, difficulty board.Difficulty) (time.Duration, bool) {
	base := time.Duration(30+rng.Intn(10)) * time.Second
	switch difficulty {
	case board.DifficultyEasy:
		return 0, false
	case board.DifficultyMedium:
		return base * 2, true
	default:
		return base, true
	}
}
