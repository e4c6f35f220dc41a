package pursuer

import (
	"math/rand"
	"testing"
	"time"

	"github.com/louisbranch/molehunt/internal/game/board"
)

func TestAdvanceStepRange(t *testing.T) {
	b := board.Build()
	rng := rand.New(rand.NewSource(5))

	sawZero := false
	for i := 0; i < 500; i++ {
		p := New(0)
		steps, outcome, err := p.Advance(rng, b, 50, true)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if steps < 0 || steps > 2 {
			t.Fatalf("steps out of range: %d", steps)
		}
		if steps == 0 {
			sawZero = true
		}
		if outcome != OutcomeNone {
			t.Fatalf("unexpected outcome %d far from the team", outcome)
		}
		if p.Position() != steps {
			t.Fatalf("position should equal steps walked, got %d for %d", p.Position(), steps)
		}
	}
	if !sawZero {
		t.Fatal("allow-zero draws should produce zero steps eventually")
	}
}

func TestAdvanceForcedNeverZero(t *testing.T) {
	b := board.Build()
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		p := New(0)
		steps, _, err := p.Advance(rng, b, 50, false)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if steps < 1 || steps > 2 {
			t.Fatalf("forced draw out of range: %d", steps)
		}
	}
}

func TestAdvanceCatches(t *testing.T) {
	b := board.Build()
	rng := rand.New(rand.NewSource(7))

	// Team pawn directly ahead: any non-zero draw catches.
	for i := 0; i < 100; i++ {
		p := New(10)
		steps, outcome, err := p.Advance(rng, b, 11, false)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if steps >= 1 && outcome != OutcomeCaught {
			t.Fatalf("expected catch after %d steps, got outcome %d", steps, outcome)
		}
	}
}

func TestAdvanceReachesEnd(t *testing.T) {
	b := board.Build()
	rng := rand.New(rand.NewSource(8))

	// Team pawn behind the pursuer cannot be caught; goal is next field.
	for i := 0; i < 100; i++ {
		p := New(b.GoalIndex() - 1)
		steps, outcome, err := p.Advance(rng, b, b.GoalIndex()+10, false)
		if err != nil {
			t.Fatalf("advance: %v", err)
		}
		if steps >= 1 && outcome != OutcomeReachedEnd {
			t.Fatalf("expected reached-end after %d steps, got outcome %d", steps, outcome)
		}
	}
}

func TestAutoMoveInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	if _, enabled := AutoMoveInterval(rng, board.DifficultyEasy); enabled {
		t.Fatal("easy difficulty should disable automatic movement")
	}

	for i := 0; i < 100; i++ {
		d, enabled := AutoMoveInterval(rng, board.DifficultyHard)
		if !enabled {
			t.Fatal("hard difficulty should enable automatic movement")
		}
		if d < 30*time.Second || d >= 40*time.Second {
			t.Fatalf("hard interval out of range: %s", d)
		}

		d2, enabled := AutoMoveInterval(rng, board.DifficultyMedium)
		if !enabled {
			t.Fatal("medium difficulty should enable automatic movement")
		}
		if d2 < 60*time.Second || d2 >= 80*time.Second {
			t.Fatalf("medium interval out of range: %s", d2)
		}
	}
}
