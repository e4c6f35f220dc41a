package minigame

import (
	"math/rand"
	"testing"
	"time"

	"github.com/louisbranch/molehunt/internal/game/board"
)

func TestNewRoundDrawsFromCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	usage := NewUsage()

	round, err := NewRound(rng, usage, board.MinigameDrawing, board.DifficultyHard)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}
	if len(round.Words) != 4 {
		t.Fatalf("expected a 4-word group, got %d", len(round.Words))
	}
	if !round.ValidWord(round.SolutionWord) {
		t.Fatal("solution word must come from the word group")
	}
	if round.Started() {
		t.Fatal("round should not start until the host starts it")
	}
}

func TestCategoryRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	usage := NewUsage()

	// Medium drawing has three categories; three rounds must cover them all.
	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		round, err := NewRound(rng, usage, board.MinigameDrawing, board.DifficultyMedium)
		if err != nil {
			t.Fatalf("new round: %v", err)
		}
		if seen[round.Category] {
			t.Fatalf("category %q repeated before rotation finished", round.Category)
		}
		seen[round.Category] = true
	}
}

func TestRoundTimeout(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	round, err := NewRound(rng, NewUsage(), board.MinigamePantomime, board.DifficultyEasy)
	if err != nil {
		t.Fatalf("new round: %v", err)
	}

	now := time.Now()
	if round.TimedOut(now.Add(time.Hour)) {
		t.Fatal("unstarted round cannot time out")
	}

	round.Start(now)
	if round.TimedOut(now.Add(PantomimeDuration - time.Second)) {
		t.Fatal("round should still be running")
	}
	if !round.TimedOut(now.Add(PantomimeDuration + time.Second)) {
		t.Fatal("round should have timed out")
	}
}

func TestEvaluateAllCorrect(t *testing.T) {
	round := &Round{
		Kind:         board.MinigamePantomime,
		Words:        []string{"a", "b", "c", "d"},
		SolutionWord: "b",
		Guesses:      map[int]string{1: "b", 2: "b"},
	}
	results, success := round.Evaluate([]int{1, 2})
	if !success {
		t.Fatal("expected overall success")
	}
	for _, r := range results {
		if !r.Success || r.Ignored {
			t.Fatalf("unexpected result: %+v", r)
		}
	}
}

func TestEvaluateIgnoredPlayerCountsAsCorrect(t *testing.T) {
	ignored := 2
	round := &Round{
		Kind:          board.MinigameDrawing,
		Words:         []string{"a", "b", "c", "d"},
		SolutionWord:  "a",
		Guesses:       map[int]string{},
		IgnoredPlayer: &ignored,
	}
	round.Start(time.Now())

	round.RecordGuess(2, "d")
	if len(round.Guesses) != 0 {
		t.Fatal("guesses from the ignored player must be dropped")
	}

	round.RecordGuess(1, "a")
	if !round.AllGuessed([]int{1, 2}) {
		t.Fatal("only the non-ignored guesser is expected to answer")
	}

	results, success := round.Evaluate([]int{1, 2})
	if !success {
		t.Fatal("expected overall success")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.PlayerID == ignored {
			if !r.Ignored || !r.Success || r.Guess != "" {
				t.Fatalf("ignored player should succeed with no guess: %+v", r)
			}
		}
	}
}

func TestEvaluateWrongGuessFailsRound(t *testing.T) {
	round := &Round{
		Kind:         board.MinigamePantomime,
		Words:        []string{"a", "b", "c", "d"},
		SolutionWord: "a",
		Guesses:      map[int]string{1: "a", 2: "c"},
	}
	_, success := round.Evaluate([]int{1, 2})
	if success {
		t.Fatal("one wrong guess should fail the round")
	}
}
