// Package minigame runs the pantomime and drawing rounds triggered by
// shortcut fields. The hosting player gets the solution word; everyone else
// guesses from the word group before the round times out.
package minigame

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/louisbranch/molehunt/internal/game/board"
)

const (
	PantomimeDuration = 30 * time.Second
	DrawingDuration   = 60 * time.Second
)

type usageKey struct {
	kind       board.MinigameKind
	difficulty board.Difficulty
	category   string
}

// Usage counts how often each word category has been played, so category
// selection rotates through the catalog instead of repeating.
type Usage struct {
	counts map[usageKey]int
}

// NewUsage returns an empty usage tracker.
func NewUsage() *Usage {
	return &Usage{counts: make(map[usageKey]int)}
}

// pickCategory selects a least-used category for the kind and difficulty,
// breaking ties uniformly, and records the use.
func (u *Usage) pickCategory(rng *rand.Rand, kind board.MinigameKind, difficulty board.Difficulty) (string, error) {
	categories := wordCatalog(kind)[difficulty]
	if len(categories) == 0 {
		return "", fmt.Errorf("no %s word categories for difficulty %s", kind, difficulty)
	}

	lowest := -1
	var candidates []string
	for category := range categories {
		count := u.counts[usageKey{kind, difficulty, category}]
		switch {
		case lowest == -1 || count < lowest:
			lowest = count
			candidates = candidates[:0]
			candidates = append(candidates, category)
		case count == lowest:
			candidates = append(candidates, category)
		}
	}

	picked := candidates[rng.Intn(len(candidates))]
	u.counts[usageKey{kind, difficulty, picked}]++
	return picked, nil
}

// Round is one running minigame.
type Round struct {
	Kind         board.MinigameKind
	Category     string
	Words        []string
	SolutionWord string

	// Guesses maps guessing player IDs to their submitted word.
	Guesses map[int]string
	// IgnoredPlayer is excused from guessing and counts as correct.
	IgnoredPlayer *int

	duration  time.Duration
	startedAt time.Time
	started   bool
}

// NewRound draws a word group for the field's minigame and returns an
// unstarted round. The timer only runs once the hosting player starts it.
func NewRound(rng *rand.Rand, usage *Usage, kind board.MinigameKind, difficulty board.Difficulty) (*Round, error) {
	category, err := usage.pickCategory(rng, kind, difficulty)
	if err != nil {
		return nil, err
	}
	groups := wordCatalog(kind)[difficulty][category]
	group := groups[rng.Intn(len(groups))]

	words := make([]string, len(group))
	copy(words, group)

	duration := PantomimeDuration
	if kind == board.MinigameDrawing {
		duration = DrawingDuration
	}

	return &Round{
		Kind:         kind,
		Category:     category,
		Words:        words,
		SolutionWord: words[rng.Intn(len(words))],
		Guesses:      make(map[int]string),
		duration:     duration,
	}, nil
}

// Start begins the guessing timer.
func (r *Round) Start(now time.Time) {
	r.startedAt = now
	r.started = true
}

// Started reports whether the hosting player has started the round.
func (r *Round) Started() bool {
	return r.started
}

// TimedOut reports whether the started round has exceeded its duration.
func (r *Round) TimedOut(now time.Time) bool {
	return r.started && now.After(r.startedAt.Add(r.duration))
}

// ValidWord reports whether w belongs to the round's word group.
func (r *Round) ValidWord(w string) bool {
	for _, word := range r.Words {
		if word == w {
			return true
		}
	}
	return false
}

// Ignores reports whether playerID is the excused player.
func (r *Round) Ignores(playerID int) bool {
	return r.IgnoredPlayer != nil && *r.IgnoredPlayer == playerID
}

// RecordGuess stores a guess. Guesses from the ignored player are dropped.
func (r *Round) RecordGuess(playerID int, word string) {
	if r.Ignores(playerID) {
		return
	}
	r.Guesses[playerID] = word
}

// AllGuessed reports whether every expected guesser has answered.
func (r *Round) AllGuessed(guesserIDs []int) bool {
	expected := 0
	for _, id := range guesserIDs {
		if !r.Ignores(id) {
			expected++
		}
	}
	return len(r.Guesses) >= expected
}

// PlayerResult is one guesser's outcome.
type PlayerResult struct {
	PlayerID int
	Success  bool
	Guess    string
	Ignored  bool
}

// Evaluate scores the round for the given guessers. The ignored player
// counts as correct; the round succeeds only if every scored guess matches
// the solution word.
func (r *Round) Evaluate(guesserIDs []int) ([]PlayerResult, bool) {
	results := make([]PlayerResult, 0, len(guesserIDs))
	success := true
	for _, id := range guesserIDs {
		if r.Ignores(id) {
			results = append(results, PlayerResult{PlayerID: id, Success: true, Ignored: true})
			continue
		}
		guess := r.Guesses[id]
		ok := guess == r.SolutionWord
		if !ok {
			success = false
		}
		results = append(results, PlayerResult{PlayerID: id, Success: ok, Guess: guess})
	}
	return results, success
}
