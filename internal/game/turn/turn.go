// Package turn holds the session phase machine and per-turn state.
package turn

import "fmt"

// Phase is the coarse session state that gates which actions are accepted.
type Phase int

const (
	// PhaseChoosing waits for the active player's dice roll.
	PhaseChoosing Phase = iota
	// PhaseChoosingOccasion waits for the active player to pick one of the
	// offered occasion choices.
	PhaseChoosingOccasion
	// PhasePantomime runs a pantomime round; regular movement is paused.
	PhasePantomime
	// PhaseDrawing runs a drawing round; regular movement is paused.
	PhaseDrawing
	// PhaseGameOver accepts no further actions.
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseChoosing:
		return "choosing"
	case PhaseChoosingOccasion:
		return "choosing_occasion"
	case PhasePantomime:
		return "pantomime"
	case PhaseDrawing:
		return "drawing"
	case PhaseGameOver:
		return "game_over"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// MoveModifier adjusts the next dice roll of the affected player.
type MoveModifier int

const (
	ModifierNormal MoveModifier = iota
	// ModifierHinder halves the roll, rounding down.
	ModifierHinder
	// ModifierSimplify doubles the roll.
	ModifierSimplify
)

// GameOverReason names why a session ended.
type GameOverReason string

const (
	ReasonReachedMapEnd     GameOverReason = "reached_map_end"
	ReasonPursuerCaught     GameOverReason = "pursuer_caught"
	ReasonPursuerReachedEnd GameOverReason = "pursuer_reached_end"
)
