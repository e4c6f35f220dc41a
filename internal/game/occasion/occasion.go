// Package occasion models the bonus choices offered when a pawn lands on an
// occasion field.
package occasion

import "math/rand"

// Kind is one occasion effect.
type Kind string

const (
	KindFoundClue      Kind = "found_clue"
	KindMoveForwards   Kind = "move_forwards"
	KindSimplifyDicing Kind = "simplify_dicing"
	KindSkipPlayer     Kind = "skip_player"
	KindHinderDicing   Kind = "hinder_dicing"
)

// Kinds returns every occasion kind in canonical order.
func Kinds() []Kind {
	return []Kind{
		KindFoundClue,
		KindMoveForwards,
		KindSimplifyDicing,
		KindSkipPlayer,
		KindHinderDicing,
	}
}

// ValidKind reports whether k names a known occasion kind.
func ValidKind(k Kind) bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Choice is one offered occasion. Value is only meaningful for
// move_forwards, where it is the number of fields to advance.
type Choice struct {
	Kind  Kind
	Value int
}

// Matches reports whether a submitted choice picks this offer. Kinds must
// match; for move_forwards the step count must match too.
func (c Choice) Matches(picked Choice) bool {
	if c.Kind != picked.Kind {
		return false
	}
	if c.Kind == KindMoveForwards {
		return c.Value == picked.Value
	}
	return true
}

// RandomChoices draws two distinct occasion kinds. A move_forwards offer
// carries a step count between 1 and 4.
func RandomChoices(rng *rand.Rand) []Choice {
	kinds := Kinds()
	first := rng.Intn(len(kinds))
	second := rng.Intn(len(kinds) - 1)
	if second >= first {
		second++
	}

	choices := make([]Choice, 0, 2)
	for _, idx := range []int{first, second} {
		choice := Choice{Kind: kinds[idx]}
		if choice.Kind == KindMoveForwards {
			choice.Value = 1 + rng.Intn(4)
		}
		choices = append(choices, choice)
	}
	return choices
}
