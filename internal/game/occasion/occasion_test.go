package occasion

import (
	"math/rand"
	"testing"
)

func TestRandomChoicesDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		choices := RandomChoices(rng)
		if len(choices) != 2 {
			t.Fatalf("expected 2 choices, got %d", len(choices))
		}
		if choices[0].Kind == choices[1].Kind {
			t.Fatalf("choices should have distinct kinds, got %s twice", choices[0].Kind)
		}
		for _, c := range choices {
			if !ValidKind(c.Kind) {
				t.Fatalf("unknown kind %q", c.Kind)
			}
			if c.Kind == KindMoveForwards {
				if c.Value < 1 || c.Value > 4 {
					t.Fatalf("move_forwards value out of range: %d", c.Value)
				}
			} else if c.Value != 0 {
				t.Fatalf("%s should carry no value, got %d", c.Kind, c.Value)
			}
		}
	}
}

func TestMatches(t *testing.T) {
	offer := Choice{Kind: KindMoveForwards, Value: 3}
	if !offer.Matches(Choice{Kind: KindMoveForwards, Value: 3}) {
		t.Fatal("identical move_forwards should match")
	}
	if offer.Matches(Choice{Kind: KindMoveForwards, Value: 2}) {
		t.Fatal("different step count should not match")
	}

	skip := Choice{Kind: KindSkipPlayer}
	if !skip.Matches(Choice{Kind: KindSkipPlayer, Value: 7}) {
		t.Fatal("value is ignored for non-movement kinds")
	}
	if skip.Matches(Choice{Kind: KindFoundClue}) {
		t.Fatal("different kinds should not match")
	}
}
