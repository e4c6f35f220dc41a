// Package clue models clue instances held by players and the proof records
// derived from verified clues.
package clue

import "github.com/louisbranch/molehunt/internal/catalog"

// NoSender marks a clue that was found rather than received from a player.
const NoSender = -1

// Clue is one player's copy of an evidence item. Provenance (ReceivedFrom,
// SentTo) is per copy, so sharing hands out a fresh instance.
type Clue struct {
	Name         string
	Category     catalog.Category
	Subtype      catalog.Subtype
	ReceivedFrom int
	SentTo       []int
}

// FromEvidence wraps a catalog item as a found clue with empty provenance.
func FromEvidence(e catalog.Evidence) Clue {
	return Clue{
		Name:         e.Name,
		Category:     e.Category,
		Subtype:      e.Subtype,
		ReceivedFrom: NoSender,
	}
}

// Fresh returns a copy of c with provenance reset to a single receipt. The
// receiver's copy never inherits the sender's share history.
func (c Clue) Fresh(receivedFrom int) Clue {
	return Clue{
		Name:         c.Name,
		Category:     c.Category,
		Subtype:      c.Subtype,
		ReceivedFrom: receivedFrom,
	}
}

// SameIdentity reports whether two clues refer to the same evidence item,
// ignoring provenance.
func (c Clue) SameIdentity(other Clue) bool {
	return c.Name == other.Name && c.Category == other.Category && c.Subtype == other.Subtype
}

// SentBefore reports whether this copy was already shared with playerID.
func (c Clue) SentBefore(playerID int) bool {
	for _, id := range c.SentTo {
		if id == playerID {
			return true
		}
	}
	return false
}

// Proof records one verified category and the player whose validation call
// produced it. At most one proof exists per category in a session.
type Proof struct {
	Category catalog.Category
	PlayerID int
}
