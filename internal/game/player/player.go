// Package player tracks session participants, their clue inventories, and
// connection identity.
package player

import (
	"math/rand"

	"github.com/louisbranch/molehunt/internal/errors"
	"github.com/louisbranch/molehunt/internal/game/clue"
)

// Player is one registered participant. ID is the stable turn-order index;
// Conn is the current connection handle and changes on rejoin.
type Player struct {
	ID        int
	Name      string
	Conn      string
	Inventory []clue.Clue
	IsMole    bool
	Disabled  bool
	Connected bool
}

// Clue returns the player's copy of the named clue, if held.
func (p *Player) Clue(name string) (clue.Clue, bool) {
	for _, c := range p.Inventory {
		if c.Name == name {
			return c, true
		}
	}
	return clue.Clue{}, false
}

// AddClue stores a fresh copy of c received from the given sender. Adding a
// clue the player already holds is a no-op; the stored copy is returned
// either way, with added reporting whether the inventory grew.
func (p *Player) AddClue(from int, c clue.Clue) (stored clue.Clue, added bool) {
	for _, held := range p.Inventory {
		if held.SameIdentity(c) {
			return held, false
		}
	}
	fresh := c.Fresh(from)
	p.Inventory = append(p.Inventory, fresh)
	return fresh, true
}

// MarkSent records on the player's own copy that it was shared with targetID.
func (p *Player) MarkSent(clueName string, targetID int) {
	for i := range p.Inventory {
		if p.Inventory[i].Name == clueName {
			if !p.Inventory[i].SentBefore(targetID) {
				p.Inventory[i].SentTo = append(p.Inventory[i].SentTo, targetID)
			}
			return
		}
	}
}

// Registry holds the fixed roster of a session in turn order.
type Registry struct {
	players []*Player
}

// NewRegistry builds a roster from names paired with connection handles.
// Player IDs follow the registration order.
func NewRegistry(names []string, conns []string) (*Registry, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.CodeEmptyRoster, "at least one player is required")
	}
	if len(names) != len(conns) {
		return nil, errors.New(errors.CodeInvalidConfig, "names and connections must pair up")
	}
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = &Player{ID: i, Name: name, Conn: conns[i], Connected: true}
	}
	return &Registry{players: players}, nil
}

// Len returns the roster size.
func (r *Registry) Len() int {
	return len(r.players)
}

// All returns the roster in turn order.
func (r *Registry) All() []*Player {
	return r.players
}

// ByID returns the player with the given turn-order index.
func (r *Registry) ByID(id int) (*Player, bool) {
	if id < 0 || id >= len(r.players) {
		return nil, false
	}
	return r.players[id], true
}

// ByConn returns the player currently bound to the connection handle.
func (r *Registry) ByConn(conn string) (*Player, bool) {
	for _, p := range r.players {
		if p.Connected && p.Conn == conn {
			return p, true
		}
	}
	return nil, false
}

// ByName returns the player with the given display name.
func (r *Registry) ByName(name string) (*Player, bool) {
	for _, p := range r.players {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// ChooseMole marks one uniformly drawn player as the mole and returns them.
func (r *Registry) ChooseMole(rng *rand.Rand) *Player {
	mole := r.players[rng.Intn(len(r.players))]
	mole.IsMole = true
	return mole
}

// Mole returns the mole, if one has been chosen.
func (r *Registry) Mole() (*Player, bool) {
	for _, p := range r.players {
		if p.IsMole {
			return p, true
		}
	}
	return nil, false
}

// HasConnected reports whether any player is still connected.
func (r *Registry) HasConnected() bool {
	for _, p := range r.players {
		if p.Connected {
			return true
		}
	}
	return false
}
