package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// frame is the wire envelope for both directions.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// outFrame is the server-to-client envelope before encoding.
type outFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

const outboxSize = 64

// peer decouples the game loop from one websocket connection. Frames are
// queued on a bounded outbox and written by a dedicated goroutine, so a
// stalled client never blocks state progression.
type peer struct {
	mu      sync.Mutex
	closed  bool
	out     chan outFrame
	drained sync.WaitGroup
	encoder *json.Encoder
}

func newPeer(encoder *json.Encoder) *peer {
	p := &peer{encoder: encoder, out: make(chan outFrame, outboxSize)}
	p.drained.Add(1)
	go p.writeLoop()
	return p
}

func (p *peer) writeLoop() {
	defer p.drained.Done()
	for f := range p.out {
		if err := p.encoder.Encode(f); err != nil {
			log.Printf("ws write failed event=%s err=%v", f.Event, err)
		}
	}
}

// send queues a frame without blocking. When the outbox is full the frame is
// dropped rather than holding up the caller.
func (p *peer) send(event string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	select {
	case p.out <- outFrame{Event: event, Data: data}:
	default:
		log.Printf("ws outbox full, dropping event=%s", event)
	}
}

// stop closes the outbox and waits for queued frames to flush. Safe to call
// more than once.
func (p *peer) stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.out)
	p.mu.Unlock()
	p.drained.Wait()
}

// room groups the display and player connections of one game token. It
// implements session.Notifier.
type room struct {
	mu      sync.Mutex
	token   string
	display *peer
	players map[string]*peer
	roster  []rosterEntry
	started bool
}

type rosterEntry struct {
	Name string
	Conn string
}

func newRoom(token string) *room {
	return &room{token: token, players: make(map[string]*peer)}
}

func (r *room) setDisplay(p *peer) {
	r.mu.Lock()
	old := r.display
	r.display = p
	r.mu.Unlock()
	if old != nil {
		old.stop()
	}
}

// addPlayer binds a lobby player. Duplicate names are rejected until the
// game starts; after that the same name rebinds via rejoin.
func (r *room) addPlayer(conn, name string, p *peer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range r.roster {
		if entry.Name == name {
			return false
		}
	}
	r.roster = append(r.roster, rosterEntry{Name: name, Conn: conn})
	r.players[conn] = p
	return true
}

// rebindPlayer attaches a new connection for a rejoining player.
func (r *room) rebindPlayer(conn string, p *peer) {
	r.mu.Lock()
	r.players[conn] = p
	r.mu.Unlock()
}

// detachPlayer removes the map entry but leaves the peer's writer running,
// for rolling back a failed rejoin while the connection stays open.
func (r *room) detachPlayer(conn string) {
	r.mu.Lock()
	delete(r.players, conn)
	r.mu.Unlock()
}

func (r *room) removePlayer(conn string) {
	r.mu.Lock()
	p := r.players[conn]
	delete(r.players, conn)
	if !r.started {
		for i, entry := range r.roster {
			if entry.Conn == conn {
				r.roster = append(r.roster[:i], r.roster[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()
	if p != nil {
		p.stop()
	}
}

func (r *room) markStarted() []rosterEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = true
	roster := make([]rosterEntry, len(r.roster))
	copy(roster, r.roster)
	return roster
}

func (r *room) isStarted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

func (r *room) empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.display == nil && len(r.players) == 0
}

func (r *room) clearDisplay() {
	r.mu.Lock()
	p := r.display
	r.display = nil
	r.mu.Unlock()
	if p != nil {
		p.stop()
	}
}

// Broadcast sends an event to the display and every player.
func (r *room) Broadcast(event string, payload any) {
	r.mu.Lock()
	display := r.display
	peers := make([]*peer, 0, len(r.players))
	for _, p := range r.players {
		peers = append(peers, p)
	}
	r.mu.Unlock()

	if display != nil {
		display.send(event, payload)
	}
	for _, p := range peers {
		p.send(event, payload)
	}
}

// ToPlayer sends an event to one player connection.
func (r *room) ToPlayer(conn string, event string, payload any) {
	r.mu.Lock()
	p := r.players[conn]
	r.mu.Unlock()
	if p != nil {
		p.send(event, payload)
	}
}

// ToDisplay sends an event to the shared display.
func (r *room) ToDisplay(event string, payload any) {
	r.mu.Lock()
	display := r.display
	r.mu.Unlock()
	if display != nil {
		display.send(event, payload)
	}
}

// hub tracks rooms by token.
type hub struct {
	mu    sync.Mutex
	rooms map[string]*room
}

func newHub() *hub {
	return &hub{rooms: make(map[string]*room)}
}

func (h *hub) create(token string) *room {
	h.mu.Lock()
	defer h.mu.Unlock()
	r := newRoom(token)
	h.rooms[token] = r
	return r
}

func (h *hub) get(token string) (*room, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	r, ok := h.rooms[token]
	return r, ok
}

func (h *hub) remove(token string) {
	h.mu.Lock()
	delete(h.rooms, token)
	h.mu.Unlock()
}
