// Package ws exposes the game engine over a JSON websocket protocol. One
// display connection hosts a lobby; player connections join by token and
// submit actions once the game starts.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"

	apperrors "github.com/louisbranch/molehunt/internal/errors"
	"github.com/louisbranch/molehunt/internal/game/board"
	"github.com/louisbranch/molehunt/internal/game/session"
)

// Gateway bridges websocket connections and the session manager.
type Gateway struct {
	manager *session.Manager
	hub     *hub
}

// NewGateway builds the websocket gateway.
func NewGateway(manager *session.Manager) *Gateway {
	return &Gateway{manager: manager, hub: newHub()}
}

// Handler returns the HTTP routes: a health probe on /up and the websocket
// endpoint on /ws.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	wsHandler := websocket.Handler(g.handleConn)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		wsHandler.ServeHTTP(w, r)
	})
	return mux
}

// connState tracks what one websocket connection is bound to.
type connState struct {
	id        string
	peer      *peer
	room      *room
	isDisplay bool
	name      string
}

func (g *Gateway) handleConn(conn *websocket.Conn) {
	defer func() { _ = conn.Close() }()

	state := &connState{
		id:   uuid.NewString(),
		peer: newPeer(json.NewEncoder(conn)),
	}
	defer state.peer.stop()
	defer g.dropConn(state)

	decoder := json.NewDecoder(conn)
	for {
		var f frame
		if err := decoder.Decode(&f); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("ws read failed conn=%s err=%v", state.id, err)
			}
			return
		}
		g.dispatch(conn.Request().Context(), state, f)
	}
}

func (g *Gateway) dispatch(ctx context.Context, state *connState, f frame) {
	var err error
	switch f.Event {
	case eventCreateGame:
		err = g.handleCreateGame(state)
	case eventJoinGame:
		err = g.handleJoinGame(ctx, state, f.Data)
	case eventStartGame:
		err = g.handleStartGame(state, f.Data)
	default:
		err = g.handleGameAction(ctx, state, f)
	}
	if err != nil {
		state.peer.send(eventError, errorPayload{
			Code:    string(apperrors.GetCode(err)),
			Message: err.Error(),
		})
	}
}

func (g *Gateway) handleCreateGame(state *connState) error {
	if state.room != nil {
		return malformed("connection is already bound to a game")
	}
	token := g.manager.CreateToken()
	room := g.hub.create(token)
	room.setDisplay(state.peer)
	state.room = room
	state.isDisplay = true

	state.peer.send(eventGameCreated, map[string]string{"token": token})
	log.Printf("lobby created token=%s", token)
	return nil
}

func (g *Gateway) handleJoinGame(ctx context.Context, state *connState, data json.RawMessage) error {
	var payload joinPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return malformed("join_game payload is not valid JSON")
	}
	if payload.Name == "" {
		return malformed("join_game requires a name")
	}
	room, ok := g.hub.get(payload.Token)
	if !ok {
		return apperrors.Newf(apperrors.CodeSessionNotFound, "no game with token %s", payload.Token)
	}

	if room.isStarted() {
		// A running game only takes back known players.
		actor, err := g.manager.Get(payload.Token)
		if err != nil {
			return err
		}
		room.rebindPlayer(state.id, state.peer)
		if err := actor.Do(ctx, session.Rejoin{Conn: state.id, Name: payload.Name}); err != nil {
			room.detachPlayer(state.id)
			return err
		}
		state.room = room
		state.name = payload.Name
		return nil
	}

	if !room.addPlayer(state.id, payload.Name, state.peer) {
		return apperrors.Newf(apperrors.CodeSessionExists, "name %q is taken in this lobby", payload.Name)
	}
	state.room = room
	state.name = payload.Name
	state.peer.send(eventJoined, map[string]string{"token": payload.Token, "name": payload.Name})
	log.Printf("player joined lobby token=%s name=%s", payload.Token, payload.Name)
	return nil
}

func (g *Gateway) handleStartGame(state *connState, data json.RawMessage) error {
	if state.room == nil || !state.isDisplay {
		return malformed("only the display may start the game")
	}

	var payload startPayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			return malformed("start_game payload is not valid JSON")
		}
	}

	cfg := session.Config{
		MinigamesEnabled:   payload.MinigamesEnabled,
		AllPlayersAllClues: payload.AllPlayersAllClues,
		StartPosition:      payload.StartPosition,
		PursuerStart:       payload.PursuerStart,
	}
	if payload.Difficulty != "" {
		difficulty, err := board.ParseDifficulty(payload.Difficulty)
		if err != nil {
			return malformed("unknown difficulty")
		}
		cfg.Difficulty = difficulty
	}

	roster := state.room.markStarted()
	infos := make([]session.PlayerInfo, 0, len(roster))
	for _, entry := range roster {
		infos = append(infos, session.PlayerInfo{Name: entry.Name, Conn: entry.Conn})
	}

	_, err := g.manager.Start(state.room.token, state.room, infos, cfg)
	return err
}

func (g *Gateway) handleGameAction(ctx context.Context, state *connState, f frame) error {
	if state.room == nil {
		return malformed("join a game first")
	}
	actor, err := g.manager.Get(state.room.token)
	if err != nil {
		return err
	}
	action, err := parseGameAction(state.id, f)
	if err != nil {
		return err
	}
	return actor.Do(ctx, action)
}

// dropConn cleans up after a closed connection and tells the engine about
// player disconnects.
func (g *Gateway) dropConn(state *connState) {
	if state.room == nil {
		return
	}
	room := state.room
	if state.isDisplay {
		room.clearDisplay()
	} else {
		room.removePlayer(state.id)
		if room.isStarted() {
			if actor, err := g.manager.Get(room.token); err == nil {
				if err := actor.Do(context.Background(), session.Disconnect{Conn: state.id}); err != nil {
					log.Printf("disconnect handling failed token=%s err=%v", room.token, err)
				}
			}
		}
	}
	if room.empty() {
		g.hub.remove(room.token)
		g.manager.End(room.token)
		log.Printf("room closed token=%s", room.token)
	}
}
