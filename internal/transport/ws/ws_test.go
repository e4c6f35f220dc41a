package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/websocket"

	"github.com/louisbranch/molehunt/internal/catalog"
	"github.com/louisbranch/molehunt/internal/game/session"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	snap, err := catalog.NewSnapshot(catalog.SeedEvidence())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	manager, err := session.NewManager(snap)
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	return NewGateway(manager)
}

func dialWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, err := websocket.Dial(wsURL, "", server.URL)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func sendFrame(t *testing.T, conn *websocket.Conn, event string, data any) {
	t.Helper()
	if err := json.NewEncoder(conn).Encode(outFrame{Event: event, Data: data}); err != nil {
		t.Fatalf("send %s: %v", event, err)
	}
}

// readUntil reads frames until the wanted event arrives.
func readUntil(t *testing.T, decoder *json.Decoder, event string) frame {
	t.Helper()
	for i := 0; i < 20; i++ {
		var f frame
		if err := decoder.Decode(&f); err != nil {
			t.Fatalf("read waiting for %s: %v", event, err)
		}
		if f.Event == event {
			return f
		}
		if f.Event == eventError {
			t.Fatalf("got error frame while waiting for %s: %s", event, string(f.Data))
		}
	}
	t.Fatalf("event %s never arrived", event)
	return frame{}
}

func TestLobbyAndGameStart(t *testing.T) {
	gateway := newTestGateway(t)
	server := httptest.NewServer(gateway.Handler())
	defer server.Close()

	display := dialWS(t, server)
	displayFrames := json.NewDecoder(display)
	sendFrame(t, display, eventCreateGame, nil)

	created := readUntil(t, displayFrames, eventGameCreated)
	var createdPayload map[string]string
	if err := json.Unmarshal(created.Data, &createdPayload); err != nil {
		t.Fatalf("decode created payload: %v", err)
	}
	token := createdPayload["token"]
	if len(token) != 5 {
		t.Fatalf("expected a 5-digit token, got %q", token)
	}

	ada := dialWS(t, server)
	adaFrames := json.NewDecoder(ada)
	sendFrame(t, ada, eventJoinGame, joinPayload{Token: token, Name: "ada"})
	readUntil(t, adaFrames, eventJoined)

	grace := dialWS(t, server)
	graceFrames := json.NewDecoder(grace)
	sendFrame(t, grace, eventJoinGame, joinPayload{Token: token, Name: "grace"})
	readUntil(t, graceFrames, eventJoined)

	sendFrame(t, display, eventStartGame, startPayload{Difficulty: "easy"})

	// Every player receives an init with their identity; the display hears
	// the roster and the first turn.
	init := readUntil(t, adaFrames, session.EventInit)
	var initPayload session.InitPayload
	if err := json.Unmarshal(init.Data, &initPayload); err != nil {
		t.Fatalf("decode init: %v", err)
	}
	if len(initPayload.Clues) != 1 {
		t.Fatalf("expected one starting clue, got %d", len(initPayload.Clues))
	}
	readUntil(t, graceFrames, session.EventInit)
	readUntil(t, displayFrames, session.EventPlayersTurn)

	// The first player can roll; everyone sees the move.
	sendFrame(t, ada, eventPlayerChoice, playerChoicePayload{Type: "dice", Value: 2})
	readUntil(t, displayFrames, session.EventMove)
	readUntil(t, graceFrames, session.EventMove)
}

func TestJoinUnknownToken(t *testing.T) {
	gateway := newTestGateway(t)
	server := httptest.NewServer(gateway.Handler())
	defer server.Close()

	conn := dialWS(t, server)
	frames := json.NewDecoder(conn)
	sendFrame(t, conn, eventJoinGame, joinPayload{Token: "99999", Name: "ada"})

	var f frame
	if err := frames.Decode(&f); err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.Event != eventError {
		t.Fatalf("expected an error frame, got %s", f.Event)
	}
}

func TestDuplicateLobbyName(t *testing.T) {
	gateway := newTestGateway(t)
	server := httptest.NewServer(gateway.Handler())
	defer server.Close()

	display := dialWS(t, server)
	displayFrames := json.NewDecoder(display)
	sendFrame(t, display, eventCreateGame, nil)
	created := readUntil(t, displayFrames, eventGameCreated)
	var payload map[string]string
	if err := json.Unmarshal(created.Data, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}

	first := dialWS(t, server)
	sendFrame(t, first, eventJoinGame, joinPayload{Token: payload["token"], Name: "ada"})
	readUntil(t, json.NewDecoder(first), eventJoined)

	second := dialWS(t, server)
	secondFrames := json.NewDecoder(second)
	sendFrame(t, second, eventJoinGame, joinPayload{Token: payload["token"], Name: "ada"})

	var f frame
	if err := secondFrames.Decode(&f); err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.Event != eventError {
		t.Fatalf("expected an error frame for the duplicate name, got %s", f.Event)
	}
}

func TestRoomNotifierRouting(t *testing.T) {
	r := newRoom("12345")

	displayBuf := &strings.Builder{}
	playerBuf := &strings.Builder{}
	displayPeer := newPeer(json.NewEncoder(displayBuf))
	playerPeer := newPeer(json.NewEncoder(playerBuf))
	r.setDisplay(displayPeer)
	r.addPlayer("c1", "ada", playerPeer)

	r.ToDisplay("secret_move", map[string]int{"player_id": 0})
	r.ToPlayer("c1", "receive_clue", nil)
	r.Broadcast("move", 7)

	// Stopping flushes the outboxes so the buffers can be inspected.
	displayPeer.stop()
	playerPeer.stop()

	if !strings.Contains(displayBuf.String(), "secret_move") {
		t.Fatal("display should receive display events")
	}
	if strings.Contains(playerBuf.String(), "secret_move") {
		t.Fatal("players should not receive display events")
	}
	if !strings.Contains(playerBuf.String(), "receive_clue") {
		t.Fatal("player should receive targeted events")
	}
	if !strings.Contains(displayBuf.String(), "move") || !strings.Contains(playerBuf.String(), "move") {
		t.Fatal("broadcasts should reach everyone")
	}
}

// blockingWriter stalls every write until released, imitating a client that
// stopped reading its socket.
type blockingWriter struct {
	release chan struct{}
}

func (w *blockingWriter) Write(b []byte) (int, error) {
	<-w.release
	return len(b), nil
}

func TestBroadcastDoesNotBlockOnStalledPeer(t *testing.T) {
	w := &blockingWriter{release: make(chan struct{})}
	r := newRoom("12345")
	r.addPlayer("c1", "ada", newPeer(json.NewEncoder(w)))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10*outboxSize; i++ {
			r.Broadcast("move", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("broadcast blocked on a stalled connection")
	}

	close(w.release)
	r.removePlayer("c1")
}
