package session

import (
	"context"
	"testing"

	"github.com/louisbranch/molehunt/internal/errors"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(testSnapshot(t))
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return m
}

func TestManagerLifecycle(t *testing.T) {
	m := newTestManager(t)

	token := m.CreateToken()
	if len(token) != 5 {
		t.Fatalf("expected a 5-digit token, got %q", token)
	}

	if _, err := m.Get(token); !errors.IsCode(err, errors.CodeSessionNotFound) {
		t.Fatalf("a reserved token is not a running session, got %v", err)
	}

	infos := []PlayerInfo{{Name: "ada", Conn: "c0"}, {Name: "grace", Conn: "c1"}}
	actor, err := m.Start(token, &fakeNotifier{}, infos, Config{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer m.End(token)

	if actor.Token() != token {
		t.Fatalf("actor token mismatch: %s", actor.Token())
	}
	got, err := m.Get(token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != actor {
		t.Fatal("get should return the running actor")
	}

	// Starting the same token twice fails.
	if _, err := m.Start(token, &fakeNotifier{}, infos, Config{}); !errors.IsCode(err, errors.CodeSessionExists) {
		t.Fatalf("expected session-exists error, got %v", err)
	}
}

func TestManagerStartUnreservedToken(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Start("00000", &fakeNotifier{}, []PlayerInfo{{Name: "ada", Conn: "c0"}}, Config{})
	if !errors.IsCode(err, errors.CodeSessionNotFound) {
		t.Fatalf("expected session-not-found error, got %v", err)
	}
}

func TestManagerEndEvicts(t *testing.T) {
	m := newTestManager(t)
	token := m.CreateToken()
	if _, err := m.Start(token, &fakeNotifier{}, []PlayerInfo{{Name: "ada", Conn: "c0"}}, Config{}); err != nil {
		t.Fatalf("start: %v", err)
	}

	m.End(token)
	if _, err := m.Get(token); !errors.IsCode(err, errors.CodeSessionNotFound) {
		t.Fatalf("expected eviction, got %v", err)
	}
}

func TestActorSerializesActions(t *testing.T) {
	m := newTestManager(t)
	token := m.CreateToken()
	infos := []PlayerInfo{{Name: "ada", Conn: "c0"}, {Name: "grace", Conn: "c1"}}
	actor, err := m.Start(token, &fakeNotifier{}, infos, Config{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer m.End(token)

	ctx := context.Background()
	// A roll of 1 from the default start lands on a plain field, so the
	// turn passes cleanly to the second player.
	if err := actor.Do(ctx, DiceRoll{Conn: "c0", Value: 1}); err != nil {
		t.Fatalf("do: %v", err)
	}
	// The wrong player's roll surfaces the engine error through Do.
	if err := actor.Do(ctx, DiceRoll{Conn: "c0", Value: 1}); !errors.IsCode(err, errors.CodeNotYourTurn) {
		t.Fatalf("expected not-your-turn error, got %v", err)
	}
}

func TestActorCloseFailsPendingDo(t *testing.T) {
	m := newTestManager(t)
	token := m.CreateToken()
	actor, err := m.Start(token, &fakeNotifier{}, []PlayerInfo{{Name: "ada", Conn: "c0"}}, Config{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	actor.Close()
	if err := actor.Do(context.Background(), DiceRoll{Conn: "c0", Value: 1}); !errors.IsCode(err, errors.CodeSessionEnded) {
		t.Fatalf("expected session-ended error, got %v", err)
	}
}
