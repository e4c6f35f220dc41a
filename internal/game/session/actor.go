package session

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/molehunt/internal/errors"
)

const tickInterval = time.Second

// Actor owns a session and serializes all access to it on one goroutine.
// Clients submit actions through Do; time-based behavior runs off an
// internal ticker.
type Actor struct {
	session *Session
	inbox   chan request
	done    chan struct{}
	closed  sync.Once
	tracer  trace.Tracer
}

type request struct {
	action Action
	reply  chan error
}

// NewActor starts the session goroutine.
func NewActor(s *Session) *Actor {
	a := &Actor{
		session: s,
		inbox:   make(chan request),
		done:    make(chan struct{}),
		tracer:  otel.Tracer("molehunt/session"),
	}
	go a.run()
	return a
}

func (a *Actor) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case req := <-a.inbox:
			req.reply <- a.session.Apply(req.action)
		case now := <-ticker.C:
			a.session.Tick(now)
		case <-a.done:
			return
		}
	}
}

// Token returns the underlying session's join token.
func (a *Actor) Token() string {
	return a.session.Token()
}

// Do applies one action on the session goroutine and waits for the result.
func (a *Actor) Do(ctx context.Context, action Action) error {
	ctx, span := a.tracer.Start(ctx, "session.apply", trace.WithAttributes(
		attribute.String("session.token", a.session.Token()),
		attribute.String("session.action", Name(action)),
	))
	defer span.End()

	select {
	case <-a.done:
		span.SetStatus(codes.Error, "session closed")
		return errors.New(errors.CodeSessionEnded, "session is closed")
	default:
	}

	req := request{action: action, reply: make(chan error, 1)}
	select {
	case a.inbox <- req:
	case <-a.done:
		span.SetStatus(codes.Error, "session closed")
		return errors.New(errors.CodeSessionEnded, "session is closed")
	case <-ctx.Done():
		span.SetStatus(codes.Error, "context canceled")
		return ctx.Err()
	}

	select {
	case err := <-req.reply:
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	case <-ctx.Done():
		span.SetStatus(codes.Error, "context canceled")
		return ctx.Err()
	}
}

// Close stops the session goroutine. Pending Do calls fail.
func (a *Actor) Close() {
	a.closed.Do(func() { close(a.done) })
}
