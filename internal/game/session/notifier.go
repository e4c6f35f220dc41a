package session

// Notifier delivers engine events to connected clients. Implementations must
// not block; delivery failures are the transport's problem, the engine never
// waits on a slow client.
type Notifier interface {
	// Broadcast sends an event to the shared display and every player.
	Broadcast(event string, payload any)
	// ToPlayer sends an event to a single player connection.
	ToPlayer(conn string, event string, payload any)
	// ToDisplay sends an event to the shared display only.
	ToDisplay(event string, payload any)
}
