package session

import "github.com/louisbranch/molehunt/internal/game/occasion"

// Action is a validated client request applied to the session. The transport
// layer parses wire frames into these types; the engine trusts their shape
// but not their legality.
type Action interface {
	actionName() string
}

// DiceRoll is the active player's movement roll.
type DiceRoll struct {
	Conn  string
	Value int
}

// ShareClue passes a clue copy to another player.
type ShareClue struct {
	Conn           string
	TargetPlayerID int
	ClueName       string
}

// ValidateClues attempts to verify a full category of clues.
type ValidateClues struct {
	Conn      string
	ClueNames []string
}

// SearchClue reports the physical search result rolled at the table.
type SearchClue struct {
	Conn          string
	Success       bool
	DoubleSuccess bool
}

// ChooseOccasion picks one of the offered occasion choices. Success carries
// the table roll for found_clue; TargetPlayerID names the victim of
// skip_player.
type ChooseOccasion struct {
	Conn           string
	Choice         occasion.Choice
	Success        bool
	TargetPlayerID int
}

// StartMinigame begins the guessing timer. IgnoredPlayerID optionally
// excuses one guesser.
type StartMinigame struct {
	Conn            string
	IgnoredPlayerID *int
}

// MinigameGuess submits one guesser's word.
type MinigameGuess struct {
	Conn string
	Word string
}

// ForwardDrawingData relays a drawing stroke from the host to the display.
type ForwardDrawingData struct {
	Conn    string
	Payload any
}

// Disconnect marks a player connection as gone.
type Disconnect struct {
	Conn string
}

// Rejoin rebinds a disconnected player to a new connection.
type Rejoin struct {
	Conn string
	Name string
}

func (DiceRoll) actionName() string           { return "dice_roll" }
func (ShareClue) actionName() string          { return "share_clue" }
func (ValidateClues) actionName() string      { return "validate_clues" }
func (SearchClue) actionName() string         { return "search_clue" }
func (ChooseOccasion) actionName() string     { return "choose_occasion" }
func (StartMinigame) actionName() string      { return "start_minigame" }
func (MinigameGuess) actionName() string      { return "minigame_guess" }
func (ForwardDrawingData) actionName() string { return "forward_drawing_data" }
func (Disconnect) actionName() string         { return "disconnect" }
func (Rejoin) actionName() string             { return "rejoin" }

// Name returns the action's wire name for logs and traces.
func Name(a Action) string {
	if a == nil {
		return "unknown"
	}
	return a.actionName()
}
