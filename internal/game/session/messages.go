package session

import (
	"github.com/louisbranch/molehunt/internal/game/clue"
	"github.com/louisbranch/molehunt/internal/game/minigame"
	"github.com/louisbranch/molehunt/internal/game/occasion"
)

// Event names on the wire. The payload structs below document each shape.
const (
	EventInit               = "init"
	EventPlayerInfos        = "player_infos"
	EventMove               = "move"
	EventPursuerMove        = "pursuer_move"
	EventPursuerVisibility  = "pursuer_visibility"
	EventPlayersTurn        = "players_turn"
	EventOccasion           = "occasion"
	EventOccasionInfo       = "occasion_info"
	EventReceiveClue        = "receive_clue"
	EventUpdatedClue        = "updated_clue"
	EventValidationResult   = "validation_result"
	EventSecretMove         = "secret_move"
	EventHostMinigame       = "host_minigame"
	EventGuessMinigame      = "guess_minigame"
	EventMinigameStarted    = "minigame_started"
	EventMinigameResult     = "minigame_result"
	EventDrawingUpdate      = "drawing_update"
	EventPlayerDisconnected = "player_disconnected"
	EventPlayerRejoined     = "player_rejoined"
	EventGameOver           = "game_over"
)

// Validation statuses reported in ValidationResultPayload.
const (
	StatusNotInInventory    = "not_in_inventory"
	StatusAlreadyVerified   = "already_verified"
	StatusValidationAllowed = "validation_allowed"
	StatusNewValidation     = "new_validation"
)

// Game over winners and reasons.
const (
	WinnerMole = "mole"
	WinnerTeam = "team"

	ReasonHinderedTeam          = "hindered_team"
	ReasonDestroyedEnoughProofs = "destroyed_enough_proofs"
	ReasonValidatedEnoughProofs = "validated_enough_proofs"
	ReasonPursuerCaughtTeam     = "moriarty_caught_team"
)

// CluePayload is the wire form of a player's clue copy.
type CluePayload struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Subtype      string `json:"subtype"`
	ReceivedFrom int    `json:"received_from"`
	SentTo       []int  `json:"sent_to"`
}

func cluePayload(c clue.Clue) CluePayload {
	sentTo := c.SentTo
	if sentTo == nil {
		sentTo = []int{}
	}
	return CluePayload{
		Name:         c.Name,
		Category:     string(c.Category),
		Subtype:      string(c.Subtype),
		ReceivedFrom: c.ReceivedFrom,
		SentTo:       sentTo,
	}
}

// ProofPayload names one verified category and who verified it.
type ProofPayload struct {
	Category string `json:"category"`
	From     int    `json:"from"`
}

// InitPayload is sent to each player on session start and on rejoin.
type InitPayload struct {
	PlayerID          int            `json:"player_id"`
	IsMole            bool           `json:"is_mole"`
	Clues             []CluePayload  `json:"clues"`
	Rejoin            bool           `json:"rejoin"`
	ProofedCategories []ProofPayload `json:"proofed_categories"`
}

// PlayerInfoPayload is one roster entry in the player_infos event.
type PlayerInfoPayload struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
}

// PlayersTurnPayload announces whose turn begins and any movement modifier.
type PlayersTurnPayload struct {
	PlayerID         int    `json:"player_id"`
	MovementModifier string `json:"movement_modifier"`
}

// ChoicePayload is one offered or chosen occasion.
type ChoicePayload struct {
	Type  string `json:"type"`
	Value int    `json:"value,omitempty"`
}

func choicePayload(c occasion.Choice) ChoicePayload {
	return ChoicePayload{Type: string(c.Kind), Value: c.Value}
}

// OccasionPayload announces an occasion. Only the active player receives the
// choices.
type OccasionPayload struct {
	PlayerID int             `json:"player_id"`
	Choices  []ChoicePayload `json:"choices,omitempty"`
}

// OccasionInfoPayload tells the display about an occasion effect.
type OccasionInfoPayload struct {
	Type     string `json:"type"`
	Value    int    `json:"value,omitempty"`
	PlayerID int    `json:"player_id,omitempty"`
}

// ReceiveCluePayload hands a clue copy to a player. A null clue reports an
// attempted find that came up empty.
type ReceiveCluePayload struct {
	Clue *CluePayload `json:"clue"`
}

func receiveCluePayload(c clue.Clue) ReceiveCluePayload {
	payload := cluePayload(c)
	return ReceiveCluePayload{Clue: &payload}
}

// ValidationResultPayload reports a validation attempt to everyone.
type ValidationResultPayload struct {
	SuccessfulValidation bool           `json:"successful_validation"`
	ValidationStatus     string         `json:"validation_status"`
	PlayerID             int            `json:"player_id"`
	Clues                []string       `json:"clues"`
	ProofedCategories    []ProofPayload `json:"proofed_categories"`
}

// SecretMovePayload tells the display a hidden move happened without
// revealing its content.
type SecretMovePayload struct {
	PlayerID int    `json:"player_id"`
	MoveName string `json:"move_name"`
}

// GuessMinigamePayload goes to guessing players and the display.
type GuessMinigamePayload struct {
	Kind     string   `json:"kind"`
	Words    []string `json:"words"`
	Category string   `json:"category"`
	Start    bool     `json:"start"`
	Ignored  bool     `json:"ignored"`
}

// HostMinigamePayload goes to the hosting player only.
type HostMinigamePayload struct {
	Kind         string   `json:"kind"`
	SolutionWord string   `json:"solution_word"`
	Words        []string `json:"words"`
	Category     string   `json:"category"`
}

// MinigameStartedPayload tells the display a minigame round began.
type MinigameStartedPayload struct {
	Kind       string `json:"kind"`
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PlayerResultPayload is one guesser's outcome in a minigame result.
type PlayerResultPayload struct {
	PlayerID int    `json:"player_id"`
	Success  bool   `json:"success"`
	Guess    string `json:"guess,omitempty"`
	Ignored  bool   `json:"ignored"`
}

func playerResultPayloads(results []minigame.PlayerResult) []PlayerResultPayload {
	payloads := make([]PlayerResultPayload, 0, len(results))
	for _, r := range results {
		payloads = append(payloads, PlayerResultPayload{
			PlayerID: r.PlayerID,
			Success:  r.Success,
			Guess:    r.Guess,
			Ignored:  r.Ignored,
		})
	}
	return payloads
}

// MinigameResultPayload reports a finished minigame round to everyone.
type MinigameResultPayload struct {
	Kind          string                `json:"kind"`
	Success       bool                  `json:"success"`
	PlayerResults []PlayerResultPayload `json:"player_results"`
	SolutionWord  string                `json:"solution_word"`
}

// PursuerVisibilityPayload toggles the pursuer pawn on the display.
type PursuerVisibilityPayload struct {
	Visible bool `json:"visible"`
}

// GameOverPayload announces the session outcome and unmasks the mole.
type GameOverPayload struct {
	Winner string `json:"winner"`
	Reason string `json:"reason"`
	MoleID int    `json:"mole_id"`
}
