package ws

import (
	"encoding/json"

	"github.com/louisbranch/molehunt/internal/errors"
	"github.com/louisbranch/molehunt/internal/game/occasion"
	"github.com/louisbranch/molehunt/internal/game/session"
)

// Client event names. Game events reuse the session package's names.
const (
	eventCreateGame     = "create_game"
	eventJoinGame       = "join_game"
	eventStartGame      = "start_game"
	eventPlayerChoice   = "player_choice"
	eventOccasionChoice = "occasion_choice"
	eventMinigameStart  = "minigame_start"
	eventMinigameGuess  = "minigame_guess"
	eventDrawingData    = "drawing_data"

	eventGameCreated = "game_created"
	eventJoined      = "joined"
	eventError       = "error"
)

type joinPayload struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

type startPayload struct {
	Difficulty         string `json:"difficulty,omitempty"`
	MinigamesEnabled   bool   `json:"minigames_enabled,omitempty"`
	AllPlayersAllClues bool   `json:"all_players_all_clues,omitempty"`
	StartPosition      *int   `json:"start_position,omitempty"`
	PursuerStart       int    `json:"pursuer_start,omitempty"`
}

type playerChoicePayload struct {
	Type          string   `json:"type"`
	Value         int      `json:"value,omitempty"`
	With          *int     `json:"with,omitempty"`
	Clue          string   `json:"clue,omitempty"`
	Clues         []string `json:"clues,omitempty"`
	Success       bool     `json:"success,omitempty"`
	DoubleSuccess bool     `json:"doublesuccess,omitempty"`
}

type occasionChoicePayload struct {
	Type     string `json:"type"`
	Value    int    `json:"value,omitempty"`
	PlayerID int    `json:"player_id,omitempty"`
	Success  bool   `json:"success,omitempty"`
}

type minigameStartPayload struct {
	IgnoredPlayer *int `json:"ignored_player,omitempty"`
}

type minigameGuessPayload struct {
	Guess string `json:"guess"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func malformed(msg string) error {
	return errors.New(errors.CodeMalformedPayload, msg)
}

// parsePlayerChoice maps a player_choice frame to a typed action.
func parsePlayerChoice(conn string, data json.RawMessage) (session.Action, error) {
	var payload playerChoicePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, malformed("player_choice payload is not valid JSON")
	}
	switch payload.Type {
	case "dice":
		return session.DiceRoll{Conn: conn, Value: payload.Value}, nil
	case "share-clue":
		if payload.With == nil {
			return nil, malformed("share-clue requires a target player")
		}
		if payload.Clue == "" {
			return nil, malformed("share-clue requires a clue name")
		}
		return session.ShareClue{Conn: conn, TargetPlayerID: *payload.With, ClueName: payload.Clue}, nil
	case "validate-clues":
		if len(payload.Clues) == 0 {
			return nil, malformed("validate-clues requires clue names")
		}
		return session.ValidateClues{Conn: conn, ClueNames: payload.Clues}, nil
	case "search-clue":
		return session.SearchClue{Conn: conn, Success: payload.Success, DoubleSuccess: payload.DoubleSuccess}, nil
	}
	return nil, malformed("unknown player_choice type")
}

// parseOccasionChoice maps an occasion_choice frame to a typed action.
func parseOccasionChoice(conn string, data json.RawMessage) (session.Action, error) {
	var payload occasionChoicePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, malformed("occasion_choice payload is not valid JSON")
	}
	kind := occasion.Kind(payload.Type)
	if !occasion.ValidKind(kind) {
		return nil, malformed("unknown occasion type")
	}
	return session.ChooseOccasion{
		Conn:           conn,
		Choice:         occasion.Choice{Kind: kind, Value: payload.Value},
		Success:        payload.Success,
		TargetPlayerID: payload.PlayerID,
	}, nil
}

func parseMinigameStart(conn string, data json.RawMessage) (session.Action, error) {
	var payload minigameStartPayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, malformed("minigame_start payload is not valid JSON")
		}
	}
	return session.StartMinigame{Conn: conn, IgnoredPlayerID: payload.IgnoredPlayer}, nil
}

func parseMinigameGuess(conn string, data json.RawMessage) (session.Action, error) {
	var payload minigameGuessPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, malformed("minigame_guess payload is not valid JSON")
	}
	if payload.Guess == "" {
		return nil, malformed("minigame_guess requires a guess")
	}
	return session.MinigameGuess{Conn: conn, Word: payload.Guess}, nil
}

// parseGameAction maps in-game frames to session actions.
func parseGameAction(conn string, f frame) (session.Action, error) {
	switch f.Event {
	case eventPlayerChoice:
		return parsePlayerChoice(conn, f.Data)
	case eventOccasionChoice:
		return parseOccasionChoice(conn, f.Data)
	case eventMinigameStart:
		return parseMinigameStart(conn, f.Data)
	case eventMinigameGuess:
		return parseMinigameGuess(conn, f.Data)
	case eventDrawingData:
		return session.ForwardDrawingData{Conn: conn, Payload: json.RawMessage(f.Data)}, nil
	}
	return nil, malformed("unknown event " + f.Event)
}
