// Package errors provides structured error handling for the session engine.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Protocol violations: the message itself is wrong for the current
	// session state and is rejected before any mutation.
	CodeNotYourTurn        Code = "TURN_NOT_ACTIVE_PLAYER"
	CodeWrongPhase         Code = "TURN_WRONG_PHASE"
	CodeMalformedPayload   Code = "PAYLOAD_MALFORMED"
	CodeUnknownPlayer      Code = "PLAYER_UNKNOWN"
	CodeUnknownConnection  Code = "CONNECTION_UNKNOWN"
	CodeUnknownOccasion    Code = "OCCASION_UNKNOWN_CHOICE"
	CodeMixedClueCategory  Code = "CLUE_MIXED_CATEGORIES"
	CodeGuessNotInWords    Code = "MINIGAME_GUESS_NOT_IN_WORDS"
	CodeNotMinigameHost    Code = "MINIGAME_NOT_HOST"
	CodeHostMayNotGuess    Code = "MINIGAME_HOST_GUESS"
	CodeMinigameNotStarted Code = "MINIGAME_NOT_STARTED"

	// Illegal actions: well-formed requests the rules forbid.
	CodeClueNotOwned    Code = "CLUE_NOT_OWNED"
	CodeAlreadyVerified Code = "PROOF_ALREADY_VERIFIED"
	CodeIgnoreSelf      Code = "MINIGAME_IGNORE_SELF"

	// Session lifecycle errors.
	CodeSessionNotFound  Code = "SESSION_NOT_FOUND"
	CodeSessionEnded     Code = "SESSION_ENDED"
	CodeSessionExists    Code = "SESSION_EXISTS"
	CodeEmptyRoster      Code = "SESSION_EMPTY_ROSTER"
	CodeUnknownRejoin    Code = "SESSION_UNKNOWN_REJOIN"
	CodeRejoinConflict   Code = "SESSION_REJOIN_CONFLICT"
	CodeInvalidConfig    Code = "SESSION_INVALID_CONFIG"
	CodeCatalogExhausted Code = "CATALOG_GROUP_EMPTY"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - protocol violations, bad input
	case CodeNotYourTurn,
		CodeWrongPhase,
		CodeMalformedPayload,
		CodeUnknownPlayer,
		CodeUnknownConnection,
		CodeUnknownOccasion,
		CodeMixedClueCategory,
		CodeGuessNotInWords,
		CodeNotMinigameHost,
		CodeHostMayNotGuess,
		CodeMinigameNotStarted,
		CodeInvalidConfig,
		CodeEmptyRoster:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeClueNotOwned,
		CodeAlreadyVerified,
		CodeIgnoreSelf,
		CodeSessionEnded,
		CodeSessionExists,
		CodeUnknownRejoin,
		CodeRejoinConflict:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeSessionNotFound,
		CodeCatalogExhausted:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
