package errors

import (
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeNotYourTurn, codes.InvalidArgument},
		{CodeWrongPhase, codes.InvalidArgument},
		{CodeMalformedPayload, codes.InvalidArgument},
		{CodeAlreadyVerified, codes.FailedPrecondition},
		{CodeClueNotOwned, codes.FailedPrecondition},
		{CodeIgnoreSelf, codes.FailedPrecondition},
		{CodeSessionNotFound, codes.NotFound},
		{CodeUnknown, codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.code, tt.want, got)
		}
	}
}

func TestGetCode(t *testing.T) {
	err := New(CodeNotYourTurn, "not your turn")
	if got := GetCode(err); got != CodeNotYourTurn {
		t.Fatalf("expected %s, got %s", CodeNotYourTurn, got)
	}
	wrapped := fmt.Errorf("dispatch action: %w", err)
	if got := GetCode(wrapped); got != CodeNotYourTurn {
		t.Fatalf("expected code through wrapping, got %s", got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != CodeUnknown {
		t.Fatalf("expected unknown code, got %s", got)
	}
}

func TestIsCode(t *testing.T) {
	err := Newf(CodeAlreadyVerified, "category %s already verified", "weapon")
	if !IsCode(err, CodeAlreadyVerified) {
		t.Fatal("expected IsCode to match")
	}
	if IsCode(err, CodeNotYourTurn) {
		t.Fatal("expected IsCode mismatch")
	}
}

func TestHandleError(t *testing.T) {
	if HandleError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
	st, ok := status.FromError(HandleError(New(CodeSessionNotFound, "no session")))
	if !ok || st.Code() != codes.NotFound {
		t.Fatalf("expected NotFound status, got %v", st)
	}
	st, ok = status.FromError(HandleError(fmt.Errorf("boom")))
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("expected Internal status, got %v", st)
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(CodeClueNotOwned, "clue not in inventory").WithMeta("clue", "knife")
	if err.Error() != "CLUE_NOT_OWNED: clue not in inventory" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if err.Metadata["clue"] != "knife" {
		t.Fatalf("expected metadata, got %v", err.Metadata)
	}
}
