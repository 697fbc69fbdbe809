package command

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/benbeisheim/chess-rules-engine/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"e2 e4", Command{Kind: KindMove, Input: "e2 e4", From: model.MustPosition(4, 1), To: model.MustPosition(4, 3)}},
		{"  g1f3 ", Command{Kind: KindMove, Input: "g1f3", From: model.MustPosition(6, 0), To: model.MustPosition(5, 2)}},
		{"A7 a8", Command{Kind: KindMove, Input: "A7 a8", From: model.MustPosition(0, 6), To: model.MustPosition(0, 7)}},
		{"move (4, 1) -> (4, 3)", Command{Kind: KindMove, Input: "move (4, 1) -> (4, 3)", From: model.MustPosition(4, 1), To: model.MustPosition(4, 3)}},
		{"MOVE(0,0)->(0,7)", Command{Kind: KindMove, Input: "MOVE(0,0)->(0,7)", From: model.MustPosition(0, 0), To: model.MustPosition(0, 7)}},
		{"undo", Command{Kind: KindUndo, Input: "undo"}},
		{"Log", Command{Kind: KindLog, Input: "Log"}},
		{"help", Command{Kind: KindHelp, Input: "help"}},
		{"names", Command{Kind: KindNames, Input: "names"}},
		{"quit", Command{Kind: KindQuit, Input: "quit"}},
		{"Please Quit", Command{Kind: KindConfirmQuit, Input: "Please Quit"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(model.Position{})); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"i2 i4", ErrInvalidSquare},
		{"e9 e4", ErrInvalidSquare},
		{"e2 e0", ErrInvalidSquare},
		{"move (8, 1) -> (4, 3)", ErrInvalidInput},
		{"move (4, 1) -> (4, 9)", ErrInvalidInput},
		{"castle", ErrUnknownCommand},
		{"", ErrUnknownCommand},
		{"e2 to e4", ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if diff := cmp.Diff(tt.want, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("Parse(%q) error mismatch (-want +got):\n%s", tt.input, diff)
			}
			if errors.Is(err, model.ErrOutOfRange) {
				t.Errorf("Parse(%q) leaked %v", tt.input, model.ErrOutOfRange)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	for err, want := range map[error]string{
		ErrInvalidSquare:  "Invalid index",
		ErrInvalidInput:   "Invalid input.  Try: a2 a4",
		ErrUnknownCommand: "Invalid command",
	} {
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	}
}
