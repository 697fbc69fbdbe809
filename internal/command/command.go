// Package command parses the text commands typed into a game's input box.
package command

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/benbeisheim/chess-rules-engine/internal/model"
)

type Kind string

const (
	KindMove        Kind = "move"
	KindUndo        Kind = "undo"
	KindLog         Kind = "log"
	KindHelp        Kind = "help"
	KindNames       Kind = "names"
	KindQuit        Kind = "quit"
	KindConfirmQuit Kind = "pleaseQuit"
)

var (
	// ErrInvalidSquare is returned for a square outside a1..h8.
	ErrInvalidSquare = errors.New("Invalid index")
	// ErrInvalidInput is returned for legacy coordinates outside the board.
	ErrInvalidInput = errors.New("Invalid input.  Try: a2 a4")
	// ErrUnknownCommand is returned for anything that is not a command.
	ErrUnknownCommand = errors.New("Invalid command")
)

// Command is a parsed input line. From and To are only set for KindMove.
type Command struct {
	Kind  Kind
	Input string
	From  model.Position
	To    model.Position
}

var (
	squarePattern = regexp.MustCompile(`^\s*(\w)\s*(\d)\s*(\w)\s*(\d)\s*$`)
	legacyPattern = regexp.MustCompile(`^move\s*\(\s*(\d)\s*,\s*(\d)\s*\)\s*->\s*\(\s*(\d)\s*,\s*(\d)\s*\)$`)
)

var keywords = map[string]Kind{
	"undo":        KindUndo,
	"log":         KindLog,
	"help":        KindHelp,
	"names":       KindNames,
	"quit":        KindQuit,
	"please quit": KindConfirmQuit,
}

// Parse reads one input line. Matching is case-insensitive and ignores
// surrounding whitespace.
func Parse(input string) (Command, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	cmd := Command{Input: strings.TrimSpace(input)}

	if m := squarePattern.FindStringSubmatch(normalized); m != nil {
		from, err := square(m[1], m[2])
		if err != nil {
			return Command{}, err
		}
		to, err := square(m[3], m[4])
		if err != nil {
			return Command{}, err
		}
		cmd.Kind, cmd.From, cmd.To = KindMove, from, to
		return cmd, nil
	}

	if m := legacyPattern.FindStringSubmatch(normalized); m != nil {
		from, err := coordinates(m[1], m[2])
		if err != nil {
			return Command{}, err
		}
		to, err := coordinates(m[3], m[4])
		if err != nil {
			return Command{}, err
		}
		cmd.Kind, cmd.From, cmd.To = KindMove, from, to
		return cmd, nil
	}

	if kind, ok := keywords[normalized]; ok {
		cmd.Kind = kind
		return cmd, nil
	}
	return Command{}, ErrUnknownCommand
}

func square(file, rank string) (model.Position, error) {
	pos, err := model.ParseSquare(file + rank)
	if err != nil {
		return model.Position{}, ErrInvalidSquare
	}
	return pos, nil
}

func coordinates(x, y string) (model.Position, error) {
	// The pattern guarantees single digits.
	xi, _ := strconv.Atoi(x)
	yi, _ := strconv.Atoi(y)
	pos, err := model.NewPosition(xi, yi)
	if err != nil {
		return model.Position{}, ErrInvalidInput
	}
	return pos, nil
}

// Help lists the accepted commands.
const Help = `Commands:
  e2 e4                  move the piece on e2 to e4
  move (4, 1) -> (4, 3)  the same move in board coordinates
  undo                   take back the last move
  log                    show the move log
  names                  change the player names
  help                   show this text
  quit                   ask to leave the game
  please quit            leave the game

Click a piece to see where it can go, then click a destination.`
