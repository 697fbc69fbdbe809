package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/benbeisheim/chess-rules-engine/internal/command"
	"github.com/benbeisheim/chess-rules-engine/internal/model"
	"github.com/benbeisheim/chess-rules-engine/internal/ws"
)

// Status lines reported for text commands.
const (
	StatusIllegalMove   = "Illegal Move"
	StatusUndone        = "Undone"
	StatusUndoSelection = "Undid piece selection"
	StatusNothingToUndo = "Nothing to undo"
	StatusQuitPrompt    = "Type 'please quit', please."
	StatusPrompt        = "Type a command"
	StatusGameOver      = "Game closed"
)

type Options struct {
	Player1Name    string
	Player2Name    string
	HighlightMoves bool
}

type GameService struct {
	gameManager *GameManager
	opts        Options
}

func NewGameService(gameManager *GameManager, opts Options) *GameService {
	return &GameService{
		gameManager: gameManager,
		opts:        opts,
	}
}

// CreateGame starts a new game. Empty names fall back to the configured
// defaults.
func (gs *GameService) CreateGame(player1, player2 string) (string, error) {
	gameID := uuid.New().String()

	if strings.TrimSpace(player1) == "" {
		player1 = gs.opts.Player1Name
	}
	if strings.TrimSpace(player2) == "" {
		player2 = gs.opts.Player2Name
	}
	game := model.NewGame(player1, player2)
	game.SetHighlightMoves(gs.opts.HighlightMoves)

	if err := gs.gameManager.CreateGame(gameID, game); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	var state model.GameState
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		state = g.State()
		return nil
	})
	return state, err
}

// LegalMoves lists the moves of the piece on pos. It is empty for an empty
// square or a piece whose owner is not to move.
func (gs *GameService) LegalMoves(gameID string, pos model.Position) ([]model.MoveRecord, error) {
	var records []model.MoveRecord
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		records = model.MoveRecords(g.LegalMoves(pos))
		return nil
	})
	return records, err
}

func (gs *GameService) MakeMove(gameID string, from, to model.Position) (model.MoveRecord, error) {
	var record model.MoveRecord
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		m, err := g.Move(model.MoveRequest{From: from, To: to})
		if err != nil {
			return err
		}
		g.ResetHighlight()
		record = model.NewMoveRecord(m)
		return nil
	})
	if err != nil {
		logger().Debug("move rejected", "game", gameID, "from", from.Square(), "to", to.Square(), "error", err)
		return model.MoveRecord{}, err
	}
	logger().Debug("move", "game", gameID, "move", record.Notation)
	return record, nil
}

func (gs *GameService) Undo(gameID string) error {
	return gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		if err := g.Undo(); err != nil {
			return err
		}
		g.ResetHighlight()
		return nil
	})
}

// UndoSelection clears a pending piece selection. It reports false when
// nothing was selected.
func (gs *GameService) UndoSelection(gameID string) (bool, error) {
	var selected bool
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		if g.Highlighted() == (model.HighlightMask{}) {
			return nil
		}
		selected = true
		g.ResetHighlight()
		return nil
	})
	return selected, err
}

// RenamePlayers renames both players. An empty name leaves that player as is.
func (gs *GameService) RenamePlayers(gameID, player1, player2 string) error {
	return gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		if name := strings.TrimSpace(player1); name != "" {
			g.RenamePlayer(model.PlayerColorWhite, name)
		}
		if name := strings.TrimSpace(player2); name != "" {
			g.RenamePlayer(model.PlayerColorBlack, name)
		}
		return nil
	})
}

func (gs *GameService) Highlight(gameID string, pos model.Position) (model.HighlightMask, error) {
	var mask model.HighlightMask
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		g.Highlight(pos)
		mask = g.Highlighted()
		return nil
	})
	return mask, err
}

func (gs *GameService) ResetHighlight(gameID string) error {
	return gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		g.ResetHighlight()
		return nil
	})
}

func (gs *GameService) SetHighlightMoves(gameID string, on bool) error {
	return gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		g.SetHighlightMoves(on)
		if !on {
			g.ResetHighlight()
		}
		return nil
	})
}

func (gs *GameService) MoveLog(gameID string) ([]model.MoveRecord, error) {
	var records []model.MoveRecord
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		records = model.MoveRecords(g.MoveLog())
		return nil
	})
	return records, err
}

func (gs *GameService) Captured(gameID string) ([]model.PieceState, error) {
	var pieces []model.PieceState
	err := gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		for _, p := range g.Captured() {
			pieces = append(pieces, model.NewPieceState(p))
		}
		return nil
	})
	return pieces, err
}

// CommandResult is the outcome of a text command. Status is the line shown
// to the players; Log and Help are filled for the matching commands.
type CommandResult struct {
	Kind   command.Kind       `json:"kind,omitempty"`
	Status string             `json:"status"`
	Move   *model.MoveRecord  `json:"move,omitempty"`
	Log    []model.MoveRecord `json:"log,omitempty"`
	Help   string             `json:"help,omitempty"`
	Closed bool               `json:"closed,omitempty"`
}

// ExecuteCommand parses and runs one line of text input. Input and game
// errors become status lines that are announced to the game's observers;
// only an unknown game is returned as an error.
func (gs *GameService) ExecuteCommand(gameID, input string) (CommandResult, error) {
	cmd, err := command.Parse(input)
	if err != nil {
		return gs.reply(gameID, CommandResult{Status: err.Error()})
	}

	res := CommandResult{Kind: cmd.Kind}
	switch cmd.Kind {
	case command.KindMove:
		rec, err := gs.MakeMove(gameID, cmd.From, cmd.To)
		switch {
		case errors.Is(err, model.ErrIllegalMove):
			res.Status = StatusIllegalMove
		case err != nil:
			return CommandResult{}, err
		default:
			res.Status = cmd.Input
			res.Move = &rec
		}
	case command.KindUndo:
		selected, err := gs.UndoSelection(gameID)
		if err != nil {
			return CommandResult{}, err
		}
		if selected {
			res.Status = StatusUndoSelection
			break
		}
		err = gs.Undo(gameID)
		switch {
		case errors.Is(err, model.ErrNothingToUndo):
			res.Status = StatusNothingToUndo
		case err != nil:
			return CommandResult{}, err
		default:
			res.Status = StatusUndone
		}
	case command.KindLog:
		if res.Log, err = gs.MoveLog(gameID); err != nil {
			return CommandResult{}, err
		}
		res.Status = StatusPrompt
	case command.KindHelp:
		res.Help = command.Help
		res.Status = StatusPrompt
	case command.KindNames:
		res.Status = StatusPrompt
	case command.KindQuit:
		res.Status = StatusQuitPrompt
	case command.KindConfirmQuit:
		if err := gs.announce(gameID, StatusGameOver); err != nil {
			return CommandResult{}, err
		}
		if err := gs.gameManager.RemoveGame(gameID); err != nil {
			return CommandResult{}, err
		}
		res.Status = StatusGameOver
		res.Closed = true
		return res, nil
	}
	return gs.reply(gameID, res)
}

// reply announces the status line of res and returns it.
func (gs *GameService) reply(gameID string, res CommandResult) (CommandResult, error) {
	if err := gs.announce(gameID, res.Status); err != nil {
		return CommandResult{}, err
	}
	return res, nil
}

func (gs *GameService) announce(gameID, status string) error {
	return gs.gameManager.WithGame(gameID, func(g *model.Game) error {
		g.Announce(status)
		return nil
	})
}

// RegisterConnection attaches a client connection to the game's event feed
// and returns its connection ID.
func (gs *GameService) RegisterConnection(gameID, clientID string, conn Conn) (string, error) {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, connID string) {
	gs.gameManager.UnregisterConnection(gameID, connID)
}

// Send writes a message to a single registered connection.
func (gs *GameService) Send(gameID, connID string, msg ws.Message) error {
	return gs.gameManager.Send(gameID, connID, msg)
}
