package model

import "fmt"

// Game is the rules engine for one game: piece placement, captured pieces,
// the move log and whose turn it is. It is not safe for concurrent use;
// callers serialize access. Legal-move queries temporarily mutate the board
// while probing for checks.
type Game struct {
	board    board
	captured []*Piece
	white    *Player
	black    *Player
	turn     PlayerColor
	log      []*Move

	highlight      HighlightMask
	highlightMoves bool

	subs      []subscription
	nextSubID int
}

// MoveRequest is a proposed move. Piece may be nil, in which case the piece
// standing on From is used.
type MoveRequest struct {
	Piece *Piece
	From  Position
	To    Position
}

// NewGame sets up the standard starting position. Player 1 plays white from
// rank 0 and moves first.
func NewGame(player1Name, player2Name string) *Game {
	white := newPlayer(PlayerColorWhite, player1Name)
	black := newPlayer(PlayerColorBlack, player2Name)
	return &Game{
		board: newBoard(white, black),
		white: white,
		black: black,
		turn:  PlayerColorWhite,
	}
}

func (g *Game) Player(color PlayerColor) *Player {
	if color == PlayerColorWhite {
		return g.white
	}
	return g.black
}

func (g *Game) opponentOf(p *Player) *Player {
	return g.Player(p.color.opponent())
}

// Turn returns the color whose move it is.
func (g *Game) Turn() PlayerColor {
	return g.turn
}

func (g *Game) PieceAt(pos Position) *Piece {
	return g.board.at(pos)
}

// Pieces returns every piece on the board, white first, each side in rank
// then file order.
func (g *Game) Pieces() []*Piece {
	return append(g.board.piecesOf(g.white), g.board.piecesOf(g.black)...)
}

// Captured returns the pieces taken so far in capture order.
func (g *Game) Captured() []*Piece {
	return append([]*Piece(nil), g.captured...)
}

// MoveLog returns the executed moves, oldest first.
func (g *Game) MoveLog() []*Move {
	return append([]*Move(nil), g.log...)
}

func (g *Game) LogSize() int {
	return len(g.log)
}

// LastMove returns the most recent move or nil.
func (g *Game) LastMove() *Move {
	return g.lastMove()
}

func (g *Game) lastMove() *Move {
	if len(g.log) == 0 {
		return nil
	}
	return g.log[len(g.log)-1]
}

// LegalMoves returns the legal moves of the piece on pos. The result is
// empty when the square is empty or the piece's owner is not to move.
func (g *Game) LegalMoves(pos Position) []*Move {
	return g.turnEnforcedMoves(g.board.at(pos))
}

// Move validates req against the legal moves of its piece and executes the
// matching move. The returned move is the one appended to the log, with its
// kind and captured piece resolved. On error the game is unchanged.
func (g *Game) Move(req MoveRequest) (*Move, error) {
	piece := req.Piece
	if piece == nil {
		piece = g.board.at(req.From)
	}
	if piece == nil || piece.position != req.From {
		return nil, &IllegalMoveError{Piece: piece, From: req.From, To: req.To}
	}

	var move *Move
	for _, m := range g.turnEnforcedMoves(piece) {
		if m.To == req.To {
			move = m
			break
		}
	}
	if move == nil {
		return nil, &IllegalMoveError{Piece: piece, From: req.From, To: req.To}
	}

	g.executeMove(move)
	g.log = append(g.log, move)
	g.switchTurn()
	g.notify(Event{Kind: EventRefresh})
	return move, nil
}

func (g *Game) executeMove(m *Move) {
	piece := m.Piece
	if m.Captured != nil {
		g.board.remove(m.Captured)
		g.captured = append(g.captured, m.Captured)
	}
	if piece.Type.tracksFirstMove() && piece.firstMove == nil {
		piece.firstMove = m
	}
	g.board.relocate(piece, m.To)

	switch m.Kind {
	case MoveLongCastle:
		g.handleCastle(m, 0, 3)
	case MoveShortCastle:
		g.handleCastle(m, BoardSize-1, 5)
	}

	if piece.Type == Pawn && m.To.y == piece.Owner.color.opponent().backRank() && piece.firstMove != nil {
		g.board.remove(piece)
		g.board.put(newPiece(Queen, piece.Owner, m.To))
		m.Kind = MovePromotion
	}
}

// handleCastle brings the rook on file rookFrom next to the king on file
// rookTo. The king's castle move becomes the rook's first-move record.
func (g *Game) handleCastle(m *Move, rookFrom, rookTo int) {
	from := Position{x: rookFrom, y: m.From.y}
	rook := g.board.at(from)
	if rook == nil || rook.Type != Rook {
		panic(fmt.Sprintf("model: castling %s without a rook on %s", m.Piece.describe(), from))
	}
	g.board.relocate(rook, Position{x: rookTo, y: m.From.y})
	rook.firstMove = m
}

// Undo reverts the last logged move. It returns ErrNothingToUndo when the
// log is empty.
func (g *Game) Undo() error {
	last := g.lastMove()
	if last == nil {
		return ErrNothingToUndo
	}

	switch last.Kind {
	case MoveLongCastle:
		g.undoCastle(last, 3, 0)
	case MoveShortCastle:
		g.undoCastle(last, 5, BoardSize-1)
	case MovePromotion:
		queen := g.board.at(last.To)
		if queen == nil || queen.Type != Queen {
			panic(fmt.Sprintf("model: no promoted queen on %s", last.To))
		}
		g.board.remove(queen)
		g.board.put(last.Piece)
	}

	piece := last.Piece
	if g.board.at(last.To) != piece {
		panic(fmt.Sprintf("model: %s is not on %s", piece.describe(), last.To))
	}
	if piece.firstMove == last {
		piece.firstMove = nil
	}
	g.board.relocate(piece, last.From)

	if last.Captured != nil {
		g.board.put(last.Captured)
		g.removeCaptured(last.Captured)
	}

	g.log = g.log[:len(g.log)-1]
	g.switchTurn()
	g.notify(Event{Kind: EventRefresh})
	return nil
}

func (g *Game) undoCastle(m *Move, rookFrom, rookTo int) {
	from := Position{x: rookFrom, y: m.From.y}
	rook := g.board.at(from)
	if rook == nil || rook.Type != Rook {
		panic(fmt.Sprintf("model: undoing castle without a rook on %s", from))
	}
	g.board.relocate(rook, Position{x: rookTo, y: m.From.y})
	rook.firstMove = nil
}

func (g *Game) removeCaptured(piece *Piece) {
	for i, p := range g.captured {
		if p == piece {
			g.captured = append(g.captured[:i], g.captured[i+1:]...)
			return
		}
	}
}

func (g *Game) switchTurn() {
	g.turn = g.turn.opponent()
}

// RenamePlayer changes the display name of the player of the given color.
func (g *Game) RenamePlayer(color PlayerColor, name string) {
	p := g.Player(color)
	p.name = name
	g.notify(Event{Kind: EventPlayerChanged, Player: p})
}

// SetHighlightMoves turns destination highlighting on or off.
func (g *Game) SetHighlightMoves(on bool) {
	g.highlightMoves = on
}

func (g *Game) HighlightMovesEnabled() bool {
	return g.highlightMoves
}

// Highlight marks the legal destinations of the piece on pos, if
// highlighting is enabled, and publishes the mask.
func (g *Game) Highlight(pos Position) {
	g.highlight = HighlightMask{}
	if g.highlightMoves {
		for _, m := range g.LegalMoves(pos) {
			g.highlight[m.To.y][m.To.x] = true
		}
	}
	g.notify(Event{Kind: EventHighlight, Highlight: g.highlight})
}

// ResetHighlight clears the mask and publishes it.
func (g *Game) ResetHighlight() {
	g.highlight = HighlightMask{}
	g.notify(Event{Kind: EventHighlight, Highlight: g.highlight})
}

// Highlighted returns the current highlight mask.
func (g *Game) Highlighted() HighlightMask {
	return g.highlight
}
