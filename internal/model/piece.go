package model

import "fmt"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (t PieceType) getPieceNotation() string {
	switch t {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// tracksFirstMove reports whether pieces of this type remember the move that
// first moved them (castling rights, pawn double steps).
func (t PieceType) tracksFirstMove() bool {
	return t == King || t == Rook || t == Pawn
}

var pieceMarks = map[PieceType][2]rune{
	King:   {'♔', '♚'},
	Queen:  {'♕', '♛'},
	Rook:   {'♖', '♜'},
	Bishop: {'♗', '♝'},
	Knight: {'♘', '♞'},
	Pawn:   {'♙', '♟'},
}

// Piece is a single man on (or captured from) the board. Move generation
// dispatches on Type; the only per-piece state is the position and, for
// kings, rooks and pawns, the first-move record.
type Piece struct {
	Type     PieceType
	Owner    *Player
	position Position
	// firstMove is the move that first moved this piece. Only set for
	// types where tracksFirstMove is true.
	firstMove *Move
}

func newPiece(t PieceType, owner *Player, pos Position) *Piece {
	return &Piece{Type: t, Owner: owner, position: pos}
}

func (p *Piece) Position() Position { return p.position }

func (p *Piece) Color() PlayerColor { return p.Owner.color }

// FirstMove returns the move that first moved the piece, or nil.
func (p *Piece) FirstMove() *Move { return p.firstMove }

// HasMoved reports whether the piece has a first-move record.
func (p *Piece) HasMoved() bool { return p.firstMove != nil }

// Mark returns the Unicode glyph for the piece.
func (p *Piece) Mark() rune {
	marks := pieceMarks[p.Type]
	if p.Color() == PlayerColorWhite {
		return marks[0]
	}
	return marks[1]
}

func (p *Piece) String() string {
	return string(p.Type)
}

// describe renders "<owner>'s <type>".
func (p *Piece) describe() string {
	return fmt.Sprintf("%s's %s", p.Owner.name, p.Type)
}
