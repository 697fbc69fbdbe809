package model

import "fmt"

type MoveKind string

const (
	MovePlain       MoveKind = "move"
	MoveLongCastle  MoveKind = "longCastle"
	MoveShortCastle MoveKind = "shortCastle"
	MoveEnPassant   MoveKind = "enPassant"
	MovePromotion   MoveKind = "promotion"
)

// Move records one executed (or candidate) move. Captured is nil for quiet
// moves; for en passant it is the pawn beside the origin, not a piece on To.
// The engine never changes a move once it has been appended to the log.
type Move struct {
	Piece    *Piece
	From     Position
	To       Position
	Kind     MoveKind
	Captured *Piece
}

func (m *Move) String() string {
	var verb string
	switch m.Kind {
	case MoveLongCastle:
		verb = " castled long from "
	case MoveShortCastle:
		verb = " castled short from "
	case MoveEnPassant:
		verb = " en passant from "
	case MovePromotion:
		verb = " promoted and moved from "
	default:
		verb = " moved from "
	}
	s := m.Piece.describe() + verb + m.From.String() + " to " + m.To.String()
	if m.Captured != nil {
		s += " capturing " + m.Captured.describe()
	}
	return s
}

// notation is a compact long-form notation such as "Ng1-f3" or "e5xd6".
func (m *Move) notation() string {
	switch m.Kind {
	case MoveLongCastle:
		return "O-O-O"
	case MoveShortCastle:
		return "O-O"
	}
	sep := "-"
	if m.Captured != nil {
		sep = "x"
	}
	s := fmt.Sprintf("%s%s%s%s", m.Piece.Type.getPieceNotation(), m.From.Square(), sep, m.To.Square())
	if m.Kind == MovePromotion {
		s += "=Q"
	}
	return s
}
