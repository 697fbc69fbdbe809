package model

import (
	"fmt"
	"sort"
	"testing"
)

// newEmptyGame returns a game with both players but no pieces, white to move.
func newEmptyGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame("P1", "P2")
	g.board = make(board)
	return g
}

func sq(t *testing.T, square string) Position {
	t.Helper()
	pos, err := ParseSquare(square)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", square, err)
	}
	return pos
}

func place(t *testing.T, g *Game, pt PieceType, color PlayerColor, square string) *Piece {
	t.Helper()
	p := newPiece(pt, g.Player(color), sq(t, square))
	if g.board.occupied(p.position) {
		t.Fatalf("square %s already occupied", square)
	}
	g.board.put(p)
	return p
}

func removeAt(t *testing.T, g *Game, squares ...string) {
	t.Helper()
	for _, s := range squares {
		p := g.PieceAt(sq(t, s))
		if p == nil {
			t.Fatalf("no piece to clear on %s", s)
		}
		g.board.remove(p)
	}
}

func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if _, err := g.Move(MoveRequest{From: sq(t, m[:2]), To: sq(t, m[2:])}); err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
	}
}

// destinations returns the sorted target squares of the legal moves from square.
func destinations(t *testing.T, g *Game, square string) []string {
	t.Helper()
	var out []string
	for _, m := range g.LegalMoves(sq(t, square)) {
		out = append(out, m.To.Square())
	}
	sort.Strings(out)
	return out
}

// allLegalMoves lists every legal move of the side to move as "e2e4" strings.
func allLegalMoves(g *Game) []string {
	var out []string
	for _, p := range g.Pieces() {
		for _, m := range g.LegalMoves(p.Position()) {
			out = append(out, m.From.Square()+m.To.Square())
		}
	}
	sort.Strings(out)
	return out
}

type pieceSnapshot struct {
	ID        string
	Type      PieceType
	Color     PlayerColor
	FirstMove string
}

type gameSnapshot struct {
	Board    map[string]pieceSnapshot
	Captured []string
	Turn     PlayerColor
	LogSize  int
}

// snapshot captures occupancy, piece identity, first-move records, the
// captured list and the turn as plain values.
func snapshot(g *Game) gameSnapshot {
	s := gameSnapshot{
		Board:   make(map[string]pieceSnapshot, len(g.board)),
		Turn:    g.Turn(),
		LogSize: g.LogSize(),
	}
	for pos, p := range g.board {
		s.Board[pos.Square()] = pieceSnapshot{
			ID:        fmt.Sprintf("%p", p),
			Type:      p.Type,
			Color:     p.Color(),
			FirstMove: fmt.Sprintf("%p", p.firstMove),
		}
	}
	for _, p := range g.captured {
		s.Captured = append(s.Captured, fmt.Sprintf("%p", p))
	}
	return s
}

// attacked reports whether any piece of color by could capture on target,
// computed from piece geometry without the engine's move generator.
func attacked(g *Game, target Position, by PlayerColor) bool {
	for _, p := range g.Pieces() {
		if p.Color() != by {
			continue
		}
		dx := target.X() - p.Position().X()
		dy := target.Y() - p.Position().Y()
		switch p.Type {
		case Pawn:
			if dy == by.forward() && abs(dx) == 1 {
				return true
			}
		case Knight:
			if abs(dx)*abs(dy) == 2 {
				return true
			}
		case King:
			if max(abs(dx), abs(dy)) == 1 {
				return true
			}
		case Rook, Bishop, Queen:
			straight := dx == 0 || dy == 0
			diagonal := abs(dx) == abs(dy)
			if (dx == 0 && dy == 0) ||
				(p.Type == Rook && !straight) ||
				(p.Type == Bishop && !diagonal) ||
				(p.Type == Queen && !straight && !diagonal) {
				continue
			}
			if clearLine(g, p.Position(), target) {
				return true
			}
		}
	}
	return false
}

func clearLine(g *Game, from, to Position) bool {
	x, y := from.X(), from.Y()
	for {
		x += sign(to.X() - x)
		y += sign(to.Y() - y)
		if x == to.X() && y == to.Y() {
			return true
		}
		if g.PieceAt(MustPosition(x, y)) != nil {
			return false
		}
	}
}
