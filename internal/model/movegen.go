package model

type direction struct {
	dx int
	dy int
}

var (
	knightDirs = []direction{{-2, -1}, {-1, -2}, {-2, 1}, {-1, 2}, {2, -1}, {1, -2}, {2, 1}, {1, 2}}
	kingDirs   = []direction{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// pseudoDestinations lists the squares the piece's movement pattern reaches
// from its current position. Sliding pieces list every square on their
// lines; pathBlocked removes the unreachable ones later. Self-captures and
// checks are not considered here.
func (g *Game) pseudoDestinations(piece *Piece) []Position {
	switch piece.Type {
	case Rook:
		return rankAndFile(piece.position)
	case Bishop:
		return diagonals(piece.position)
	case Queen:
		return append(rankAndFile(piece.position), diagonals(piece.position)...)
	case Knight:
		return offsets(piece.position, knightDirs)
	case King:
		return g.kingDestinations(piece)
	case Pawn:
		return g.pawnDestinations(piece)
	default:
		return nil
	}
}

func rankAndFile(from Position) []Position {
	destinations := make([]Position, 0, 2*(BoardSize-1))
	for i := 0; i < BoardSize; i++ {
		if i != from.x {
			destinations = append(destinations, Position{x: i, y: from.y})
		}
		if i != from.y {
			destinations = append(destinations, Position{x: from.x, y: i})
		}
	}
	return destinations
}

// diagonals includes the origin itself; callers skip it.
func diagonals(from Position) []Position {
	var destinations []Position
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if abs(x-from.x) == abs(y-from.y) {
				destinations = append(destinations, Position{x: x, y: y})
			}
		}
	}
	return destinations
}

func offsets(from Position, dirs []direction) []Position {
	destinations := make([]Position, 0, len(dirs))
	for _, d := range dirs {
		if to, ok := from.offset(d.dx, d.dy); ok {
			destinations = append(destinations, to)
		}
	}
	return destinations
}

// kingDestinations adds both castle squares as candidates while the king has
// never moved; whether they are playable is decided in candidateMoves.
func (g *Game) kingDestinations(king *Piece) []Position {
	var destinations []Position
	if !king.HasMoved() {
		for _, dx := range []int{-2, 2} {
			if to, ok := king.position.offset(dx, 0); ok {
				destinations = append(destinations, to)
			}
		}
	}
	return append(destinations, offsets(king.position, kingDirs)...)
}

func (g *Game) pawnDestinations(pawn *Piece) []Position {
	var destinations []Position
	dir := pawn.Color().forward()

	one, ok := pawn.position.offset(0, dir)
	if ok && !g.board.occupied(one) {
		destinations = append(destinations, one)
		if !pawn.HasMoved() {
			if two, ok := pawn.position.offset(0, 2*dir); ok && !g.board.occupied(two) {
				destinations = append(destinations, two)
			}
		}
	}

	for _, dx := range []int{-1, 1} {
		to, ok := pawn.position.offset(dx, dir)
		if !ok {
			continue
		}
		if target := g.board.at(to); target != nil && target.Owner != pawn.Owner {
			destinations = append(destinations, to)
		}
	}

	if to, ok := g.enPassantTarget(pawn); ok {
		destinations = append(destinations, to)
	}
	return destinations
}

// enPassantTarget returns the square behind an enemy pawn that double-stepped
// on the previous move and now stands beside pawn.
func (g *Game) enPassantTarget(pawn *Piece) (Position, bool) {
	last := g.lastMove()
	if last == nil {
		return Position{}, false
	}
	enemy := last.Piece
	if enemy.Type != Pawn || enemy.Owner == pawn.Owner || enemy.firstMove != last {
		return Position{}, false
	}
	if abs(last.To.y-last.From.y) != 2 {
		return Position{}, false
	}
	if last.To.y != pawn.position.y || abs(last.To.x-pawn.position.x) != 1 {
		return Position{}, false
	}
	return last.To.offset(0, -enemy.Color().forward())
}

// pathBlocked reports whether any square strictly between the piece and
// destination is occupied. Knights jump and are never blocked.
func (g *Game) pathBlocked(piece *Piece, destination Position) bool {
	if piece.Type == Knight {
		return false
	}
	dx := destination.x - piece.position.x
	dy := destination.y - piece.position.y
	stepX, stepY := sign(dx), sign(dy)
	steps := max(abs(dx), abs(dy))
	x, y := piece.position.x, piece.position.y
	for i := 0; i < steps-1; i++ {
		x += stepX
		y += stepY
		if g.board.occupied(Position{x: x, y: y}) {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
