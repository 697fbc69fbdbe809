package model

// board maps occupied squares to their pieces. At most one piece per square.
type board map[Position]*Piece

var backRankOrder = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard(white, black *Player) board {
	b := make(board, 4*BoardSize)
	for _, p := range []*Player{white, black} {
		back := p.color.backRank()
		pawns := back + p.color.forward()
		for x, t := range backRankOrder {
			b.put(newPiece(t, p, Position{x: x, y: back}))
			b.put(newPiece(Pawn, p, Position{x: x, y: pawns}))
		}
	}
	return b
}

func (b board) at(pos Position) *Piece {
	return b[pos]
}

func (b board) occupied(pos Position) bool {
	return b[pos] != nil
}

// put places the piece on its own position.
func (b board) put(p *Piece) {
	b[p.position] = p
}

func (b board) remove(p *Piece) {
	if b[p.position] == p {
		delete(b, p.position)
	}
}

// relocate moves p to pos, keeping the map keyed by the piece position.
func (b board) relocate(p *Piece, pos Position) {
	b.remove(p)
	p.position = pos
	b.put(p)
}

func (b board) king(owner *Player) *Piece {
	for _, p := range b {
		if p.Type == King && p.Owner == owner {
			return p
		}
	}
	return nil
}

// piecesOf returns the pieces owned by owner in board order (rank, then file).
func (b board) piecesOf(owner *Player) []*Piece {
	var pieces []*Piece
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b[Position{x: x, y: y}]; p != nil && p.Owner == owner {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}
