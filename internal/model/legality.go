package model

// candidateMoves turns the pseudo-legal destinations of piece into classified
// moves: unreachable squares and self-captures are dropped, castle candidates
// are resolved against the rooks, and en passant captures are identified.
// Checks are not considered and neither is whose turn it is.
func (g *Game) candidateMoves(piece *Piece) []*Move {
	var moves []*Move
	from := piece.position
	for _, to := range g.pseudoDestinations(piece) {
		if to == from || g.pathBlocked(piece, to) {
			continue
		}

		if piece.Type == King && abs(to.x-from.x) == 2 {
			if !g.canCastle(piece, to) {
				continue
			}
			kind := MoveShortCastle
			if to.x < from.x {
				kind = MoveLongCastle
			}
			moves = append(moves, &Move{Piece: piece, From: from, To: to, Kind: kind})
			continue
		}

		target := g.board.at(to)
		if target != nil && target.Owner == piece.Owner {
			continue
		}

		if piece.Type == Pawn && abs(to.x-from.x) == 1 && target == nil {
			behind, ok := to.offset(0, -piece.Color().forward())
			if !ok {
				continue
			}
			moves = append(moves, &Move{
				Piece:    piece,
				From:     from,
				To:       to,
				Kind:     MoveEnPassant,
				Captured: g.board.at(behind),
			})
			continue
		}

		moves = append(moves, &Move{Piece: piece, From: from, To: to, Kind: MovePlain, Captured: target})
	}
	return moves
}

// canCastle checks the rook on the corner the king is heading toward: it
// must be an unmoved rook of the same owner with nothing between it and the
// king. Attacked transit squares are not considered.
func (g *Game) canCastle(king *Piece, to Position) bool {
	cornerX := 0
	if to.x > king.position.x {
		cornerX = BoardSize - 1
	}
	corner := Position{x: cornerX, y: king.position.y}
	rook := g.board.at(corner)
	if rook == nil || rook.Type != Rook || rook.Owner != king.Owner || rook.HasMoved() {
		return false
	}
	return !g.pathBlocked(king, corner)
}

// uncheckedMoves drops every candidate move after which the opponent could
// capture the mover's king.
func (g *Game) uncheckedMoves(piece *Piece) []*Move {
	candidates := g.candidateMoves(piece)
	legal := make([]*Move, 0, len(candidates))
	for _, m := range candidates {
		if !g.exposesKing(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// exposesKing plays m on the board, generates every opponent reply and looks
// for one that captures the mover's king. The board is restored before
// returning.
func (g *Game) exposesKing(m *Move) bool {
	owner := m.Piece.Owner
	king := g.board.king(owner)
	if king == nil {
		return false
	}
	return g.simulate(m, func() bool {
		for _, enemy := range g.board.piecesOf(g.opponentOf(owner)) {
			for _, reply := range g.candidateMoves(enemy) {
				if reply.Captured == king {
					return true
				}
			}
		}
		return false
	})
}

// simulate applies the piece movement and capture of m, runs check, and
// always puts the board back the way it was.
func (g *Game) simulate(m *Move, check func() bool) bool {
	if m.Captured != nil {
		g.board.remove(m.Captured)
	}
	g.board.relocate(m.Piece, m.To)
	defer func() {
		g.board.relocate(m.Piece, m.From)
		if m.Captured != nil {
			g.board.put(m.Captured)
		}
	}()
	return check()
}

// turnEnforcedMoves is uncheckedMoves restricted to the side to move.
func (g *Game) turnEnforcedMoves(piece *Piece) []*Move {
	if piece == nil || piece.Color() != g.turn || g.board.at(piece.position) != piece {
		return nil
	}
	return g.uncheckedMoves(piece)
}
