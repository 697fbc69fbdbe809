package model

// PieceState is the serializable view of a piece.
type PieceState struct {
	Type     PieceType   `json:"type"`
	Color    PlayerColor `json:"color"`
	Position Position    `json:"position"`
	HasMoved bool        `json:"hasMoved"`
	Mark     string      `json:"mark"`
}

// MoveRecord is the serializable view of a move.
type MoveRecord struct {
	Piece         PieceState  `json:"piece"`
	From          Position    `json:"from"`
	To            Position    `json:"to"`
	Kind          MoveKind    `json:"kind"`
	CapturedPiece *PieceState `json:"capturedPiece"`
	Notation      string      `json:"notation"`
	Description   string      `json:"description"`
}

type GameState struct {
	// Board is indexed [y][x].
	Board   [BoardSize][BoardSize]*PieceState `json:"board"`
	ToMove  PlayerColor                       `json:"toMove"`
	Players struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
	MoveHistory    []MoveRecord  `json:"moveHistory"`
	CapturedPieces []PieceState  `json:"capturedPieces"`
	LastMove       *MoveRecord   `json:"lastMove"`
	// Highlight is indexed [y][x] like Board.
	Highlight      HighlightMask `json:"highlight"`
	HighlightMoves bool          `json:"highlightMoves"`
}

func NewPieceState(p *Piece) PieceState {
	return PieceState{
		Type:     p.Type,
		Color:    p.Color(),
		Position: p.position,
		HasMoved: p.HasMoved(),
		Mark:     string(p.Mark()),
	}
}

func NewMoveRecord(m *Move) MoveRecord {
	rec := MoveRecord{
		Piece:       NewPieceState(m.Piece),
		From:        m.From,
		To:          m.To,
		Kind:        m.Kind,
		Notation:    m.notation(),
		Description: m.String(),
	}
	if m.Captured != nil {
		captured := NewPieceState(m.Captured)
		rec.CapturedPiece = &captured
	}
	return rec
}

// MoveRecords converts moves in order.
func MoveRecords(moves []*Move) []MoveRecord {
	records := make([]MoveRecord, 0, len(moves))
	for _, m := range moves {
		records = append(records, NewMoveRecord(m))
	}
	return records
}

// State returns a snapshot of the game for serialization.
func (g *Game) State() GameState {
	var state GameState
	for _, p := range g.Pieces() {
		ps := NewPieceState(p)
		state.Board[p.position.y][p.position.x] = &ps
	}
	state.ToMove = g.turn
	state.Players.White = g.white.client()
	state.Players.Black = g.black.client()
	state.MoveHistory = MoveRecords(g.log)
	state.CapturedPieces = make([]PieceState, 0, len(g.captured))
	for _, p := range g.captured {
		state.CapturedPieces = append(state.CapturedPieces, NewPieceState(p))
	}
	if last := g.lastMove(); last != nil {
		rec := NewMoveRecord(last)
		state.LastMove = &rec
	}
	state.Highlight = g.highlight
	state.HighlightMoves = g.highlightMoves
	return state
}
