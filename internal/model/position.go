package model

import (
	"encoding/json"
	"fmt"
)

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Position is an immutable board coordinate. X is the file (0 = a) and Y is
// the rank (0 = first player's back rank).
type Position struct {
	x int
	y int
}

// NewPosition returns the position (x, y) or an *OutOfRangeError when either
// coordinate falls outside [0,7].
func NewPosition(x, y int) (Position, error) {
	if !boundaryCheck(x, y) {
		return Position{}, &OutOfRangeError{X: x, Y: y}
	}
	return Position{x: x, y: y}, nil
}

// MustPosition is NewPosition for coordinates known to be valid. It panics
// otherwise.
func MustPosition(x, y int) Position {
	p, err := NewPosition(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSquare parses file/rank notation such as "e2".
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, ErrOutOfRange)
	}
	return NewPosition(int(s[0])-'a', int(s[1])-'1')
}

func boundaryCheck(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

func (p Position) X() int { return p.x }
func (p Position) Y() int { return p.y }

// offset returns the position shifted by (dx, dy) and whether it is still on
// the board.
func (p Position) offset(dx, dy int) (Position, bool) {
	x, y := p.x+dx, p.y+dy
	if !boundaryCheck(x, y) {
		return Position{}, false
	}
	return Position{x: x, y: y}, true
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}

// Square returns the position in file/rank notation, e.g. "e2".
func (p Position) Square() string {
	return fmt.Sprintf("%c%d", 'a'+p.x, p.y+1)
}

type positionJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(positionJSON{X: p.x, Y: p.y})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var raw positionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pos, err := NewPosition(raw.X, raw.Y)
	if err != nil {
		return err
	}
	*p = pos
	return nil
}
