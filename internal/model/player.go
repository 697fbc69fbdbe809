package model

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func (c PlayerColor) opponent() PlayerColor {
	if c == PlayerColorWhite {
		return PlayerColorBlack
	}
	return PlayerColorWhite
}

// forward is the rank direction pawns of this color advance in.
func (c PlayerColor) forward() int {
	if c == PlayerColorWhite {
		return 1
	}
	return -1
}

func (c PlayerColor) backRank() int {
	if c == PlayerColorWhite {
		return 0
	}
	return BoardSize - 1
}

// Player is one of the two participants. The color is fixed for the life of
// the game; the display name can be changed through Game.RenamePlayer.
type Player struct {
	color PlayerColor
	name  string
}

func newPlayer(color PlayerColor, name string) *Player {
	return &Player{color: color, name: name}
}

func (p *Player) Color() PlayerColor { return p.color }
func (p *Player) Name() string       { return p.name }

type ClientPlayer struct {
	Name  string      `json:"name"`
	Color PlayerColor `json:"color"`
}

func (p *Player) client() ClientPlayer {
	return ClientPlayer{Name: p.name, Color: p.color}
}
