package model

type EventKind string

const (
	EventStatus        EventKind = "status"
	EventPlayerChanged EventKind = "playerChanged"
	EventHighlight     EventKind = "highlight"
	EventRefresh       EventKind = "refresh"
)

// HighlightMask marks squares, indexed [y][x] like GameState.Board.
type HighlightMask [BoardSize][BoardSize]bool

// Event is what the game reports to its observers. Which payload field is
// set depends on Kind: Status for EventStatus, Player for EventPlayerChanged,
// Highlight for EventHighlight. EventRefresh carries nothing.
type Event struct {
	Kind      EventKind
	Status    string
	Player    *Player
	Highlight HighlightMask
}

type subscription struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called synchronously after every state
// change. The returned function removes the subscription.
func (g *Game) Subscribe(fn func(Event)) (cancel func()) {
	g.nextSubID++
	id := g.nextSubID
	g.subs = append(g.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range g.subs {
			if s.id == id {
				g.subs = append(g.subs[:i:i], g.subs[i+1:]...)
				return
			}
		}
	}
}

func (g *Game) notify(e Event) {
	subs := make([]subscription, len(g.subs))
	copy(subs, g.subs)
	for _, s := range subs {
		s.fn(e)
	}
}

// Announce pushes a free-text status line to the observers.
func (g *Game) Announce(status string) {
	g.notify(Event{Kind: EventStatus, Status: status})
}
