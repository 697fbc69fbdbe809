package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubscribe(t *testing.T) {
	g := NewGame("P1", "P2")
	var kinds []EventKind
	cancel := g.Subscribe(func(e Event) { kinds = append(kinds, e.Kind) })

	play(t, g, "e2e4")
	if err := g.Undo(); err != nil {
		t.Fatalf("Undo() returned error: %v", err)
	}
	g.Announce("hello")
	cancel()
	play(t, g, "d2d4")

	want := []EventKind{EventRefresh, EventRefresh, EventStatus}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscribeRejectedMoveIsSilent(t *testing.T) {
	g := NewGame("P1", "P2")
	calls := 0
	g.Subscribe(func(Event) { calls++ })

	if _, err := g.Move(MoveRequest{From: sq(t, "e2"), To: sq(t, "e5")}); err == nil {
		t.Fatal("Move(e2e5) succeeded")
	}
	if err := g.Undo(); err == nil {
		t.Fatal("Undo() on empty log succeeded")
	}
	if calls != 0 {
		t.Errorf("observers called %d times, want 0", calls)
	}
}

func TestCancelDuringNotify(t *testing.T) {
	g := NewGame("P1", "P2")
	var cancelFirst func()
	first, second := 0, 0
	cancelFirst = g.Subscribe(func(Event) {
		first++
		cancelFirst()
	})
	g.Subscribe(func(Event) { second++ })

	g.Announce("one")
	g.Announce("two")
	if first != 1 || second != 2 {
		t.Errorf("calls = (%d, %d), want (1, 2)", first, second)
	}
}

func TestRenamePlayer(t *testing.T) {
	g := NewGame("P1", "P2")
	var got []Event
	g.Subscribe(func(e Event) { got = append(got, e) })

	g.RenamePlayer(PlayerColorBlack, "Carol")

	if name := g.Player(PlayerColorBlack).Name(); name != "Carol" {
		t.Errorf("black name = %q, want Carol", name)
	}
	if len(got) != 1 || got[0].Kind != EventPlayerChanged || got[0].Player != g.Player(PlayerColorBlack) {
		t.Errorf("events = %+v, want one playerChanged for black", got)
	}
	if desc := g.PieceAt(sq(t, "e8")).describe(); desc != "Carol's king" {
		t.Errorf("describe() = %q, want Carol's king", desc)
	}
}

func TestHighlight(t *testing.T) {
	var e4 HighlightMask
	e4[2][4], e4[3][4] = true, true

	tests := []struct {
		name    string
		enabled bool
		square  string
		want    HighlightMask
	}{
		{"enabled pawn", true, "e2", e4},
		{"disabled", false, "e2", HighlightMask{}},
		{"opponent piece", true, "e7", HighlightMask{}},
		{"empty square", true, "e4", HighlightMask{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame("P1", "P2")
			g.SetHighlightMoves(tt.enabled)
			var events []Event
			g.Subscribe(func(e Event) { events = append(events, e) })

			g.Highlight(sq(t, "g1"))
			g.Highlight(sq(t, tt.square))

			if diff := cmp.Diff(tt.want, g.Highlighted()); diff != "" {
				t.Errorf("mask mismatch (-want +got):\n%s", diff)
			}
			if len(events) != 2 || events[1].Kind != EventHighlight {
				t.Fatalf("events = %+v, want two highlight events", events)
			}
			if diff := cmp.Diff(tt.want, events[1].Highlight); diff != "" {
				t.Errorf("published mask mismatch (-want +got):\n%s", diff)
			}
		})
	}

	g := NewGame("P1", "P2")
	g.SetHighlightMoves(true)
	g.Highlight(sq(t, "e2"))
	state := g.State()
	if p := state.Board[1][4]; p == nil || p.Type != Pawn {
		t.Fatalf("state.Board[1][4] = %+v, want the e2 pawn", p)
	}
	if !state.Highlight[2][4] || !state.Highlight[3][4] {
		t.Errorf("state.Highlight does not mark e3 and e4 in board order")
	}

	g.ResetHighlight()
	if g.Highlighted() != (HighlightMask{}) {
		t.Error("ResetHighlight() left squares marked")
	}
}
