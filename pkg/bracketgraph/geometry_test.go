package bracketgraph

import (
	"image"
	"testing"
)

// ── Snap ──

func TestSnapRoundsToGrid(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0},
		{2, 0},
		{3, 5},
		{7, 5},
		{8, 10},
		{-3, -5},
		{-2, 0},
		{50, 50},
	}
	for _, c := range cases {
		if got := Snap(c.in); got != c.want {
			t.Errorf("Snap(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestSnapIdempotent(t *testing.T) {
	for v := -100; v <= 100; v++ {
		once := Snap(v)
		if twice := Snap(once); twice != once {
			t.Fatalf("Snap(Snap(%d)): %d != %d", v, twice, once)
		}
		if once%Grid != 0 {
			t.Fatalf("Snap(%d) = %d is not a grid multiple", v, once)
		}
	}
}

// ── Size ──

func TestNodeSizes(t *testing.T) {
	slot := &Node{Kind: KindSlot, Slot: &SlotData{}}
	if sz := slot.Size(); sz != image.Pt(NodeWidth, SlotHeight) {
		t.Errorf("slot size = %v", sz)
	}
	match := &Node{Kind: KindMatch, Match: &MatchData{}}
	if sz := match.Size(); sz != image.Pt(NodeWidth, MatchHeight) {
		t.Errorf("match size = %v", sz)
	}
	group := &Node{Kind: KindGroup, Group: &GroupData{SlotCount: 6}}
	want := image.Pt(NodeWidth, GroupBaseHeight+6*GroupPerSlotUnit)
	if sz := group.Size(); sz != want {
		t.Errorf("group size = %v, want %v", sz, want)
	}
}

func TestGroupGrowsWithSlotCount(t *testing.T) {
	small := &Node{Kind: KindGroup, Group: &GroupData{SlotCount: 2}}
	big := &Node{Kind: KindGroup, Group: &GroupData{SlotCount: 8}}
	if small.Size().Y >= big.Size().Y {
		t.Error("group height should grow with slot count")
	}
}

// ── PointPosition ──

func TestMatchPointPositions(t *testing.T) {
	n := &Node{Kind: KindMatch, X: 0, Y: 0, Match: &MatchData{}}
	w, h := NodeWidth, MatchHeight

	winner, ok := PointPosition(n, PointWinner)
	if !ok || winner != image.Pt(w, h*3/10) {
		t.Errorf("winner = %v ok=%v", winner, ok)
	}
	loser, ok := PointPosition(n, PointLoser)
	if !ok || loser != image.Pt(w, h*7/10) {
		t.Errorf("loser = %v ok=%v", loser, ok)
	}
	inA, _ := PointPosition(n, PointInA)
	inB, _ := PointPosition(n, PointInB)
	if inA.X != 0 || inB.X != 0 {
		t.Error("inputs should sit on the left edge")
	}
	if inA.Y >= inB.Y {
		t.Error("inA should be above inB")
	}
}

func TestPointPositionKindMismatch(t *testing.T) {
	slot := &Node{Kind: KindSlot, Slot: &SlotData{}}
	if _, ok := PointPosition(slot, PointWinner); ok {
		t.Error("slot node must not expose a winner point")
	}
	match := &Node{Kind: KindMatch, Match: &MatchData{}}
	if _, ok := PointPosition(match, PointBottom); ok {
		t.Error("match node must not expose a bottom point")
	}
}

func TestEndpointPosition(t *testing.T) {
	g := New()
	n := g.AddNode(KindSlot, image.Pt(50, 20))
	pos, ok := g.EndpointPosition(Endpoint{n.ID, PointBottom})
	if !ok {
		t.Fatal("expected a position")
	}
	if pos != image.Pt(50+NodeWidth/2, 20+SlotHeight) {
		t.Errorf("bottom = %v", pos)
	}
	if _, ok := g.EndpointPosition(Endpoint{"ghost", PointIn}); ok {
		t.Error("unknown node should resolve to false")
	}
}
