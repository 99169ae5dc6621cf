package wm

import "testing"

func TestCalculateSingleContainerFillsWorkArea(t *testing.T) {
	area := Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}
	rects := Calculate(LayoutBSP, area, 1, 0, FlipNone, nil)
	if len(rects) != 1 || rects[0] != area {
		t.Fatalf("expected single rect to equal work area, got %+v", rects)
	}
}

func TestCalculateBSPBisectsTwoContainers(t *testing.T) {
	area := Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}
	rects := Calculate(LayoutBSP, area, 2, 0, FlipNone, nil)
	if len(rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(rects))
	}
	want := []Rect{
		{Left: 0, Top: 0, Right: 960, Bottom: 1080},
		{Left: 960, Top: 0, Right: 960, Bottom: 1080},
	}
	for i, w := range want {
		if rects[i] != w {
			t.Fatalf("rect %d: want %+v, got %+v", i, w, rects[i])
		}
	}
}

func TestCalculateColumnsSplitsEvenly(t *testing.T) {
	area := Rect{Left: 0, Top: 0, Right: 900, Bottom: 300}
	rects := Calculate(LayoutColumns, area, 3, 0, FlipNone, nil)
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	for _, r := range rects {
		if r.Right != 300 || r.Bottom != 300 {
			t.Fatalf("expected 300x300 columns, got %+v", r)
		}
	}
}

func TestCalculateHorizontalFlipMirrorsXAxis(t *testing.T) {
	area := Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}
	rects := Calculate(LayoutBSP, area, 2, 0, FlipHorizontal, nil)
	unflipped := Calculate(LayoutBSP, area, 2, 0, FlipNone, nil)

	for i := range rects {
		if rects[i].Right != unflipped[i].Right || rects[i].Bottom != unflipped[i].Bottom {
			t.Fatalf("flip must not change rect dimensions: %+v vs %+v", rects[i], unflipped[i])
		}
	}
	if rects[0].Left == unflipped[0].Left {
		t.Fatalf("expected horizontal flip to move rect 0's left edge")
	}
}

func TestCalculateIsPure(t *testing.T) {
	area := Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}
	a := Calculate(LayoutBSP, area, 3, 4, FlipHorizontal, nil)
	b := Calculate(LayoutBSP, area, 3, 4, FlipHorizontal, nil)
	if len(a) != len(b) {
		t.Fatalf("expected deterministic length")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected same inputs to produce same output, got %+v vs %+v", a[i], b[i])
		}
	}
}

func TestResizeWindowInvertsDirectionUnderFlip(t *testing.T) {
	got := InvertDirectionForFlip(DirLeft, FlipHorizontal)
	if got != DirRight {
		t.Fatalf("expected horizontal flip to invert Left to Right, got %v", got)
	}
	got = InvertDirectionForFlip(DirUp, FlipVertical)
	if got != DirDown {
		t.Fatalf("expected vertical flip to invert Up to Down, got %v", got)
	}
	got = InvertDirectionForFlip(DirLeft, FlipVertical)
	if got != DirLeft {
		t.Fatalf("expected vertical flip to leave Left unchanged, got %v", got)
	}
}

func TestDirectionCandidateColumnsOnlyLeftRight(t *testing.T) {
	if _, ok := DirectionCandidate(LayoutColumns, FlipNone, 1, 3, DirUp); ok {
		t.Fatalf("expected Columns layout to reject Up")
	}
	idx, ok := DirectionCandidate(LayoutColumns, FlipNone, 1, 3, DirRight)
	if !ok || idx != 2 {
		t.Fatalf("expected index 2, got %d (ok=%v)", idx, ok)
	}
}

func TestDirectionCandidateVerticalStackRightWrapsToZero(t *testing.T) {
	idx, ok := DirectionCandidate(LayoutVerticalStack, FlipNone, 2, 3, DirRight)
	if !ok || idx != 0 {
		t.Fatalf("expected VerticalStack Right from focused>0 to yield index 0, got %d (ok=%v)", idx, ok)
	}
}

func TestDirectionCandidateNoneAtEdge(t *testing.T) {
	if _, ok := DirectionCandidate(LayoutColumns, FlipNone, 0, 3, DirLeft); ok {
		t.Fatalf("expected no candidate to the left of index 0")
	}
}
