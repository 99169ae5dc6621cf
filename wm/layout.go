package wm

// Layout selects which tiling algorithm a workspace's containers are
// arranged under.
type Layout int

const (
	LayoutBSP Layout = iota
	LayoutColumns
	LayoutRows
	LayoutVerticalStack
	LayoutHorizontalStack
	LayoutUltrawideVerticalStack
)

// Flip mirrors the computed rectangles across the work area's midline(s).
// It is a bitmask so both axes can be set at once.
type Flip int

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << 0
	FlipVertical   Flip = 1 << 1
)

// Direction is a geometric navigation direction for focus/move/resize.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Sizing is the arithmetic sense of a resize operation.
type Sizing int

const (
	SizingIncrease Sizing = iota
	SizingDecrease
)

// ResizeDelta is a signed per-edge pixel offset applied to one container's
// rectangle before flip, produced by Resize and consumed by Calculate.
type ResizeDelta struct {
	Left, Top, Right, Bottom int
}

func (d ResizeDelta) apply(r Rect) Rect {
	return Rect{
		Left:   r.Left + d.Left,
		Top:    r.Top + d.Top,
		Right:  r.Right - d.Left + d.Right,
		Bottom: r.Bottom - d.Top + d.Bottom,
	}
}

// Calculate returns exactly n rectangles tiling workArea (already shrunk by
// workspace padding) under layout, with containerPadding applied as the
// inter-rectangle gap, resizeDimensions applied per-container before flip,
// and flip applied last by reflecting every rectangle across the work
// area's midline(s). resizeDimensions may be shorter than n or contain nil
// entries; missing entries are treated as a zero delta.
func Calculate(layout Layout, workArea Rect, n int, containerPadding int, flip Flip, resizeDimensions []*ResizeDelta) []Rect {
	if n <= 0 {
		return nil
	}

	var rects []Rect
	switch {
	case n == 1:
		rects = []Rect{workArea}
	case layout == LayoutColumns:
		rects = splitColumns(workArea, n, containerPadding)
	case layout == LayoutRows:
		rects = splitRows(workArea, n, containerPadding)
	case layout == LayoutVerticalStack:
		rects = verticalStack(workArea, n, containerPadding)
	case layout == LayoutHorizontalStack:
		rects = horizontalStack(workArea, n, containerPadding)
	case layout == LayoutUltrawideVerticalStack:
		rects = ultrawideVerticalStack(workArea, n, containerPadding)
	default:
		rects = bsp(workArea, n, containerPadding, true)
	}

	for i := range rects {
		if i < len(resizeDimensions) && resizeDimensions[i] != nil {
			rects[i] = resizeDimensions[i].apply(rects[i])
		}
	}

	for i := range rects {
		rects[i] = applyFlip(rects[i], workArea, flip)
	}

	return rects
}

func applyFlip(r, workArea Rect, flip Flip) Rect {
	if flip&FlipHorizontal != 0 {
		r.Left = 2*workArea.Left + workArea.Right - r.Left - r.Right
	}
	if flip&FlipVertical != 0 {
		r.Top = 2*workArea.Top + workArea.Bottom - r.Top - r.Bottom
	}
	return r
}

func splitColumns(workArea Rect, n, padding int) []Rect {
	rects := make([]Rect, n)
	colWidth := workArea.Right / n
	for i := 0; i < n; i++ {
		r := Rect{
			Left:   workArea.Left + i*colWidth,
			Top:    workArea.Top,
			Right:  colWidth,
			Bottom: workArea.Bottom,
		}
		if i == n-1 {
			r.Right = workArea.Left + workArea.Right - r.Left
		}
		rects[i] = padRect(r, padding)
	}
	return rects
}

func splitRows(workArea Rect, n, padding int) []Rect {
	rects := make([]Rect, n)
	rowHeight := workArea.Bottom / n
	for i := 0; i < n; i++ {
		r := Rect{
			Left:   workArea.Left,
			Top:    workArea.Top + i*rowHeight,
			Right:  workArea.Right,
			Bottom: rowHeight,
		}
		if i == n-1 {
			r.Bottom = workArea.Top + workArea.Bottom - r.Top
		}
		rects[i] = padRect(r, padding)
	}
	return rects
}

func verticalStack(workArea Rect, n, padding int) []Rect {
	rects := make([]Rect, n)
	halfWidth := workArea.Right / 2
	rects[0] = padRect(Rect{Left: workArea.Left, Top: workArea.Top, Right: halfWidth, Bottom: workArea.Bottom}, padding)
	stackCount := n - 1
	if stackCount == 0 {
		return rects
	}
	stackArea := Rect{
		Left:   workArea.Left + halfWidth,
		Top:    workArea.Top,
		Right:  workArea.Left + workArea.Right - (workArea.Left + halfWidth),
		Bottom: workArea.Bottom,
	}
	stacked := splitRows(stackArea, stackCount, padding)
	copy(rects[1:], stacked)
	return rects
}

func horizontalStack(workArea Rect, n, padding int) []Rect {
	rects := make([]Rect, n)
	halfHeight := workArea.Bottom / 2
	rects[0] = padRect(Rect{Left: workArea.Left, Top: workArea.Top, Right: workArea.Right, Bottom: halfHeight}, padding)
	stackCount := n - 1
	if stackCount == 0 {
		return rects
	}
	stackArea := Rect{
		Left:   workArea.Left,
		Top:    workArea.Top + halfHeight,
		Right:  workArea.Right,
		Bottom: workArea.Top + workArea.Bottom - (workArea.Top + halfHeight),
	}
	stacked := splitColumns(stackArea, stackCount, padding)
	copy(rects[1:], stacked)
	return rects
}

// ultrawideVerticalStack centers the first container and stacks the
// remaining containers alternately in a right then left zone.
func ultrawideVerticalStack(workArea Rect, n, padding int) []Rect {
	rects := make([]Rect, n)
	if n == 1 {
		rects[0] = workArea
		return rects
	}

	var leftIdx, rightIdx []int
	for i := 1; i < n; i++ {
		if (i-1)%2 == 0 {
			rightIdx = append(rightIdx, i)
		} else {
			leftIdx = append(leftIdx, i)
		}
	}

	sideWidth := workArea.Right / 4
	leftWidth, rightWidth := 0, 0
	if len(leftIdx) > 0 {
		leftWidth = sideWidth
	}
	if len(rightIdx) > 0 {
		rightWidth = sideWidth
	}
	centerWidth := workArea.Right - leftWidth - rightWidth

	rects[0] = padRect(Rect{
		Left:   workArea.Left + leftWidth,
		Top:    workArea.Top,
		Right:  centerWidth,
		Bottom: workArea.Bottom,
	}, padding)

	if len(leftIdx) > 0 {
		leftArea := Rect{Left: workArea.Left, Top: workArea.Top, Right: leftWidth, Bottom: workArea.Bottom}
		stacked := splitRows(leftArea, len(leftIdx), padding)
		for k, idx := range leftIdx {
			rects[idx] = stacked[k]
		}
	}
	if len(rightIdx) > 0 {
		rightArea := Rect{Left: workArea.Left + leftWidth + centerWidth, Top: workArea.Top, Right: rightWidth, Bottom: workArea.Bottom}
		stacked := splitRows(rightArea, len(rightIdx), padding)
		for k, idx := range rightIdx {
			rects[idx] = stacked[k]
		}
	}
	return rects
}

// bsp recursively bisects workArea into n rectangles, alternating
// vertical/horizontal cuts starting with a vertical cut (splitting width).
func bsp(workArea Rect, n, padding int, vertical bool) []Rect {
	if n == 1 {
		return []Rect{padRect(workArea, padding)}
	}

	left := n / 2
	right := n - left

	var a, b Rect
	if vertical {
		widthA := workArea.Right * left / n
		a = Rect{Left: workArea.Left, Top: workArea.Top, Right: widthA, Bottom: workArea.Bottom}
		b = Rect{Left: workArea.Left + widthA, Top: workArea.Top, Right: workArea.Right - widthA, Bottom: workArea.Bottom}
	} else {
		heightA := workArea.Bottom * left / n
		a = Rect{Left: workArea.Left, Top: workArea.Top, Right: workArea.Right, Bottom: heightA}
		b = Rect{Left: workArea.Left, Top: workArea.Top + heightA, Right: workArea.Right, Bottom: workArea.Bottom - heightA}
	}

	rectsA := bsp(a, left, padding, !vertical)
	rectsB := bsp(b, right, padding, !vertical)
	return append(rectsA, rectsB...)
}

func padRect(r Rect, padding int) Rect {
	if padding == 0 {
		return r
	}
	return r.Shrink(padding)
}

// Resize computes a new delta for the container whose unflipped rectangle
// is reference and whose existing delta is current, adjusting the edge
// named by direction by step pixels in the sense named by sizing.
func Resize(reference Rect, current ResizeDelta, direction Direction, sizing Sizing, step int) ResizeDelta {
	if step <= 0 {
		step = 20
	}
	sign := 1
	if sizing == SizingDecrease {
		sign = -1
	}
	d := current
	switch direction {
	case DirLeft:
		d.Left -= sign * step
	case DirRight:
		d.Right += sign * step
	case DirUp:
		d.Top -= sign * step
	case DirDown:
		d.Bottom += sign * step
	}
	return d
}

// InvertDirectionForFlip inverts direction's axis according to flip: a
// horizontal flip swaps Left/Right, a vertical flip swaps Up/Down, both
// flips swap every axis.
func InvertDirectionForFlip(direction Direction, flip Flip) Direction {
	switch direction {
	case DirLeft:
		if flip&FlipHorizontal != 0 {
			return DirRight
		}
	case DirRight:
		if flip&FlipHorizontal != 0 {
			return DirLeft
		}
	case DirUp:
		if flip&FlipVertical != 0 {
			return DirDown
		}
	case DirDown:
		if flip&FlipVertical != 0 {
			return DirUp
		}
	}
	return direction
}

// DirectionCandidate returns the container index geometrically in
// direction relative to focusedIdx under layout and flip, or false if no
// such neighbor exists.
func DirectionCandidate(layout Layout, flip Flip, focusedIdx, n int, direction Direction) (int, bool) {
	if n <= 1 {
		return 0, false
	}

	switch layout {
	case LayoutColumns:
		switch direction {
		case DirLeft:
			if focusedIdx > 0 {
				return focusedIdx - 1, true
			}
			return 0, false
		case DirRight:
			if focusedIdx < n-1 {
				return focusedIdx + 1, true
			}
			return 0, false
		default:
			return 0, false
		}
	case LayoutRows:
		switch direction {
		case DirUp:
			if focusedIdx > 0 {
				return focusedIdx - 1, true
			}
			return 0, false
		case DirDown:
			if focusedIdx < n-1 {
				return focusedIdx + 1, true
			}
			return 0, false
		default:
			return 0, false
		}
	case LayoutVerticalStack:
		if direction == DirRight && focusedIdx > 0 {
			return 0, true
		}
	}

	return geometricCandidate(layout, flip, focusedIdx, n, direction)
}

// geometricCandidate is the general fallback: compute the unflipped,
// unresized rectangles for an arbitrary work area, apply flip, and pick the
// nearest rectangle whose center lies in direction from the focused one.
func geometricCandidate(layout Layout, flip Flip, focusedIdx, n int, direction Direction) (int, bool) {
	const unit = 1 << 20 // large arbitrary work area so integer division stays precise
	workArea := Rect{Left: 0, Top: 0, Right: unit, Bottom: unit}
	rects := Calculate(layout, workArea, n, 0, flip, nil)
	if focusedIdx < 0 || focusedIdx >= len(rects) {
		return 0, false
	}

	fx, fy := center(rects[focusedIdx])
	best := -1
	bestDist := 0
	for i, r := range rects {
		if i == focusedIdx {
			continue
		}
		x, y := center(r)
		switch direction {
		case DirLeft:
			if x >= fx {
				continue
			}
		case DirRight:
			if x <= fx {
				continue
			}
		case DirUp:
			if y >= fy {
				continue
			}
		case DirDown:
			if y <= fy {
				continue
			}
		}
		dist := (x-fx)*(x-fx) + (y-fy)*(y-fy)
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

func center(r Rect) (int, int) {
	return r.Left + r.Right/2, r.Top + r.Bottom/2
}
