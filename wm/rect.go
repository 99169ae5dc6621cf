package wm

// Rect is an integer-pixel rectangle in screen space: left/top is the
// origin, right/bottom are widths/heights measured from the origin. This
// differs from the Win32 RECT edge-pair convention; the OS binding
// converts at its boundary.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// InvisibleBorder compensates for the drop-shadow margin the compositor
// adds around a window's true frame; without expanding by this amount
// before positioning, tiled windows show a visible gap. Kept as a fixed
// default and also exposed as a config.Config field for override, since
// DPI-aware shells occasionally extend the frame bounds further.
var InvisibleBorder = Rect{Left: 12, Top: 0, Right: 24, Bottom: 12}

// Expand grows the rect by border on each edge, matching Window.SetPosition's
// border-correction before issuing the OS call.
func (r Rect) Expand(border Rect) Rect {
	return Rect{
		Left:   r.Left - border.Left,
		Top:    r.Top - border.Top,
		Right:  r.Right + border.Right,
		Bottom: r.Bottom + border.Bottom,
	}
}

// Shrink insets the rect by n pixels on every edge. Used for
// workspace/container padding.
func (r Rect) Shrink(n int) Rect {
	return Rect{
		Left:   r.Left + n,
		Top:    r.Top + n,
		Right:  r.Right - 2*n,
		Bottom: r.Bottom - 2*n,
	}
}

// Width and Height read Right/Bottom as sizes (not absolute coordinates),
// matching the Rect shape the layout engine produces.
func (r Rect) Width() int  { return r.Right }
func (r Rect) Height() int { return r.Bottom }
