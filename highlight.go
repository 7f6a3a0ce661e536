package highlight

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the neutral item color.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to an 8-bit color.RGBA, premultiplying alpha.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned screen rectangle. The origin is at the top-left,
// with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventType identifies a kind of highlight event forwarded to an EntityStore.
type EventType uint8

const (
	EventHighlight EventType = iota // fires after a group gains members
	EventClear                      // fires after a group is emptied
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventHighlight:
		return "highlight"
	case EventClear:
		return "clear"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// MultiSelect selects which modifier key adds to the current selection
// instead of replacing it.
type MultiSelect uint8

const (
	MultiSelectNone  MultiSelect = iota // every click replaces the selection
	MultiSelectShift                    // Shift+click adds to the selection
	MultiSelectCtrl                     // Ctrl+click adds to the selection
)

// held reports whether the policy's modifier is present in mods.
// MultiSelectNone never reports a held modifier.
func (m MultiSelect) held(mods KeyModifiers) bool {
	switch m {
	case MultiSelectShift:
		return mods&ModShift != 0
	case MultiSelectCtrl:
		return mods&ModCtrl != 0
	default:
		return false
	}
}

// String returns the policy name used in configuration files.
func (m MultiSelect) String() string {
	switch m {
	case MultiSelectShift:
		return "shift"
	case MultiSelectCtrl:
		return "ctrl"
	default:
		return "none"
	}
}
