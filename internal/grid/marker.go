package grid

// Marker identifies what occupies one grid cell.
type Marker uint8

const (
	Empty Marker = iota
	PathStart
	PathStep
	PathEnd // the ladder down
	ExtraRoom
)

// Occupied reports whether the marker holds a room of any kind.
func (m Marker) Occupied() bool { return m != Empty }

// Glyph returns the single-character debug symbol for the marker.
func (m Marker) Glyph() byte {
	switch m {
	case PathStart:
		return 'E'
	case PathStep:
		return 'C'
	case PathEnd:
		return 'L'
	case ExtraRoom:
		return 'R'
	default:
		return '.'
	}
}

func (m Marker) String() string {
	switch m {
	case Empty:
		return "empty"
	case PathStart:
		return "start"
	case PathStep:
		return "step"
	case PathEnd:
		return "end"
	case ExtraRoom:
		return "extra"
	}
	return "unknown"
}
