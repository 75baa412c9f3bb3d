package cellstyle

// Alignment is the horizontal text alignment of a cell.
type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment accepts the names produced by String and the xlsx horizontal
// alignment names; centerContinuous and distributed map to Center. Anything
// else is Left.
func ParseAlignment(s string) Alignment {
	switch s {
	case "center", "centerContinuous", "distributed":
		return Center
	case "right":
		return Right
	default:
		return Left
	}
}
