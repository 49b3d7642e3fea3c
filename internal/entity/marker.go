package entity

// Marker is the symbol occupying a cell of the grid.
type Marker uint8

const (
	Empty Marker = iota
	MarkerX
	MarkerO
)

const (
	EmptyToken = '-'
	XToken     = 'x'
	OToken     = 'o'
)

// Token returns the single display character of the marker.
func (that Marker) Token() rune {
	switch that {
	case MarkerX:
		return XToken
	case MarkerO:
		return OToken
	default:
		return EmptyToken
	}
}

func (that Marker) String() string {
	return string(that.Token())
}
