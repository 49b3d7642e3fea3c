package entity

// Participant is an entity taking turns on the grid, bound to one marker.
type Participant interface {
	Marker() Marker
	String() string
}

// Mover is implemented by participants that compute their own moves.
type Mover interface {
	NextMove() (int, error)
}

// Player is a participant whose moves are supplied from outside.
type Player struct {
	mark Marker
}

func NewPlayer(mark Marker) *Player {
	return &Player{mark: mark}
}

func (that *Player) Marker() Marker {
	return that.mark
}

func (that *Player) String() string {
	return that.mark.String()
}
