package game

// Player identifies a seat. Red always moves first; Blue sits on the
// right-hand side of the board and has its card patterns mirrored.
type Player int

const (
	NoPlayer Player = iota
	Red
	Blue
)

func (p Player) String() string {
	switch p {
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	default:
		return "NONE"
	}
}

// Opponent returns the other seat, or NoPlayer for NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return NoPlayer
	}
}

// Valid reports whether p is one of the two actual seats.
func (p Player) Valid() bool {
	return p == Red || p == Blue
}
