package game

// Listener receives engine events. All three callbacks run synchronously,
// inside the engine call that triggered them and in registration order, so
// implementations must not call back into the same engine.
type Listener interface {
	// TurnChanged fires after every successful placement or single pass.
	TurnChanged(next Player)
	// GameEnded fires once, on the second consecutive pass. winner is
	// NoPlayer for a tie.
	GameEnded(winner Player, redScore, blueScore int)
	// MoveRejected fires when a placement fails validation.
	MoveRejected(reason string)
}

func (e *Engine) notifyTurnChanged(next Player) {
	for _, l := range e.listeners {
		l.TurnChanged(next)
	}
}

func (e *Engine) notifyGameEnded(winner Player, red, blue int) {
	for _, l := range e.listeners {
		l.GameEnded(winner, red, blue)
	}
}

func (e *Engine) notifyMoveRejected(reason string) {
	for _, l := range e.listeners {
		l.MoveRejected(reason)
	}
}
