package game

// StateType labels the coarse game state for snapshots.
type StateType string

const (
	StateIdle        StateType = "idle"
	StateResolving   StateType = "resolving"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and
// replay. The board is serialized through its text form, which covers
// colors, power-ups and empties.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	MovesMade int
	MovesLeft int
	CursorRow int
	CursorCol int
	Board     string
	Pending   int // cascade steps not yet shown
	State     StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateIdle
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case len(g.pending) > 0:
		state = StateResolving
	}

	board := ""
	if g.board != nil {
		board = g.board.String()
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		MovesMade: g.movesMade,
		MovesLeft: g.movesLeft,
		CursorRow: g.cursor.Row,
		CursorCol: g.cursor.Col,
		Board:     board,
		Pending:   len(g.pending),
		State:     state,
	}
}
