package tetris

// Snapshot captures the complete observable game state for determinism
// testing and replay verification.
type Snapshot struct {
	Tick         uint64
	Phase        string
	Score        int
	Level        int
	Lines        int
	ActiveKind   string // "" when no piece is active
	ActiveX      int
	ActiveY      int
	NextKind     string
	ClearingRows []int
	Board        string // Board.String() fingerprint
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.tick,
		Phase: g.phase.String(),
		Score: g.score,
		Level: g.level,
		Lines: g.lines,
		Board: g.board.String(),
	}

	if g.hasActive {
		s.ActiveKind = g.activeKind.String()
		s.ActiveX = g.activePos.X
		s.ActiveY = g.activePos.Y
	}
	if g.hasNext {
		s.NextKind = g.nextKind.String()
	}
	if len(g.clearingRows) > 0 {
		s.ClearingRows = append(s.ClearingRows, g.clearingRows...)
	}

	return s
}
