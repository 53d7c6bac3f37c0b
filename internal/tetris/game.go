package tetris

import (
	"math/rand"
	"time"

	"github.com/vselivanov/blockfall/internal/config"
	"github.com/vselivanov/blockfall/internal/core"
	"github.com/vselivanov/blockfall/internal/registry"
)

// Board dimensions are engine parameters, fixed for the game's lifetime.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Phase is the state machine's current mode.
type Phase int

const (
	// PhaseActive: a piece is falling and accepting commands.
	PhaseActive Phase = iota
	// PhaseClearing: full rows matched, pending the visual delay before
	// the board compacts. No active piece exists; piece commands are no-ops.
	PhaseClearing
	// PhasePaused: simulation suspended, only unpause is accepted.
	PhasePaused
	// PhaseGameOver: terminal. Only restart is accepted.
	PhaseGameOver
)

// String returns a snapshot-friendly name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseClearing:
		return "clearing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// kickOffsets are tried in order when a rotation collides in place.
// The zero offset first, then one column right, one left, two right, two left.
var kickOffsets = []core.Point{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 2, Y: 0},
	{X: -2, Y: 0},
}

// Game implements the blockfall rule engine and the registry.Game interface.
// All transitions run synchronously inside a single command or Step call;
// the engine owns exactly one board and at most one active piece.
type Game struct {
	cfg      config.BlockfallConfig
	rng      *rand.Rand
	tick     uint64
	tickRate int

	board *Board
	phase Phase

	// Active piece state. shape may differ from the kind's canonical
	// matrix after rotations. hasActive is false during Clearing and
	// after a game-over spawn.
	activeKind  Kind
	activeShape core.Matrix
	activePos   core.Point
	hasActive   bool

	nextKind Kind
	hasNext  bool

	score int
	level int
	lines int

	// clearingRows holds the matched row indices while PhaseClearing,
	// for external rendering; cleared when the board compacts.
	clearingRows   []int
	clearTicksLeft int
	fallTicksLeft  int

	// Screen dimensions, for the renderer.
	screenW  int
	screenH  int
	tooSmall bool
}

var configPath string

// SetConfigPath sets the tuning config file path used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new game with tuning loaded from the configured path
// (falling back to embedded defaults). Call Reset before stepping.
func New() *Game {
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		cfg = config.DefaultBlockfallConfig()
	}
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes or restarts the game: empty board, score 0, level 1,
// flags cleared, a fresh next piece drawn, and the first piece spawned.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tooSmall = rc.ScreenW > 0 && rc.ScreenH > 0 &&
		(rc.ScreenW < minScreenW || rc.ScreenH < minScreenH)

	g.tick = 0
	g.board = NewBoard(BoardWidth, BoardHeight)
	g.phase = PhaseActive
	g.hasActive = false
	g.hasNext = false
	g.score = 0
	g.level = 1
	g.lines = 0
	g.clearingRows = nil
	g.clearTicksLeft = 0

	g.spawn()
	g.resetFallTimer()
}

// Step advances the simulation by one fixed tick: maps triggered actions
// to engine commands, advances gravity, and counts down the clearing delay.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Restart is accepted from any phase, not just game over.
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			TickRate: g.tickRate,
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	switch g.phase {
	case PhaseGameOver, PhasePaused:
		return core.StepResult{State: g.State()}

	case PhaseClearing:
		// The locked piece is gone; piece commands are ignored until
		// the board compacts and the next piece spawns.
		g.clearTicksLeft--
		if g.clearTicksLeft <= 0 {
			g.commitClear()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.MoveRight()
	}
	if in.Has(core.ActionRotate) {
		g.Rotate()
	}

	if in.Has(core.ActionHardDrop) {
		g.HardDrop()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionSoftDrop) {
		g.SoftDrop()
		g.resetFallTimer()
		return core.StepResult{State: g.State()}
	}

	// Gravity: an automatic soft drop on the level-derived cadence.
	g.fallTicksLeft--
	if g.fallTicksLeft <= 0 {
		g.SoftDrop()
		g.resetFallTimer()
	}

	return core.StepResult{State: g.State()}
}

// MoveLeft moves the active piece one column left if legal.
func (g *Game) MoveLeft() {
	g.translate(core.Point{X: -1, Y: 0})
}

// MoveRight moves the active piece one column right if legal.
func (g *Game) MoveRight() {
	g.translate(core.Point{X: 1, Y: 0})
}

// translate shifts the active piece sideways; a blocked move is a no-op.
func (g *Game) translate(off core.Point) {
	if g.phase != PhaseActive || !g.hasActive {
		return
	}
	if !g.board.Collides(g.activeShape, g.activePos, off) {
		g.activePos = g.activePos.Add(off)
	}
}

// SoftDrop moves the active piece one row down. A blocked drop locks the
// piece: it merges into the board, full rows are detected, and either the
// clearing delay starts or the next piece spawns immediately.
func (g *Game) SoftDrop() {
	if g.phase != PhaseActive || !g.hasActive {
		return
	}
	down := core.Point{X: 0, Y: 1}
	if !g.board.Collides(g.activeShape, g.activePos, down) {
		g.activePos = g.activePos.Add(down)
		return
	}
	g.lock()
}

// Rotate turns the active piece 90° clockwise, trying wall-kick offsets
// in order when the turned shape collides in place. If no offset fits,
// the piece keeps its pre-rotation shape and position.
func (g *Game) Rotate() {
	if g.phase != PhaseActive || !g.hasActive {
		return
	}
	rotated := core.RotateCW(g.activeShape)
	for _, kick := range kickOffsets {
		if !g.board.Collides(rotated, g.activePos.Add(kick), core.Point{}) {
			g.activeShape = rotated
			g.activePos = g.activePos.Add(kick)
			return
		}
	}
}

// HardDrop moves the active piece to its maximum legal downward position
// and locks it there.
func (g *Game) HardDrop() {
	if g.phase != PhaseActive || !g.hasActive {
		return
	}
	g.activePos.Y += g.DropDistance()
	g.lock()
}

// DropDistance returns the maximum d ≥ 0 such that the active piece can
// fall d rows without colliding. Zero when no piece is active.
func (g *Game) DropDistance() int {
	if !g.hasActive {
		return 0
	}
	d := 0
	for !g.board.Collides(g.activeShape, g.activePos, core.Point{X: 0, Y: d + 1}) {
		d++
	}
	return d
}

// TogglePause toggles Paused ⇄ Active. Refused in any other phase.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhaseActive:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhaseActive
	}
}

// lock merges the active piece into the board and resolves full rows.
// The merge commits immediately; compaction and scoring wait for the
// clearing delay so the matched rows stay visible to the renderer.
func (g *Game) lock() {
	g.board.Merge(g.activeShape, g.activePos, CellOf(g.activeKind))
	g.hasActive = false

	rows := g.board.FullRows()
	if len(rows) == 0 {
		g.spawn()
		g.resetFallTimer()
		return
	}

	g.clearingRows = rows
	g.clearTicksLeft = g.msToTicks(g.cfg.Timing.ClearDelayMs)
	g.phase = PhaseClearing
}

// commitClear compacts the board and advances score and level together,
// as one atomic transition step.
func (g *Game) commitClear() {
	n := len(g.clearingRows)
	g.board.RemoveRows(g.clearingRows)
	g.score += n * g.cfg.Scoring.LinePoints
	g.lines += n
	if step := g.cfg.Scoring.LevelStep; step > 0 {
		g.level = g.score/step + 1
	}
	g.clearingRows = nil

	g.phase = PhaseActive
	g.spawn()
	g.resetFallTimer()
}

// spawn promotes the next kind to the active piece (drawing one if absent),
// centers it at the top row, and draws a fresh next kind. A spawn that
// collides at zero offset is the terminal game-over condition: the piece
// is discarded and the board keeps its last merged state.
func (g *Game) spawn() {
	kind := g.nextKind
	if !g.hasNext {
		kind = RandomKind(g.rng)
	}
	g.nextKind = RandomKind(g.rng)
	g.hasNext = true

	shape := kind.Shape()
	pos := core.SpawnPosition(shape, g.board.Width())

	if g.board.Collides(shape, pos, core.Point{}) {
		g.phase = PhaseGameOver
		g.hasActive = false
		return
	}

	g.activeKind = kind
	g.activeShape = shape
	g.activePos = pos
	g.hasActive = true
	g.phase = PhaseActive
}

// FallInterval returns the time between automatic soft drops at the
// current level: max(base − (level−1)·step, floor). Exposed for the
// external timing driver; the engine derives its own tick cadence from it.
func (g *Game) FallInterval() time.Duration {
	ms := g.cfg.Timing.BaseFallMs - (g.level-1)*g.cfg.Timing.FallStepMs
	if ms < g.cfg.Timing.MinFallMs {
		ms = g.cfg.Timing.MinFallMs
	}
	return time.Duration(ms) * time.Millisecond
}

// resetFallTimer restarts the gravity countdown from the current level's
// fall interval. Called after every spawn and manual drop so level changes
// take effect immediately.
func (g *Game) resetFallTimer() {
	g.fallTicksLeft = g.msToTicks(int(g.FallInterval() / time.Millisecond))
}

// msToTicks converts a duration in milliseconds to simulation ticks,
// never less than one.
func (g *Game) msToTicks(ms int) int {
	ticks := ms * g.tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the state machine's current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Board returns the board holding locked cells. Read-only for callers.
func (g *Game) Board() *Board {
	return g.board
}

// ActivePiece returns the falling piece's kind, shape, and anchor.
// ok is false when no piece is active (Clearing or GameOver).
func (g *Game) ActivePiece() (kind Kind, shape core.Matrix, pos core.Point, ok bool) {
	return g.activeKind, g.activeShape, g.activePos, g.hasActive
}

// NextKind returns the previewable upcoming piece kind.
func (g *Game) NextKind() (Kind, bool) {
	return g.nextKind, g.hasNext
}

// ClearingRows returns the row indices currently mid-clear, for rendering.
func (g *Game) ClearingRows() []int {
	return g.clearingRows
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level (≥ 1).
func (g *Game) Level() int {
	return g.level
}

// Lines returns the total rows cleared since the last reset.
func (g *Game) Lines() int {
	return g.lines
}

// Tick returns the number of simulation ticks since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}
