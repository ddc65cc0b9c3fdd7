// Package game wraps the match3 rules engine into a playable arcade game:
// cursor movement, cell selection, paced cascade playback and session
// scoring. All game rules live in internal/match3; this package only
// sequences what the engine already computed.
package game

import (
	"github.com/ametelin/gemfall/internal/config"
	"github.com/ametelin/gemfall/internal/core"
	"github.com/ametelin/gemfall/internal/match3"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeMoves ends the session after a fixed budget of resolved moves.
	ModeMoves Mode = "moves"
	// ModeZen never ends; play until quit.
	ModeZen Mode = "zen"
)

// Playback pacing at 60 ticks per second. The engine computes every cascade
// step up front; these only control how long each is shown.
const (
	flashTicks  = 16 // destroyed cells highlighted on the old board
	settleTicks = 14 // refilled board shown before the next step
	noticeTicks = 90 // reshuffle notice duration
)

// Game implements the gemfall match-3 game.
type Game struct {
	mode  Mode
	rules config.Config
	cfg   core.RuntimeConfig
	rng   match3.RandomSource
	tick  uint64

	board    *match3.Board
	cursor   match3.Coord
	selected *match3.Coord

	score     int
	movesLeft int
	movesMade int

	// Cascade playback. While steps are pending the board field already
	// holds the final state; the renderer shows the step snapshots instead.
	pending    []match3.Step
	flashBoard *match3.Board // board as it looked before the current step's destruction
	inFlash    bool
	phaseLeft  int

	shuffleNotice int // ticks left on the "no moves - reshuffled" banner

	gameOver bool
	paused   bool
	tooSmall bool
	initErr  error
}

// Package-level knobs set by the CLI before the game is created,
// following the platform convention for per-game options.
var (
	configPath   string
	selectedMode Mode
)

// SetConfigPath sets the path to a custom game config YAML.
func SetConfigPath(path string) {
	configPath = path
}

// SetMode selects the mode for the next created game. Empty keeps the
// constructor's choice.
func SetMode(m Mode) {
	selectedMode = m
}

// New creates a move-budget game.
func New() *Game {
	return &Game{mode: ModeMoves}
}

// NewZen creates an endless game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// ID returns the game identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "gemfall_zen"
	}
	return "gemfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Gemfall (Zen)"
	}
	return "Gemfall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if selectedMode != "" {
		g.mode = selectedMode
		selectedMode = ""
	}

	g.rules, _ = config.Load(configPath)
	g.cfg = cfg
	g.rng = match3.NewRand(cfg.Seed)
	g.tick = 0
	g.score = 0
	g.movesMade = 0
	g.movesLeft = g.rules.Rules.MoveBudget
	g.cursor = match3.RC(0, 0)
	g.selected = nil
	g.pending = nil
	g.flashBoard = nil
	g.shuffleNotice = 0
	g.gameOver = false
	g.paused = false

	g.board, g.initErr = match3.New(
		g.rules.Board.Rows, g.rules.Board.Cols, g.rules.Board.Colors, g.rng)

	g.checkScreenSize()
}

// checkScreenSize checks if the screen fits the board plus HUD.
func (g *Game) checkScreenSize() {
	minW := g.rules.Board.Cols*cellWidth + 2
	minH := g.rules.Board.Rows + hudHeight + 3
	g.tooSmall = g.cfg.ScreenW < minW || g.cfg.ScreenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.initErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if g.shuffleNotice > 0 {
		g.shuffleNotice--
	}

	// While a move resolves, new input is rejected, not queued.
	if len(g.pending) > 0 {
		g.advancePlayback()
		return core.StepResult{State: g.State()}
	}

	g.handleCursor(in)
	if in.Has(core.ActionCancel) {
		g.selected = nil
	}
	if in.Has(core.ActionSelect) {
		g.handleSelect()
	}

	return core.StepResult{State: g.State()}
}

// handleCursor moves the cursor, clamped to the board.
func (g *Game) handleCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, g.board.Rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, g.board.Cols-1)
}

// handleSelect picks or swaps the cell under the cursor.
func (g *Game) handleSelect() {
	switch {
	case g.selected == nil:
		sel := g.cursor
		g.selected = &sel
	case *g.selected == g.cursor:
		g.selected = nil
	case g.selected.Adjacent(g.cursor):
		g.tryMove(*g.selected, g.cursor)
		g.selected = nil
	default:
		// Too far away: treat as a fresh selection.
		sel := g.cursor
		g.selected = &sel
	}
}

// tryMove resolves the swap and starts cascade playback.
func (g *Game) tryMove(a, b match3.Coord) {
	res, err := match3.ResolveMove(g.board, a, b, g.rng)
	if err != nil || res.Reverted {
		// Adjacency is checked before we get here, so err only guards
		// against future bugs. A reverted swap costs nothing.
		return
	}

	// The pre-destruction view of the first step is the swapped board.
	flash := g.board.Clone()
	flash.Swap(a, b)

	g.board = res.Board
	g.pending = res.Steps
	g.flashBoard = flash
	g.inFlash = true
	g.phaseLeft = flashTicks
	g.movesMade++
	if g.mode == ModeMoves {
		g.movesLeft--
	}
}

// advancePlayback pages through the resolved cascade steps.
func (g *Game) advancePlayback() {
	g.phaseLeft--
	if g.phaseLeft > 0 {
		return
	}

	step := g.pending[0]
	if g.inFlash {
		// Flash done: show the refilled board and bank the step's score.
		g.inFlash = false
		g.phaseLeft = settleTicks
		g.score += step.Score
		return
	}

	// Step fully shown; its board is the pre-destruction view of the next.
	g.flashBoard = step.Board
	g.pending = g.pending[1:]
	if len(g.pending) > 0 {
		g.inFlash = true
		g.phaseLeft = flashTicks
		return
	}

	g.finishMove()
}

// finishMove runs the post-move upkeep once playback drains.
func (g *Game) finishMove() {
	playable := match3.EnsurePlayable(g.board, g.rng)
	if playable != g.board {
		g.board = playable
		g.shuffleNotice = noticeTicks
	}

	if g.mode == ModeMoves && g.movesLeft <= 0 {
		g.gameOver = true
	}
}

// displayBoard returns the board the renderer should show right now, plus
// the destroyed set to highlight (nil outside the flash phase).
func (g *Game) displayBoard() (*match3.Board, []match3.Coord) {
	if len(g.pending) == 0 {
		return g.board, nil
	}
	if g.inFlash {
		return g.flashBoard, g.pending[0].Destroyed
	}
	return g.pending[0].Board, nil
}

// chainIndex returns the chain number being shown, or 0 when idle.
func (g *Game) chainIndex() int {
	if len(g.pending) == 0 {
		return 0
	}
	return g.pending[0].Chain
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall || g.initErr != nil,
	}
}
