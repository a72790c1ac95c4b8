// Package lines adapts the lines engine to the platform: cursor and mouse
// input, HUD messages, difficulty and rendering into a core.Screen.
package lines

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lines/internal/config"
	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines/engine"
)

// Package-level settings, applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a YAML file to load instead of the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a difficulty preset; "" keeps the file's settings.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficultyPreset = p
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig resolves the configuration a variant plays with. On error it
// returns the variant's defaults along with the error.
func LoadConfig(v Variant) (config.LinesConfig, error) {
	cfg, err := config.LoadLines(configPath)
	if err == nil {
		if v.apply != nil {
			v.apply(&cfg.Board)
		}
		config.ApplyLinesPreset(&cfg, difficultyPreset)
		err = cfg.Validate()
	}
	if err != nil {
		cfg = config.DefaultLinesConfig()
		if v.apply != nil {
			v.apply(&cfg.Board)
		}
	}
	return cfg, err
}

// RulesFromConfig converts configuration to engine rules.
func RulesFromConfig(cfg config.LinesConfig) engine.Rules {
	return engine.Rules{
		Size:          cfg.Board.Size,
		Colors:        cfg.Board.Colors,
		InitialPieces: cfg.Board.InitialPieces,
		SpawnCount:    cfg.Board.SpawnCount,
		RunLength:     cfg.Board.RunLength,
		Scoring:       engine.ScoringPolicy(cfg.Scoring.Policy),
	}
}

// Ticks a HUD message or clear flash stays up, at the default tick rate.
const (
	messageSeconds = 3
	flashTicks     = 8
)

// Game implements registry.Game for one lines variant.
type Game struct {
	variant Variant
	cfg     config.LinesConfig
	eng     *engine.Engine
	tick    uint64

	cursor   engine.Cell
	paused   bool
	gameOver bool

	message      string
	messageTicks int
	flash        []engine.Cell
	flashLeft    int

	screenW   int
	screenH   int
	tickRate  int
	highScore int
}

// New creates a game for the variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns the menu summary.
func (g *Game) Description() string {
	return g.variant.Description
}

// Reset loads configuration and starts a new game. A configuration that
// fails to load falls back to defaults and the error is shown in the HUD.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, cfgErr := LoadConfig(g.variant)
	g.cfg = cfg

	opts := []engine.Option{engine.WithLogger(logger)}
	if cfg.Difficulty.Enabled {
		dm := config.NewDifficultyManager(cfg.Difficulty)
		base := cfg.Board.SpawnCount
		opts = append(opts, engine.WithSpawnCounter(func(score, moves int) int {
			return dm.SpawnCount(base, score, moves)
		}))
	}

	eng, err := newEngine(RulesFromConfig(cfg), rc.Seed, opts...)
	if err != nil {
		cfg = config.DefaultLinesConfig()
		g.cfg = cfg
		cfgErr = err
	}
	g.eng = eng

	g.tick = 0
	g.cursor = engine.At(cfg.Board.Size/2, cfg.Board.Size/2)
	g.paused = false
	g.gameOver = eng.GameOver()
	g.flash, g.flashLeft = nil, 0
	g.screenW, g.screenH = rc.ScreenW, rc.ScreenH
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.highScore = rc.HighScore

	g.message, g.messageTicks = "", 0
	if cfgErr != nil {
		g.say(cfgErr.Error())
	}
}

// newEngine builds an engine for rules. Rules the engine rejects are
// replaced by engine.DefaultRules and the rejection is returned with the
// fallback engine.
func newEngine(rules engine.Rules, seed int64, opts ...engine.Option) (*engine.Engine, error) {
	eng, err := engine.New(rules, rand.New(rand.NewSource(seed)), opts...)
	if err == nil {
		return eng, nil
	}
	logger.Error("invalid rules, using defaults", "err", err)
	fallback, ferr := engine.New(engine.DefaultRules(), rand.New(rand.NewSource(seed)), opts...)
	if ferr != nil {
		panic(fmt.Sprintf("lines: default rules rejected: %v", ferr))
	}
	return fallback, fmt.Errorf("rules: %w", err)
}

// Resize updates the screen size used for layout and click mapping.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Config returns the configuration the current game runs with.
func (g *Game) Config() config.LinesConfig {
	return g.cfg
}

// Cursor returns the keyboard cursor cell.
func (g *Game) Cursor() engine.Cell {
	return g.cursor
}

// Message returns the current HUD message.
func (g *Game) Message() string {
	return g.message
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	redraw := g.age()

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		redraw = true
	}
	if g.paused || g.gameOver || g.tooSmall() || in.Empty() {
		return core.StepResult{State: g.State(), Redraw: redraw}
	}

	size := g.cfg.Board.Size
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Wrap(g.cursor.Row-1, size)
		redraw = true
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Wrap(g.cursor.Row+1, size)
		redraw = true
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Wrap(g.cursor.Col-1, size)
		redraw = true
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Wrap(g.cursor.Col+1, size)
		redraw = true
	}

	if in.Has(core.ActionClick) {
		if c, ok := g.CellAt(in.ClickX, in.ClickY); ok {
			g.cursor = c
			g.Activate(c)
			redraw = true
		}
	} else if in.Has(core.ActionConfirm) {
		g.Activate(g.cursor)
		redraw = true
	}

	return core.StepResult{State: g.State(), Redraw: redraw}
}

// Activate forwards a click on c to the engine and updates the HUD.
func (g *Game) Activate(c engine.Cell) (engine.Outcome, error) {
	out, err := g.eng.Activate(c)
	g.after(out, err)
	return out, err
}

// Move performs a move directly, bypassing the selection.
func (g *Game) Move(cmd MoveCommand) (engine.Outcome, error) {
	out, err := g.eng.Move(cmd.From, cmd.To)
	g.after(out, err)
	return out, err
}

func (g *Game) after(out engine.Outcome, err error) {
	if err != nil {
		g.say(describe(err))
		return
	}

	if len(out.Cleared) > 0 {
		g.flash = out.Cleared
		g.flashLeft = flashTicks
		g.say(fmt.Sprintf("Cleared %d! +%d", len(out.Cleared), out.Gained))
	}

	if g.eng.GameOver() {
		g.gameOver = true
		g.say("Board full")
	}
}

// age counts down message and flash timers and reports whether anything expired.
func (g *Game) age() bool {
	changed := false
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
			changed = true
		}
	}
	if g.flashLeft > 0 {
		g.flashLeft--
		if g.flashLeft == 0 {
			g.flash = nil
			changed = true
		}
	}
	return changed
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = messageSeconds * g.tickRate
}

// describe turns engine errors into HUD text.
func describe(err error) string {
	var me *engine.MoveError
	switch {
	case errors.As(err, &me):
		switch me.Reason {
		case engine.ReasonUnreachable:
			return fmt.Sprintf("No path from %s to %s", me.Start, me.End)
		case engine.ReasonOccupiedDestination:
			return fmt.Sprintf("%s is taken", me.End)
		case engine.ReasonNoPieceAtStart:
			return fmt.Sprintf("No piece at %s", me.Start)
		default:
			return "Move is off the board"
		}
	case errors.Is(err, engine.ErrNothingSelected):
		return "Select a piece first"
	case errors.Is(err, engine.ErrOutOfBounds):
		return "Outside the board"
	default:
		return err.Error()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		Moves:    g.eng.Moves(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall(),
		Message:  g.message,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Cursor | Enter/Space/Click: Select, Move | P: Pause | Q: Quit"
}
