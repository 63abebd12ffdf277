// Package hotcold adapts the hot/cold engine to the terminal platform:
// it maps two players' key presses onto actor intent, steps the
// simulation once per platform tick and draws it into a Screen.
package hotcold

import (
	"fmt"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/hotcold/internal/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/core"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/levels"
	"github.com/vovakirdan/hotcold/internal/games/hotcold/replay"
)

// DefaultHoldTicks is how long one horizontal key press keeps an actor
// moving when no configuration overrides it.
const DefaultHoldTicks = 8

// Options configures a Game.
type Options struct {
	Params    core.Params
	HoldTicks int
	Logger    *log.Logger
}

// Game runs one level at a time for two local players.
type Game struct {
	sim       *core.Simulation
	level     levels.Level
	hasLevel  bool
	params    core.Params
	logger    *log.Logger
	recorder  *replay.Recorder
	controls  [len(core.Elements)]control
	holdTicks int

	screenW int
	screenH int
	paused  bool

	events []core.Event // events of the last simulated tick
}

// New creates a game with no level loaded.
func New(opts Options) *Game {
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Game{
		sim:       core.New(opts.Params),
		params:    opts.Params,
		logger:    opts.Logger,
		holdTicks: opts.HoldTicks,
		screenW:   platformcore.DefaultConfig().ScreenW,
		screenH:   platformcore.DefaultConfig().ScreenH,
	}
}

// ID returns the loaded level ID. Run records are stored per level.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the display name of the loaded level.
func (g *Game) Title() string {
	if !g.hasLevel {
		return "Hot & Cold"
	}
	return g.level.Name
}

// Level returns the loaded level.
func (g *Game) Level() levels.Level {
	return g.level
}

// LoadLevel installs a level and starts a fresh attempt.
func (g *Game) LoadLevel(l levels.Level) {
	g.level = l
	g.hasLevel = true
	l.Load(g.sim)
	g.recorder = replay.NewRecorder(l.ID)
	g.restart()
	g.logger.Info("level loaded", "level", l.ID, "name", l.Name, "rows", l.Rows(), "cols", l.Cols())
}

// Reset adapts to the screen size and restarts the current level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.restart()
}

// Resize adapts to a new screen size without touching the attempt.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

func (g *Game) restart() {
	g.sim.Restart()
	g.paused = false
	g.events = nil
	for i := range g.controls {
		g.controls[i] = control{}
	}
	if g.recorder != nil {
		g.recorder.Reset()
	}
}

// Step applies both players' input and advances the simulation one tick.
// Player 1 drives the hot actor and Player 2 the cold actor.
func (g *Game) Step(in platformcore.MultiInputFrame) platformcore.StepResult {
	g.events = nil

	if !g.hasLevel {
		return platformcore.StepResult{State: g.State()}
	}

	if hasAny(in, platformcore.ActionRestart) {
		g.logger.Debug("level restarted", "level", g.level.ID, "tick", g.sim.Tick())
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	if hasAny(in, platformcore.ActionPause) && !g.sim.Outcome().Terminal() {
		g.paused = !g.paused
	}
	if g.paused || g.sim.Outcome().Terminal() {
		return platformcore.StepResult{State: g.State()}
	}

	tick := g.sim.Tick() + 1
	for _, e := range core.Elements {
		c := &g.controls[e]
		c.press(in.Player(playerFor(e)), g.holdTicks)
		left, right, jump := c.intent()

		g.recorder.Record(tick, e, left, right, jump)
		if err := g.sim.SetIntent(e, left, right); err != nil {
			g.logger.Error("set intent", "actor", e, "err", err)
		}
		if jump {
			if err := g.sim.RequestJump(e); err != nil {
				g.logger.Error("request jump", "actor", e, "err", err)
			}
		}
		c.release()
	}

	res := g.sim.Step()
	g.events = res.Events
	for _, ev := range res.Events {
		LogEvent(g.logger, g.level.ID, ev)
	}

	return platformcore.StepResult{State: g.State()}
}

// State returns the platform view of the attempt.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Tick:     g.sim.Tick(),
		Won:      g.sim.Won(),
		Lost:     g.sim.Lost(),
		GameOver: g.sim.Outcome().Terminal(),
		Paused:   g.paused,
	}
}

// Outcome returns the engine outcome of the attempt.
func (g *Game) Outcome() core.Outcome {
	return g.sim.Outcome()
}

// Events returns the events of the last simulated tick.
func (g *Game) Events() []core.Event {
	return g.events
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() core.Snapshot {
	return g.sim.Snapshot()
}

// Fingerprint returns the engine state hash.
func (g *Game) Fingerprint() uint64 {
	return g.sim.Fingerprint()
}

// Recording returns the inputs of the current attempt as a replay script.
func (g *Game) Recording() (replay.Script, error) {
	if g.recorder == nil {
		return replay.Script{}, fmt.Errorf("no level loaded")
	}
	return g.recorder.Script(g.sim.Tick()), nil
}

func playerFor(e core.Element) platformcore.PlayerID {
	if e == core.Cold {
		return platformcore.Player2
	}
	return platformcore.Player1
}

func hasAny(in platformcore.MultiInputFrame, a platformcore.Action) bool {
	return in.Player1().Has(a) || in.Player2().Has(a)
}
