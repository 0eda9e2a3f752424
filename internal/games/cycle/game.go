package cycle

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyber-cycle/internal/config"
	"github.com/vovakirdan/cyber-cycle/internal/core"
	"github.com/vovakirdan/cyber-cycle/internal/physics"
	"github.com/vovakirdan/cyber-cycle/internal/registry"
)

// Mode selects whether CPU rivals share the arena.
type Mode string

const (
	ModeRivals Mode = "rivals"
	ModeSolo   Mode = "solo"
)

// Points awarded per rival destroyed, on top of one point per tick survived.
const rivalBounty = 50

// spawnAttempts bounds the search for a clear rival spawn point.
const spawnAttempts = 16

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives round and collision diagnostics.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLogger replaces the package logger. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Camera follows the player's rounded position. It stays where it was
// once the player is gone.
type Camera struct {
	Position core.Vec2
}

// Game implements the light cycle arena.
type Game struct {
	mode  Mode
	fixed *config.CycleConfig // Overrides file loading when set

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.CycleConfig
	difficulty *config.DifficultyManager
	log        *log.Logger

	// Simulation
	world    *physics.World
	fleet    *Fleet
	bikes    []*Bike // Every cycle spawned this round, destroyed ones included
	walls    []physics.Handle
	machine  *Machine
	motion   Motion
	resolver Resolver
	steering *RivalSteering
	camera   Camera
	rng      *rand.Rand

	// Round state
	tick      uint64
	score     int
	kills     int
	paused    bool
	timeStep  float64 // Seconds per tick
	lastBurst int     // Cycles destroyed during the last tick
}

// New creates a new game with CPU rivals.
func New() *Game {
	return &Game{mode: ModeRivals}
}

// NewSolo creates a new game with only the player's cycle.
func NewSolo() *Game {
	return &Game{mode: ModeSolo}
}

// NewWithConfig creates a game that uses cfg instead of loading a file.
func NewWithConfig(mode Mode, cfg config.CycleConfig) *Game {
	return &Game{mode: mode, fixed: &cfg}
}

func init() {
	registry.Register("cycle", func() registry.Game {
		return New()
	})
	registry.Register("cycle_solo", func() registry.Game {
		return NewSolo()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSolo {
		return "cycle_solo"
	}
	return "cycle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSolo {
		return "Cyber Cycle (Solo)"
	}
	return "Cyber Cycle"
}

// Reset tears down the previous round and builds a fresh arena.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.log = logger
	g.teardown()
	g.runtime = runtime
	g.cfg = g.loadConfig()

	tickRate := g.cfg.Physics.TickRate
	if rt := runtime.TickRate; rt > 0 && g.cfg.Physics.Speed/float64(rt) > 2*g.cfg.Trail.Margin {
		tickRate = rt
	}
	g.cfg.Physics.TickRate = tickRate
	g.timeStep = g.cfg.Physics.TimeStep().Seconds()

	fp := Footprint{Width: g.cfg.Bike.Width, Height: g.cfg.Bike.Height}
	g.motion = Motion{Delta: g.cfg.Physics.Delta(), Footprint: fp}
	g.resolver = Resolver{
		Policy:        BikePolicy(g.cfg.Collisions.BikeVsBike),
		PersistTrails: g.cfg.Trail.PersistAfterDeath,
		Logger:        g.log,
	}
	g.machine = NewMachine()
	g.world = physics.NewWorld(g.cfg.Physics.CellSize)
	g.fleet = NewFleet()
	g.bikes = nil
	g.walls = nil
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.steering = NewRivalSteering(g.motion, g.cfg.Rivals.Lookahead, g.cfg.Rivals.TurnChance, g.rng.Int63())
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.tick = 0
	g.score = 0
	g.kills = 0
	g.paused = false
	g.lastBurst = 0

	g.buildArena()
	player := g.spawnBike(core.Vec2{}, DirRight, true)
	g.camera = Camera{Position: player.Position.Round()}
	for range g.baseRivals() {
		g.spawnRival()
	}

	g.log.Info("round started",
		"mode", g.mode,
		"seed", runtime.Seed,
		"tick_rate", tickRate,
		"delta", g.motion.Delta,
		"rivals", g.fleet.Rivals(),
	)
}

// loadConfig resolves the round's configuration.
func (g *Game) loadConfig() config.CycleConfig {
	if g.fixed != nil {
		return *g.fixed
	}
	cfg, err := config.LoadCycle(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultCycleConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCyclePreset(&cfg, difficultyPreset)
	}
	return cfg
}

// teardown releases every body of the previous round.
func (g *Game) teardown() {
	if g.world == nil {
		return
	}
	for _, b := range g.bikes {
		if b.Trail != nil {
			b.Trail.Clear(g.world)
		}
		g.world.Despawn(b.Handle)
	}
	g.world = nil
}

func (g *Game) baseRivals() int {
	if g.mode == ModeSolo {
		return 0
	}
	return g.cfg.Rivals.Count
}

// buildArena spawns four static walls around the play field.
func (g *Game) buildArena() {
	a := g.cfg.Arena
	if !a.Bounded() {
		return
	}
	hw, hh, t := a.Width/2, a.Height/2, a.WallThickness
	if t <= 0 {
		t = 1
	}
	for _, r := range []core.Rect{
		core.NewRect(-hw-t, -hh-t, a.Width+2*t, t), // top
		core.NewRect(-hw-t, hh, a.Width+2*t, t),    // bottom
		core.NewRect(-hw-t, -hh, t, a.Height),      // left
		core.NewRect(hw, -hh, t, a.Height),         // right
	} {
		h := g.world.Spawn(physics.Body{
			Kind:   physics.KindStatic,
			Center: r.Center(),
			Half:   core.V(r.W/2, r.H/2),
		})
		g.walls = append(g.walls, h)
	}
}

// spawnBike places a cycle and its empty trail.
func (g *Game) spawnBike(pos core.Vec2, dir Direction, player bool) *Bike {
	o := Identity
	if dir == DirLeft {
		o = FlipX
	}
	b := &Bike{
		ID:          len(g.bikes),
		Player:      player,
		Direction:   dir,
		Position:    pos,
		Orientation: o,
		Color:       core.ColorBrightCyan,
	}
	if !player {
		b.Color = core.RivalColor(len(g.bikes) - 1)
	}
	b.Handle = g.world.Spawn(physics.Body{
		Kind:   physics.KindSensor,
		Center: pos,
		Half:   g.motion.Footprint.Half(o),
	})
	b.Trail = NewTrail(g.cfg.Trail.Capacity, TrailGeometry{
		Delta:     g.motion.Delta,
		Margin:    g.cfg.Trail.Margin,
		Footprint: g.motion.Footprint,
	})
	g.fleet.Add(b)
	g.bikes = append(g.bikes, b)
	return b
}

// spawnRival drops a CPU cycle onto a free horizontal lane. It gives up
// quietly when no clear spot is found.
func (g *Game) spawnRival() *Bike {
	spacing := g.cfg.Rivals.Spacing
	if spacing <= 0 {
		spacing = g.motion.Footprint.Width * 4
	}
	halfX, halfY := g.spawnExtent(spacing)
	lanes := int(halfY / spacing)
	if lanes < 1 {
		lanes = 1
	}

	for range spawnAttempts {
		lane := 1 + g.rng.Intn(lanes)
		if g.rng.Intn(2) == 0 {
			lane = -lane
		}
		pos := core.V((g.rng.Float64()*2-1)*halfX, float64(lane)*spacing)
		dir := DirRight
		if g.rng.Intn(2) == 0 {
			dir = DirLeft
		}
		if g.spawnClear(pos, dir) {
			b := g.spawnBike(pos, dir, false)
			g.log.Debug("rival spawned", "id", b.ID, "x", pos.X, "y", pos.Y, "dir", dir)
			return b
		}
	}
	return nil
}

// spawnExtent returns the half size of the region rivals may spawn in.
func (g *Game) spawnExtent(spacing float64) (float64, float64) {
	a := g.cfg.Arena
	reach := float64(g.cfg.Rivals.Lookahead)*g.motion.Delta + g.motion.Footprint.Width*2
	if a.Bounded() {
		return max(a.Width/2-reach, 0), max(a.Height/2-reach, spacing)
	}
	n := float64(g.cfg.Rivals.Count + g.cfg.Difficulty.Scaling.ExtraRivals + 1)
	return spacing * n, spacing * n
}

// spawnClear reports whether a cycle at pos heading dir would start with
// open road ahead of it.
func (g *Game) spawnClear(pos core.Vec2, dir Direction) bool {
	half := g.motion.Footprint.Half(Identity)
	reach := float64(max(g.cfg.Rivals.Lookahead, 1)) * g.motion.Delta
	box := core.RectAround(pos, half.Add(core.V(g.motion.Delta, g.motion.Delta)))
	ahead := core.RectAround(pos.Add(dir.Unit().Scale(reach)), half)
	return !g.world.Occupied(box) && !g.world.Occupied(ahead)
}

// Step advances the round by one fixed tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && !g.machine.Running() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State(), Tick: g.tick}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && g.machine.Running() {
		g.paused = !g.paused
	}

	g.lastBurst = 0
	if g.paused || !g.machine.Running() {
		return core.StepResult{State: g.State(), Tick: g.tick}
	}

	g.tick++

	// Consequences of the previous physics step come first.
	out := g.resolver.Resolve(g.world.Drain(), g.fleet, g.world, g.machine)
	g.lastBurst = len(out.Destroyed)
	for _, b := range out.Destroyed {
		if !b.Player {
			g.kills++
		}
	}
	if out.PlayerDied {
		g.log.Info("round over", "tick", g.tick, "score", g.score, "kills", g.kills)
		return core.StepResult{State: g.State(), Tick: g.tick, Destroyed: g.lastBurst}
	}

	g.animate()
	g.follow()

	g.motion.Advance(g.world, g.fleet.Player(), input)
	for _, b := range g.fleet.Bikes() {
		if b.Player {
			continue
		}
		g.motion.Advance(g.world, b, g.steering.Decide(b, g.world))
	}
	g.reinforce()

	g.world.Step()

	g.score = int(g.tick) + g.kills*rivalBounty
	return core.StepResult{State: g.State(), Tick: g.tick, Destroyed: g.lastBurst}
}

// animate advances each live cycle's sprite frame on a fixed period.
func (g *Game) animate() {
	period := g.cfg.Animation.FrameSeconds
	frames := g.cfg.Animation.Frames
	if period <= 0 || frames < 2 {
		return
	}
	for _, b := range g.fleet.Bikes() {
		b.animElapsed += g.timeStep
		for b.animElapsed >= period {
			b.animElapsed -= period
			b.Frame = (b.Frame + 1) % frames
		}
	}
}

// follow moves the camera onto the player.
func (g *Game) follow() {
	if p := g.fleet.Player(); p != nil {
		g.camera.Position = p.Position.Round()
	}
}

// reinforce tops the rival count up to what the difficulty curve asks for.
func (g *Game) reinforce() {
	want := g.difficulty.Rivals(g.baseRivals(), g.score, int(g.tick))
	if g.fleet.Rivals() < want {
		g.spawnRival()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over := g.machine != nil && !g.machine.Running()
	return core.GameState{
		Score:    g.score,
		Kills:    g.kills,
		GameOver: over,
		Paused:   g.paused,
	}
}

// Phase returns the round phase.
func (g *Game) Phase() Phase {
	if g.machine == nil {
		return PhaseInGame
	}
	return g.machine.Phase()
}

// Player returns the player's cycle, or nil once destroyed.
func (g *Game) Player() *Bike {
	return g.fleet.Player()
}

// Camera returns the current view centre.
func (g *Game) Camera() Camera {
	return g.camera
}

// TimeStep returns the fixed tick duration of the current round. The
// platform schedules ticks with it, so wall-clock speed matches
// physics.speed even when a requested tick rate was rejected.
func (g *Game) TimeStep() time.Duration {
	return g.cfg.Physics.TimeStep()
}

// Mode reports whether rivals share the arena.
func (g *Game) Mode() Mode {
	return g.mode
}

// Config returns the configuration in effect for this round.
func (g *Game) Config() config.CycleConfig {
	return g.cfg
}
