// Package scene implements the tag fields the platform can run: each scene
// owns a collision engine, spawns tags into it and projects the result onto
// a character screen.
package scene

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tagstorm/internal/config"
	"github.com/vovakirdan/tagstorm/internal/core"
	"github.com/vovakirdan/tagstorm/internal/registry"
	"github.com/vovakirdan/tagstorm/internal/tags"
)

// Mode selects how a scene populates its field.
type Mode string

const (
	ModeRain  Mode = "rain"  // Tags keep flying in toward free slots
	ModeBurst Mode = "burst" // A settled grid struck by forced heavy tags
	ModeDrift Mode = "drift" // A few large tags, launched on demand
)

// Settings shared by every scene created after Configure.
var (
	settingsMu sync.RWMutex
	engineCfg  = config.DefaultEngineConfig()
	sceneCfg   = config.DefaultSceneConfig()
	logger     = log.New(io.Discard)
)

// Configure sets the engine and scene configuration for scenes created
// afterwards. A nil logger keeps the current one.
func Configure(ec config.EngineConfig, sc config.SceneConfig, l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	engineCfg = ec
	sceneCfg = sc
	if l != nil {
		logger = l
	}
}

func settings() (config.EngineConfig, config.SceneConfig, *log.Logger) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return engineCfg, sceneCfg, logger
}

func init() {
	registry.Register(string(ModeRain), func() registry.Scene { return New(ModeRain) })
	registry.Register(string(ModeBurst), func() registry.Scene { return New(ModeBurst) })
	registry.Register(string(ModeDrift), func() registry.Scene { return New(ModeDrift) })
}

// Scene is a tag field in one of the modes.
type Scene struct {
	mode   Mode
	ecfg   config.EngineConfig
	cfg    config.SceneConfig
	logger *log.Logger

	runtime core.RuntimeConfig
	engine  *tags.Engine
	rng     *rand.Rand

	tick       int
	clock      float64
	spawnTimer float64
	launches   int
	labelIdx   int
	paused     bool

	// forced marks tags launched with ForceCollisions for rendering.
	forced map[*tags.Tag]bool
}

// New creates a scene in the given mode using the configured settings.
func New(mode Mode) *Scene {
	ec, sc, l := settings()
	return &Scene{
		mode:   mode,
		ecfg:   ec,
		cfg:    sc,
		logger: l.WithPrefix(string(mode)),
	}
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return string(s.mode)
}

// Title returns the display name.
func (s *Scene) Title() string {
	switch s.mode {
	case ModeRain:
		return "Tag Rain"
	case ModeBurst:
		return "Grid Burst"
	case ModeDrift:
		return "Slow Drift"
	default:
		return string(s.mode)
	}
}

// Engine exposes the underlying engine, mostly for tests and the sim command.
func (s *Scene) Engine() *tags.Engine {
	return s.engine
}

// Reset rebuilds the engine and the initial population.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.runtime = cfg
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.tick = 0
	s.clock = 0
	s.spawnTimer = s.cfg.Spawn.Interval
	s.launches = 0
	s.labelIdx = 0
	s.paused = false
	s.forced = make(map[*tags.Tag]bool)

	eng, err := tags.NewEngine(s.ecfg, tags.WithSeed(cfg.Seed), tags.WithLogger(s.logger))
	if err != nil {
		s.logger.Error("falling back to default engine config", "err", err)
		s.ecfg = config.DefaultEngineConfig()
		eng, err = tags.NewEngine(s.ecfg, tags.WithSeed(cfg.Seed), tags.WithLogger(s.logger))
		if err != nil {
			panic(fmt.Sprintf("scene: default engine config rejected: %v", err))
		}
	}
	s.engine = eng

	switch s.mode {
	case ModeBurst:
		s.placeGrid()
	case ModeDrift:
		s.placeDrifters()
	}
	s.logger.Debug("reset", "tags", len(s.engine.Tags()), "seed", cfg.Seed)
}

// Resize updates the screen size used to fit the field.
func (s *Scene) Resize(width, height int) {
	s.runtime.ScreenW = width
	s.runtime.ScreenH = height
}

// Step handles the frame's actions and advances the simulation by dt.
func (s *Scene) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) {
		s.Reset(s.runtime)
		return core.StepResult{State: s.State()}
	}
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionLaunch) {
		s.launch()
	}
	if in.Has(core.ActionBurst) {
		for i := 0; i < s.cfg.Spawn.Volley; i++ {
			s.launch()
		}
	}
	if s.mode == ModeRain {
		s.rain(dt)
	}

	s.engine.Update(dt)
	s.clock += dt
	s.engine.ApplyWobble(s.engine.Tags(), s.clock*s.wobbleSpeed())
	s.tick++

	return core.StepResult{State: s.State()}
}

func (s *Scene) wobbleSpeed() float64 {
	if s.mode == ModeDrift {
		return 0.4
	}
	return 1
}

// State returns the current statistics.
func (s *Scene) State() core.SceneState {
	st := core.SceneState{Tick: s.tick, Paused: s.paused}
	if s.engine == nil {
		return st
	}

	stats := s.engine.Stats()
	all := s.engine.Tags()
	st.Tags = len(all)
	for _, t := range all {
		if t.Busy() {
			st.Active++
		}
	}
	st.Impacts = stats.Impacts
	st.CascadeHits = stats.CascadeHits
	st.PeakEnergy = stats.PeakEnergy
	st.Score = int(math.Round(stats.TotalEnergy))
	return st
}

// Focus centers the camera on the tag cloud and zooms to fit the field.
func (s *Scene) Focus() core.Camera {
	cam := core.Camera{Zoom: s.fitZoom()}
	if s.engine == nil {
		return cam
	}

	var sum mgl64.Vec3
	n := 0
	for _, t := range s.engine.Tags() {
		if t.Motion == tags.MotionFlying {
			continue
		}
		sum = sum.Add(t.Mesh.Position())
		n++
	}
	if n > 0 {
		c := sum.Mul(1 / float64(n))
		// Follow the cloud loosely so the field stays in view.
		cam.X = core.ClampF(c.X(), -s.cfg.Field.Width/4, s.cfg.Field.Width/4)
		cam.Y = core.ClampF(c.Y(), -s.cfg.Field.Height/4, s.cfg.Field.Height/4)
	}
	return cam
}

// fitZoom is the number of screen cells per world unit that shows the
// whole field with a small margin.
func (s *Scene) fitZoom() float64 {
	w := float64(s.runtime.ScreenW)
	h := float64(s.runtime.ScreenH - hudRows)
	if w <= 0 || h <= 0 {
		return 1
	}
	zx := w / (s.cfg.Field.Width * 1.1)
	zy := h / (s.cfg.Field.Height * 1.1 * cellAspect)
	return math.Max(0.1, math.Min(zx, zy))
}
