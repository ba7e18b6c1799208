package tags

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tagstorm/internal/config"
)

// Impact is one shrink-and-push response the resolver applied.
type Impact struct {
	Source *Tag // Tag that delivered the energy
	Target *Tag // Tag that got pushed and shrunk
	Energy float64
	Shrink float64 // Size factor scheduled for Target
	Push   float64 // Distance Target was sent
	Depth  int     // 0 for a primary impact, >0 for cascade levels
}

// Stats are running totals since the engine was created.
type Stats struct {
	Ticks       int
	Launches    int
	Impacts     int // Primary responses
	CascadeHits int // Responses at depth > 0
	PeakEnergy  float64
	TotalEnergy float64
}

// Engine tracks tags and advances their motion, size and collisions.
type Engine struct {
	cfg      config.EngineConfig
	logger   *log.Logger
	rng      *rand.Rand
	onImpact func(Impact)

	tags      []*Tag // Every tag the engine knows about
	animating []*Tag // Flying or shifting
	resizing  []*Tag

	clock float64
	stats Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine debug output to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed seeds the push-direction jitter.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithImpactListener calls fn for every impact response.
func WithImpactListener(fn func(Impact)) Option {
	return func(e *Engine) {
		e.onImpact = fn
	}
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg config.EngineConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tags: invalid engine config: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		logger: log.New(io.Discard),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.EngineConfig {
	return e.cfg
}

// Tags returns every tag known to the engine. The slice must not be modified.
func (e *Engine) Tags() []*Tag {
	return e.tags
}

// Animating returns the tags that are flying or shifting.
func (e *Engine) Animating() []*Tag {
	return e.animating
}

// Resizing returns the tags whose size is still interpolating.
func (e *Engine) Resizing() []*Tag {
	return e.resizing
}

// Stats returns running totals.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Clock returns simulated seconds since the engine was created.
func (e *Engine) Clock() float64 {
	return e.clock
}

// Settled reports whether the tag is in neither tracking list.
func (e *Engine) Settled(t *Tag) bool {
	return !slices.Contains(e.animating, t) && !slices.Contains(e.resizing, t)
}

// Add makes the tag part of the population without moving it.
func (e *Engine) Add(t *Tag) {
	if t == nil || slices.Contains(e.tags, t) {
		return
	}
	t.RefreshBox()
	e.tags = append(e.tags, t)
}

// Place adds the tag as settled at pos.
func (e *Engine) Place(t *Tag, pos mgl64.Vec3) {
	e.Add(t)
	t.Position = pos
	t.TargetPosition = pos
	t.moveMesh(pos)
}

// Remove forgets the tag entirely.
func (e *Engine) Remove(t *Tag) {
	e.tags = slices.DeleteFunc(e.tags, func(o *Tag) bool { return o == t })
	e.animating = slices.DeleteFunc(e.animating, func(o *Tag) bool { return o == t })
	e.resizing = slices.DeleteFunc(e.resizing, func(o *Tag) bool { return o == t })
}

// Launch starts a flight from the tag's current mesh position to target.
func (e *Engine) Launch(t *Tag, target mgl64.Vec3) {
	e.Add(t)
	t.Position = t.currentPosition()
	t.TargetPosition = target
	t.Motion = MotionFlying
	t.FlightProgress = 0
	t.Impacted = false
	t.Colliding = nil
	e.track(t)
	e.stats.Launches++
}

// Halt stops any motion; the next Update drops the tag from tracking.
func (e *Engine) Halt(t *Tag) {
	if t.Motion == MotionIdle {
		return
	}
	t.Motion = MotionIdle
	t.Position = t.currentPosition()
	t.TargetPosition = t.Position
	t.RefreshBox()
}

// Update advances every tracked tag by dt seconds.
// Both lists are walked backwards so completed tags can be removed in place;
// tags scheduled during the walk are appended and first move next frame.
func (e *Engine) Update(dt float64) {
	step := dt * e.cfg.ReferenceFPS
	if step <= 0 {
		return
	}
	e.clock += dt
	e.stats.Ticks++

	for i := len(e.animating) - 1; i >= 0; i-- {
		t := e.animating[i]
		switch t.Motion {
		case MotionFlying:
			e.stepFlight(t, step)
		case MotionShifting:
			e.stepShift(t, step)
		}
		if t.Motion == MotionIdle {
			e.animating = slices.Delete(e.animating, i, i+1)
		}
	}

	for i := len(e.resizing) - 1; i >= 0; i-- {
		t := e.resizing[i]
		if t.Resize == ResizeActive {
			e.stepResize(t, step)
		}
		if t.Resize == ResizeIdle {
			e.resizing = slices.Delete(e.resizing, i, i+1)
		}
	}
}

// track appends t to the animating list once.
func (e *Engine) track(t *Tag) {
	if !slices.Contains(e.animating, t) {
		e.animating = append(e.animating, t)
	}
}

func (e *Engine) scheduleShift(t *Tag, target mgl64.Vec3) {
	t.TargetPosition = target
	t.Motion = MotionShifting
	t.ShiftProgress = 0
	e.track(t)
}

func (e *Engine) scheduleResize(t *Tag, size float64) {
	t.TargetSize = size
	t.Resize = ResizeActive
	t.ResizeProgress = 0
	if !slices.Contains(e.resizing, t) {
		e.resizing = append(e.resizing, t)
	}
}

// flightObstacles is the set a flying tag is tested against.
func (e *Engine) flightObstacles() []*Tag {
	if e.cfg.CollideWithSettled {
		return e.tags
	}
	return e.animating
}
