package tui

import (
	"github.com/charmbracelet/harmonica"

	"github.com/vovakirdan/tagstorm/internal/core"
)

// Camera spring tuning.
const (
	cameraFrequency = 3.0
	cameraDamping   = 0.9
)

// Camera follows a scene's focus with one spring per axis.
type Camera struct {
	spring harmonica.Spring
	pos    core.Camera
	vel    core.Camera
	primed bool
}

// NewCamera creates a camera updated tickRate times per second.
func NewCamera(tickRate int) *Camera {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Camera{
		spring: harmonica.NewSpring(harmonica.FPS(tickRate), cameraFrequency, cameraDamping),
	}
}

// Follow advances the spring one frame toward target and returns the
// smoothed camera. The first call snaps to the target.
func (c *Camera) Follow(target core.Camera) core.Camera {
	if !c.primed {
		c.Snap(target)
		return c.pos
	}
	c.pos.X, c.vel.X = c.spring.Update(c.pos.X, c.vel.X, target.X)
	c.pos.Y, c.vel.Y = c.spring.Update(c.pos.Y, c.vel.Y, target.Y)
	c.pos.Zoom, c.vel.Zoom = c.spring.Update(c.pos.Zoom, c.vel.Zoom, target.Zoom)
	return c.pos
}

// Snap jumps straight to target and drops any velocity.
func (c *Camera) Snap(target core.Camera) {
	c.pos = target
	c.vel = core.Camera{}
	c.primed = true
}

// Current returns the last smoothed camera.
func (c *Camera) Current() core.Camera {
	return c.pos
}
