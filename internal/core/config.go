package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the platform drives Step at (default 60)
	Seed     int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the fixed frame duration in seconds for the tick rate.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// SceneState is the snapshot a scene reports back to the platform.
type SceneState struct {
	Tick        int     // Frames stepped since reset
	Tags        int     // Tags in the field
	Active      int     // Tags still flying, shifting or resizing
	Impacts     int     // Primary impact responses
	CascadeHits int     // Secondary (cascade) responses
	PeakEnergy  float64 // Largest single energy transfer
	Score       int     // Rounded total transferred energy
	Paused      bool
}

// StepResult is returned by Scene.Step() after each frame.
type StepResult struct {
	State SceneState
}

// Camera describes which part of the world the screen shows.
// X and Y are the world coordinates mapped to the screen center.
type Camera struct {
	X, Y float64
	Zoom float64 // Screen cells per world unit horizontally
}
