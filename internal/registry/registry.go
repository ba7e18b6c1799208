// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, so the CLI and the TUI
// can discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tagstorm/internal/core"
)

// Scene is a self-contained tag field driven by the collision engine.
// Scenes know nothing about Bubble Tea: the platform maps keys to actions,
// measures frame time and turns the screen buffer into terminal output.
type Scene interface {
	// ID returns a unique identifier (e.g. "rain"). Used for CLI commands
	// and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds the field. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the projection to a new screen size without
	// touching the simulation.
	Resize(width, height int)

	// Step applies the frame's actions and advances the engine by dt seconds.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Focus is the camera the scene would like: centered on its tags.
	// The platform smooths it before passing it back to Render.
	Focus() core.Camera

	// Render projects the field through cam into the pre-cleared screen.
	Render(dst *core.Screen, cam core.Camera)

	// State returns the current statistics snapshot.
	State() core.SceneState
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a scene by its ID.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}
	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
