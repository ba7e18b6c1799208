// Package tags is the collision-driven animation engine: tags fly into the
// field, collide, and push and shrink each other.
//
// The engine is single-threaded. Update is the only per-frame entry point and
// mutates tags in place; callers sharing an Engine between goroutines must
// serialise access themselves.
package tags

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tagstorm/internal/core"
)

// MotionState is the positional phase a tag is in.
type MotionState int

const (
	MotionIdle     MotionState = iota
	MotionFlying               // Flying to its initial target
	MotionShifting             // Displaced by an impact
)

// String returns a human-readable name for the state.
func (s MotionState) String() string {
	switch s {
	case MotionIdle:
		return "idle"
	case MotionFlying:
		return "flying"
	case MotionShifting:
		return "shifting"
	default:
		return "unknown"
	}
}

// ResizeState is the size phase a tag is in.
type ResizeState int

const (
	ResizeIdle ResizeState = iota
	ResizeActive
)

// String returns a human-readable name for the state.
func (s ResizeState) String() string {
	if s == ResizeActive {
		return "resizing"
	}
	return "idle"
}

// Mesh is the visual object behind a tag.
type Mesh interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	SetScale(s float64)
	// Bounds returns the world-space box of the mesh at its current
	// position and scale.
	Bounds() core.Box3
}

// Tag is a labeled object animated by the engine. The engine keeps
// references to tags but never owns them.
type Tag struct {
	Text string
	Mesh Mesh

	// Position is the rest point of the tag; TargetPosition is where the
	// current motion is heading.
	Position       mgl64.Vec3
	TargetPosition mgl64.Vec3

	Size         float64
	TargetSize   float64
	OriginalSize float64

	// Box must match the mesh before any collision test reads it.
	Box core.Box3

	Motion MotionState
	Resize ResizeState

	// Impacted latches once the current flight has resolved its impact.
	Impacted bool
	// ForceCollisions raises the energy this tag delivers on impact.
	ForceCollisions bool

	FlightProgress float64
	ShiftProgress  float64
	ResizeProgress float64

	// Colliding holds the collisions captured at impact time.
	Colliding []Collision
}

// NewTag creates an idle tag resting wherever its mesh currently is.
func NewTag(text string, mesh Mesh, size float64) *Tag {
	t := &Tag{
		Text:         text,
		Mesh:         mesh,
		Size:         size,
		TargetSize:   size,
		OriginalSize: size,
		Box:          core.EmptyBox(),
	}
	if mesh != nil {
		t.Position = mesh.Position()
		t.TargetPosition = t.Position
		t.RefreshBox()
	}
	return t
}

// RefreshBox recomputes Box from the mesh. Tags without a mesh get an empty
// box, which collision scans skip.
func (t *Tag) RefreshBox() {
	if t.Mesh == nil {
		t.Box = core.EmptyBox()
		return
	}
	t.Box = t.Mesh.Bounds()
}

// Busy reports whether the tag is moving or resizing.
func (t *Tag) Busy() bool {
	return t.Motion != MotionIdle || t.Resize != ResizeIdle
}

// Scale returns the uniform scale the tag's size implies.
func (t *Tag) Scale() float64 {
	if t.OriginalSize <= 0 {
		return 1
	}
	return t.Size / t.OriginalSize
}

// moveMesh places the mesh and keeps the box in step with it.
func (t *Tag) moveMesh(p mgl64.Vec3) {
	if t.Mesh == nil {
		return
	}
	t.Mesh.SetPosition(p)
	t.RefreshBox()
}

// currentPosition is where the mesh actually is, which may differ from
// Position while the tag wobbles.
func (t *Tag) currentPosition() mgl64.Vec3 {
	if t.Mesh == nil {
		return t.Position
	}
	return t.Mesh.Position()
}

// BoxMesh is a Mesh backed by nothing but a box: a center, a base extent at
// scale 1, and a uniform scale.
type BoxMesh struct {
	pos     mgl64.Vec3
	extents mgl64.Vec3
	scale   float64
}

// NewBoxMesh creates a mesh centered on pos with full size extents.
func NewBoxMesh(pos, extents mgl64.Vec3) *BoxMesh {
	return &BoxMesh{pos: pos, extents: extents, scale: 1}
}

// Position returns the mesh center.
func (m *BoxMesh) Position() mgl64.Vec3 { return m.pos }

// SetPosition moves the mesh center.
func (m *BoxMesh) SetPosition(p mgl64.Vec3) { m.pos = p }

// SetScale sets the uniform scale.
func (m *BoxMesh) SetScale(s float64) { m.scale = s }

// Scale returns the uniform scale.
func (m *BoxMesh) Scale() float64 { return m.scale }

// Bounds returns the scaled box around the mesh center.
func (m *BoxMesh) Bounds() core.Box3 {
	return core.NewBox3FromCenter(m.pos, m.extents.Mul(m.scale))
}
