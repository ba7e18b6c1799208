package tags

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tagstorm/internal/core"
)

// stepShift advances a displaced tag. Residual overlap with non-shifting
// tags is pushed out along the collision direction by the smallest axis
// overlap, and the corrected point becomes the new target. A shift never
// stops early.
func (e *Engine) stepShift(t *Tag, step float64) {
	cfg := e.cfg.Shift
	t.ShiftProgress += cfg.Rate * step

	current := t.currentPosition()
	candidate := lerp(current, t.TargetPosition, shiftCurve(t.ShiftProgress))
	projected := t.Box.Translate(candidate.Sub(current))

	hits := Detect(projected, t, e.shiftObstacles())
	if dir, depth, ok := minimumPush(projected, hits); ok {
		candidate = candidate.Add(dir.Mul(depth * cfg.Correction))
		t.TargetPosition = candidate
	}

	t.Position = candidate
	t.moveMesh(candidate)

	if t.ShiftProgress >= 1 {
		t.ShiftProgress = 1
		t.Position = t.TargetPosition
		t.moveMesh(t.TargetPosition)
		t.Motion = MotionIdle
	}
}

// minimumPush picks, across all hits, the smallest per-axis overlap and the
// direction of the hit it belongs to.
func minimumPush(projected core.Box3, hits []Collision) (mgl64.Vec3, float64, bool) {
	if len(hits) == 0 {
		return mgl64.Vec3{}, 0, false
	}

	best := math.Inf(1)
	var dir mgl64.Vec3
	for _, h := range hits {
		ext := projected.AxisOverlap(h.Tag.Box)
		m := math.Min(math.Abs(ext[0]), math.Min(math.Abs(ext[1]), math.Abs(ext[2])))
		if m < best {
			best = m
			dir = h.Direction
		}
	}
	return dir, best, true
}

// shiftObstacles excludes tags that are shifting themselves, so two
// displaced tags never correct each other.
func (e *Engine) shiftObstacles() []*Tag {
	pool := e.flightObstacles()
	out := make([]*Tag, 0, len(pool))
	for _, o := range pool {
		if o.Motion != MotionShifting {
			out = append(out, o)
		}
	}
	return out
}
