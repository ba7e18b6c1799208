package tags

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tagstorm/internal/core"
)

// Flight easing phases: accelerate, cruise, then settle with an elastic overshoot.
const (
	flightAccelEnd  = 0.3
	flightCruiseEnd = 0.7
)

// curve evaluates a normalized gween easing function at x in [0, 1].
func curve(fn ease.TweenFunc, x float64) float64 {
	x = core.ClampF(x, 0, 1)
	return float64(fn(float32(x), 0, 1, 1))
}

// flightCurve blends three easing curves over the flight progress.
func flightCurve(p float64) float64 {
	switch {
	case p < flightAccelEnd:
		return flightAccelEnd * curve(ease.InQuad, p/flightAccelEnd)
	case p < flightCruiseEnd:
		span := flightCruiseEnd - flightAccelEnd
		return flightAccelEnd + span*curve(ease.InOutQuad, (p-flightAccelEnd)/span)
	default:
		span := 1 - flightCruiseEnd
		return flightCruiseEnd + span*curve(ease.OutElastic, (p-flightCruiseEnd)/span)
	}
}

func shiftCurve(p float64) float64 {
	return curve(ease.OutCubic, p)
}

func resizeCurve(p float64) float64 {
	return curve(ease.OutQuad, p)
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return core.LerpVec3(a, b, t)
}
