package tags

import (
	"hash/fnv"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ApplyWobble drifts every tag that is not flying or shifting around its rest
// point. The mesh and box move together, so collision tests see the wobble.
func (e *Engine) ApplyWobble(tags []*Tag, now float64) {
	amp := e.cfg.Wobble.Amplitude
	if amp == 0 {
		return
	}
	for _, t := range tags {
		if t == nil || t.Motion != MotionIdle {
			continue
		}
		t.moveMesh(t.Position.Add(wobbleOffset(t.Text, now, amp, e.cfg.Wobble.PhaseScale)))
	}
}

// wobbleOffset is the idle displacement for a label at time now.
func wobbleOffset(text string, now, amp, phaseScale float64) mgl64.Vec3 {
	offset := float64(labelHash(text)) / phaseScale
	return mgl64.Vec3{
		math.Cos(now+2*offset) * amp,
		math.Sin(now+offset) * amp,
		0,
	}
}

// labelHash is a stable FNV-1a hash of the label.
func labelHash(text string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	return h.Sum32()
}
