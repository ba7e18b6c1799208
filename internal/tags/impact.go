package tags

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// resolveImpact turns the incoming tag's collisions into shrink and push
// responses on the tags it hit, then runs the cascade.
func (e *Engine) resolveImpact(incoming *Tag) {
	cfg := e.cfg.Impact

	multiplier := cfg.Multiplier
	if incoming.ForceCollisions {
		multiplier = cfg.ForcedMultiplier
	}

	var queue []SecondaryCollision
	for _, c := range incoming.Colliding {
		target := c.Tag
		if target == nil || target == incoming || target.Busy() || target.Size <= 0 {
			continue
		}

		ratio := math.Min(cfg.MaxSizeRatio, incoming.Size/target.Size)
		energy := incoming.Size * cfg.EnergyBase * c.Overlap * ratio * multiplier
		shrink := math.Max(cfg.MinShrink, 1-energy*cfg.ShrinkPerEnergy)
		push := target.Size * c.Overlap * (cfg.PushBase + energy*cfg.PushPerEnergy)
		dir := e.jitter(c.Direction, cfg.Jitter)

		e.respond(Impact{
			Source: incoming,
			Target: target,
			Energy: energy,
			Shrink: shrink,
			Push:   push,
		}, dir)

		if energy > cfg.Cascade.Threshold {
			queue = append(queue, SecondaryCollision{
				Tag:    target,
				Energy: energy * cfg.Cascade.Decay,
				Depth:  1,
			})
		}
	}

	e.cascade(incoming, queue)
}

// cascade works through displaced tags level by level. Each one sweeps its
// scheduled move and hands a dampened response to idle tags in the way.
// Levels beyond Cascade.MaxDepth are never processed.
func (e *Engine) cascade(origin *Tag, queue []SecondaryCollision) {
	cfg := e.cfg.Impact.Cascade

	for len(queue) > 0 {
		sc := queue[0]
		queue = queue[1:]

		src := sc.Tag
		if sc.Depth > cfg.MaxDepth || !e.stillDisplaced(src) {
			continue
		}

		reach := src.Box.Translate(src.TargetPosition.Sub(src.currentPosition())).ExpandByScalar(cfg.Margin)
		for _, hit := range Detect(reach, src, e.tags) {
			target := hit.Tag
			// Anything already moving or resizing was handled earlier this frame.
			if target == origin || target.Busy() {
				continue
			}

			energy := sc.Energy
			e.respond(Impact{
				Source: src,
				Target: target,
				Energy: energy,
				Shrink: math.Max(cfg.MinShrink, 1-energy*cfg.ShrinkPerEnergy),
				Push:   target.Size * energy * cfg.PushPerEnergy,
				Depth:  sc.Depth,
			}, e.jitter(hit.Direction, cfg.Jitter))

			next := energy * cfg.Decay
			if sc.Depth < cfg.MaxDepth && next > cfg.Threshold {
				queue = append(queue, SecondaryCollision{
					Tag:    target,
					Energy: next,
					Depth:  sc.Depth + 1,
				})
			}
		}
	}
}

// stillDisplaced guards against stale cascade records: the tag must still be
// in the engine and still on the shift the impact gave it.
func (e *Engine) stillDisplaced(t *Tag) bool {
	return t != nil && t.Motion == MotionShifting && slices.Contains(e.tags, t)
}

// respond schedules the resize and shift for one impact and records it.
func (e *Engine) respond(im Impact, dir mgl64.Vec3) {
	target := im.Target
	e.scheduleResize(target, target.Size*im.Shrink)
	e.scheduleShift(target, target.Position.Add(dir.Mul(im.Push)))

	if im.Depth == 0 {
		e.stats.Impacts++
	} else {
		e.stats.CascadeHits++
	}
	e.stats.TotalEnergy += im.Energy
	e.stats.PeakEnergy = math.Max(e.stats.PeakEnergy, im.Energy)

	e.logger.Debug("impact",
		"source", im.Source.Text,
		"target", target.Text,
		"energy", im.Energy,
		"shrink", im.Shrink,
		"push", im.Push,
		"depth", im.Depth,
	)
	if e.onImpact != nil {
		e.onImpact(im)
	}
}

// jitter perturbs dir by up to amount per axis and renormalizes.
func (e *Engine) jitter(dir mgl64.Vec3, amount float64) mgl64.Vec3 {
	if amount > 0 {
		dir = dir.Add(mgl64.Vec3{
			(e.rng.Float64()*2 - 1) * amount,
			(e.rng.Float64()*2 - 1) * amount,
			(e.rng.Float64()*2 - 1) * amount,
		})
	}
	return normalizeOr(dir, fallbackAxis)
}
