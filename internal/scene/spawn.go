package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tagstorm/internal/core"
	"github.com/vovakirdan/tagstorm/internal/tags"
)

// slotAttempts bounds the search for a free landing spot.
const slotAttempts = 8

// newTag builds the next labeled tag at pos. The mesh extents scale with
// the label length and the tag size.
func (s *Scene) newTag(pos mgl64.Vec3, size float64) *tags.Tag {
	label := s.cfg.Labels[s.labelIdx%len(s.cfg.Labels)]
	s.labelIdx++

	tc := s.cfg.Tags
	extents := mgl64.Vec3{
		float64(len([]rune(label))) * tc.CharWidth,
		tc.LineHeight,
		tc.Thickness,
	}.Mul(size)
	return tags.NewTag(label, tags.NewBoxMesh(pos, extents), size)
}

func (s *Scene) randomSize() float64 {
	tc := s.cfg.Tags
	return tc.MinSize + s.rng.Float64()*(tc.MaxSize-tc.MinSize)
}

// randomPoint returns a point inside the field, inset by margin on x and y.
func (s *Scene) randomPoint(margin float64) mgl64.Vec3 {
	f := s.cfg.Field
	w := math.Max(0, f.Width-2*margin)
	h := math.Max(0, f.Height-2*margin)
	return mgl64.Vec3{
		(s.rng.Float64() - 0.5) * w,
		(s.rng.Float64() - 0.5) * h,
		(s.rng.Float64() - 0.5) * f.Depth,
	}
}

// entryPoint is a start position outside the field at the spawn distance.
func (s *Scene) entryPoint() mgl64.Vec3 {
	angle := s.rng.Float64() * 2 * math.Pi
	r := s.cfg.Spawn.Distance + math.Max(s.cfg.Field.Width, s.cfg.Field.Height)/2
	return mgl64.Vec3{
		math.Cos(angle) * r,
		math.Sin(angle) * r * 0.5,
		(s.rng.Float64() - 0.5) * s.cfg.Field.Depth,
	}
}

// freeSlot picks a landing point for a tag of the given extents, preferring
// one that does not overlap any existing tag.
func (s *Scene) freeSlot(extents mgl64.Vec3) mgl64.Vec3 {
	margin := extents.X() / 2
	var p mgl64.Vec3
	for i := 0; i < slotAttempts; i++ {
		p = s.randomPoint(margin)
		box := core.NewBox3FromCenter(p, extents)
		if len(tags.Detect(box, nil, s.engine.Tags())) == 0 {
			return p
		}
	}
	return p
}

// launch sends one new tag into the field according to the mode.
func (s *Scene) launch() {
	s.launches++
	forced := s.cfg.Spawn.ForceEvery > 0 && s.launches%s.cfg.Spawn.ForceEvery == 0

	switch s.mode {
	case ModeBurst:
		s.launchHeavy()
		return
	case ModeDrift:
		forced = false
	}

	t := s.newTag(s.entryPoint(), s.randomSize())
	t.ForceCollisions = forced
	target := s.freeSlot(t.Box.Size())
	s.fly(t, target)
}

// launchHeavy aims a forced, oversized tag at a random settled tag.
func (s *Scene) launchHeavy() {
	var target mgl64.Vec3
	candidates := s.settled()
	if len(candidates) > 0 {
		target = candidates[s.rng.Intn(len(candidates))].Position
	} else {
		target = s.randomPoint(0)
	}

	t := s.newTag(s.entryPoint(), s.cfg.Tags.MaxSize*1.5)
	t.ForceCollisions = true
	s.fly(t, target)
}

func (s *Scene) fly(t *tags.Tag, target mgl64.Vec3) {
	if t.ForceCollisions {
		s.forced[t] = true
	}
	s.engine.Launch(t, target)
	s.logger.Debug("launch", "tag", t.Text, "size", t.Size, "forced", t.ForceCollisions)
}

// rain launches on the spawn interval and keeps the population under the
// cap by retiring the oldest settled tags.
func (s *Scene) rain(dt float64) {
	s.spawnTimer += dt
	for s.cfg.Spawn.Interval > 0 && s.spawnTimer >= s.cfg.Spawn.Interval {
		s.spawnTimer -= s.cfg.Spawn.Interval
		s.launch()
	}

	excess := len(s.engine.Tags()) - s.cfg.Tags.Count
	for _, t := range s.settled() {
		if excess <= 0 {
			break
		}
		s.engine.Remove(t)
		delete(s.forced, t)
		excess--
	}
}

// settled returns tags that are neither moving nor resizing, oldest first.
func (s *Scene) settled() []*tags.Tag {
	var out []*tags.Tag
	for _, t := range s.engine.Tags() {
		if !t.Busy() {
			out = append(out, t)
		}
	}
	return out
}

// placeGrid fills the field with a settled grid of tags.
func (s *Scene) placeGrid() {
	n := s.cfg.Tags.Count
	f := s.cfg.Field
	cols := max(1, int(math.Ceil(math.Sqrt(float64(n)*f.Width/f.Height))))
	rows := max(1, (n+cols-1)/cols)
	dx := f.Width / float64(cols)
	dy := f.Height / float64(rows)

	for i := 0; i < n; i++ {
		c, r := i%cols, i/cols
		pos := mgl64.Vec3{
			-f.Width/2 + dx*(float64(c)+0.5),
			f.Height/2 - dy*(float64(r)+0.5),
			0,
		}
		s.engine.Place(s.newTag(pos, s.randomSize()), pos)
	}
}

// placeDrifters scatters a handful of large tags.
func (s *Scene) placeDrifters() {
	n := max(3, s.cfg.Tags.Count/4)
	for i := 0; i < n; i++ {
		t := s.newTag(mgl64.Vec3{}, s.cfg.Tags.MaxSize*2)
		pos := s.freeSlot(t.Box.Size())
		s.engine.Place(t, pos)
	}
}
