package tags

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tagstorm/internal/core"
)

// fallbackAxis is used as collision direction when two centers coincide.
var fallbackAxis = mgl64.Vec3{0, 0, 1}

// Collision describes one tag a candidate box runs into.
type Collision struct {
	Tag *Tag
	// Direction is the unit vector from Tag's center to the candidate center.
	Direction mgl64.Vec3
	// Overlap is the intersection volume over Tag's volume, in [0, 1].
	Overlap float64
}

// SecondaryCollision is a displaced tag that may carry an impact further.
type SecondaryCollision struct {
	Tag    *Tag
	Energy float64
	Depth  int
}

// Detect returns every tag in others whose box overlaps box.
// self, nil tags and tags without a box are skipped. Boxes that only share
// a face do not count; a flat other box still counts with overlap 0.
func Detect(box core.Box3, self *Tag, others []*Tag) []Collision {
	if box.IsEmpty() {
		return nil
	}

	center := box.Center()
	var hits []Collision
	for _, other := range others {
		if other == nil || other == self || other.Box.IsEmpty() {
			continue
		}
		if !box.Intersects(other.Box) {
			continue
		}
		overlap := overlapRatio(box, other.Box)
		if overlap == 0 && other.Box.Volume() > 0 {
			continue
		}
		hits = append(hits, Collision{
			Tag:       other,
			Direction: direction(center, other.Box.Center()),
			Overlap:   overlap,
		})
	}
	return hits
}

// overlapRatio is volume(a ∩ b) / volume(b). A flat b yields 0.
func overlapRatio(a, b core.Box3) float64 {
	vol := b.Volume()
	if vol <= 0 {
		return 0
	}
	return core.ClampF(a.Intersect(b).Volume()/vol, 0, 1)
}

// direction points from the other center toward the candidate center.
func direction(candidate, other mgl64.Vec3) mgl64.Vec3 {
	return normalizeOr(candidate.Sub(other), fallbackAxis)
}

// normalizeOr normalizes v, returning fallback for (near) zero vectors.
func normalizeOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	if v.Len() < 1e-9 {
		return fallback
	}
	return v.Normalize()
}
