package tags

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tagstorm/internal/core"
)

func boxTag(text string, pos, extents mgl64.Vec3, size float64) *Tag {
	return NewTag(text, NewBoxMesh(pos, extents), size)
}

func unitTag(text string, x, y, z float64) *Tag {
	return boxTag(text, mgl64.Vec3{x, y, z}, mgl64.Vec3{1, 1, 1}, 1)
}

func TestDetectOverlapAndDirection(t *testing.T) {
	tests := []struct {
		name    string
		box     core.Box3
		other   *Tag
		overlap float64
	}{
		{
			name:    "half overlap on x",
			box:     core.NewBox3FromCenter(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{1, 1, 1}),
			other:   unitTag("b", 1, 0, 0),
			overlap: 0.5,
		},
		{
			name:    "candidate contains other",
			box:     core.NewBox3FromCenter(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 4, 4}),
			other:   unitTag("b", 0.5, 0.5, 0.5),
			overlap: 1,
		},
		{
			name:    "corner overlap",
			box:     core.NewBox3FromCenter(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}),
			other:   unitTag("b", 0.5, 0.5, 0.5),
			overlap: 0.125,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hits := Detect(tc.box, nil, []*Tag{tc.other})
			if len(hits) != 1 {
				t.Fatalf("Detect() returned %d hits, expected 1", len(hits))
			}
			h := hits[0]
			if h.Tag != tc.other {
				t.Error("hit should reference the other tag")
			}
			if math.Abs(h.Overlap-tc.overlap) > 1e-9 {
				t.Errorf("Overlap = %v, expected %v", h.Overlap, tc.overlap)
			}
			if h.Overlap <= 0 || h.Overlap > 1 {
				t.Errorf("Overlap %v outside (0, 1]", h.Overlap)
			}
			if math.Abs(h.Direction.Len()-1) > 1e-9 {
				t.Errorf("Direction %v is not unit length", h.Direction)
			}
			// Direction points from the other center toward the candidate
			toCandidate := tc.box.Center().Sub(tc.other.Box.Center())
			if toCandidate.Len() > 0 && h.Direction.Dot(toCandidate) <= 0 {
				t.Errorf("Direction %v does not point toward the candidate", h.Direction)
			}
		})
	}
}

func TestDetectCoincidentCenters(t *testing.T) {
	other := unitTag("b", 2, 2, 2)
	box := core.NewBox3FromCenter(mgl64.Vec3{2, 2, 2}, mgl64.Vec3{2, 2, 2})

	hits := Detect(box, nil, []*Tag{other})
	if len(hits) != 1 {
		t.Fatalf("Detect() returned %d hits, expected 1", len(hits))
	}
	if hits[0].Direction != fallbackAxis {
		t.Errorf("Direction = %v, expected fallback %v", hits[0].Direction, fallbackAxis)
	}
	for _, c := range hits[0].Direction {
		if math.IsNaN(c) {
			t.Fatal("Direction must never be NaN")
		}
	}
}

func TestDetectZeroVolumeTarget(t *testing.T) {
	flat := boxTag("flat", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 0}, 1)
	box := core.NewBox3FromCenter(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})

	hits := Detect(box, nil, []*Tag{flat})
	if len(hits) != 1 {
		t.Fatalf("flat box should still intersect, got %d hits", len(hits))
	}
	if hits[0].Overlap != 0 {
		t.Errorf("Overlap with zero-volume box = %v, expected 0", hits[0].Overlap)
	}
}

func TestDetectTouchingFaces(t *testing.T) {
	box := core.NewBox3FromCenter(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})

	tests := []struct {
		name  string
		other *Tag
	}{
		{"face on x", unitTag("x", 1, 0, 0)},
		{"face on y", unitTag("y", 0, -1, 0)},
		{"edge", unitTag("edge", 1, 1, 0)},
		{"corner", unitTag("corner", 1, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !box.Intersects(tc.other.Box) {
				t.Fatal("fixture expects the boxes to touch")
			}
			if hits := Detect(box, nil, []*Tag{tc.other}); len(hits) != 0 {
				t.Errorf("touching boxes gave %d hits, overlap %v", len(hits), hits[0].Overlap)
			}
		})
	}
}

func TestDetectSkips(t *testing.T) {
	self := unitTag("self", 0, 0, 0)
	noBox := &Tag{Text: "ghost", Box: core.EmptyBox()}
	far := unitTag("far", 10, 0, 0)
	near := unitTag("near", 0.5, 0, 0)

	hits := Detect(self.Box, self, []*Tag{self, noBox, nil, far, near})
	if len(hits) != 1 {
		t.Fatalf("Detect() returned %d hits, expected only the near tag", len(hits))
	}
	if hits[0].Tag != near {
		t.Errorf("hit = %q, expected near", hits[0].Tag.Text)
	}

	if got := Detect(core.EmptyBox(), nil, []*Tag{near}); got != nil {
		t.Errorf("empty candidate box should detect nothing, got %d hits", len(got))
	}
}

func TestDetectSeparated(t *testing.T) {
	box := core.NewBox3FromCenter(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	for _, other := range []*Tag{
		unitTag("x", 3, 0, 0),
		unitTag("y", 0, -3, 0),
		unitTag("z", 0, 0, 3),
	} {
		if hits := Detect(box, nil, []*Tag{other}); len(hits) != 0 {
			t.Errorf("tag %q should not collide", other.Text)
		}
	}
}
