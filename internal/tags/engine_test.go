package tags

import (
	"math"
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tagstorm/internal/config"
	"github.com/vovakirdan/tagstorm/internal/core"
)

// newTestEngine runs at ReferenceFPS 1 so Update(1) advances progress by
// exactly one configured rate.
func newTestEngine(t *testing.T, mutate func(*config.EngineConfig), opts ...Option) *Engine {
	t.Helper()
	cfg := config.DefaultEngineConfig()
	cfg.ReferenceFPS = 1
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := NewEngine(cfg, append([]Option{WithSeed(42)}, opts...)...)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e
}

func runUntil(e *Engine, maxTicks int, done func() bool) int {
	for i := 0; i < maxTicks; i++ {
		if done() {
			return i
		}
		e.Update(1)
	}
	return maxTicks
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.Flight.Rate = 0
	if _, err := NewEngine(cfg); err == nil {
		t.Error("NewEngine() should reject a zero flight rate")
	}
}

func TestFlightWithoutCollisionsLandsExactly(t *testing.T) {
	e := newTestEngine(t, nil)
	tag := unitTag("solo", 0, 0, 0)
	target := mgl64.Vec3{8, -3, 1}
	e.Launch(tag, target)

	if !slices.Contains(e.Animating(), tag) {
		t.Fatal("launched tag should be in the animating list")
	}

	ticks := runUntil(e, 1000, func() bool { return tag.Motion == MotionIdle })
	if ticks == 1000 {
		t.Fatal("flight never finished")
	}

	if tag.Position != target {
		t.Errorf("Position = %v, expected exactly %v", tag.Position, target)
	}
	if tag.Mesh.Position() != target {
		t.Errorf("mesh position = %v, expected exactly %v", tag.Mesh.Position(), target)
	}
	if tag.Box.Center() != target {
		t.Errorf("box center = %v, expected %v", tag.Box.Center(), target)
	}
	if slices.Contains(e.Animating(), tag) {
		t.Error("finished tag should leave the animating list")
	}
	if !e.Settled(tag) {
		t.Error("finished tag should be settled")
	}
	if tag.Impacted {
		t.Error("collision-free flight should not latch Impacted")
	}
}

func TestFlightGrazingNeighbourLandsExactly(t *testing.T) {
	e := newTestEngine(t, nil)
	side := unitTag("side", 1, 0, 0)
	e.Add(side)

	flyer := unitTag("flyer", 0, -10, 0)
	target := mgl64.Vec3{0, 0, 0}
	e.Launch(flyer, target)

	if ticks := runUntil(e, 1000, func() bool { return flyer.Motion == MotionIdle }); ticks == 1000 {
		t.Fatal("flight never finished")
	}
	if flyer.Impacted {
		t.Error("sliding along a face must not count as an impact")
	}
	if flyer.Position != target {
		t.Errorf("Position = %v, expected exactly %v", flyer.Position, target)
	}
	if side.Busy() {
		t.Errorf("neighbour disturbed: motion=%v resize=%v", side.Motion, side.Resize)
	}
	if got := e.Stats().Impacts; got != 0 {
		t.Errorf("Impacts = %d, expected 0", got)
	}
}

func TestFlightHardStopsBetweenStartAndTarget(t *testing.T) {
	e := newTestEngine(t, nil)
	blocker := unitTag("blocker", 6, 0, 0)
	e.Add(blocker)

	flyer := unitTag("flyer", 0, 0, 0)
	start := flyer.Position
	target := mgl64.Vec3{10, 0, 0}
	e.Launch(flyer, target)

	ticks := runUntil(e, 1000, func() bool { return flyer.Motion == MotionIdle })
	if ticks == 1000 {
		t.Fatal("flight never stopped")
	}

	if !flyer.Impacted {
		t.Fatal("flyer should have hit the blocker")
	}
	x := flyer.Position.X()
	if x <= start.X() || x >= target.X() {
		t.Errorf("stop position x=%v not strictly between %v and %v", x, start.X(), target.X())
	}
	if flyer.Position != flyer.Mesh.Position() {
		t.Errorf("Position %v should equal mesh position %v after a hard stop", flyer.Position, flyer.Mesh.Position())
	}
	if flyer.TargetPosition.X() >= target.X() {
		t.Errorf("target should back off from %v, got %v", target.X(), flyer.TargetPosition.X())
	}
	if len(flyer.Colliding) == 0 || flyer.Colliding[0].Tag != blocker {
		t.Error("Colliding should record the blocker")
	}
	if blocker.Motion != MotionShifting || blocker.Resize != ResizeActive {
		t.Errorf("blocker should be shifting and resizing, got %s/%s", blocker.Motion, blocker.Resize)
	}
	if slices.Contains(e.Animating(), flyer) {
		t.Error("stopped flyer should leave the animating list")
	}

	// Flight is over for good: more frames never move it again
	before := flyer.Position
	e.Update(1)
	if flyer.Motion != MotionIdle || flyer.Position != before {
		t.Error("stopped flight must not resume")
	}
}

func TestImpactScenarioEnergy(t *testing.T) {
	var impacts []Impact
	e := newTestEngine(t, func(c *config.EngineConfig) {
		c.Impact.Jitter = 0
	}, WithImpactListener(func(im Impact) { impacts = append(impacts, im) }))

	// B sits so that A's candidate box at progress 0.15 covers half of it.
	b := unitTag("B", 1.75, 0, 0)
	e.Add(b)
	a := boxTag("A", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2}, 2)
	e.Launch(a, mgl64.Vec3{10, 0, 0})
	a.FlightProgress = 0.145

	e.Update(1)

	if len(impacts) == 0 {
		t.Fatal("expected an impact")
	}
	im := impacts[0]
	if im.Source != a || im.Target != b || im.Depth != 0 {
		t.Fatalf("unexpected impact %+v", im)
	}
	if math.Abs(im.Energy-14) > 1e-6 {
		t.Errorf("Energy = %v, expected 14", im.Energy)
	}
	if math.Abs(im.Shrink-0.3) > 1e-9 {
		t.Errorf("Shrink = %v, expected 0.3", im.Shrink)
	}
	if math.Abs(b.TargetSize-0.3) > 1e-9 {
		t.Errorf("B.TargetSize = %v, expected 0.3", b.TargetSize)
	}
	if b.Resize != ResizeActive {
		t.Error("B should be resizing")
	}
	if b.Motion != MotionShifting {
		t.Error("B should be shifting")
	}
	if a.Motion != MotionIdle {
		t.Error("A should have stopped")
	}
	if !slices.Contains(e.Animating(), b) || !slices.Contains(e.Resizing(), b) {
		t.Error("B should be in both tracking lists")
	}

	// push = size * overlap * (2 + energy * 1.2) along the collision direction
	wantPush := 1 * 0.5 * (2 + 14*1.2)
	if math.Abs(im.Push-wantPush) > 1e-6 {
		t.Errorf("Push = %v, expected %v", im.Push, wantPush)
	}
	moved := b.TargetPosition.Sub(b.Position).Len()
	if math.Abs(moved-wantPush) > 1e-6 {
		t.Errorf("B target is %v away, expected %v", moved, wantPush)
	}

	stats := e.Stats()
	if stats.Impacts != 1 || stats.PeakEnergy < 14-1e-6 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestPrimaryShrinkFloor(t *testing.T) {
	for _, forced := range []bool{false, true} {
		var impacts []Impact
		e := newTestEngine(t, nil, WithImpactListener(func(im Impact) { impacts = append(impacts, im) }))

		heavy := boxTag("heavy", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 3, 3}, 50)
		heavy.ForceCollisions = forced
		victim := unitTag("victim", 0, 0, 0)
		e.Add(heavy)
		e.Add(victim)

		heavy.Colliding = Detect(heavy.Box, heavy, e.Tags())
		e.resolveImpact(heavy)

		if len(impacts) == 0 {
			t.Fatal("expected an impact")
		}
		for _, im := range impacts {
			if im.Depth == 0 && im.Shrink < 0.3 {
				t.Errorf("primary shrink %v below 0.3 (energy %v)", im.Shrink, im.Energy)
			}
		}
	}
}

func TestForcedCollisionsCarryMoreEnergy(t *testing.T) {
	energy := func(forced bool) float64 {
		var got float64
		e := newTestEngine(t, nil, WithImpactListener(func(im Impact) {
			if im.Depth == 0 {
				got = im.Energy
			}
		}))
		a := unitTag("a", 0, 0, 0)
		a.ForceCollisions = forced
		b := unitTag("b", 0.5, 0, 0)
		e.Add(a)
		e.Add(b)
		a.Colliding = Detect(a.Box, a, e.Tags())
		e.resolveImpact(a)
		return got
	}

	plain, forced := energy(false), energy(true)
	if math.Abs(forced/plain-1.25) > 1e-9 {
		t.Errorf("forced/plain energy = %v, expected 2.5/2.0", forced/plain)
	}
}

func TestResolverSkipsBusyTargets(t *testing.T) {
	e := newTestEngine(t, nil)
	a := unitTag("a", 0, 0, 0)
	busy := unitTag("busy", 0.5, 0, 0)
	e.Add(a)
	e.Add(busy)
	busy.Resize = ResizeActive
	busy.TargetSize = 0.9

	a.Colliding = Detect(a.Box, a, e.Tags())
	e.resolveImpact(a)

	if busy.Motion != MotionIdle || busy.TargetSize != 0.9 {
		t.Error("a target that is already resizing must not be rescheduled")
	}
	if e.Stats().Impacts != 0 {
		t.Errorf("Impacts = %d, expected 0", e.Stats().Impacts)
	}
}

// cascadeFixture places B shifting onto x=0 with C just beside it and D
// beside C's own push destination.
func cascadeFixture(t *testing.T, depth int) (*Engine, *[]Impact, map[string]*Tag) {
	t.Helper()
	impacts := &[]Impact{}
	e := newTestEngine(t, func(c *config.EngineConfig) {
		c.Impact.Cascade.MaxDepth = depth
		c.Impact.Cascade.Jitter = 0
	}, WithImpactListener(func(im Impact) { *impacts = append(*impacts, im) }))

	tags := map[string]*Tag{
		"origin": unitTag("origin", 20, 0, 0),
		"B":      unitTag("B", 5, 0, 0),
		"C":      unitTag("C", 1, 0, 0),
		"D":      unitTag("D", -2, 0, 0),
	}
	for _, name := range []string{"origin", "B", "C", "D"} {
		e.Add(tags[name])
	}
	e.scheduleShift(tags["B"], mgl64.Vec3{0, 0, 0})
	return e, impacts, tags
}

func TestCascadeStopsAtConfiguredDepth(t *testing.T) {
	e, impacts, tags := cascadeFixture(t, 1)
	e.cascade(tags["origin"], []SecondaryCollision{{Tag: tags["B"], Energy: 2, Depth: 1}})

	if len(*impacts) != 1 {
		t.Fatalf("expected exactly one cascade response, got %d", len(*impacts))
	}
	im := (*impacts)[0]
	if im.Target != tags["C"] || im.Depth != 1 {
		t.Errorf("unexpected cascade response %+v", im)
	}
	// push = size * energy, along B's destination minus C
	if got := tags["C"].TargetPosition; math.Abs(got.X()-(-1)) > 1e-9 {
		t.Errorf("C target = %v, expected x=-1", got)
	}
	if tags["D"].Busy() {
		t.Error("D is two levels away and must not be touched with max depth 1")
	}
	if e.Stats().CascadeHits != 1 {
		t.Errorf("CascadeHits = %d, expected 1", e.Stats().CascadeHits)
	}
}

func TestCascadeWorklistGoesDeeper(t *testing.T) {
	e, impacts, tags := cascadeFixture(t, 2)
	e.cascade(tags["origin"], []SecondaryCollision{{Tag: tags["B"], Energy: 2, Depth: 1}})

	if !tags["D"].Busy() {
		t.Fatal("D should be reached at depth 2")
	}
	var depthTwo *Impact
	for i := range *impacts {
		if (*impacts)[i].Target == tags["D"] {
			depthTwo = &(*impacts)[i]
		}
	}
	if depthTwo == nil || depthTwo.Depth != 2 {
		t.Fatalf("expected a depth 2 response on D, got %+v", depthTwo)
	}
	if math.Abs(depthTwo.Energy-1.4) > 1e-9 {
		t.Errorf("depth 2 energy = %v, expected 2 * 0.7", depthTwo.Energy)
	}
}

func TestCascadeDecayedEnergyMustClearThreshold(t *testing.T) {
	e, impacts, tags := cascadeFixture(t, 2)
	// 2 clears the threshold, 2 * 0.7 does not
	e.cfg.Impact.Cascade.Threshold = 1.5
	e.cascade(tags["origin"], []SecondaryCollision{{Tag: tags["B"], Energy: 2, Depth: 1}})

	if !tags["C"].Busy() {
		t.Fatal("C should still get the depth 1 response")
	}
	if tags["D"].Busy() {
		t.Error("D must not be reached when the decayed energy is below the threshold")
	}
	for _, im := range *impacts {
		if im.Depth > 1 {
			t.Errorf("unexpected depth %d response %+v", im.Depth, im)
		}
	}
}

func TestCascadeShrinkFloor(t *testing.T) {
	e, impacts, tags := cascadeFixture(t, 1)
	e.cascade(tags["origin"], []SecondaryCollision{{Tag: tags["B"], Energy: 1e6, Depth: 1}})

	if len(*impacts) == 0 {
		t.Fatal("expected a cascade response")
	}
	for _, im := range *impacts {
		if im.Shrink < 0.6 {
			t.Errorf("secondary shrink %v below 0.6", im.Shrink)
		}
	}
}

func TestCascadeSkipsStaleRecords(t *testing.T) {
	e, impacts, tags := cascadeFixture(t, 1)

	// B was halted before its record got processed
	e.Halt(tags["B"])
	e.cascade(tags["origin"], []SecondaryCollision{{Tag: tags["B"], Energy: 2, Depth: 1}})
	if len(*impacts) != 0 {
		t.Errorf("stale record produced %d responses", len(*impacts))
	}

	// A removed tag is stale as well
	e2, impacts2, tags2 := cascadeFixture(t, 1)
	e2.Remove(tags2["B"])
	e2.cascade(tags2["origin"], []SecondaryCollision{{Tag: tags2["B"], Energy: 2, Depth: 1}})
	if len(*impacts2) != 0 {
		t.Errorf("removed tag produced %d responses", len(*impacts2))
	}
}

func TestShiftCorrectionReducesOverlap(t *testing.T) {
	e := newTestEngine(t, nil)
	obstacle := unitTag("obstacle", 1.0, 0.2, 0)
	e.Add(obstacle)

	mover := unitTag("mover", 0, 0, 0)
	e.Add(mover)
	e.scheduleShift(mover, mgl64.Vec3{3, 0, 0})

	start := mover.Mesh.Position()
	box := mover.Box
	e.Update(1)

	uncorrected := lerp(start, mgl64.Vec3{3, 0, 0}, shiftCurve(e.Config().Shift.Rate))
	uncorrectedBox := box.Translate(uncorrected.Sub(start))
	before := uncorrectedBox.Intersect(obstacle.Box).Volume()
	after := mover.Box.Intersect(obstacle.Box).Volume()

	if before <= 0 {
		t.Fatalf("fixture should overlap before correction, volume %v", before)
	}
	if after >= before {
		t.Errorf("corrected overlap %v should be below uncorrected %v", after, before)
	}
	if mover.TargetPosition != mover.Position {
		t.Errorf("target %v should be rewritten to the corrected point %v", mover.TargetPosition, mover.Position)
	}
	if obstacle.Busy() {
		t.Error("shift correction must not disturb the obstacle")
	}
}

func TestShiftingTagsIgnoreEachOther(t *testing.T) {
	e := newTestEngine(t, nil)
	a := unitTag("a", 0, 0, 0)
	b := unitTag("b", 0.6, 0, 0)
	e.Add(a)
	e.Add(b)
	aTarget := mgl64.Vec3{0.3, 0, 0}
	bTarget := mgl64.Vec3{0.3, 0.1, 0}
	e.scheduleShift(a, aTarget)
	e.scheduleShift(b, bTarget)

	e.Update(1)

	if a.TargetPosition != aTarget || b.TargetPosition != bTarget {
		t.Error("two shifting tags must not rewrite each other's targets")
	}
	if !a.Box.Intersects(b.Box) {
		t.Fatal("fixture expects the two shifting boxes to still overlap")
	}

	runUntil(e, 200, func() bool { return a.Motion == MotionIdle && b.Motion == MotionIdle })
	if a.Position != aTarget || b.Position != bTarget {
		t.Errorf("shifts should end on their targets, got %v and %v", a.Position, b.Position)
	}
}

func TestShiftCompletesOnTarget(t *testing.T) {
	e := newTestEngine(t, nil)
	tag := unitTag("s", 0, 0, 0)
	e.Add(tag)
	e.scheduleShift(tag, mgl64.Vec3{0, 4, 0})

	ticks := runUntil(e, 100, func() bool { return tag.Motion == MotionIdle })
	if ticks < 25 || ticks > 26 {
		t.Errorf("shift took %d ticks, expected about 25 at rate 0.04", ticks)
	}
	if tag.Position != (mgl64.Vec3{0, 4, 0}) {
		t.Errorf("Position = %v, expected (0, 4, 0)", tag.Position)
	}
	if slices.Contains(e.Animating(), tag) {
		t.Error("finished shift should leave the animating list")
	}
}

func TestResizeStepsExactly(t *testing.T) {
	e := newTestEngine(t, nil)
	tag := boxTag("r", mgl64.Vec3{}, mgl64.Vec3{2, 1, 1}, 2)
	e.Add(tag)
	e.scheduleResize(tag, 0.5)

	rate := e.Config().Resize.Rate
	expected := 0.0
	for tag.Resize == ResizeActive {
		e.Update(1)
		expected += rate
		if expected < 1 && tag.ResizeProgress != expected {
			t.Fatalf("ResizeProgress = %v, expected %v", tag.ResizeProgress, expected)
		}
		if expected > 2 {
			t.Fatal("resize never completed")
		}
	}

	if tag.Size != 0.5 {
		t.Errorf("Size = %v, expected exactly 0.5", tag.Size)
	}
	if s := tag.Mesh.(*BoxMesh).Scale(); s != 0.25 {
		t.Errorf("mesh scale = %v, expected 0.25", s)
	}
	if got := tag.Box.Size(); got != (mgl64.Vec3{0.5, 0.25, 0.25}) {
		t.Errorf("box size = %v, expected scaled extents", got)
	}
	if slices.Contains(e.Resizing(), tag) {
		t.Error("finished resize should leave the resizing list")
	}
}

func TestResizeInterpolatesMonotonically(t *testing.T) {
	e := newTestEngine(t, nil)
	tag := unitTag("r", 0, 0, 0)
	e.Add(tag)
	e.scheduleResize(tag, 0.4)

	prev := tag.Box.Volume()
	for i := 0; i < 19; i++ {
		e.Update(1)
		vol := tag.Box.Volume()
		if vol >= prev {
			t.Fatalf("tick %d: volume %v did not shrink from %v", i, vol, prev)
		}
		prev = vol
	}
	if tag.Size != 1 {
		t.Errorf("Size should only change on completion, got %v", tag.Size)
	}
}

func TestFrameRateIndependence(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	fast, _ := NewEngine(cfg, WithSeed(1))
	slow, _ := NewEngine(cfg, WithSeed(1))

	a := unitTag("a", 0, 0, 0)
	b := unitTag("b", 0, 0, 0)
	fast.Launch(a, mgl64.Vec3{5, 0, 0})
	slow.Launch(b, mgl64.Vec3{5, 0, 0})

	for i := 0; i < 60; i++ {
		fast.Update(1.0 / 60)
	}
	for i := 0; i < 30; i++ {
		slow.Update(1.0 / 30)
	}

	if math.Abs(a.FlightProgress-b.FlightProgress) > 1e-9 {
		t.Errorf("progress after one second differs: %v vs %v", a.FlightProgress, b.FlightProgress)
	}
	if math.Abs(a.FlightProgress-0.3) > 1e-9 {
		t.Errorf("progress after one second = %v, expected 60 * 0.005", a.FlightProgress)
	}
	if math.Abs(fast.Clock()-1) > 1e-9 {
		t.Errorf("Clock() = %v, expected 1", fast.Clock())
	}
}

func TestUpdateIgnoresNonPositiveDelta(t *testing.T) {
	e := newTestEngine(t, nil)
	tag := unitTag("t", 0, 0, 0)
	e.Launch(tag, mgl64.Vec3{1, 0, 0})

	e.Update(0)
	e.Update(-1)
	if tag.FlightProgress != 0 || e.Stats().Ticks != 0 {
		t.Error("Update with dt <= 0 must not advance anything")
	}
}

func TestHaltAndRemove(t *testing.T) {
	e := newTestEngine(t, nil)
	tag := unitTag("t", 0, 0, 0)
	e.Launch(tag, mgl64.Vec3{10, 0, 0})
	e.Update(1)

	e.Halt(tag)
	e.Update(1)
	if slices.Contains(e.Animating(), tag) {
		t.Error("halted tag should be dropped from tracking on the next update")
	}
	if tag.Position != tag.Mesh.Position() {
		t.Error("halted tag should rest where its mesh is")
	}

	e.Remove(tag)
	if slices.Contains(e.Tags(), tag) {
		t.Error("removed tag should leave the population")
	}
}

func TestFlightIgnoresSettledWhenConfigured(t *testing.T) {
	e := newTestEngine(t, func(c *config.EngineConfig) { c.CollideWithSettled = false })
	settled := unitTag("settled", 4, 0, 0)
	e.Add(settled)

	flyer := unitTag("flyer", 0, 0, 0)
	e.Launch(flyer, mgl64.Vec3{8, 0, 0})
	runUntil(e, 1000, func() bool { return flyer.Motion == MotionIdle })

	if flyer.Impacted || settled.Busy() {
		t.Error("with collide_with_settled off a flight passes through settled tags")
	}
	if flyer.Position != (mgl64.Vec3{8, 0, 0}) {
		t.Errorf("Position = %v, expected the target", flyer.Position)
	}
}

func TestWobble(t *testing.T) {
	e := newTestEngine(t, nil)
	idle := unitTag("idle", 1, 2, 3)
	other := unitTag("another label", 1, 2, 3)
	flying := unitTag("flying", 0, 0, 0)
	e.Add(idle)
	e.Add(other)
	e.Launch(flying, mgl64.Vec3{5, 0, 0})

	e.ApplyWobble(e.Tags(), 1.5)

	offset := idle.Mesh.Position().Sub(idle.Position)
	amp := e.Config().Wobble.Amplitude
	if math.Abs(offset.X()) > amp+1e-12 || math.Abs(offset.Y()) > amp+1e-12 || offset.Z() != 0 {
		t.Errorf("wobble offset %v exceeds amplitude %v", offset, amp)
	}
	if idle.Position != (mgl64.Vec3{1, 2, 3}) {
		t.Error("wobble must not move the rest point")
	}
	if idle.Box.Center().Sub(idle.Mesh.Position()).Len() > 1e-12 {
		t.Error("wobble should keep the box on the mesh")
	}
	if idle.Mesh.Position() == other.Mesh.Position() {
		t.Error("different labels should wobble with different phases")
	}
	if flying.Mesh.Position() != (mgl64.Vec3{}) {
		t.Error("flying tags must not wobble")
	}

	// Same label and time always give the same offset
	want := wobbleOffset("idle", 1.5, amp, e.Config().Wobble.PhaseScale)
	if offset.Sub(want).Len() > 1e-12 {
		t.Errorf("offset %v, expected deterministic %v", offset, want)
	}
}

func TestFlightCurve(t *testing.T) {
	tests := []struct {
		p, t float64
	}{
		{0, 0},
		{0.15, 0.075},
		{0.3, 0.3},
		{0.5, 0.5},
		{0.7, 0.7},
		{1, 1},
	}
	for _, tc := range tests {
		if got := flightCurve(tc.p); math.Abs(got-tc.t) > 1e-6 {
			t.Errorf("flightCurve(%v) = %v, expected %v", tc.p, got, tc.t)
		}
	}
}

func TestBoxMeshBounds(t *testing.T) {
	m := NewBoxMesh(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 4, 6})
	m.SetScale(0.5)
	want := core.Box3{Min: mgl64.Vec3{0.5, 0, -0.5}, Max: mgl64.Vec3{1.5, 2, 2.5}}
	if got := m.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, expected %+v", got, want)
	}
}
