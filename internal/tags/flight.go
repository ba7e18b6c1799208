package tags

// stepFlight advances a flying tag. The first collision after the configured
// progress stops the flight for good: the impact is resolved once, the tag
// stays where its mesh is, and there is no retry.
func (e *Engine) stepFlight(t *Tag, step float64) {
	cfg := e.cfg.Flight
	t.FlightProgress += cfg.Rate * step

	current := t.currentPosition()
	candidate := lerp(current, t.TargetPosition, flightCurve(t.FlightProgress))
	delta := candidate.Sub(current)

	if t.FlightProgress > cfg.CollisionStart {
		projected := t.Box.Translate(delta)
		if hits := Detect(projected, t, e.flightObstacles()); len(hits) > 0 {
			if !t.Impacted {
				t.Colliding = hits
				e.resolveImpact(t)
				t.Impacted = true
				t.TargetPosition = t.TargetPosition.Sub(delta.Mul(cfg.Backoff))
			}
			t.Motion = MotionIdle
			t.Position = current
			t.RefreshBox()
			e.logger.Debug("flight stopped", "tag", t.Text, "progress", t.FlightProgress, "hits", len(hits))
			return
		}
	}

	t.Position = candidate
	t.moveMesh(candidate)

	if t.FlightProgress >= 1 {
		t.FlightProgress = 1
		t.Position = t.TargetPosition
		t.moveMesh(t.TargetPosition)
		t.Motion = MotionIdle
	}
}
