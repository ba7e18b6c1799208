package tags

import "github.com/vovakirdan/tagstorm/internal/core"

// stepResize interpolates a tag's scale toward TargetSize. Size itself only
// changes when the resize completes, so every frame lerps from the same start.
func (e *Engine) stepResize(t *Tag, step float64) {
	t.ResizeProgress += e.cfg.Resize.Rate * step

	if t.ResizeProgress >= 1 {
		t.ResizeProgress = 1
		t.Size = t.TargetSize
		e.applyScale(t, t.Size)
		t.Resize = ResizeIdle
		return
	}

	e.applyScale(t, core.Lerp(t.Size, t.TargetSize, resizeCurve(t.ResizeProgress)))
}

func (e *Engine) applyScale(t *Tag, size float64) {
	if t.Mesh == nil || t.OriginalSize <= 0 {
		return
	}
	t.Mesh.SetScale(size / t.OriginalSize)
	t.RefreshBox()
}
