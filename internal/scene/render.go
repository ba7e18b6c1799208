package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tagstorm/internal/core"
	"github.com/vovakirdan/tagstorm/internal/tags"
)

const (
	hudRows = 2 // Status line on top, run info at the bottom

	// cellAspect compensates for terminal cells being about twice as tall
	// as they are wide.
	cellAspect = 0.5
)

// Render projects every tag orthographically onto the screen, far tags
// first so nearer labels overwrite them.
func (s *Scene) Render(dst *core.Screen, cam core.Camera) {
	dst.Clear()
	if s.engine == nil {
		return
	}
	if cam.Zoom <= 0 {
		cam.Zoom = s.fitZoom()
	}

	all := append([]*tags.Tag(nil), s.engine.Tags()...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Mesh.Position().Z() < all[j].Mesh.Position().Z()
	})
	for _, t := range all {
		s.drawTag(dst, cam, t)
	}

	s.drawHUD(dst)
	if s.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// project maps a world point to a screen cell.
func project(dst *core.Screen, cam core.Camera, p mgl64.Vec3) (int, int) {
	midX := float64(dst.Width()) / 2
	midY := float64(dst.Height()) / 2
	x := midX + (p.X()-cam.X)*cam.Zoom
	y := midY - (p.Y()-cam.Y)*cam.Zoom*cellAspect
	return int(math.Round(x)), int(math.Round(y))
}

func (s *Scene) drawTag(dst *core.Screen, cam core.Camera, t *tags.Tag) {
	x, y := project(dst, cam, t.Mesh.Position())
	if y < 1 || y >= dst.Height()-1 {
		return
	}

	text := visibleLabel(t.Text, t.Box.Size().X()*cam.Zoom)
	start := x - len([]rune(text))/2
	dst.DrawTextColored(start, y, text, s.tagColor(t))
}

// visibleLabel trims a label to the number of cells its box spans.
func visibleLabel(label string, cells float64) string {
	runes := []rune(label)
	n := int(math.Round(cells))
	if n >= len(runes) {
		return label
	}
	if n <= 1 {
		return "·"
	}
	return string(runes[:n-1]) + "…"
}

// tagColor encodes the tag's phase; settled tags deep in the field dim.
func (s *Scene) tagColor(t *tags.Tag) core.Color {
	switch {
	case t.Motion == tags.MotionFlying && s.forced[t]:
		return core.ColorRed
	case t.Motion == tags.MotionFlying:
		return core.ColorYellow
	case t.Motion == tags.MotionShifting:
		return core.ColorOrange
	case t.Resize == tags.ResizeActive:
		return core.ColorMagenta
	case t.Mesh.Position().Z() < -s.cfg.Field.Depth/4:
		return core.ColorGray
	default:
		return core.ColorCyan
	}
}

func (s *Scene) drawHUD(dst *core.Screen) {
	st := s.State()
	status := fmt.Sprintf(" %s  tags:%d  active:%d  impacts:%d  cascade:%d  peak:%.1f  score:%d ",
		s.Title(), st.Tags, st.Active, st.Impacts, st.CascadeHits, st.PeakEnergy, st.Score)
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawTextColored(0, 0, status, core.ColorBrightWhite)

	info := fmt.Sprintf(" seed:%d  t:%.1fs  launches:%d ", s.runtime.Seed, s.clock, s.launches)
	bottom := dst.Height() - 1
	dst.DrawHLine(0, bottom, dst.Width(), ' ')
	dst.DrawTextColored(0, bottom, info, core.ColorGray)
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
