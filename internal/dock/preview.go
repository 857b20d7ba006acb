package dock

import (
	"github.com/dshills/keystorm-dock/internal/layout"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color in the [0,1] per-channel range. It is dock's own
// small vocabulary for PreviewColor's inputs and outputs, kept separate
// from coreapi.Color so this package does not need to import coreapi just
// to compute a preview highlight.
type Color struct {
	R, G, B, A float64
}

// halfRect returns the half of r nearest the edge named by dir, the
// preview shape shown while hovering a host body in a new-panel-*
// direction.
func halfRect(r layout.Rect, dir Direction) layout.Rect {
	switch dir {
	case DirLeft:
		return layout.Rect{X: r.X, Y: r.Y, W: r.W / 2, H: r.H}
	case DirRight:
		return layout.Rect{X: r.X + r.W/2, Y: r.Y, W: r.W / 2, H: r.H}
	case DirUp:
		return layout.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H / 2}
	default:
		return layout.Rect{X: r.X, Y: r.Y + r.H/2, W: r.W, H: r.H / 2}
	}
}

// PreviewRect returns the rectangle a host application should highlight
// for the drag's current state: the target host's tab strip for
// combine-in-tab, its full body for combine, a half of its body for a
// new-panel-* direction, or (zero, false) for new-window, which has no
// existing host to overlay.
func (m *Manager) PreviewRect(probe ZoneProbe) (layout.Rect, bool) {
	d := m.drag
	if d == nil || d.targetHost.IsZero() {
		return layout.Rect{}, false
	}
	switch d.state {
	case DragCombineInTab:
		return probe.TabStripRect(d.targetHost), true
	case DragCombine:
		return probe.BodyRect(d.targetHost), true
	default:
		return halfRect(probe.BodyRect(d.targetHost), directionFromState(d.state)), true
	}
}

// PreviewColor blends base toward highlight by amount (0..1) in a
// perceptually uniform color space, used to render the drag-zone preview
// overlay. amount is clamped to [0,1].
func PreviewColor(base, highlight Color, amount float64) Color {
	a := clamp01(amount)
	bc := colorful.Color{R: base.R, G: base.G, B: base.B}
	hc := colorful.Color{R: highlight.R, G: highlight.G, B: highlight.B}
	blended := bc.BlendLab(hc, a)
	alpha := base.A + (highlight.A-base.A)*a
	return Color{R: blended.R, G: blended.G, B: blended.B, A: alpha}
}
