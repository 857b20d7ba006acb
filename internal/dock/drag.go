package dock

import (
	"math"

	"github.com/dshills/keystorm-dock/internal/coreerr"
	"github.com/dshills/keystorm-dock/internal/layout"
)

// DragState is the drag state machine's current outcome: new-window,
// combine-in-tab, combine, or a new-panel split in one of four directions.
type DragState int

const (
	DragNewWindow DragState = iota
	DragCombineInTab
	DragCombine
	DragNewPanelLeft
	DragNewPanelRight
	DragNewPanelUp
	DragNewPanelDown
)

func dragStateForDirection(d Direction) DragState {
	switch d {
	case DirLeft:
		return DragNewPanelLeft
	case DirRight:
		return DragNewPanelRight
	case DirUp:
		return DragNewPanelUp
	default:
		return DragNewPanelDown
	}
}

// ZoneProbe supplies the screen geometry the drag state machine hit-tests
// against. It is implemented by the host application's layout/render
// layer, never by this package: dock has no rendering surface of its own
// and knows nothing about pixel layout beyond the rectangles it is told.
type ZoneProbe interface {
	// HostAt returns the host whose window client area contains the
	// screen-space point p, if any.
	HostAt(p layout.Point) (HostHandle, bool)
	// TabStripRect returns h's tab-button strip, in the same coordinate
	// space as the points passed to HostAt.
	TabStripRect(h HostHandle) layout.Rect
	// BodyRect returns h's body area (excluding the tab strip), in the
	// same coordinate space as HostAt.
	BodyRect(h HostHandle) layout.Rect
	// TabButtonCenters returns the x-center of every tab button currently
	// in h's strip, host-local and in left-to-right tab order, used to
	// compute where a dragged button should slide to.
	TabButtonCenters(h HostHandle) []layout.Pixel
}

// dragState is the Manager's single in-progress drag, if any.
type dragState struct {
	tab          TabHandle
	originHost   HostHandle
	previewHost  HostHandle
	grabOffset   layout.Point
	size         layout.Point
	state        DragState
	targetHost   HostHandle
	insertIndex  int
	forceCombine bool
	lastCursor   layout.Point
}

// StartDrag begins dragging tab, grabbed at grabOffset within a rectangle
// of size size (used to size a spawned new-window). The initial state is
// combine-in-tab if the tab currently belongs to a host, else new-window,
// per spec.md.
func (m *Manager) StartDrag(tab TabHandle, grabOffset, size layout.Point) error {
	if m.drag != nil {
		return coreerr.InvalidStatef("StartDrag: a drag is already in progress")
	}
	t, ok := m.tabs.Get(tab)
	if !ok {
		return coreerr.InvalidStatef("StartDrag: tab does not exist")
	}
	d := &dragState{tab: tab, grabOffset: grabOffset, size: size, originHost: t.Host}
	if !t.Host.IsZero() {
		d.state = DragCombineInTab
		d.targetHost = t.Host
		d.previewHost = t.Host
	} else {
		d.state = DragNewWindow
	}
	m.drag = d
	return nil
}

// Dragging reports whether a drag is currently in progress.
func (m *Manager) Dragging() bool { return m.drag != nil }

// ForceCombine makes UpdateDrag set the state to "combine" against the
// host under the cursor whenever the cursor is over a host body. This is how a "combine" outcome (as opposed to a new-panel split)
// becomes reachable: spec.md's per-tick zone rules only ever produce
// combine-in-tab (over a tab strip) or new-panel-* (over a body), never
// plain combine, so a caller wanting to add a tab to an existing host
// without splitting it calls ForceCombine while a modifier key is held.
// It does nothing when no drag is active. The state itself changes on the
// next UpdateDrag, not here; the override then stays in effect for later
// updates until one finds the cursor over no host, and updates over a tab
// strip ignore it.
func (m *Manager) ForceCombine() {
	if m.drag == nil {
		return
	}
	m.drag.forceCombine = true
}

// UpdateDrag advances the in-progress drag by one update tick given the
// cursor's current screen position and probe's geometry. If the dragged
// tab has been destroyed since the drag started, the drag is cancelled
// silently, per spec.md's "Failures" clause.
func (m *Manager) UpdateDrag(cursor layout.Point, probe ZoneProbe) error {
	d := m.drag
	if d == nil {
		return coreerr.InvalidStatef("UpdateDrag: no drag in progress")
	}
	if _, ok := m.tabs.Get(d.tab); !ok {
		m.cancelDrag()
		return nil
	}
	d.lastCursor = cursor

	host, found := probe.HostAt(cursor)
	if !found {
		m.leavePreviewHost()
		d.state = DragNewWindow
		d.targetHost = HostHandle{}
		d.forceCombine = false
		return nil
	}

	if probe.TabStripRect(host).Contains(cursor) {
		centers := probe.TabButtonCenters(host)
		idx := computeInsertIndex(centers, cursor.X)
		if d.state == DragCombineInTab && d.targetHost == host {
			d.insertIndex = idx
			if t, ok := m.tabs.Get(d.tab); ok && len(centers) > 0 {
				t.buttonOffset = centers[clampIndex(idx, len(centers))] - cursor.X
			}
			return nil
		}
		m.leavePreviewHost()
		d.state = DragCombineInTab
		d.targetHost = host
		d.insertIndex = idx
		if err := m.insertTabIntoHost(d.tab, host, idx); err != nil {
			return err
		}
		d.previewHost = host
		return nil
	}

	m.leavePreviewHost()
	body := probe.BodyRect(host)
	if d.forceCombine {
		d.state = DragCombine
		d.targetHost = host
		return nil
	}
	dir := dominantDirection(body.Center(), cursor)
	d.state = dragStateForDirection(dir)
	d.targetHost = host
	return nil
}

// leavePreviewHost removes the dragged tab from whatever host is
// currently displaying it as a combine-in-tab preview, if any.
func (m *Manager) leavePreviewHost() {
	d := m.drag
	if d == nil || d.previewHost.IsZero() {
		return
	}
	_ = m.removeTabFromHost(d.tab, d.previewHost)
	d.previewHost = HostHandle{}
}

// cancelDrag discards the in-progress drag without running any
// completion path, used when the dragged tab is destroyed mid-drag.
func (m *Manager) cancelDrag() {
	m.leavePreviewHost()
	m.drag = nil
}

// CompleteDrag runs the completion path for the current drag state and
// clears the in-progress drag. Called when the host application's
// stop-drag predicate (mouse release, or loss of mouse capture) returns
// true.
func (m *Manager) CompleteDrag() error {
	d := m.drag
	if d == nil {
		return coreerr.InvalidStatef("CompleteDrag: no drag in progress")
	}
	m.drag = nil

	switch d.state {
	case DragNewWindow:
		return m.completeNewWindow(d)
	case DragCombineInTab:
		if t, ok := m.tabs.Get(d.tab); ok {
			t.buttonOffset = 0
		}
		return nil
	case DragCombine:
		return m.insertTabIntoHost(d.tab, d.targetHost, len(mustHost(m, d.targetHost).Tabs))
	default:
		dir := directionFromState(d.state)
		return m.splitHost(d.targetHost, dir, d.tab)
	}
}

func mustHost(m *Manager, h HostHandle) Host {
	host, _ := m.hosts.Get(h)
	if host == nil {
		return Host{}
	}
	return *host
}

func directionFromState(s DragState) Direction {
	switch s {
	case DragNewPanelLeft:
		return DirLeft
	case DragNewPanelRight:
		return DirRight
	case DragNewPanelUp:
		return DirUp
	default:
		return DirDown
	}
}

// completeNewWindow allocates a new window sized to the original drag
// rectangle, positioned offset from the cursor by the initial grab
// offset, with one host holding the dragged tab.
func (m *Manager) completeNewWindow(d *dragState) error {
	t, ok := m.tabs.Get(d.tab)
	if !ok {
		return coreerr.InvalidStatef("completeNewWindow: tab does not exist")
	}
	if err := m.removeTabFromHost(d.tab, t.Host); err != nil {
		return err
	}
	origin := d.lastCursor.Sub(d.grabOffset)
	w := m.NewWindow(layout.Rect{X: origin.X, Y: origin.Y, W: d.size.X, H: d.size.Y})
	win, _ := m.windows.Get(w)
	root := win.Root
	return m.insertTabIntoHost(d.tab, root.Host, 0)
}

// computeInsertIndex returns the insertion index for a dragged tab button
// at cursor x-coordinate x among peers whose resting centers are centers,
// sliding tabs right of the insertion point to make room (the caller
// applies the slide visually; this only determines the index).
func computeInsertIndex(centers []layout.Pixel, x layout.Pixel) int {
	idx := 0
	for _, c := range centers {
		if x > c {
			idx++
		}
	}
	return idx
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

// dominantDirection returns the axis-dominant direction from center to
// cursor: whichever of |dx|, |dy| is larger selects the axis, and its
// sign selects left/right or up/down.
func dominantDirection(center, cursor layout.Point) Direction {
	dx := cursor.X - center.X
	dy := cursor.Y - center.Y
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return DirLeft
		}
		return DirRight
	}
	if dy < 0 {
		return DirUp
	}
	return DirDown
}
