package dock

import (
	"testing"

	"github.com/dshills/keystorm-dock/internal/layout"
)

// stubProbe is a fixed-geometry ZoneProbe for tests: one rect per host,
// split into a tab strip along the top and a body beneath it.
type stubProbe struct {
	rects map[HostHandle]layout.Rect
	tabs  map[HostHandle][]layout.Pixel
}

func (p stubProbe) HostAt(pt layout.Point) (HostHandle, bool) {
	for h, r := range p.rects {
		if r.Contains(pt) {
			return h, true
		}
	}
	return HostHandle{}, false
}

func (p stubProbe) TabStripRect(h HostHandle) layout.Rect {
	r := p.rects[h]
	return layout.Rect{X: r.X, Y: r.Y, W: r.W, H: 20}
}

func (p stubProbe) BodyRect(h HostHandle) layout.Rect {
	r := p.rects[h]
	return layout.Rect{X: r.X, Y: r.Y + 20, W: r.W, H: r.H - 20}
}

func (p stubProbe) TabButtonCenters(h HostHandle) []layout.Pixel {
	return p.tabs[h]
}

func TestNewWindowRootIsEmptyHost(t *testing.T) {
	m := NewManager()
	w := m.NewWindow(layout.Rect{W: 800, H: 600})
	win, ok := m.Window(w)
	if !ok {
		t.Fatalf("Window() not found")
	}
	if win.Root.IsSplit {
		t.Fatalf("new window's root is a split, want a host")
	}
	host, ok := m.Host(win.Root.Host)
	if !ok || len(host.Tabs) != 0 {
		t.Fatalf("new window's root host = %+v, want empty", host)
	}
}

func TestCloseLastTabEnqueuesHostAndDrainDisposesWindow(t *testing.T) {
	m := NewManager()
	w := m.NewWindow(layout.Rect{W: 800, H: 600})
	win, _ := m.Window(w)
	host := win.Root.Host
	tab, err := m.NewTab(host, "a.go")
	if err != nil {
		t.Fatalf("NewTab() error = %v", err)
	}

	if err := m.CloseTab(tab); err != nil {
		t.Fatalf("CloseTab() error = %v", err)
	}
	if _, ok := m.Host(host); !ok {
		t.Fatalf("host disposed before DrainChanged")
	}

	m.DrainChanged()

	if _, ok := m.Host(host); ok {
		t.Errorf("host still present after DrainChanged")
	}
	if _, ok := m.Window(w); ok {
		t.Errorf("window still present after its only host emptied")
	}
}

// TestDragSplitsHostLeft reproduces spec.md's concrete scenario 6: a lone
// tab T in host H (alone in its own window) is dragged to the left half
// of host H'. After drop: a new Split Panel replaces H' in its parent,
// orientation horizontal, left child = new host containing T, right
// child = H'. H is disposed, and since H's window had only H, that
// window is disposed too.
func TestDragSplitsHostLeft(t *testing.T) {
	m := NewManager()

	wH := m.NewWindow(layout.Rect{W: 400, H: 400})
	winH, _ := m.Window(wH)
	hostH := winH.Root.Host
	tabT, err := m.NewTab(hostH, "T")
	if err != nil {
		t.Fatalf("NewTab() error = %v", err)
	}

	wPrime := m.NewWindow(layout.Rect{X: 500, W: 400, H: 400})
	winPrime, _ := m.Window(wPrime)
	hostPrime := winPrime.Root.Host
	if _, err := m.NewTab(hostPrime, "other"); err != nil {
		t.Fatalf("NewTab() error = %v", err)
	}

	probe := stubProbe{
		rects: map[HostHandle]layout.Rect{
			hostPrime: {X: 500, Y: 0, W: 400, H: 400},
		},
		tabs: map[HostHandle][]layout.Pixel{},
	}

	if err := m.StartDrag(tabT, layout.Point{X: 5, Y: 5}, layout.Point{X: 300, Y: 300}); err != nil {
		t.Fatalf("StartDrag() error = %v", err)
	}

	// Cursor over H' body, left quadrant (x=520 vs body center ~700).
	if err := m.UpdateDrag(layout.Point{X: 520, Y: 200}, probe); err != nil {
		t.Fatalf("UpdateDrag() error = %v", err)
	}

	if err := m.CompleteDrag(); err != nil {
		t.Fatalf("CompleteDrag() error = %v", err)
	}

	m.DrainChanged()

	winPrimeAfter, ok := m.Window(wPrime)
	if !ok {
		t.Fatalf("window H' no longer exists")
	}
	if !winPrimeAfter.Root.IsSplit {
		t.Fatalf("H''s window root is not a split panel after drop")
	}
	split, ok := m.Split(winPrimeAfter.Root.Split)
	if !ok {
		t.Fatalf("split panel not found")
	}
	if split.Orientation != Horizontal {
		t.Errorf("orientation = %v, want Horizontal", split.Orientation)
	}
	if split.Children[0].IsSplit || split.Children[1].IsSplit {
		t.Fatalf("expected both split children to be hosts, got %+v", split.Children)
	}
	if split.Children[1].Host != hostPrime {
		t.Errorf("right child = %v, want original host H' (%v)", split.Children[1].Host, hostPrime)
	}
	newHost, ok := m.Host(split.Children[0].Host)
	if !ok {
		t.Fatalf("new left host not found")
	}
	if len(newHost.Tabs) != 1 || newHost.Tabs[0] != tabT {
		t.Errorf("new host tabs = %v, want [T]", newHost.Tabs)
	}

	if _, ok := m.Host(hostH); ok {
		t.Errorf("host H still present, want disposed")
	}
	if _, ok := m.Window(wH); ok {
		t.Errorf("H's original window still present, want disposed")
	}
}

func TestDragCombineInTabAddsTabToTargetHost(t *testing.T) {
	m := NewManager()
	w1 := m.NewWindow(layout.Rect{W: 400, H: 400})
	win1, _ := m.Window(w1)
	hostA := win1.Root.Host
	tab, err := m.NewTab(hostA, "a")
	if err != nil {
		t.Fatalf("NewTab() error = %v", err)
	}

	w2 := m.NewWindow(layout.Rect{X: 500, W: 400, H: 400})
	win2, _ := m.Window(w2)
	hostB := win2.Root.Host
	if _, err := m.NewTab(hostB, "b"); err != nil {
		t.Fatalf("NewTab() error = %v", err)
	}

	probe := stubProbe{
		rects: map[HostHandle]layout.Rect{
			hostB: {X: 500, Y: 0, W: 400, H: 400},
		},
		tabs: map[HostHandle][]layout.Pixel{
			hostB: {550},
		},
	}

	if err := m.StartDrag(tab, layout.Point{}, layout.Point{X: 300, Y: 300}); err != nil {
		t.Fatalf("StartDrag() error = %v", err)
	}
	// Cursor over B's tab strip (y < 20 within the host rect).
	if err := m.UpdateDrag(layout.Point{X: 520, Y: 5}, probe); err != nil {
		t.Fatalf("UpdateDrag() error = %v", err)
	}
	if err := m.CompleteDrag(); err != nil {
		t.Fatalf("CompleteDrag() error = %v", err)
	}
	m.DrainChanged()

	hb, ok := m.Host(hostB)
	if !ok {
		t.Fatalf("host B not found")
	}
	found := false
	for _, th := range hb.Tabs {
		if th == tab {
			found = true
		}
	}
	if !found {
		t.Errorf("dragged tab not present in host B after combine-in-tab drop, tabs = %v", hb.Tabs)
	}
	if _, ok := m.Window(w1); ok {
		t.Errorf("A's window still present, want disposed once its only tab left")
	}
}

func TestFocusMovesWindowHostsToHeadPreservingOrder(t *testing.T) {
	m := NewManager()
	w1 := m.NewWindow(layout.Rect{})
	w2 := m.NewWindow(layout.Rect{})
	win2, _ := m.Window(w2)
	host2 := win2.Root.Host

	// focusOrder is currently [host2, host1] (most recent NewWindow first).
	if err := m.Focus(w1); err != nil {
		t.Fatalf("Focus() error = %v", err)
	}
	order := m.FocusOrder()
	win1, _ := m.Window(w1)
	if order[0] != win1.Root.Host {
		t.Fatalf("focus order head = %v, want window 1's host", order[0])
	}
	if order[1] != host2 {
		t.Errorf("focus order tail = %v, want window 2's host", order[1])
	}
}

func TestSetSeparatorSingleSideRecursion(t *testing.T) {
	m := NewManager()
	w := m.NewWindow(layout.Rect{W: 800, H: 600})
	win, _ := m.Window(w)
	hostA := win.Root.Host
	tabA, _ := m.NewTab(hostA, "a")

	// Split A to the left, producing a horizontal split whose near (side 0)
	// child is the new host and far (side 1) child is the original A.
	// splitHost expects the dragged tab to already be detached from its
	// source host, as it would be mid-drag (leavePreviewHost), so detach
	// it here before calling splitHost directly.
	if err := m.removeTabFromHost(tabA, hostA); err != nil {
		t.Fatalf("removeTabFromHost() error = %v", err)
	}
	if err := m.splitHost(hostA, DirLeft, tabA); err != nil {
		t.Fatalf("splitHost() error = %v", err)
	}
	winAfter, _ := m.Window(w)
	outer, ok := m.Split(winAfter.Root.Split)
	if !ok {
		t.Fatalf("outer split not found")
	}

	// Nest another horizontal split on the near side so there is a
	// same-orientation descendant to observe the recursion on.
	newHost := outer.Children[0].Host
	newTab, _ := m.NewTab(newHost, "x")
	if err := m.removeTabFromHost(newTab, newHost); err != nil {
		t.Fatalf("removeTabFromHost() error = %v", err)
	}
	if err := m.splitHost(newHost, DirLeft, newTab); err != nil {
		t.Fatalf("nested splitHost() error = %v", err)
	}
	outer, _ = m.Split(winAfter.Root.Split)
	innerRef := outer.Children[0]
	if !innerRef.IsSplit {
		t.Fatalf("expected nested split on the near side")
	}
	inner, _ := m.Split(innerRef.Split)
	innerBefore := inner.Separator

	if err := m.SetSeparator(winAfter.Root.Split, 0.25, 0); err != nil {
		t.Fatalf("SetSeparator() error = %v", err)
	}
	inner, _ = m.Split(innerRef.Split)
	wantRatio := 0.25 / 0.5
	if got, want := inner.Separator, innerBefore*wantRatio; abs(got-want) > 1e-9 {
		t.Errorf("inner separator = %v, want %v", got, want)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
