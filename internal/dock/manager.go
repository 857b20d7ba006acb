package dock

import (
	"github.com/dshills/keystorm-dock/internal/coreerr"
	"github.com/dshills/keystorm-dock/internal/layout"
)

// Manager owns every tab, host, split panel, and window in the
// application, the global focus-ordered host list, the deferred-disposal
// changed set, and at most one in-progress drag.
type Manager struct {
	tabs    *Arena[Tab]
	hosts   *Arena[Host]
	splits  *Arena[SplitPanel]
	windows *Arena[Window]

	focusOrder []HostHandle
	changed    map[HostHandle]struct{}

	drag *dragState
}

// NewManager returns an empty Manager with no windows.
func NewManager() *Manager {
	return &Manager{
		tabs:    NewArena[Tab](),
		hosts:   NewArena[Host](),
		splits:  NewArena[SplitPanel](),
		windows: NewArena[Window](),
		changed: make(map[HostHandle]struct{}),
	}
}

// NewWindow creates a window at rect with a single empty host as its
// root, and moves that host to the head of the focus-ordered list.
func (m *Manager) NewWindow(rect layout.Rect) WindowHandle {
	host := m.hosts.Insert(Host{Active: -1})
	w := m.windows.Insert(Window{Root: ChildRef{Host: host}, Rect: rect})
	if h, ok := m.hosts.Get(host); ok {
		h.Parent = ParentRef{Kind: ParentWindow, Window: w}
	}
	m.focusOrder = append([]HostHandle{host}, m.focusOrder...)
	return w
}

// Window returns the window addressed by w.
func (m *Manager) Window(w WindowHandle) (Window, bool) {
	win, ok := m.windows.Get(w)
	if !ok {
		return Window{}, false
	}
	return *win, true
}

// Host returns the host addressed by h.
func (m *Manager) Host(h HostHandle) (Host, bool) {
	host, ok := m.hosts.Get(h)
	if !ok {
		return Host{}, false
	}
	return *host, true
}

// Split returns the split panel addressed by s.
func (m *Manager) Split(s SplitHandle) (SplitPanel, bool) {
	sp, ok := m.splits.Get(s)
	if !ok {
		return SplitPanel{}, false
	}
	return *sp, true
}

// Tab returns the tab addressed by t.
func (m *Manager) Tab(t TabHandle) (Tab, bool) {
	tab, ok := m.tabs.Get(t)
	if !ok {
		return Tab{}, false
	}
	return *tab, true
}

// NewTab creates a tab titled title in host, activating it if host was
// empty.
func (m *Manager) NewTab(host HostHandle, title string) (TabHandle, error) {
	h, ok := m.hosts.Get(host)
	if !ok {
		return TabHandle{}, coreerr.InvalidStatef("NewTab: host does not exist")
	}
	tab := m.tabs.Insert(Tab{Title: title, Host: host})
	h.Tabs = append(h.Tabs, tab)
	if h.Active < 0 {
		h.Active = len(h.Tabs) - 1
	}
	return tab, nil
}

// CloseTab removes tab from its host, destroying it. If the host becomes
// empty it is enqueued into the changed set rather than disposed
// immediately.
func (m *Manager) CloseTab(tab TabHandle) error {
	t, ok := m.tabs.Get(tab)
	if !ok {
		return coreerr.InvalidStatef("CloseTab: tab does not exist")
	}
	host := t.Host
	if err := m.removeTabFromHost(tab, host); err != nil {
		return err
	}
	m.tabs.Remove(tab)
	return nil
}

// removeTabFromHost splices tab out of host's tab list, adjusting Active,
// and enqueues host into the changed set if it is now empty. It does not
// remove the tab's own arena slot, so callers that are merely relocating
// the tab (drag preview) can reuse it.
func (m *Manager) removeTabFromHost(tab TabHandle, host HostHandle) error {
	if host.IsZero() {
		return nil
	}
	h, ok := m.hosts.Get(host)
	if !ok {
		return coreerr.InvalidStatef("removeTabFromHost: host does not exist")
	}
	idx := -1
	for i, th := range h.Tabs {
		if th == tab {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	h.Tabs = append(h.Tabs[:idx], h.Tabs[idx+1:]...)
	switch {
	case len(h.Tabs) == 0:
		h.Active = -1
		m.changed[host] = struct{}{}
	case h.Active > idx:
		h.Active--
	case h.Active >= len(h.Tabs):
		h.Active = len(h.Tabs) - 1
	}
	if t, ok := m.tabs.Get(tab); ok {
		t.Host = HostHandle{}
	}
	return nil
}

// insertTabIntoHost splices tab into host's tab list at index, activating
// it.
func (m *Manager) insertTabIntoHost(tab TabHandle, host HostHandle, index int) error {
	h, ok := m.hosts.Get(host)
	if !ok {
		return coreerr.InvalidStatef("insertTabIntoHost: host does not exist")
	}
	if index < 0 {
		index = 0
	}
	if index > len(h.Tabs) {
		index = len(h.Tabs)
	}
	h.Tabs = append(h.Tabs, TabHandle{})
	copy(h.Tabs[index+1:], h.Tabs[index:])
	h.Tabs[index] = tab
	h.Active = index
	if t, ok := m.tabs.Get(tab); ok {
		t.Host = host
	}
	// Clearing the changed entry matters if a host that had just been
	// emptied (and enqueued) receives a tab back before the next
	// DrainChanged call.
	delete(m.changed, host)
	return nil
}

// Focus moves every host in window w to the head of the focus-ordered
// list, preserving their existing in-window relative order, per spec.md's
// window focus bookkeeping rule.
func (m *Manager) Focus(w WindowHandle) error {
	win, ok := m.windows.Get(w)
	if !ok {
		return coreerr.InvalidStatef("Focus: window does not exist")
	}
	inWindow := make(map[HostHandle]bool)
	var ordered []HostHandle
	m.collectHosts(win.Root, &ordered)
	for _, h := range ordered {
		inWindow[h] = true
	}
	next := make([]HostHandle, 0, len(m.focusOrder))
	seen := make(map[HostHandle]bool)
	for _, h := range m.focusOrder {
		if inWindow[h] {
			next = append(next, h)
			seen[h] = true
		}
	}
	for _, h := range ordered {
		if !seen[h] {
			next = append(next, h)
		}
	}
	for _, h := range m.focusOrder {
		if !inWindow[h] {
			next = append(next, h)
		}
	}
	m.focusOrder = next
	return nil
}

// FocusOrder returns the current focus-ordered host list, head first.
func (m *Manager) FocusOrder() []HostHandle {
	out := make([]HostHandle, len(m.focusOrder))
	copy(out, m.focusOrder)
	return out
}

// collectHosts appends every host reachable from ref, in left-to-right,
// depth-first order.
func (m *Manager) collectHosts(ref ChildRef, out *[]HostHandle) {
	if ref.IsZero() {
		return
	}
	if !ref.IsSplit {
		*out = append(*out, ref.Host)
		return
	}
	sp, ok := m.splits.Get(ref.Split)
	if !ok {
		return
	}
	m.collectHosts(sp.Children[0], out)
	m.collectHosts(sp.Children[1], out)
}

func (m *Manager) removeFromFocusOrder(h HostHandle) {
	for i, fh := range m.focusOrder {
		if fh == h {
			m.focusOrder = append(m.focusOrder[:i], m.focusOrder[i+1:]...)
			return
		}
	}
}
