package dock

import "github.com/dshills/keystorm-dock/internal/coreerr"

// DrainChanged processes every host enqueued since the last call, in the
// exact three-step order spec.md's tab-host lifecycle names: splice the
// host's sibling into the host's own parent (or destroy the window if the
// host had no split-panel parent), then free the host's arena slot. Hosts
// that regained a tab before this call (via insertTabIntoHost clearing
// their changed entry) are skipped.
//
// The update tick that drives drag updates must call DrainChanged first:
// a host receiving a tab while queued for disposal is the bug spec.md
// calls out under "Failures".
func (m *Manager) DrainChanged() {
	if len(m.changed) == 0 {
		return
	}
	pending := make([]HostHandle, 0, len(m.changed))
	for h := range m.changed {
		pending = append(pending, h)
	}
	m.changed = make(map[HostHandle]struct{})

	for _, h := range pending {
		host, ok := m.hosts.Get(h)
		if !ok || len(host.Tabs) > 0 {
			continue
		}
		m.disposeEmptyHost(h, *host)
	}
}

// disposeEmptyHost implements the three-step splice/destroy/dispose
// sequence for one empty host.
func (m *Manager) disposeEmptyHost(h HostHandle, host Host) {
	switch host.Parent.Kind {
	case ParentSplit:
		m.spliceOutOfSplit(h, host.Parent.Split)
	case ParentWindow:
		m.destroyWindow(host.Parent.Window)
	}
	m.removeFromFocusOrder(h)
	m.hosts.Remove(h)
}

// spliceOutOfSplit replaces split (whose child is the host being disposed)
// with its other child in split's own parent, per step 1 of the disposal
// sequence.
func (m *Manager) spliceOutOfSplit(h HostHandle, splitHandle SplitHandle) {
	sp, ok := m.splits.Get(splitHandle)
	if !ok {
		return
	}
	var sibling ChildRef
	switch {
	case !sp.Children[0].IsSplit && sp.Children[0].Host == h:
		sibling = sp.Children[1]
	default:
		sibling = sp.Children[0]
	}
	m.replaceChildInParent(sp.Parent, ChildRef{IsSplit: true, Split: splitHandle}, sibling)
	m.setChildParent(sibling, sp.Parent)
	m.splits.Remove(splitHandle)
}

// replaceChildInParent rewrites parent's reference from old to next,
// whether parent is a window root or a split panel's child slot.
func (m *Manager) replaceChildInParent(parent ParentRef, old, next ChildRef) {
	switch parent.Kind {
	case ParentWindow:
		if win, ok := m.windows.Get(parent.Window); ok {
			win.Root = next
		}
	case ParentSplit:
		if sp, ok := m.splits.Get(parent.Split); ok {
			for i, c := range sp.Children {
				if c == old {
					sp.Children[i] = next
					return
				}
			}
		}
	}
}

// setChildParent rewrites ref's own Parent field to parent, following
// whichever arena ref addresses.
func (m *Manager) setChildParent(ref ChildRef, parent ParentRef) {
	if ref.IsZero() {
		return
	}
	if ref.IsSplit {
		if sp, ok := m.splits.Get(ref.Split); ok {
			sp.Parent = parent
		}
		return
	}
	if h, ok := m.hosts.Get(ref.Host); ok {
		h.Parent = parent
	}
}

// destroyWindow disposes every host and split panel reachable from w's
// root, then frees w's own slot, per step 2 of the disposal sequence
// ("else H's parent is a Window: destroy the window").
func (m *Manager) destroyWindow(w WindowHandle) {
	win, ok := m.windows.Get(w)
	if !ok {
		return
	}
	m.disposeSubtree(win.Root)
	m.windows.Remove(w)
}

// disposeSubtree recursively frees every split panel and host reachable
// from ref.
func (m *Manager) disposeSubtree(ref ChildRef) {
	if ref.IsZero() {
		return
	}
	if ref.IsSplit {
		sp, ok := m.splits.Get(ref.Split)
		if !ok {
			return
		}
		m.disposeSubtree(sp.Children[0])
		m.disposeSubtree(sp.Children[1])
		m.splits.Remove(ref.Split)
		return
	}
	m.removeFromFocusOrder(ref.Host)
	m.hosts.Remove(ref.Host)
}

// splitHost replaces target in its own parent with a new Split Panel
// whose two children are {a new host holding draggedTab, target},
// ordered and oriented per dir, implementing spec.md's new-panel-*
// drag-completion rule.
func (m *Manager) splitHost(target HostHandle, dir Direction, draggedTab TabHandle) error {
	th, ok := m.hosts.Get(target)
	if !ok {
		return coreerr.InvalidStatef("splitHost: target host does not exist")
	}
	newHost := m.hosts.Insert(Host{Tabs: []TabHandle{draggedTab}, Active: 0})
	if tab, ok := m.tabs.Get(draggedTab); ok {
		tab.Host = newHost
		tab.buttonOffset = 0
	}

	newChild := ChildRef{Host: newHost}
	targetChild := ChildRef{Host: target}
	var children [2]ChildRef
	if dir.firstChild() {
		children = [2]ChildRef{newChild, targetChild}
	} else {
		children = [2]ChildRef{targetChild, newChild}
	}

	splitHandle := m.splits.Insert(SplitPanel{
		Orientation: dir.Orientation(),
		Separator:   0.5,
		Children:    children,
		Parent:      th.Parent,
	})

	m.replaceChildInParent(th.Parent, targetChild, ChildRef{IsSplit: true, Split: splitHandle})
	if h, ok := m.hosts.Get(target); ok {
		h.Parent = ParentRef{Kind: ParentSplit, Split: splitHandle}
	}
	if h, ok := m.hosts.Get(newHost); ok {
		h.Parent = ParentRef{Kind: ParentSplit, Split: splitHandle}
	}
	m.focusOrder = append([]HostHandle{newHost}, m.focusOrder...)
	return nil
}
