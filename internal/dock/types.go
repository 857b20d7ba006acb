package dock

import "github.com/dshills/keystorm-dock/internal/layout"

// TabHandle, HostHandle, SplitHandle, and WindowHandle address the four
// arena-owned node kinds. Being distinct instantiations of Handle[T], they
// are distinct Go types: a HostHandle can never be passed where a
// SplitHandle is expected, without an explicit (and nonsensical) cast.
type (
	TabHandle    = Handle[Tab]
	HostHandle   = Handle[Host]
	SplitHandle  = Handle[SplitPanel]
	WindowHandle = Handle[Window]
)

// Orientation is a Split Panel's division axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Direction is one of the four new-panel-* drag outcomes.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Orientation returns the split orientation a panel split in direction d
// has: left/right divide the main axis horizontally, up/down vertically.
func (d Direction) Orientation() Orientation {
	if d == DirLeft || d == DirRight {
		return Horizontal
	}
	return Vertical
}

// firstChild reports whether a panel split in direction d places the new
// host (the one receiving the dragged tab) as the split's first child.
func (d Direction) firstChild() bool {
	return d == DirLeft || d == DirUp
}

// ParentKind tags which arena a ParentRef's live field names.
type ParentKind int

const (
	ParentWindow ParentKind = iota
	ParentSplit
)

// ParentRef is the forward-only "what owns me" link every Host and
// SplitPanel carries instead of a raw back-pointer.
type ParentRef struct {
	Kind   ParentKind
	Window WindowHandle
	Split  SplitHandle
}

// ChildRef names one child slot of a SplitPanel, or a window's root: either
// a Tab Host (leaf) or another SplitPanel (interior node).
type ChildRef struct {
	IsSplit bool
	Host    HostHandle
	Split   SplitHandle
}

// IsZero reports whether c names neither a host nor a split, the
// uninitialized state of a ChildRef.
func (c ChildRef) IsZero() bool {
	return !c.IsSplit && c.Host.IsZero()
}

// Tab is one editing panel's tab-button identity. The editor content
// itself lives above this package (an EditorContext, typically); dock
// only tracks the tab's title, its owning host, and drag bookkeeping.
type Tab struct {
	Title string
	Host  HostHandle

	// buttonOffset is the dragged tab button's visual x-offset from its
	// resting position while a combine-in-tab drag is in progress; reset
	// to 0 when a drag completes in the combine-in-tab state or ends in a
	// new-panel split.
	buttonOffset layout.Pixel
}

// Host is an ordered list of tabs plus the index of the currently active
// one. Invariant: if Tabs is non-empty, 0 <= Active < len(Tabs).
type Host struct {
	Tabs   []TabHandle
	Active int
	Parent ParentRef
}

// SplitPanel is a binary interior node: two children, an orientation, and
// a separator fraction of the parent's main-axis extent.
type SplitPanel struct {
	Orientation Orientation
	Separator   float64
	Children    [2]ChildRef
	Parent      ParentRef
}

// Window is one top-level window, owning a dock tree rooted at Root.
type Window struct {
	Root ChildRef
	Rect layout.Rect
}
