// Package dock maintains the multi-window docking tree — split panels and
// tab hosts — and the interactive tab-drag protocol that moves tabs
// between hosts, splits hosts into new panels, and spawns new windows.
//
// Tabs, hosts, split panels, and windows live in generation-indexed arenas
// (arena.go) rather than behind raw pointers. The teacher lineage's UI
// tree (studied via cogentcore-core's core.Splits and core.Tabs widgets,
// which shape this package's binary-split-with-fractional-divider and
// ordered-tab-list concepts) uses parent back-pointers throughout; this
// package deliberately does not, because tab-host disposal happens while
// iterating the very set of hosts being disposed (the "changed" set,
// drained once per update tick), and a stale pointer into a disposed host
// is exactly the kind of cyclic-graph hazard a generation-checked handle
// is built to catch. A handle into a disposed slot fails Get rather than
// dereferencing freed memory.
//
// Every tab belongs to exactly one host (Tab.Host); every host and split
// panel records its own parent as a handle (ParentRef), not the reverse —
// there is no back-pointer collection to keep in sync, only a single
// forward link per node that is rewritten during a splice.
//
// Disposal order. An emptied host is never destroyed immediately (that
// would invalidate a drag target live under the cursor); it is enqueued
// into a changed set and processed once per update tick by DrainChanged,
// in the exact three-step order: splice the host's sibling into the
// host's own parent, destroy the owning window if the host had no
// sibling, then release the host's arena slot.
//
// Single-goroutine discipline. Like every other package in this module,
// dock carries no internal locking: the focus-ordered host list, the
// changed set, and any in-progress drag are touched only from the single
// goroutine driving the host application's update tick, mirroring the
// teacher's own single-goroutine event pump (internal/app/eventloop.go).
package dock
