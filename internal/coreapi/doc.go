// Package coreapi binds the Line Store, Caret Set, Edit Engine, and Undo
// Journal into a single EditorContext facade, and declares the external
// interface contracts (Renderer, Font, Window, HotkeyRegistry) that a host
// application supplies rather than this module.
//
// The facade shape and its re-exported type aliases are grounded on the
// teacher's internal/engine.Engine, which binds buffer+cursor+history+
// tracker behind one struct and re-exports their types for caller
// convenience (internal/engine/engine.go). This package does the same for
// linestore/caretset/editengine/journal, without a tracker (change tracking
// is out of scope here).
//
// Renderer, Font, Window, and HotkeyRegistry are interfaces only: this
// module never implements a full 2-D renderer, font rasterizer, or
// platform window. internal/termrender backs Renderer and Window with a
// terminal cell grid because that is the idiomatic Go rendering surface
// for this teacher lineage; internal/layout.MonospaceFont backs Font.
// HotkeyRegistry has no implementation anywhere in this module.
package coreapi
