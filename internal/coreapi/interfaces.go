package coreapi

import "github.com/dshills/keystorm-dock/internal/layout"

// TextureID identifies a rasterized glyph texture uploaded to a Renderer.
// Ids are opaque and may be reused once the texture backing them is
// deleted.
type TextureID int

// Renderer is the drawing surface the core issues triangle/line/glyph
// draws and clip-stack pushes against. The core never implements this
// itself; internal/termrender is the one adapter in this module, backing
// it with a terminal cell grid rather than a GPU or rasterizer, since a
// glyph draw onto a terminal degenerates to "write this styled rune into
// this cell" and a triangle/line draw degenerates to a box-drawing cell
// fill (used only for the Dock Manager's split separators and drag
// preview overlay).
type Renderer interface {
	// DrawTriangles draws count triangles from the given position/uv/color
	// slices, sampling texture.
	DrawTriangles(positions []layout.Point, uvs []layout.Point, colors []Color, count int, texture TextureID)
	// DrawLines draws count line segments from the given position/color
	// slices.
	DrawLines(positions []layout.Point, colors []Color, count int)
	// DrawCharacter draws the glyph held in texture at position in color.
	DrawCharacter(texture TextureID, position layout.Point, color Color)

	// PushClip pushes rect onto the clip stack, intersecting with any
	// already-active clip.
	PushClip(rect layout.Rect)
	// PopClip pops the most recently pushed clip. Popping an empty stack
	// is an InvalidState error.
	PopClip() error

	// NewCharacterTexture uploads a w×h grayscale glyph bitmap and returns
	// its texture id.
	NewCharacterTexture(w, h int, grayscale []byte) (TextureID, error)
	// DeleteCharacterTexture releases the texture backing id, which may be
	// reused by a later NewCharacterTexture call.
	DeleteCharacterTexture(id TextureID)
}

// Color is an RGBA color in the [0,1] per-channel range, the vocabulary
// Renderer draws expect.
type Color struct {
	R, G, B, A float64
}

// Font resolves per-codepoint metrics for layout and rendering. Interface
// only; internal/layout.MonospaceFont is this module's one implementation,
// since a terminal cell grid's font is always monospace.
type Font interface {
	// Advance returns the pen advance for codepoint r.
	Advance(r rune) layout.Pixel
	// GlyphRect returns r's glyph placement rectangle relative to the pen
	// position.
	GlyphRect(r rune) layout.Rect
	// Kerning returns the 2-D offset applied between codepoints a and b.
	Kerning(a, b rune) (layout.Pixel, layout.Pixel)
	// LineHeight returns the font's line height.
	LineHeight() layout.Pixel
	// MaxAdvance returns the font's maximum advance width.
	MaxAdvance() layout.Pixel
}

// Window is the platform window the core reads input from and converts
// coordinates against. Interface only.
type Window interface {
	// ClientToScreen converts a client-area pixel position to screen
	// coordinates.
	ClientToScreen(p layout.Point) layout.Point
	// ScreenToClient converts a screen pixel position to client-area
	// coordinates.
	ScreenToClient(p layout.Point) layout.Point

	// CaptureMouse directs subsequent mouse events to this window
	// regardless of pointer position, used while a drag is in progress.
	CaptureMouse()
	// ReleaseMouse releases a mouse capture taken by CaptureMouse.
	ReleaseMouse()
	// MousePosition returns the current mouse position in client
	// coordinates.
	MousePosition() layout.Point
	// KeyDown reports whether the given key code is currently held.
	KeyDown(key int) bool
}

// HotkeyMatch is the outcome of feeding one key gesture to a
// HotkeyRegistry.
type HotkeyMatch int

const (
	// HotkeyNoMatch means the gesture matches no registered chain prefix.
	HotkeyNoMatch HotkeyMatch = iota
	// HotkeyIntermediate means the gesture extends a registered chain
	// prefix but does not yet complete one.
	HotkeyIntermediate
	// HotkeyFinal means the gesture completes a registered chain; Callback
	// is populated and must be invoked by the caller.
	HotkeyFinal
)

// HotkeyRegistry is a chain-aware key-gesture dispatcher consumed above
// the core. The core depends only on registered callbacks eventually
// firing, and never while an Edit Engine Scope is open. Interface only;
// unimplemented in this module, as spec.md requires.
type HotkeyRegistry interface {
	// Feed advances the registry's pending-chain state with one gesture,
	// reporting the match outcome and, for HotkeyFinal, the callback to
	// invoke.
	Feed(gesture string) (HotkeyMatch, func())
	// Reset clears any pending chain, firing a chain-interrupted
	// notification if a chain was in progress.
	Reset()
}
