// Package termrender is the one concrete coreapi.Renderer/coreapi.Window
// adapter this module ships, backed by tcell.
//
// A terminal has no triangles, lines, or rasterized glyph textures of its
// own: it has a grid of styled cells. This adapter degenerates each
// coreapi.Renderer draw call onto that grid. DrawCharacter writes a rune
// into the nearest cell; DrawLines and DrawTriangles, used only by the
// Dock Manager's split separators and drag-preview overlay, fill their
// covered cells with box-drawing characters rather than true vector
// strokes. A character texture is, on this backend, nothing more than the
// rune it was encoded from — see glyph.go.
package termrender
