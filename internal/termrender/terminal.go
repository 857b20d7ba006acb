package termrender

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keystorm-dock/internal/coreapi"
	"github.com/dshills/keystorm-dock/internal/coreerr"
	"github.com/dshills/keystorm-dock/internal/layout"
)

// Terminal adapts a tcell.Screen to coreapi.Renderer and coreapi.Window.
// Positions it receives are expected in cell units (one layout.Pixel per
// terminal column/row) rather than true device pixels: callers construct
// their internal/layout.MonospaceFont with CellWidth = CellHeight = 1 when
// pairing it with this backend.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	glyphs *glyphTable

	clipStack []layout.Rect

	mousePos      layout.Point
	mouseCaptured bool

	resizeHandler func(w, h int)
}

// NewTerminal creates a Terminal backed by a freshly probed tcell.Screen.
// The screen is not yet initialized; call Init before use.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen, glyphs: newGlyphTable()}, nil
}

// Init initializes the underlying terminal and enables mouse and
// bracketed-paste reporting, matching the teacher's terminal backend
// defaults.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal to its pre-Init state.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// OnResize registers callback to run from PollEvent each time it observes
// a terminal resize.
func (t *Terminal) OnResize(callback func(w, h int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resizeHandler = callback
}

// PollEvent blocks for the next tcell event, tracking mouse position as a
// side effect so MousePosition stays current between polls. The returned
// event is tcell's own: this module has no HotkeyRegistry implementation
// to translate key gestures into, so the caller matches on tcell's event
// types directly, same as the teacher's own renderer/backend callers did
// before going through its dispatcher layer.
func (t *Terminal) PollEvent() tcell.Event {
	ev := t.screen.PollEvent()
	switch e := ev.(type) {
	case *tcell.EventMouse:
		x, y := e.Position()
		t.mu.Lock()
		t.mousePos = layout.Point{X: layout.Pixel(x), Y: layout.Pixel(y)}
		t.mu.Unlock()
	case *tcell.EventResize:
		w, h := e.Size()
		t.mu.Lock()
		handler := t.resizeHandler
		t.mu.Unlock()
		if handler != nil {
			handler(w, h)
		}
	}
	return ev
}

// Show flushes pending draws to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// Size returns the terminal's current dimensions in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// --- coreapi.Renderer ---

func (t *Terminal) activeClip() (layout.Rect, bool) {
	if len(t.clipStack) == 0 {
		return layout.Rect{}, false
	}
	return t.clipStack[len(t.clipStack)-1], true
}

func (t *Terminal) clipAllows(x, y int) bool {
	clip, ok := t.activeClip()
	if !ok {
		return true
	}
	return clip.Contains(layout.Point{X: layout.Pixel(x), Y: layout.Pixel(y)})
}

// PushClip pushes rect onto the clip stack, intersecting it with whatever
// clip is already active so nested pushes only ever shrink the drawable
// region.
func (t *Terminal) PushClip(rect layout.Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if active, ok := t.activeClip(); ok {
		rect = intersectRect(active, rect)
	}
	t.clipStack = append(t.clipStack, rect)
}

// PopClip pops the most recently pushed clip.
func (t *Terminal) PopClip() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.clipStack) == 0 {
		return coreerr.InvalidStatef("termrender: PopClip called with an empty clip stack")
	}
	t.clipStack = t.clipStack[:len(t.clipStack)-1]
	return nil
}

func intersectRect(a, b layout.Rect) layout.Rect {
	left := max(a.X, b.X)
	top := max(a.Y, b.Y)
	right := min(a.X+a.W, b.X+b.W)
	bottom := min(a.Y+a.H, b.Y+b.H)
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	return layout.Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// setCell writes r in color at cell (x, y) if the active clip allows it.
func (t *Terminal) setCell(x, y int, r rune, color coreapi.Color) {
	if !t.clipAllows(x, y) {
		return
	}
	style := tcell.StyleDefault.Foreground(tcellColor(color))
	t.screen.SetContent(x, y, r, nil, style)
}

// DrawCharacter writes the rune texture was created from into the cell
// nearest position.
func (t *Terminal) DrawCharacter(texture coreapi.TextureID, position layout.Point, color coreapi.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.glyphs.get(texture)
	if !ok {
		return
	}
	t.setCell(int(position.X), int(position.Y), r, color)
}

// DrawLines fills every cell a straight segment between consecutive points
// passes over with a solid block, approximating a vector line on a
// character grid. Only the first count segments (2*count points) are
// drawn.
func (t *Terminal) DrawLines(positions []layout.Point, colors []coreapi.Color, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := 0; i < count && 2*i+1 < len(positions); i++ {
		color := coreapi.Color{A: 1}
		if i < len(colors) {
			color = colors[i]
		}
		t.drawLineCells(positions[2*i], positions[2*i+1], color)
	}
}

func (t *Terminal) drawLineCells(a, b layout.Point, color coreapi.Color) {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		t.setCell(x0, y0, '█', color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawTriangles fills the bounding box of every triangle (3 positions per
// triangle, the first count triangles only) with a solid block, the
// closest a character grid comes to a filled polygon. Used only for the
// Dock Manager's drag-preview overlay, which only ever needs a filled
// rectangle.
func (t *Terminal) DrawTriangles(positions []layout.Point, uvs []layout.Point, colors []coreapi.Color, count int, texture coreapi.TextureID) {
	_ = uvs
	_ = texture
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := 0; i < count && 3*i+2 < len(positions); i++ {
		color := coreapi.Color{A: 1}
		if 3*i < len(colors) {
			color = colors[3*i]
		}
		p0, p1, p2 := positions[3*i], positions[3*i+1], positions[3*i+2]
		minX := int(min(p0.X, min(p1.X, p2.X)))
		maxX := int(max(p0.X, max(p1.X, p2.X)))
		minY := int(min(p0.Y, min(p1.Y, p2.Y)))
		maxY := int(max(p0.Y, max(p1.Y, p2.Y)))
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				t.setCell(x, y, '█', color)
			}
		}
	}
}

// NewCharacterTexture registers grayscale (produced by EncodeGlyphBitmap)
// as a texture and returns its id.
func (t *Terminal) NewCharacterTexture(w, h int, grayscale []byte) (coreapi.TextureID, error) {
	_, _ = w, h
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.glyphs.insert(decodeGlyphBitmap(grayscale)), nil
}

// DeleteCharacterTexture releases the texture backing id.
func (t *Terminal) DeleteCharacterTexture(id coreapi.TextureID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.glyphs.remove(id)
}

// --- coreapi.Window ---

// ClientToScreen is the identity conversion: a terminal has exactly one
// window occupying the whole screen, so client and screen coordinates
// coincide.
func (t *Terminal) ClientToScreen(p layout.Point) layout.Point { return p }

// ScreenToClient is the identity conversion, for the same reason as
// ClientToScreen.
func (t *Terminal) ScreenToClient(p layout.Point) layout.Point { return p }

// CaptureMouse records that this window wants exclusive mouse delivery.
// tcell has no native pointer-capture concept (every mouse event already
// targets the one screen), so this is bookkeeping only, consulted by
// nothing else in this backend.
func (t *Terminal) CaptureMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mouseCaptured = true
}

// ReleaseMouse clears the capture flag set by CaptureMouse.
func (t *Terminal) ReleaseMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mouseCaptured = false
}

// MousePosition returns the position from the most recently polled mouse
// event.
func (t *Terminal) MousePosition() layout.Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mousePos
}

// KeyDown always reports false: terminal protocols report key press/release
// as discrete events, not as queryable held-key state.
func (t *Terminal) KeyDown(key int) bool {
	_ = key
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
