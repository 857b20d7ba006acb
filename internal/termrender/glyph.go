package termrender

import (
	"github.com/dshills/keystorm-dock/internal/coreapi"
	"github.com/dshills/keystorm-dock/internal/coreerr"
)

// EncodeGlyphBitmap produces the grayscale payload this backend expects
// from coreapi.Renderer.NewCharacterTexture: the rune to draw, encoded as
// four big-endian bytes, with no actual pixel data. A rasterizing backend
// would instead upload a real w*h grayscale bitmap; this terminal backend
// has no pixels to rasterize onto, so the rune itself is the payload.
func EncodeGlyphBitmap(r rune) []byte {
	v := uint32(r)
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func decodeGlyphBitmap(grayscale []byte) rune {
	if len(grayscale) < 4 {
		return ' '
	}
	v := uint32(grayscale[0])<<24 | uint32(grayscale[1])<<16 | uint32(grayscale[2])<<8 | uint32(grayscale[3])
	return rune(v)
}

type glyphTexture struct {
	r rune
}

// glyphTable owns every live TextureID this backend has issued.
type glyphTable struct {
	slots []glyphTexture
	alive []bool
	free  []int
}

func newGlyphTable() *glyphTable {
	return &glyphTable{}
}

func (g *glyphTable) insert(r rune) coreapi.TextureID {
	if n := len(g.free); n > 0 {
		idx := g.free[n-1]
		g.free = g.free[:n-1]
		g.slots[idx] = glyphTexture{r: r}
		g.alive[idx] = true
		return coreapi.TextureID(idx)
	}
	g.slots = append(g.slots, glyphTexture{r: r})
	g.alive = append(g.alive, true)
	return coreapi.TextureID(len(g.slots) - 1)
}

func (g *glyphTable) get(id coreapi.TextureID) (rune, bool) {
	i := int(id)
	if i < 0 || i >= len(g.slots) || !g.alive[i] {
		return 0, false
	}
	return g.slots[i].r, true
}

func (g *glyphTable) remove(id coreapi.TextureID) error {
	i := int(id)
	if i < 0 || i >= len(g.slots) || !g.alive[i] {
		return coreerr.InvalidStatef("termrender: texture %d is not live", id)
	}
	g.alive[i] = false
	g.free = append(g.free, i)
	return nil
}
