// Package layout supplies the pixel-coordinate geometry and codepoint
// display-width hit-testing shared by the Edit Engine's Up/Down baseline
// movement and the Dock Manager's drag-zone math.
//
// Positions elsewhere in the core are codepoint-indexed (linestore.Position),
// but a caret's baseline and a drag cursor are both pixel quantities. This
// package is the one place that converts between the two, grounded on the
// teacher's renderer/viewport scroll-margin math and renderer/layout line
// measurement, generalized from a terminal-cell grid's fixed advance width
// to account for double-width codepoints via github.com/rivo/uniseg rather
// than a naive len([]rune(s)) count.
package layout
