package app

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/limn3d/limn/gpu"
)

const atlasSize = 512

// TextItem is one HUD string. Position is in pixels from the top-left
// corner of the window.
type TextItem struct {
	Text     string
	Position [2]float32
	Scale    float32
	Color    [4]float32
}

type glyphInfo struct {
	uvMin [2]float32
	uvMax [2]float32
	size  [2]float32
	off   [2]float32
	adv   float32
}

// HUD accumulates overlay strings per frame and turns them into glyph
// quads over an atlas rendered once from the bundled Go Regular face.
type HUD struct {
	atlas  *image.Alpha
	glyphs map[rune]glyphInfo
	face   font.Face

	items []TextItem
}

func NewHUD(fontSize float64) (*HUD, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}

	atlas := image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize))
	glyphs := make(map[rune]glyphInfo)

	x, y := 2, 2
	rowHeight := 0

	for r := rune(32); r < 127; r++ {
		bounds, mask, _, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}

		w := mask.Bounds().Dx()
		h := mask.Bounds().Dy()

		if x+w >= atlasSize {
			x = 2
			y += rowHeight + 4
			rowHeight = 0
		}
		if y+h >= atlasSize {
			break
		}

		draw.Draw(atlas, image.Rect(x, y, x+w, y+h), mask, mask.Bounds().Min, draw.Src)

		glyphs[r] = glyphInfo{
			uvMin: [2]float32{float32(x) / atlasSize, float32(y) / atlasSize},
			uvMax: [2]float32{float32(x+w) / atlasSize, float32(y+h) / atlasSize},
			size:  [2]float32{float32(w), float32(h)},
			off:   [2]float32{float32(bounds.Min.X), float32(bounds.Min.Y)},
			adv:   float32(adv) / 64.0, // fixed 26.6 to float
		}

		x += w + 4
		if h > rowHeight {
			rowHeight = h
		}
	}

	return &HUD{
		atlas:  atlas,
		glyphs: glyphs,
		face:   face,
	}, nil
}

// Atlas returns the rendered glyph atlas for texture upload.
func (h *HUD) Atlas() *image.Alpha { return h.atlas }

// Clear drops the accumulated items. Call once per frame.
func (h *HUD) Clear() {
	if h == nil {
		return
	}
	h.items = h.items[:0]
}

// Print queues a string at a pixel position. Safe on a nil HUD so callers
// need not care whether the font loaded.
func (h *HUD) Print(text string, x, y, scale float32, color [4]float32) {
	if h == nil {
		return
	}
	h.items = append(h.items, TextItem{
		Text:     text,
		Position: [2]float32{x, y},
		Scale:    scale,
		Color:    color,
	})
}

// BuildVertices lays out all queued items as two triangles per glyph in
// NDC for the given surface size.
func (h *HUD) BuildVertices(screenW, screenH int) []gpu.TextVertex {
	vertices := make([]gpu.TextVertex, 0, len(h.items)*6)

	sw := float32(screenW)
	sh := float32(screenH)
	metrics := h.face.Metrics()
	ascent := float32(metrics.Ascent.Ceil())
	lineHeight := float32(metrics.Height.Ceil())

	for _, item := range h.items {
		startX := item.Position[0]
		posX := startX
		posY := item.Position[1] + ascent*item.Scale

		for _, r := range item.Text {
			if r == '\n' {
				posX = startX
				posY += lineHeight * item.Scale
				continue
			}

			g, ok := h.glyphs[r]
			if !ok {
				continue
			}

			x0 := (posX+g.off[0]*item.Scale)/sw*2.0 - 1.0
			y0 := 1.0 - (posY+g.off[1]*item.Scale)/sh*2.0
			x1 := (posX+(g.off[0]+g.size[0])*item.Scale)/sw*2.0 - 1.0
			y1 := 1.0 - (posY+(g.off[1]+g.size[1])*item.Scale)/sh*2.0

			vertices = append(vertices,
				gpu.TextVertex{Pos: [2]float32{x0, y0}, UV: [2]float32{g.uvMin[0], g.uvMin[1]}, Color: item.Color},
				gpu.TextVertex{Pos: [2]float32{x1, y0}, UV: [2]float32{g.uvMax[0], g.uvMin[1]}, Color: item.Color},
				gpu.TextVertex{Pos: [2]float32{x0, y1}, UV: [2]float32{g.uvMin[0], g.uvMax[1]}, Color: item.Color},
				gpu.TextVertex{Pos: [2]float32{x1, y0}, UV: [2]float32{g.uvMax[0], g.uvMin[1]}, Color: item.Color},
				gpu.TextVertex{Pos: [2]float32{x1, y1}, UV: [2]float32{g.uvMax[0], g.uvMax[1]}, Color: item.Color},
				gpu.TextVertex{Pos: [2]float32{x0, y1}, UV: [2]float32{g.uvMin[0], g.uvMax[1]}, Color: item.Color},
			)

			posX += g.adv * item.Scale
		}
	}

	return vertices
}

// MeasureText returns the pixel width and height text will occupy at
// the given scale.
func (h *HUD) MeasureText(text string, scale float32) (float32, float32) {
	if h == nil {
		return 0, 0
	}
	metrics := h.face.Metrics()
	lineHeight := float32(metrics.Height.Ceil())

	maxW := float32(0)
	currentW := float32(0)
	lines := 1

	for _, r := range text {
		if r == '\n' {
			if currentW > maxW {
				maxW = currentW
			}
			currentW = 0
			lines++
			continue
		}

		g, ok := h.glyphs[r]
		if !ok {
			continue
		}
		currentW += g.adv * scale
	}

	if currentW > maxW {
		maxW = currentW
	}

	return maxW, lineHeight * scale * float32(lines)
}

func (h *HUD) LineHeight(scale float32) float32 {
	if h == nil {
		return 0
	}
	metrics := h.face.Metrics()
	return float32(metrics.Height.Ceil()) * scale
}
