package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/detection"
)

// AnnotateResult contains the source image with detection overlays drawn on
// top, encoded as base64 PNG.
type AnnotateResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ShapeCount  int    `json:"shape_count"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// shapeHues assigns each shape class a fixed hue (degrees) so annotations
// are visually distinguishable without a legend lookup per run.
var shapeHues = map[detection.ShapeType]float64{
	detection.ShapeCircle:    210, // blue
	detection.ShapeTriangle:  120, // green
	detection.ShapeRectangle: 25,  // orange
	detection.ShapePentagon:  285, // purple
	detection.ShapeStar:      55,  // yellow
}

// classColor returns the overlay color for a shape class. Unknown classes
// fall back to red.
func classColor(t detection.ShapeType) color.RGBA {
	hue, ok := shapeHues[t]
	if !ok {
		hue = 0
	}
	r, g, b := colorful.Hsv(hue, 0.85, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Annotate draws the detected shapes over the source image and returns the
// result as base64-encoded PNG.
//
// Each shape gets its bounding box outlined in its class color, a small
// cross at its center, and a numeric label ("1", "2", ...) at the top-left
// corner of the box matching the shape's position in the result list. The
// input image is not modified.
func Annotate(img image.Image, shapes []detection.Shape) (*AnnotateResult, error) {
	result := renderAnnotations(img, shapes)

	var buf bytes.Buffer
	if err := png.Encode(&buf, result); err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}

	bounds := result.Bounds()
	return &AnnotateResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ShapeCount:  len(shapes),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveAnnotated draws the detected shapes over the source image and writes
// the result to path. The output format follows the file extension.
func SaveAnnotated(img image.Image, shapes []detection.Shape, path string) error {
	if err := imaging.Save(renderAnnotations(img, shapes), path); err != nil {
		return fmt.Errorf("failed to save annotated image: %w", err)
	}
	return nil
}

// renderAnnotations copies the source image and draws one overlay per shape.
func renderAnnotations(img image.Image, shapes []detection.Shape) *image.RGBA {
	bounds := img.Bounds()
	result := image.NewRGBA(bounds)
	draw.Draw(result, bounds, img, bounds.Min, draw.Src)

	labelBg := color.RGBA{0, 0, 0, 180}
	for i, s := range shapes {
		c := classColor(s.Type)
		drawBox(result,
			bounds.Min.X+int(s.Bounds.X1), bounds.Min.Y+int(s.Bounds.Y1),
			bounds.Min.X+int(s.Bounds.X2), bounds.Min.Y+int(s.Bounds.Y2), c)
		drawCross(result, bounds.Min.X+int(s.Center.X), bounds.Min.Y+int(s.Center.Y), 3, c)
		drawLabel(result,
			bounds.Min.X+int(s.Bounds.X1)+2, bounds.Min.Y+int(s.Bounds.Y1)+2,
			fmt.Sprintf("%d", i+1), color.RGBA{255, 255, 255, 255}, labelBg)
	}

	return result
}

// drawBox outlines the axis-aligned rectangle (x1, y1)-(x2, y2) inclusive.
func drawBox(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA) {
	for x := x1; x <= x2; x++ {
		setInBounds(img, x, y1, c)
		setInBounds(img, x, y2, c)
	}
	for y := y1; y <= y2; y++ {
		setInBounds(img, x1, y, c)
		setInBounds(img, x2, y, c)
	}
}

// drawCross draws a plus-shaped marker of the given arm length centered at
// (x, y).
func drawCross(img *image.RGBA, x, y, arm int, c color.RGBA) {
	for d := -arm; d <= arm; d++ {
		setInBounds(img, x+d, y, c)
		setInBounds(img, x, y+d, c)
	}
}

// setInBounds sets a pixel, silently skipping coordinates outside the image.
func setInBounds(img *image.RGBA, x, y int, c color.RGBA) {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		img.Set(x, y, c)
	}
}

// drawLabel draws a simple text label at the given position
// This is a basic implementation - for production, consider using a font library
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	// Simple 3x5 pixel font for digits
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	// Draw background
	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.Set(px, py, bg)
			}
		}
	}

	// Draw text
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
						img.Set(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
