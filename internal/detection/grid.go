package detection

import (
	"image"
	"math"
)

// Grid is a single-channel intensity raster.
//
// Pixels are stored row-major in Pix, one byte per pixel, so the intensity
// at (x, y) lives at Pix[y*Width+x]. A Grid is written once during grayscale
// conversion and treated as read-only afterwards.
type Grid struct {
	// Width is the raster width in pixels.
	Width int

	// Height is the raster height in pixels.
	Height int

	// Pix holds Width*Height intensity bytes in row-major order.
	Pix []uint8
}

// NewGrid allocates a zeroed Width x Height intensity grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the intensity at (x, y). Coordinates must be in bounds.
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// at0 returns the intensity at (x, y), reading off-grid coordinates as 0.
// Neighborhood sampling near the border relies on this so the convolution
// never needs a special case.
func (g *Grid) at0(x, y int) uint8 {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0
	}
	return g.Pix[y*g.Width+x]
}

// Grayscale converts an interleaved RGBA pixel buffer to an intensity grid.
//
// The buffer layout is the common canvas/image format: four bytes per pixel
// (R, G, B, A) in row-major order, so len(pix) must be width*height*4. The
// alpha channel is ignored.
//
// Luminance uses the ITU-R BT.601 weights, rounded to the nearest integer:
//
//	Y = round(0.299*R + 0.587*G + 0.114*B)
//
// The conversion is pure; the input buffer is never modified.
func Grayscale(pix []uint8, width, height int) *Grid {
	g := NewGrid(width, height)
	for i := 0; i < width*height; i++ {
		r := float64(pix[i*4])
		gr := float64(pix[i*4+1])
		b := float64(pix[i*4+2])
		g.Pix[i] = uint8(math.Round(0.299*r + 0.587*gr + 0.114*b))
	}
	return g
}

// GrayscaleImage converts a decoded image to an intensity grid using the
// same BT.601 weights as [Grayscale]. The image's own bounds origin is
// normalized away: grid (0, 0) is the image's top-left pixel.
func GrayscaleImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, gr, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(gr>>8) + 0.114*float64(b>>8)
			g.Pix[y*width+x] = uint8(math.Round(lum))
		}
	}
	return g
}

// Edge grid cell states. Background and edge are fixed by the detector;
// the tracer overwrites consumed edge cells with cellVisited so each pixel
// joins at most one contour.
const (
	cellBackground uint8 = 0
	cellVisited    uint8 = 128
	cellEdge       uint8 = 255
)

// EdgeGrid is a binary edge map with tracing state.
//
// Cells start as cellBackground or cellEdge after edge detection. The
// contour tracer mutates cells in place, so an EdgeGrid belongs to exactly
// one detection pass and is not safe for concurrent use.
type EdgeGrid struct {
	// Width is the map width in pixels.
	Width int

	// Height is the map height in pixels.
	Height int

	// Cells holds Width*Height cell states in row-major order.
	Cells []uint8
}

// NewEdgeGrid allocates an all-background edge map.
func NewEdgeGrid(width, height int) *EdgeGrid {
	return &EdgeGrid{
		Width:  width,
		Height: height,
		Cells:  make([]uint8, width*height),
	}
}

// at returns the cell state at (x, y), reading off-grid coordinates as
// background.
func (e *EdgeGrid) at(x, y int) uint8 {
	if x < 0 || x >= e.Width || y < 0 || y >= e.Height {
		return cellBackground
	}
	return e.Cells[y*e.Width+x]
}

// Image renders the edge map as a grayscale image: white for edge pixels
// (visited or not), black for background. Useful for debugging a detection
// pass and for the edge map preview tool.
func (e *EdgeGrid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, e.Width, e.Height))
	for i, c := range e.Cells {
		if c != cellBackground {
			img.Pix[i] = 255
		}
	}
	return img
}
