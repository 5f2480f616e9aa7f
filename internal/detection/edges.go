package detection

import "math"

// Sobel kernels for the horizontal and vertical gradient, indexed [dy+1][dx+1].
var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// DetectEdges marks every pixel whose Sobel gradient magnitude exceeds
// threshold.
//
// The horizontal and vertical 3x3 Sobel kernels are convolved at each
// interior pixel and combined as magnitude = sqrt(gx² + gy²). Pixels with
// magnitude strictly above threshold become edge cells; everything else is
// background.
//
// Parameters:
//   - g: Intensity grid to scan.
//   - threshold: Gradient magnitude cutoff. 128 (the [DefaultConfig] value)
//     keeps solid outlines while ignoring mild shading; lower values pick up
//     fainter boundaries and more noise.
//
// Returns a fresh [EdgeGrid] of the same dimensions, ready for contour
// tracing.
//
// # Border Policy
//
// The outermost one-pixel border is never marked: a 3x3 neighborhood does
// not fully exist there, and any sample the kernels would take outside the
// grid reads as intensity 0. Shapes touching the image border therefore
// lose their outermost edge pixels, which downstream tracing handles as a
// dead-ended (partial) contour.
func DetectEdges(g *Grid, threshold float64) *EdgeGrid {
	edges := NewEdgeGrid(g.Width, g.Height)

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			var gx, gy float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v := float64(g.at0(x+dx, y+dy))
					gx += sobelX[dy+1][dx+1] * v
					gy += sobelY[dy+1][dx+1] * v
				}
			}
			if math.Sqrt(gx*gx+gy*gy) > threshold {
				edges.Cells[y*g.Width+x] = cellEdge
			}
		}
	}

	return edges
}
