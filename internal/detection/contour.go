package detection

// Point is a 2D coordinate in pixel space.
type Point struct {
	X float64 `json:"x"` // Horizontal position (0 = leftmost)
	Y float64 `json:"y"` // Vertical position (0 = topmost)
}

// Contour is an ordered outline of a region. Consecutive points are
// 8-connected neighbors, the walk direction is clockwise in screen
// coordinates, and the last point connects implicitly back to the first.
type Contour []Point

// Moore neighborhood offsets, clockwise starting east, with y pointing
// down: E, SE, S, SW, W, NW, N, NE.
var (
	neighborDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	neighborDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

// maxTraceSteps caps a single boundary walk. A healthy contour closes long
// before this; hitting the cap means pathological input (dense texture,
// maze-like edges) and the walk is abandoned with whatever was collected.
const maxTraceSteps = 20000

// TraceContours extracts ordered outlines from an edge map using Moore
// neighborhood boundary following.
//
// The edge map is scanned row-major. Each unvisited edge pixel starts a
// clockwise boundary walk: from the current pixel the eight neighbors are
// probed in clockwise order, and the first unvisited edge pixel found
// becomes the next contour point. Reaching the starting pixel again closes
// the contour. The probe order starts east on the first step; on later
// steps it resumes five positions past the direction just walked, which
// keeps the walk hugging the boundary instead of doubling back.
//
// Every pixel added to a contour is marked visited in place, so each edge
// pixel belongs to at most one contour and a second call on the same
// [EdgeGrid] finds nothing.
//
// Parameters:
//   - edges: Edge map to consume. Mutated in place.
//   - minLength: Keep only contours with strictly more points than this.
//     Shorter walks are discarded as noise (their pixels stay consumed).
//
// Returns the kept contours in discovery order, plus the number of walks
// that were cut off at the internal step cap. Truncated walks still yield
// their partial contour; the count is a diagnostic for the caller to log.
//
// # Dead Ends
//
// A walk that finds no eligible neighbor (an open stroke, or an outline
// clipped by the image border) stops and returns the partial contour
// collected so far. Downstream filtering usually removes these, since an
// open stroke encloses little area.
func TraceContours(edges *EdgeGrid, minLength int) ([]Contour, int) {
	contours := make([]Contour, 0)
	truncated := 0

	for y := 0; y < edges.Height; y++ {
		for x := 0; x < edges.Width; x++ {
			if edges.Cells[y*edges.Width+x] != cellEdge {
				continue
			}
			contour, hitCap := traceFrom(edges, x, y)
			if hitCap {
				truncated++
			}
			if len(contour) > minLength {
				contours = append(contours, contour)
			}
		}
	}

	return contours, truncated
}

// traceFrom walks one boundary starting at the edge pixel (startX, startY),
// marking every consumed pixel visited. It reports whether the walk was
// truncated at maxTraceSteps.
func traceFrom(edges *EdgeGrid, startX, startY int) (Contour, bool) {
	contour := Contour{{X: float64(startX), Y: float64(startY)}}
	edges.Cells[startY*edges.Width+startX] = cellVisited

	x, y := startX, startY
	scanStart := 0 // east on the first step

	for step := 0; step < maxTraceSteps; step++ {
		found := -1
		for i := 0; i < 8; i++ {
			dir := (scanStart + i) % 8
			nx := x + neighborDX[dir]
			ny := y + neighborDY[dir]

			if nx == startX && ny == startY {
				// Back at the start: the boundary is closed.
				return contour, false
			}
			if edges.at(nx, ny) == cellEdge {
				found = dir
				break
			}
		}

		if found < 0 {
			// Dead end: open stroke or border-clipped outline.
			return contour, false
		}

		x += neighborDX[found]
		y += neighborDY[found]
		contour = append(contour, Point{X: float64(x), Y: float64(y)})
		edges.Cells[y*edges.Width+x] = cellVisited

		// Resume scanning just behind the direction we came from, so the
		// walk keeps tracking the boundary clockwise.
		scanStart = (found + 5) % 8
	}

	return contour, true
}
