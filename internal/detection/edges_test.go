package detection

import "testing"

// makeStepGrid builds a grid whose left half is lo and right half hi, with
// the step at column split.
func makeStepGrid(width, height, split int, lo, hi uint8) *Grid {
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := lo
			if x >= split {
				v = hi
			}
			g.Pix[y*width+x] = v
		}
	}
	return g
}

func TestDetectEdges_VerticalStep(t *testing.T) {
	g := makeStepGrid(50, 50, 25, 0, 255)

	edges := DetectEdges(g, 128)

	// The two columns flanking the step see the full gradient.
	for y := 1; y < 49; y++ {
		if edges.at(24, y) != cellEdge {
			t.Errorf("expected edge at (24, %d)", y)
		}
		if edges.at(25, y) != cellEdge {
			t.Errorf("expected edge at (25, %d)", y)
		}
	}

	// Far from the step there is nothing to find.
	for y := 1; y < 49; y++ {
		if edges.at(10, y) != cellBackground {
			t.Errorf("unexpected edge at (10, %d)", y)
		}
		if edges.at(40, y) != cellBackground {
			t.Errorf("unexpected edge at (40, %d)", y)
		}
	}
}

func TestDetectEdges_UniformGrid(t *testing.T) {
	g := NewGrid(40, 40)
	for i := range g.Pix {
		g.Pix[i] = 128
	}

	edges := DetectEdges(g, 128)

	for i, c := range edges.Cells {
		if c != cellBackground {
			t.Fatalf("uniform grid produced an edge at index %d", i)
		}
	}
}

func TestDetectEdges_BorderNeverMarked(t *testing.T) {
	// The step reaches every row, so columns 14 and 15 are solid edges in
	// the interior. The border must stay clear anyway.
	g := makeStepGrid(30, 30, 15, 0, 255)

	edges := DetectEdges(g, 128)

	if edges.at(14, 15) != cellEdge {
		t.Fatal("expected an interior edge; test image is broken")
	}
	for x := 0; x < 30; x++ {
		if edges.at(x, 0) != cellBackground || edges.at(x, 29) != cellBackground {
			t.Fatalf("border row marked at x=%d", x)
		}
	}
	for y := 0; y < 30; y++ {
		if edges.at(0, y) != cellBackground || edges.at(29, y) != cellBackground {
			t.Fatalf("border column marked at y=%d", y)
		}
	}
}

func TestDetectEdges_ThresholdRespected(t *testing.T) {
	// A soft step of 10 intensity levels: gradient magnitude 40.
	g := makeStepGrid(50, 50, 25, 100, 110)

	strong := DetectEdges(g, 128)
	for i, c := range strong.Cells {
		if c != cellBackground {
			t.Fatalf("threshold 128 should suppress a soft step, edge at index %d", i)
		}
	}

	weak := DetectEdges(g, 30)
	if weak.at(24, 25) != cellEdge {
		t.Error("threshold 30 should keep a soft step")
	}
}

func TestDetectEdges_TinyGrid(t *testing.T) {
	// No interior pixels at all; must not panic and must stay empty.
	g := makeStepGrid(2, 2, 1, 0, 255)

	edges := DetectEdges(g, 128)

	for i, c := range edges.Cells {
		if c != cellBackground {
			t.Errorf("2x2 grid should have no edges, got one at index %d", i)
		}
	}
}
