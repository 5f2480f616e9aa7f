package detection

// FilterContours removes noise and duplicate outlines before classification.
//
// Two passes run in order:
//
//  1. Area floor: contours enclosing less than cfg.MinContourArea square
//     pixels are dropped. This removes specks and open strokes, which
//     enclose almost nothing.
//  2. Duplicate collapse: every surviving pair is compared, and when two
//     centers lie within cfg.DuplicateCenterTolerance pixels the smaller
//     area loses. A stroked outline traces as two concentric contours (the
//     ink's outer and inner boundary); this pass keeps only the outer one.
//
// The comparison is all pairs, O(n²) in the number of surviving contours,
// which is fine for the tens of contours a typical image yields. Survivors
// keep their discovery order.
func FilterContours(contours []Contour, cfg *Config) []Contour {
	cfg = cfg.WithDefaults()

	kept := make([]Contour, 0, len(contours))
	areas := make([]float64, 0, len(contours))
	centers := make([]Point, 0, len(contours))
	for _, c := range contours {
		m := ComputeMetrics(c)
		if m.Area < cfg.MinContourArea {
			continue
		}
		kept = append(kept, c)
		areas = append(areas, m.Area)
		centers = append(centers, m.Center)
	}

	dropped := make([]bool, len(kept))
	for i := 0; i < len(kept); i++ {
		if dropped[i] {
			continue
		}
		for j := i + 1; j < len(kept); j++ {
			if dropped[j] {
				continue
			}
			if pointDistance(centers[i], centers[j]) >= cfg.DuplicateCenterTolerance {
				continue
			}
			// Same shape twice: keep whichever encloses more.
			if areas[j] > areas[i] {
				dropped[i] = true
				break
			}
			dropped[j] = true
		}
	}

	out := make([]Contour, 0, len(kept))
	for i, c := range kept {
		if !dropped[i] {
			out = append(out, c)
		}
	}
	return out
}
