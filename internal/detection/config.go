package detection

// Config holds every tunable threshold in the detection pipeline.
//
// The zero value is usable: any field left at zero is replaced by the
// corresponding [DefaultConfig] value when the pipeline runs, so callers
// only set the fields they want to change. A nil *Config means "all
// defaults".
type Config struct {
	// EdgeThreshold is the Sobel gradient magnitude above which a pixel
	// counts as an edge. Higher values keep only strong contrast changes.
	EdgeThreshold float64 `json:"edge_threshold" yaml:"edge_threshold"`

	// MinContourLength is the minimum number of traced points a contour
	// must exceed to be kept. Filters out specks and short noise walks.
	MinContourLength int `json:"min_contour_length" yaml:"min_contour_length"`

	// MinContourArea is the minimum enclosed area in square pixels.
	// Contours below it are dropped before classification.
	MinContourArea float64 `json:"min_contour_area" yaml:"min_contour_area"`

	// DuplicateCenterTolerance is the center distance in pixels under
	// which two contours are treated as duplicates of the same shape
	// (typically the inner and outer edge of one stroked outline).
	DuplicateCenterTolerance float64 `json:"duplicate_center_tolerance" yaml:"duplicate_center_tolerance"`

	// SimplifyEpsilonFraction scales each contour's perimeter to obtain
	// the Douglas-Peucker tolerance, so simplification is resolution
	// independent.
	SimplifyEpsilonFraction float64 `json:"simplify_epsilon_fraction" yaml:"simplify_epsilon_fraction"`

	// ClosedLoopTolerance is the distance in pixels under which the first
	// and last simplified vertices are considered the same corner.
	ClosedLoopTolerance float64 `json:"closed_loop_tolerance" yaml:"closed_loop_tolerance"`

	// AspectRatioRejectAbove rejects contours whose bounding box is more
	// elongated than this ratio. Catches lines and text strokes.
	AspectRatioRejectAbove float64 `json:"aspect_ratio_reject_above" yaml:"aspect_ratio_reject_above"`

	// CircularityThreshold is the circularity above which a contour is
	// classified as a circle before any corner analysis runs.
	CircularityThreshold float64 `json:"circularity_threshold" yaml:"circularity_threshold"`
}

// DefaultConfig returns the canonical pipeline tuning.
//
// The values are calibrated for shapes tens to hundreds of pixels across in
// clean, high-contrast images.
func DefaultConfig() *Config {
	return &Config{
		EdgeThreshold:            128,
		MinContourLength:         30,
		MinContourArea:           50,
		DuplicateCenterTolerance: 15,
		SimplifyEpsilonFraction:  0.06,
		ClosedLoopTolerance:      10,
		AspectRatioRejectAbove:   5.0,
		CircularityThreshold:     0.80,
	}
}

// WithDefaults returns a copy of c with every zero field replaced by its
// default. A nil receiver yields DefaultConfig. Detect applies this
// itself; callers that read tunables off a Config directly should apply
// it first.
func (c *Config) WithDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	out := *c
	def := DefaultConfig()
	if out.EdgeThreshold == 0 {
		out.EdgeThreshold = def.EdgeThreshold
	}
	if out.MinContourLength == 0 {
		out.MinContourLength = def.MinContourLength
	}
	if out.MinContourArea == 0 {
		out.MinContourArea = def.MinContourArea
	}
	if out.DuplicateCenterTolerance == 0 {
		out.DuplicateCenterTolerance = def.DuplicateCenterTolerance
	}
	if out.SimplifyEpsilonFraction == 0 {
		out.SimplifyEpsilonFraction = def.SimplifyEpsilonFraction
	}
	if out.ClosedLoopTolerance == 0 {
		out.ClosedLoopTolerance = def.ClosedLoopTolerance
	}
	if out.AspectRatioRejectAbove == 0 {
		out.AspectRatioRejectAbove = def.AspectRatioRejectAbove
	}
	if out.CircularityThreshold == 0 {
		out.CircularityThreshold = def.CircularityThreshold
	}
	return &out
}
