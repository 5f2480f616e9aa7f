package score

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/detection"
	"github.com/lvrreddy-3122005/shape-detector-solution/internal/imaging"
	"github.com/lvrreddy-3122005/shape-detector-solution/internal/store"
)

// Evaluator runs the detection pipeline over a corpus and scores the
// results against ground truth.
type Evaluator struct {
	// Cache loads and caches corpus images. Must not be nil.
	Cache *imaging.ImageCache

	// Config is the detection tuning to evaluate. nil means defaults.
	Config *detection.Config

	// Preprocess is applied to every image before detection. The zero
	// value leaves images untouched.
	Preprocess imaging.PreprocessOptions

	// Store, when set, records every per-image detection result as a run
	// so evaluations can be compared later.
	Store *store.Store
}

// ImageScore is the evaluation result for one corpus image.
type ImageScore struct {
	Image     string  `json:"image"`
	Expected  int     `json:"expected"`
	Detected  int     `json:"detected"`
	Matched   int     `json:"matched"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// TypeScore aggregates matching over one shape class across the corpus.
type TypeScore struct {
	Type      string  `json:"type"`
	Expected  int     `json:"expected"`
	Detected  int     `json:"detected"`
	Matched   int     `json:"matched"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Report is the full corpus evaluation result.
type Report struct {
	// Images holds per-image scores in corpus order.
	Images []ImageScore `json:"images"`

	// Types holds per-class aggregates, sorted by class name.
	Types []TypeScore `json:"types"`

	// MeanF1 and StdDevF1 summarize the per-image F1 distribution.
	MeanF1   float64 `json:"mean_f1"`
	StdDevF1 float64 `json:"stddev_f1"`
}

// Run evaluates the corpus and returns the aggregated report. An image
// that fails to load aborts the evaluation; a corpus referencing missing
// files is broken, not a detection failure.
func (e *Evaluator) Run(corpus *Corpus) (*Report, error) {
	report := &Report{}
	typeTotals := make(map[string]*TypeScore)

	for _, entry := range corpus.Images {
		img, err := e.Cache.Load(corpus.ImagePath(entry))
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus image %s: %w", entry.Image, err)
		}

		result := detection.DetectImage(imaging.Preprocess(img, e.Preprocess), e.Config)
		if e.Store != nil {
			if _, err := e.Store.RecordRun(corpus.ImagePath(entry), result); err != nil {
				return nil, fmt.Errorf("failed to record run for %s: %w", entry.Image, err)
			}
		}
		matched := matchShapes(result.Shapes, entry.Shapes)

		score := ImageScore{
			Image:    entry.Image,
			Expected: len(entry.Shapes),
			Detected: len(result.Shapes),
			Matched:  matched,
		}
		score.Precision, score.Recall, score.F1 = prf(matched, len(result.Shapes), len(entry.Shapes))
		report.Images = append(report.Images, score)

		tallyTypes(typeTotals, result.Shapes, entry.Shapes)
	}

	for name, ts := range typeTotals {
		ts.Type = name
		ts.Precision, ts.Recall, ts.F1 = prf(ts.Matched, ts.Detected, ts.Expected)
		report.Types = append(report.Types, *ts)
	}
	sort.Slice(report.Types, func(i, j int) bool {
		return report.Types[i].Type < report.Types[j].Type
	})

	// stat.Mean over zero samples yields NaN; an empty corpus reports 0.
	if len(report.Images) > 0 {
		f1s := make([]float64, len(report.Images))
		for i, s := range report.Images {
			f1s[i] = s.F1
		}
		report.MeanF1 = stat.Mean(f1s, nil)
		if len(f1s) > 1 {
			report.StdDevF1 = stat.StdDev(f1s, nil)
		}
	}

	return report, nil
}

// matchShapes counts how many expected shapes have a detection of the same
// type within their center tolerance. Matching is greedy: each expectation
// claims its nearest eligible unclaimed detection, so one detection never
// satisfies two expectations.
func matchShapes(detected []detection.Shape, expected []ExpectedShape) int {
	claimed := make([]bool, len(detected))
	matched := 0

	for _, exp := range expected {
		best := -1
		bestDist := math.Inf(1)
		for i, shape := range detected {
			if claimed[i] || string(shape.Type) != exp.Type {
				continue
			}
			dx := shape.Center.X - exp.CenterX
			dy := shape.Center.Y - exp.CenterY
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist <= exp.Tolerance && dist < bestDist {
				best = i
				bestDist = dist
			}
		}
		if best >= 0 {
			claimed[best] = true
			matched++
		}
	}

	return matched
}

// tallyTypes accumulates per-class expected/detected/matched counts for
// one image into totals.
func tallyTypes(totals map[string]*TypeScore, detected []detection.Shape, expected []ExpectedShape) {
	forType := func(name string) *TypeScore {
		ts, ok := totals[name]
		if !ok {
			ts = &TypeScore{}
			totals[name] = ts
		}
		return ts
	}

	byType := make(map[string][]ExpectedShape)
	for _, exp := range expected {
		byType[exp.Type] = append(byType[exp.Type], exp)
		forType(exp.Type).Expected++
	}

	detByType := make(map[string][]detection.Shape)
	for _, shape := range detected {
		detByType[string(shape.Type)] = append(detByType[string(shape.Type)], shape)
		forType(string(shape.Type)).Detected++
	}

	for name, exps := range byType {
		forType(name).Matched += matchShapes(detByType[name], exps)
	}
}

// prf computes precision, recall, and F1 from match counts, avoiding
// division by zero on empty sides.
func prf(matched, detected, expected int) (precision, recall, f1 float64) {
	if detected > 0 {
		precision = float64(matched) / float64(detected)
	}
	if expected > 0 {
		recall = float64(matched) / float64(expected)
	}
	if detected == 0 && expected == 0 {
		// Correctly detecting nothing in an empty image is a perfect score.
		return 1, 1, 1
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision, recall, f1
}
