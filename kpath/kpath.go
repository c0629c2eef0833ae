/*
 * kpath.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

// Package kpath reduces a raw reciprocal-space k-point list to a clean
// one-dimensional plotting coordinate. It filters weighted points, drops
// adjacent duplicates, auto-detects high-symmetry vertices from geometric
// discontinuities, rescales the cumulative arc length to a target plot
// width, and marks path breaks that must render as gaps rather than as
// interpolated lines.
package kpath

import (
	"math"

	orbvis "github.com/staradutt/orbvis"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Default tolerances of the reducer.
const (
	DefaultAngleTol      = 5.0  //degrees of direction change that mark a vertex
	DefaultJumpThreshold = 0.2  //jump distance that marks a vertex
	DefaultWeightTol     = 1e-3 //tolerance for the weight-uniformity check
	DefaultJumpCutoff    = 0.25 //segments longer than this add zero arc length
)

//tolerance for adjacent-duplicate detection, per coordinate
const dupTol = 1e-8

func sub(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func norm(v [3]float64) float64 {
	return math.Sqrt(dot(v, v))
}

// AngleBetween returns the angle between two 3-vectors, in degrees. If either
// vector has zero length the angle is undefined and reduces to 0.
func AngleBetween(v1, v2 [3]float64) float64 {
	n1 := norm(v1)
	n2 := norm(v2)
	if n1 == 0 || n2 == 0 {
		return 0
	}
	cos := dot(v1, v2) / (n1 * n2)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// Clean filters and deduplicates a raw k-point list and detects its
// high-symmetry vertices.
//
// If all weights are equal within weightTol the whole list is kept (explicit
// k-path runs use uniform weights); otherwise only the points of
// approximately zero weight survive, which is the convention for
// band-structure points mixed into a weighted SCF mesh. Adjacent points whose
// coordinates coincide within a tight tolerance are then collapsed (segment
// joins duplicate the zone-boundary point). An interior point is a vertex
// when the direction to its successor departs from the direction from its
// predecessor by more than angleTolDeg, or when the jump from the predecessor
// exceeds jumpThreshold; the first and last cleaned points are always
// vertices. The returned vertex indices refer back to positions in kl.
func Clean(kl orbvis.KList, angleTolDeg, jumpThreshold, weightTol float64) ([]orbvis.CleanedKPoint, []int, error) {
	if len(kl) == 0 {
		return nil, nil, Error{EmptyKList, []string{"Clean"}}
	}
	uniform := true
	for _, k := range kl {
		if math.Abs(k.Weight-kl[0].Weight) >= weightTol {
			uniform = false
			break
		}
	}
	kept := kl
	if !uniform {
		kept = make(orbvis.KList, 0, len(kl))
		for _, k := range kl {
			if math.Abs(k.Weight) < weightTol {
				kept = append(kept, k)
			}
		}
	}
	if len(kept) == 0 {
		return nil, nil, Error{EmptyKList, []string{"Clean"}}
	}
	cleaned := make([]orbvis.CleanedKPoint, 0, len(kept))
	for _, k := range kept {
		if n := len(cleaned); n > 0 {
			prev := cleaned[n-1]
			if math.Abs(prev.Kx-k.Kx) <= dupTol && math.Abs(prev.Ky-k.Ky) <= dupTol && math.Abs(prev.Kz-k.Kz) <= dupTol {
				continue
			}
		}
		cleaned = append(cleaned, orbvis.CleanedKPoint{Index: k.Index, Kx: k.Kx, Ky: k.Ky, Kz: k.Kz})
	}
	hs := []int{cleaned[0].Index}
	for i := 1; i < len(cleaned)-1; i++ {
		vec1 := sub(cleaned[i].Vec(), cleaned[i-1].Vec())
		vec2 := sub(cleaned[i+1].Vec(), cleaned[i].Vec())
		angle := AngleBetween(vec1, vec2)
		jump := norm(vec1)
		if angle > angleTolDeg || jump > jumpThreshold {
			hs = append(hs, cleaned[i].Index)
		}
	}
	hs = append(hs, cleaned[len(cleaned)-1].Index)
	return cleaned, hs, nil
}

// CleanDefault is Clean with the default tolerances.
func CleanDefault(kl orbvis.KList) ([]orbvis.CleanedKPoint, []int, error) {
	return Clean(kl, DefaultAngleTol, DefaultJumpThreshold, DefaultWeightTol)
}

// PathData holds the per-point results of the arc-length computation, as
// parallel slices: the original k-point index of each cleaned point, the
// (cutoff-limited) segment length to its predecessor, the raw geometric
// segment length, the cumulative distance, and the cumulative distance
// rescaled to the target plot width.
type PathData struct {
	Index      []int
	Segment    []float64
	Raw        []float64
	Cumulative []float64
	Scaled     []float64
}

// Reduced returns the parallel (original k-point index, scaled coordinate)
// slices of the path, which is all a band plot needs from the geometry.
func (p *PathData) Reduced() ([]int, []float64) {
	return p.Index, p.Scaled
}

// Position returns the scaled coordinate of the cleaned point with the given
// original k-point index.
func (p *PathData) Position(index int) (float64, bool) {
	for i, idx := range p.Index {
		if idx == index {
			return p.Scaled[i], true
		}
	}
	return 0, false
}

// Coordinates computes the 1D plotting coordinate of a cleaned k-point path.
// Segments whose raw length exceeds jumpCutoff contribute zero to the
// cumulative distance: an abrupt jump of that size means two disjoint path
// fragments stored back to back, and collapsing it keeps the break from
// dominating the axis. The raw length is still recorded, and the collapsed
// segment later shows up as a pair of identical scaled positions, which is
// how discontinuities are detected. The cumulative sequence is rescaled
// linearly so its total equals xScale, unless the total is zero.
func Coordinates(cleaned []orbvis.CleanedKPoint, xScale, jumpCutoff float64) (*PathData, error) {
	if len(cleaned) == 0 {
		return nil, Error{EmptyKList, []string{"Coordinates"}}
	}
	n := len(cleaned)
	p := &PathData{
		Index:      make([]int, n),
		Segment:    make([]float64, n),
		Raw:        make([]float64, n),
		Cumulative: make([]float64, n),
		Scaled:     make([]float64, n),
	}
	p.Index[0] = cleaned[0].Index
	for i := 1; i < n; i++ {
		p.Index[i] = cleaned[i].Index
		raw := norm(sub(cleaned[i].Vec(), cleaned[i-1].Vec()))
		d := raw
		if raw > jumpCutoff {
			d = 0
		}
		p.Raw[i] = raw
		p.Segment[i] = d
		p.Cumulative[i] = p.Cumulative[i-1] + d
	}
	copy(p.Scaled, p.Cumulative)
	if total := p.Cumulative[n-1]; total != 0 {
		floats.Scale(xScale/total, p.Scaled)
	}
	return p, nil
}

// Discontinuities returns the positions of x where two adjacent scaled
// coordinates coincide exactly: the signature of a collapsed zero-length
// segment, i.e. a break between two disjoint path fragments. The returned
// positions are insertion points for NaN gaps.
func Discontinuities(x []float64) []int {
	var cuts []int
	for i := 1; i < len(x); i++ {
		if x[i] == x[i-1] {
			cuts = append(cuts, i)
		}
	}
	return cuts
}

// InsertGaps returns series with a NaN inserted before each position in cuts,
// so that line plotting does not draw a spurious segment across a path break.
// cuts must be ascending. With no cuts the input is returned unchanged.
func InsertGaps(series []float64, cuts []int) []float64 {
	if len(cuts) == 0 {
		return series
	}
	out := make([]float64, 0, len(series)+len(cuts))
	prev := 0
	for _, c := range cuts {
		out = append(out, series[prev:c]...)
		out = append(out, math.NaN())
		prev = c
	}
	return append(out, series[prev:]...)
}

// InsertGapColumns is InsertGaps along the column axis of a matrix: a NaN
// column is inserted before each position in cuts.
func InsertGapColumns(m *mat.Dense, cuts []int) *mat.Dense {
	if len(cuts) == 0 {
		return m
	}
	r, c := m.Dims()
	out := mat.NewDense(r, c+len(cuts), nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, m)
		out.SetRow(i, InsertGaps(row, cuts))
	}
	return out
}

// InsertGapBands applies InsertGapColumns to every spin channel of a Bands.
func InsertGapBands(b *orbvis.Bands, cuts []int) *orbvis.Bands {
	if len(cuts) == 0 {
		return b
	}
	out := orbvis.NewBands(b.NSpins(), b.NBands(), b.NKPoints()+len(cuts))
	for s := 0; s < b.NSpins(); s++ {
		out.Spin(s).Copy(InsertGapColumns(b.Spin(s), cuts))
	}
	return out
}

// MergeCloseTicks collapses runs of tick positions that coincide within tol
// into a single tick whose label is the "|"-joined concatenation of the
// merged labels, in encounter order. Positions are compared against the first
// position of the current run. Merging an already-merged list with the same
// tolerance returns it unchanged.
func MergeCloseTicks(vals []float64, labels []string, tol float64) ([]float64, []string, error) {
	if len(vals) == 0 || len(labels) == 0 || len(vals) != len(labels) {
		return nil, nil, Error{TickMismatch, []string{"MergeCloseTicks"}}
	}
	mergedVals := make([]float64, 0, len(vals))
	mergedLabels := make([]string, 0, len(labels))
	curVal := vals[0]
	curLabel := labels[0]
	for i := 1; i < len(vals); i++ {
		if math.Abs(vals[i]-curVal) <= tol {
			curLabel += "|" + labels[i]
		} else {
			mergedVals = append(mergedVals, curVal)
			mergedLabels = append(mergedLabels, curLabel)
			curVal = vals[i]
			curLabel = labels[i]
		}
	}
	mergedVals = append(mergedVals, curVal)
	mergedLabels = append(mergedLabels, curLabel)
	return mergedVals, mergedLabels, nil
}
