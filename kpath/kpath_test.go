/*
 * kpath_test.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package kpath

import (
	"math"
	"testing"

	orbvis "github.com/staradutt/orbvis"
	"github.com/stretchr/testify/require"
)

func klist(weight float64, coords ...[3]float64) orbvis.KList {
	kl := make(orbvis.KList, len(coords))
	for i, c := range coords {
		kl[i] = orbvis.KPoint{Index: i, Kx: c[0], Ky: c[1], Kz: c[2], Weight: weight}
	}
	return kl
}

func TestAngleBetween(t *testing.T) {
	require.InDelta(t, 90.0, AngleBetween([3]float64{1, 0, 0}, [3]float64{0, 1, 0}), 1e-9)
	require.InDelta(t, 0.0, AngleBetween([3]float64{1, 0, 0}, [3]float64{2, 0, 0}), 1e-9)
	require.InDelta(t, 180.0, AngleBetween([3]float64{1, 0, 0}, [3]float64{-1, 0, 0}), 1e-9)
	require.Equal(t, 0.0, AngleBetween([3]float64{0, 0, 0}, [3]float64{1, 0, 0}))
}

//the canonical right-angle path: the corner must come out as a vertex
func TestCleanCorner(t *testing.T) {
	kl := klist(1, [3]float64{0, 0, 0}, [3]float64{0.5, 0, 0}, [3]float64{0.5, 0.5, 0})
	cleaned, hs, err := CleanDefault(kl)
	require.NoError(t, err)
	require.Len(t, cleaned, 3)
	require.Equal(t, []int{0, 1, 2}, hs)
}

func TestCleanStraightLine(t *testing.T) {
	kl := klist(1, [3]float64{0, 0, 0}, [3]float64{0.1, 0, 0}, [3]float64{0.2, 0, 0})
	cleaned, hs, err := CleanDefault(kl)
	require.NoError(t, err)
	require.Len(t, cleaned, 3)
	//no corner, only the endpoints
	require.Equal(t, []int{0, 2}, hs)
}

func TestCleanDropsAdjacentDuplicates(t *testing.T) {
	kl := klist(1,
		[3]float64{0, 0, 0},
		[3]float64{0.5, 0, 0},
		[3]float64{0.5, 0, 0}, //zone-boundary point written twice at a segment join
		[3]float64{0.5, 0.5, 0})
	cleaned, _, err := CleanDefault(kl)
	require.NoError(t, err)
	require.Len(t, cleaned, 3)
	require.Equal(t, []int{0, 1, 3}, []int{cleaned[0].Index, cleaned[1].Index, cleaned[2].Index})
}

func TestCleanWeightedMesh(t *testing.T) {
	kl := orbvis.KList{
		{Index: 0, Kx: 0.1, Weight: 0.25},
		{Index: 1, Kx: 0.2, Weight: 0.25},
		{Index: 2, Kx: 0.0, Weight: 0.0},
		{Index: 3, Kx: 0.5, Weight: 0.0},
	}
	cleaned, _, err := CleanDefault(kl)
	require.NoError(t, err)
	//only the zero-weight band-structure points survive
	require.Len(t, cleaned, 2)
	require.Equal(t, 2, cleaned[0].Index)
	require.Equal(t, 3, cleaned[1].Index)
}

func TestCleanAllWeightedFails(t *testing.T) {
	kl := orbvis.KList{
		{Index: 0, Kx: 0.1, Weight: 0.25},
		{Index: 1, Kx: 0.2, Weight: 0.75},
	}
	_, _, err := CleanDefault(kl)
	require.Error(t, err)
}

func TestCleanEmpty(t *testing.T) {
	_, _, err := CleanDefault(nil)
	require.Error(t, err)
}

func TestCoordinatesScaling(t *testing.T) {
	kl := klist(1, [3]float64{0, 0, 0}, [3]float64{0.1, 0, 0}, [3]float64{0.2, 0, 0}, [3]float64{0.2, 0.1, 0})
	cleaned, _, err := CleanDefault(kl)
	require.NoError(t, err)
	p, err := Coordinates(cleaned, 3, DefaultJumpCutoff)
	require.NoError(t, err)
	//monotone non-decreasing and rescaled so the last point lands on xScale
	for i := 1; i < len(p.Scaled); i++ {
		require.GreaterOrEqual(t, p.Scaled[i], p.Scaled[i-1])
	}
	require.InDelta(t, 3.0, p.Scaled[len(p.Scaled)-1], 1e-12)
	require.Equal(t, 0.0, p.Scaled[0])
}

func TestCoordinatesJumpCutoff(t *testing.T) {
	//two disjoint fragments stored back to back: the 0.6-long jump collapses
	kl := klist(1,
		[3]float64{0, 0, 0}, [3]float64{0.1, 0, 0},
		[3]float64{0.7, 0, 0}, [3]float64{0.8, 0, 0})
	cleaned, _, err := CleanDefault(kl)
	require.NoError(t, err)
	p, err := Coordinates(cleaned, 3, DefaultJumpCutoff)
	require.NoError(t, err)
	require.InDelta(t, 0.6, p.Raw[2], 1e-12)
	require.Equal(t, 0.0, p.Segment[2])
	cuts := Discontinuities(p.Scaled)
	require.Equal(t, []int{2}, cuts)
}

func TestCoordinatesAllCollapsed(t *testing.T) {
	//every segment over the cutoff: total stays zero, no rescaling
	kl := klist(1, [3]float64{0, 0, 0}, [3]float64{0.5, 0, 0}, [3]float64{1.0, 0, 0})
	cleaned, _, err := Clean(kl, DefaultAngleTol, DefaultJumpThreshold, DefaultWeightTol)
	require.NoError(t, err)
	p, err := Coordinates(cleaned, 3, 0.4)
	require.NoError(t, err)
	for _, v := range p.Scaled {
		require.Equal(t, 0.0, v)
	}
}

func TestPosition(t *testing.T) {
	p := &PathData{Index: []int{0, 2, 5}, Scaled: []float64{0, 1.5, 3}}
	v, ok := p.Position(2)
	require.True(t, ok)
	require.Equal(t, 1.5, v)
	_, ok = p.Position(7)
	require.False(t, ok)
}

func TestInsertGaps(t *testing.T) {
	series := []float64{1, 2, 3, 4}
	out := InsertGaps(series, []int{2})
	require.Len(t, out, 5)
	require.Equal(t, []float64{1, 2}, out[:2])
	require.True(t, math.IsNaN(out[2]))
	require.Equal(t, []float64{3, 4}, out[3:])
}

//no cuts must return the very same backing array, not a copy
func TestInsertGapsIdentity(t *testing.T) {
	series := []float64{1, 2, 3}
	out := InsertGaps(series, nil)
	require.Equal(t, &series[0], &out[0])
}

func TestInsertGapBands(t *testing.T) {
	b := orbvis.NewBands(2, 2, 3)
	for s := 0; s < 2; s++ {
		for bd := 0; bd < 2; bd++ {
			for k := 0; k < 3; k++ {
				b.Set(s, bd, k, float64(100*s+10*bd+k))
			}
		}
	}
	out := InsertGapBands(b, []int{1})
	require.Equal(t, 4, out.NKPoints())
	require.Equal(t, 0.0, out.At(0, 0, 0))
	require.True(t, math.IsNaN(out.At(1, 1, 1)))
	require.Equal(t, 111.0, out.At(1, 1, 2))
	require.Equal(t, 112.0, out.At(1, 1, 3))
	//empty cuts returns the receiver untouched
	require.Equal(t, b, InsertGapBands(b, nil))
}

func TestMergeCloseTicks(t *testing.T) {
	vals := []float64{0, 1, 1 + 1e-7, 2}
	labels := []string{"G", "X", "Y", "M"}
	mv, ml, err := MergeCloseTicks(vals, labels, 1e-5)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, mv)
	require.Equal(t, []string{"G", "X|Y", "M"}, ml)

	//idempotence: merging the merged list changes nothing
	mv2, ml2, err := MergeCloseTicks(mv, ml, 1e-5)
	require.NoError(t, err)
	require.Equal(t, mv, mv2)
	require.Equal(t, ml, ml2)
}

func TestMergeCloseTicksMismatch(t *testing.T) {
	_, _, err := MergeCloseTicks([]float64{0, 1}, []string{"G"}, 1e-5)
	require.Error(t, err)
	_, _, err = MergeCloseTicks(nil, nil, 1e-5)
	require.Error(t, err)
}
