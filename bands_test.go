/*
 * bands_test.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package orbvis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func filled(nspin, nbands, nkpts int) *Bands {
	b := NewBands(nspin, nbands, nkpts)
	for s := 0; s < nspin; s++ {
		for bd := 0; bd < nbands; bd++ {
			for k := 0; k < nkpts; k++ {
				b.Set(s, bd, k, float64(100*s+10*bd+k))
			}
		}
	}
	return b
}

func TestBandsShape(t *testing.T) {
	b := NewBands(2, 3, 5)
	require.Equal(t, 2, b.NSpins())
	require.Equal(t, 3, b.NBands())
	require.Equal(t, 5, b.NKPoints())
	r, c := b.Spin(1).Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 5, c)
}

func TestAccumulate(t *testing.T) {
	a := filled(1, 2, 2)
	b := filled(1, 2, 2)
	require.NoError(t, a.Accumulate(b))
	require.Equal(t, 2*11.0, a.At(0, 1, 1))

	require.Error(t, a.Accumulate(nil))
	require.Error(t, a.Accumulate(NewBands(1, 2, 3)))
	require.Error(t, a.Accumulate(NewBands(2, 2, 2)))
}

func TestShift(t *testing.T) {
	b := filled(2, 2, 2)
	out := b.Shift(1.5)
	require.Same(t, b, out)
	require.Equal(t, 111.0-1.5, b.At(1, 1, 1))

	//zero shift is a no-op
	before := b.At(0, 0, 0)
	b.Shift(0)
	require.Equal(t, before, b.At(0, 0, 0))
}

func TestSelectColumns(t *testing.T) {
	b := filled(2, 2, 4)
	s := b.SelectColumns([]int{3, 1})
	require.Equal(t, 2, s.NKPoints())
	require.Equal(t, 13.0, s.At(0, 1, 0))
	require.Equal(t, 11.0, s.At(0, 1, 1))
	require.Equal(t, 113.0, s.At(1, 1, 0))
}

func TestRow(t *testing.T) {
	b := filled(1, 2, 3)
	require.Equal(t, []float64{10, 11, 12}, b.Row(0, 1))
}
