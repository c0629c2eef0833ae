/*
 * bands.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package orbvis

import (
	"gonum.org/v1/gonum/mat"
)

// Bands holds a per-spin set of (bands x k-points) matrices. It represents either
// band eigenvalues or the projection of one orbital/atom selection onto each band,
// depending on which reader produced it. A non-spin-polarized calculation has one
// spin channel, a spin-polarized one has two. Once filled by a reader, a Bands is
// treated as immutable by every consumer except Accumulate, which is used to sum
// projections over an atom/orbital selection.
type Bands struct {
	spins  []*mat.Dense
	nbands int
	nkpts  int
}

// NewBands returns a zero-filled Bands with nspin channels of nbands x nkpts each.
// It panics on non-positive dimensions, as the header counts are validated by the
// readers before allocation.
func NewBands(nspin, nbands, nkpts int) *Bands {
	B := &Bands{nbands: nbands, nkpts: nkpts}
	B.spins = make([]*mat.Dense, nspin)
	for i := range B.spins {
		B.spins[i] = mat.NewDense(nbands, nkpts, nil)
	}
	return B
}

// NSpins returns the number of spin channels (1 or 2).
func (B *Bands) NSpins() int { return len(B.spins) }

// NBands returns the number of bands per channel.
func (B *Bands) NBands() int { return B.nbands }

// NKPoints returns the number of k-points per band.
func (B *Bands) NKPoints() int { return B.nkpts }

// Spin returns the matrix for the given spin channel. The matrix is not a copy;
// readers use it to fill the tensor in place.
func (B *Bands) Spin(i int) *mat.Dense { return B.spins[i] }

// At returns the value at the given spin, band and k-point.
func (B *Bands) At(spin, band, kpt int) float64 {
	return B.spins[spin].At(band, kpt)
}

// Set sets the value at the given spin, band and k-point.
func (B *Bands) Set(spin, band, kpt int, v float64) {
	B.spins[spin].Set(band, kpt, v)
}

// Accumulate adds the values of A, element-wise, to the receiver. It is used to
// sum the projections of several atoms and orbitals into one data series.
func (B *Bands) Accumulate(A *Bands) error {
	if A == nil {
		return CError{ErrNilData, []string{"Accumulate"}}
	}
	if A.NSpins() != B.NSpins() || A.nbands != B.nbands || A.nkpts != B.nkpts {
		return CError{ErrShapeMismatch, []string{"Accumulate"}}
	}
	for i, s := range B.spins {
		s.Add(s, A.spins[i])
	}
	return nil
}

// Shift subtracts e from every value, returning the receiver. It is used to
// reference eigenvalues to the Fermi energy.
func (B *Bands) Shift(e float64) *Bands {
	if e == 0 {
		return B
	}
	for _, s := range B.spins {
		s.Apply(func(_, _ int, v float64) float64 { return v - e }, s)
	}
	return B
}

// SelectColumns returns a new Bands containing only the k-point columns listed
// in idx, in the given order. It is used to restrict the tensor to the cleaned
// k-points before plotting.
func (B *Bands) SelectColumns(idx []int) *Bands {
	S := NewBands(B.NSpins(), B.nbands, len(idx))
	for si, s := range B.spins {
		for j, col := range idx {
			for b := 0; b < B.nbands; b++ {
				S.spins[si].Set(b, j, s.At(b, col))
			}
		}
	}
	return S
}

// Row returns a copy of one band as a slice, for plotting.
func (B *Bands) Row(spin, band int) []float64 {
	out := make([]float64, B.nkpts)
	mat.Row(out, band, B.spins[spin])
	return out
}
