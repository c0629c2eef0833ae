/*
 * kpoints.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package orbvis

// KPoint is one k-point record as it appears in a PROCAR file: its 0-based position
// in the file, its fractional reciprocal-space coordinates and its integration weight.
type KPoint struct {
	Index  int
	Kx     float64
	Ky     float64
	Kz     float64
	Weight float64
}

// Vec returns the fractional coordinates of the k-point.
func (k KPoint) Vec() [3]float64 {
	return [3]float64{k.Kx, k.Ky, k.Kz}
}

// KList is the ordered list of k-points of a calculation, in file order.
type KList []KPoint

// CleanedKPoint is a k-point that survived weight filtering and deduplication.
// Index refers back to the position of the point in the original KList.
type CleanedKPoint struct {
	Index int
	Kx    float64
	Ky    float64
	Kz    float64
}

// Vec returns the fractional coordinates of the cleaned k-point.
func (c CleanedKPoint) Vec() [3]float64 {
	return [3]float64{c.Kx, c.Ky, c.Kz}
}
