/*
 * doc.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

// Package orbvis provides the shared data types for extracting
// orbital-projected band structures and densities of states from
// VASP PROCAR and DOSCAR files, and for reducing raw k-point lists
// to a one-dimensional plotting coordinate.
//
// The actual file readers live in the procar and doscar subpackages,
// the k-path geometry in kpath, and the rendering in orbplot. This
// package only holds what those packages exchange: the Bands tensor,
// the k-point records, the error contract and the constant orbital
// label and color tables.
package orbvis

// Version of the orbvis library.
const Version = "0.2.0"
