/*
 * atomicdata.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package orbvis

//Constant lookup data. None of this is ever mutated at runtime.

// OrbitalLabels maps the PROCAR orbital column index (0-based, after the ion
// serial number) to a human-readable label. The order is the lm-decomposed
// order VASP writes: s, the three p, the five d and, for f-electron systems,
// the seven f orbitals.
var OrbitalLabels = map[int]string{
	0:  "s",
	1:  "py",
	2:  "pz",
	3:  "px",
	4:  "dxy",
	5:  "dyz",
	6:  "dz2",
	7:  "dxz",
	8:  "dx2-y2",
	9:  "fy(3x2-y2)",
	10: "fxyz",
	11: "fyz2",
	12: "fz3",
	13: "fxz2",
	14: "fz(x2-y2)",
	15: "fx(x2-3y2)",
}

// BaseColors are the built-in palettes selectable by index from a run file.
// The first entry of each palette is used for the first orbital selection,
// and so on; palettes shorter than the number of selections wrap around.
var BaseColors = [][]string{
	{"#ff0000", "#00ff00", "#0000ff", "#ffa500", "#ffff00", "#add8e6"},
	{"#8ecae6", "#219ebc", "#023047", "#ffb703", "#fb8500"},
	{"#264653", "#2a9d8f", "#e9c46a", "#f4a261", "#e76f51"},
	{"#ff595e", "#ffca3a", "#8ac926", "#1982c4", "#6a4c93"},
	{"#2b2d42", "#8d99ae", "#edf2f4", "#ef233c", "#d90429"},
	{"#0b3954", "#087e8b", "#bfd7ea", "#ff5a5f", "#c81d25"},
	{"#220901", "#621708", "#941b0c", "#bc3908", "#f6aa1c"},
	{"#355070", "#6d597a", "#b56576", "#e56b6f", "#eaac8b"},
	{"#003049", "#d62828", "#f77f00", "#fcbf49", "#eae2b7"},
	{"#eae2b7", "#fe7f2d", "#fcca46", "#a1c181", "#619b8a"},
}
