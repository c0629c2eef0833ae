/*
 * scanner.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package procar

import (
	"strconv"
	"strings"
)

//The low-level line classifier for PROCAR-shaped text. Lines are recognized by a
//fixed, case-sensitive set of prefixes after stripping surrounding whitespace;
//everything else inside a band block is an ion data row.

type lineKind int

const (
	blankLine lineKind = iota
	kpointHeader
	bandHeader
	ionHeader
	totalRow
	dataRow
)

func classify(line string) lineKind {
	switch {
	case line == "":
		return blankLine
	case strings.HasPrefix(line, "k-point"):
		return kpointHeader
	case strings.HasPrefix(line, "band"):
		return bandHeader
	case strings.HasPrefix(line, "ion"):
		return ionHeader
	case strings.HasPrefix(line, "tot"):
		return totalRow
	}
	return dataRow
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// findFloats extracts every numeric token embedded in line: optionally signed
// exponent-free decimals, or bare unsigned integers. It cannot rely on
// whitespace splitting because VASP writes fixed-width k-point coordinates
// that fuse together when negative ("0.5000000-0.5000000").
func findFloats(line string) []float64 {
	var out []float64
	n := len(line)
	for i := 0; i < n; {
		c := line[i]
		if c != '+' && c != '-' && c != '.' && !isDigit(c) {
			i++
			continue
		}
		start := i
		j := i
		if line[j] == '+' || line[j] == '-' {
			j++
		}
		digits := j
		for j < n && isDigit(line[j]) {
			j++
		}
		digits = j - digits
		if j+1 < n && line[j] == '.' && isDigit(line[j+1]) {
			j++
			for j < n && isDigit(line[j]) {
				j++
			}
			if v, err := strconv.ParseFloat(line[start:j], 64); err == nil {
				out = append(out, v)
			}
			i = j
			continue
		}
		if digits > 0 {
			//a bare integer run; the sign belongs to the decimal form only
			s := start
			if line[s] == '+' || line[s] == '-' {
				s++
			}
			if v, err := strconv.ParseFloat(line[s:j], 64); err == nil {
				out = append(out, v)
			}
			i = j
			continue
		}
		i++ //lone sign or dot
	}
	return out
}

// fieldFloat parses the idx-th field as a float, or returns 0 if the field is
// missing or malformed. Malformed data rows are common in degenerate VASP runs
// and must not abort a multi-gigabyte extraction.
func fieldFloat(fields []string, idx int) float64 {
	if idx < 0 || idx >= len(fields) {
		return 0
	}
	v, err := strconv.ParseFloat(fields[idx], 64)
	if err != nil {
		return 0
	}
	return v
}

// floatAfter parses the field immediately following the first occurrence of
// key, with the same zero-on-failure behavior as fieldFloat.
func floatAfter(fields []string, key string) float64 {
	for i, f := range fields {
		if f == key {
			return fieldFloat(fields, i+1)
		}
	}
	return 0
}

// intAfter returns the integer field immediately following the first occurrence
// of key. Unlike the float helpers it reports failure: the header counts are
// the one thing the extraction cannot proceed without.
func intAfter(fields []string, key string) (int, bool) {
	for i, f := range fields {
		if f == key && i+1 < len(fields) {
			v, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}
