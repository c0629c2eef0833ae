/*
 * errors.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package kpath

//Errors

// Error is the error type for k-path geometry failures. It fulfills orbvis.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return "kpath error: " + err.message }

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

const (
	EmptyKList   = "Empty or fully filtered k-point list"
	TickMismatch = "Tick positions and labels must be same-length, non-empty lists"
)
