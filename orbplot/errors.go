/*
 * errors.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package orbplot

import orbvis "github.com/staradutt/orbvis"

//Errors

//errDecorate is a helper function that asserts that the error implements
//orbvis.Error and decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(orbvis.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the error type for figure assembly failures. It fulfills orbvis.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return "orbplot error: " + err.message }

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

const (
	BadColor        = "Unrecognized color"
	BadColormap     = "Unrecognized colormap"
	BadPaletteIndex = "Color palette index out of range"
	BadColorScheme  = "Unusable color scheme"
	BadLabels       = "Number of k-point labels does not match the high-symmetry points"
	NoFiniteData    = "No finite values to plot"
	UnableToWrite   = "Unable to write output figure"
)
