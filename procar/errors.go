/*
 * errors.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package procar

import (
	"fmt"

	orbvis "github.com/staradutt/orbvis"
)

//Errors

//errDecorate is a helper function that asserts that the error implements
//orbvis.Error and decorates it with the caller's name before returning it.
//Used with a non-orbvis.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(orbvis.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for PROCAR reading errors. It fulfills
// orbvis.Error and orbvis.ParseError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("procar file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "procar") associated to the error
func (err Error) Format() string { return "procar" }

// Critical returns true if the error invalidates the whole extraction, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen  = "Unable to open file"
	MissingCounts = "Missing or malformed k-point/band counts in header"
	BadKPointLine = "Malformed k-point header line"
	NoTotColumn   = "No ion header with a 'tot' column found"
	ReadError     = "Error reading line"
)
