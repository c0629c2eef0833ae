/*
 * errors.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package doscar

import (
	"fmt"

	orbvis "github.com/staradutt/orbvis"
)

//Errors

//errDecorate is a helper function that asserts that the error implements
//orbvis.Error and decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(orbvis.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for DOSCAR reading errors. It fulfills
// orbvis.Error and orbvis.ParseError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("doscar file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file associated to the error
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "doscar") associated to the error
func (err Error) Format() string { return "doscar" }

// Critical returns true if the error invalidates the whole read, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen = "Unable to open file"
	Truncated    = "File ends before its declared counts are satisfied"
	BadMeta      = "Missing or malformed DOSCAR metadata line"
	BadRow       = "Malformed DOS row"
)
