/*
 * interfaces.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package orbvis

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method
// allows to add and retrieve info from the error, without changing its type or wrapping it around
// something else. The decoration slice should contain the names of the functions in the calling stack,
// plus, for each function, any relevant information, in the format "FunctionName: Extra info".
// If passed an empty string, Decorate should just return the current slice without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// ParseError is the interface for errors produced while reading PROCAR or DOSCAR files.
// Critical distinguishes failures that invalidate the whole extraction (missing header
// counts, truncated files) from recoverable ones.
type ParseError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}
