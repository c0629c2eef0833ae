/*
 * errors.go, part of orbvis.
 *
 * Copyright (c) 2025 Taradutt Pattnaik
 *
 * This program is released under the MIT License. See the LICENSE
 * file for full license information.
 *
 */

package orbvis

// CError is the concrete error type for the root package. It fulfills the orbvis.Error interface.
type CError struct {
	Msg  string
	Deco []string
}

func (err CError) Error() string { return err.Msg }

// Decorate adds new information to the error
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.Deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.Deco = append(err.Deco, deco)
	}
	return err.Deco
}

const (
	ErrNilData       = "Given nil data"
	ErrShapeMismatch = "Mismatched tensor shapes"
	ErrBadSpin       = "ISPIN must be 1 or 2"
)
