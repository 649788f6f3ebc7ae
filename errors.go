package filament

import "errors"

// ErrCreationFailed is returned when the engine could not create an object:
// a factory or builder produced a null pointer, or no driver was available
// to create the engine. It is the only recoverable error of the package;
// misuse such as using a released handle panics instead.
var ErrCreationFailed = errors.New("filament: creation failed")
