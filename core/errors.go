package core

import "errors"

// ErrUnsupportedFormat is returned when detection cannot classify an input.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrNoConverterRegistered is returned when the registry has no converter
// for a detected format.
var ErrNoConverterRegistered = errors.New("no converter registered")
