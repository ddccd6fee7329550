package core

import (
	"fmt"
	"sort"
)

// Registry maps format tags to converters. It is populated once at startup
// and safe to share across goroutines afterwards; Register is not safe to
// call concurrently with Lookup.
type Registry struct {
	converters map[Format]Converter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{converters: make(map[Format]Converter)}
}

// Register binds a converter to a format tag, replacing any previous binding.
func (r *Registry) Register(f Format, c Converter) {
	r.converters[f] = c
}

// Lookup returns the converter for a format tag.
func (r *Registry) Lookup(f Format) (Converter, error) {
	c, ok := r.converters[f]
	if !ok {
		return nil, fmt.Errorf("%w for format %q", ErrNoConverterRegistered, f)
	}
	return c, nil
}

// Formats returns all registered format tags in sorted order.
func (r *Registry) Formats() []Format {
	formats := make([]Format, 0, len(r.converters))
	for f := range r.converters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
