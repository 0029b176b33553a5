// Package rootdir finds the root of the project enclosing a path.
package rootdir

import (
	"path/filepath"

	"code.cestus.io/libs/scaffold/pkg/filesystem"
	"code.cestus.io/libs/scaffold/pkg/locations"
)

// DefaultMarkers are the entries whose presence marks a project root.
var DefaultMarkers = []string{".scaffold", ".git"}

// Locator finds the nearest enclosing project root of a path.
type Locator interface {
	// Locate returns the nearest ancestor of from, from included, that is a
	// project root.
	Locate(from string) locations.Location
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(from string) locations.Location

func (f LocatorFunc) Locate(from string) locations.Location { return f(from) }

// Option customises a MarkerLocator.
type Option func(*MarkerLocator)

// WithMarkers replaces the marker names looked for in each directory.
func WithMarkers(markers ...string) Option {
	return func(l *MarkerLocator) {
		l.markers = append([]string(nil), markers...)
	}
}

// MarkerLocator recognizes a project root by the presence of a marker file or
// directory.
type MarkerLocator struct {
	fs      filesystem.FileSystem
	markers []string
}

// NewMarkerLocator returns a MarkerLocator probing fs.
func NewMarkerLocator(fs filesystem.FileSystem, opts ...Option) *MarkerLocator {
	l := &MarkerLocator{
		fs:      fs,
		markers: DefaultMarkers,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Locate walks up from from until a directory holding one of the markers is
// found. Reaching the filesystem root yields NotFound.
func (l *MarkerLocator) Locate(from string) locations.Location {
	current, err := filepath.Abs(from)
	if err != nil {
		current = filepath.Clean(from)
	}

	for {
		for _, marker := range l.markers {
			if l.fs.Exists(filepath.Join(current, marker)) {
				return locations.Found(current)
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return locations.NotFound()
		}
		current = parent
	}
}
