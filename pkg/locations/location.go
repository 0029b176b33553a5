package locations

import "path/filepath"

// Location is the result of a lookup: either a found path or nothing.
//
// The zero value is NotFound.
type Location struct {
	path  string
	found bool
}

// Found returns a Location holding path.
func Found(path string) Location {
	return Location{path: path, found: true}
}

// NotFound returns an empty Location.
func NotFound() Location {
	return Location{}
}

// Get returns the path and whether it was found.
func (l Location) Get() (string, bool) { return l.path, l.found }

// IsFound reports whether the lookup produced a path.
func (l Location) IsFound() bool { return l.found }

// Path returns the located path, or "" when nothing was found.
func (l Location) Path() string { return l.path }

// OrElse returns the located path, or fallback when nothing was found.
func (l Location) OrElse(fallback string) string {
	if !l.found {
		return fallback
	}

	return l.path
}

// Join appends elem to a found path with filepath.Join. A NotFound
// location stays NotFound.
func (l Location) Join(elem ...string) Location {
	if !l.found {
		return l
	}

	return Found(filepath.Join(append([]string{l.path}, elem...)...))
}

func (l Location) String() string {
	if !l.found {
		return "<not found>"
	}

	return l.path
}
