package templating

// GetTemplatesRoots returns the list of templates roots as detected on the
// system for the project enclosing path, built-in first.
func GetTemplatesRoots(path string) []string {
	return NewLocator().Roots(path)
}
