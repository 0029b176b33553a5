//go:build dev
// +build dev

package locations

// Development builds resolve templates from the checked out sources.
func buildProvider() InstallationPathProvider { return Source() }
