//go:build !dev
// +build !dev

package locations

func buildProvider() InstallationPathProvider { return Executable() }
