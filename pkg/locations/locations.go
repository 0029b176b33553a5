package locations

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvInstallationPath overrides the directory the tool is considered to be
// installed in.
const EnvInstallationPath = `SCAFFOLD_INSTALLATION_PATH`

// InstallationPathProvider supplies the absolute path the running tool was
// loaded from.
type InstallationPathProvider interface {
	InstallationPath() string
}

// InstallationPathProviderFunc adapts a function to InstallationPathProvider.
type InstallationPathProviderFunc func() string

func (f InstallationPathProviderFunc) InstallationPath() string { return f() }

// Default returns the provider selected for this build, honoring the
// EnvInstallationPath override.
func Default() InstallationPathProvider {
	return FromEnv(buildProvider())
}

// Executable derives the installation path from the location of the running
// binary, with symlinks resolved.
func Executable() InstallationPathProvider {
	return InstallationPathProviderFunc(func() string {
		exe, err := os.Executable()
		if err != nil {
			return workingDir()
		}

		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}

		return absolute(filepath.Dir(exe))
	})
}

// Source derives the installation path from the source layout: the module
// root, two levels above this package.
func Source() InstallationPathProvider {
	return InstallationPathProviderFunc(func() string {
		_, file, _, ok := runtime.Caller(0)
		if !ok {
			return workingDir()
		}

		return absolute(filepath.Join(filepath.Dir(file), "..", ".."))
	})
}

// Fixed always returns path, made absolute.
func Fixed(path string) InstallationPathProvider {
	path = absolute(path)

	return InstallationPathProviderFunc(func() string { return path })
}

// FromEnv returns the value of EnvInstallationPath when it is set and not
// empty, and asks fallback otherwise.
func FromEnv(fallback InstallationPathProvider) InstallationPathProvider {
	return InstallationPathProviderFunc(func() string {
		if root, ok := os.LookupEnv(EnvInstallationPath); ok && root != "" {
			return absolute(root)
		}

		return fallback.InstallationPath()
	})
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}

	return filepath.Clean(path)
}

func workingDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	return string(filepath.Separator)
}
