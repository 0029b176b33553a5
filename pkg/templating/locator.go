package templating

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"code.cestus.io/libs/scaffold/pkg/filesystem"
	"code.cestus.io/libs/scaffold/pkg/locations"
	"code.cestus.io/libs/scaffold/pkg/logging"
	"code.cestus.io/libs/scaffold/pkg/rootdir"
)

const (
	// ConfigDirName is the project configuration directory, under the project root.
	ConfigDirName = ".scaffold"
	// TemplatesDirName is the custom templates directory, under ConfigDirName.
	TemplatesDirName = "Templates"
	// BuiltinTemplatesDirName is the templates directory shipped with the tool.
	BuiltinTemplatesDirName = "Templates"
)

// Option customises a Locator.
type Option func(*Locator)

// WithFileSystem sets the filesystem probed by the locator.
func WithFileSystem(fs filesystem.FileSystem) Option {
	return func(l *Locator) {
		l.fs = fs
	}
}

// WithRootLocator sets how project roots are found.
func WithRootLocator(root rootdir.Locator) Option {
	return func(l *Locator) {
		l.root = root
	}
}

// WithInstallationPathProvider sets where the tool is considered installed.
func WithInstallationPathProvider(provider locations.InstallationPathProvider) Option {
	return func(l *Locator) {
		l.installation = provider
	}
}

// WithConfigDirName overrides ConfigDirName.
func WithConfigDirName(name string) Option {
	return func(l *Locator) {
		l.configDirName = name
	}
}

// WithTemplatesDirName overrides TemplatesDirName.
func WithTemplatesDirName(name string) Option {
	return func(l *Locator) {
		l.templatesDirName = name
	}
}

// WithLogger sets the logger used to trace lookups.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// Locator finds the built-in and custom templates directories.
//
// Nothing is cached: every call probes the filesystem again.
type Locator struct {
	fs               filesystem.FileSystem
	root             rootdir.Locator
	installation     locations.InstallationPathProvider
	configDirName    string
	templatesDirName string
	logger           zerolog.Logger
}

// NewLocator returns a Locator over the OS filesystem unless configured
// otherwise. Without WithRootLocator, a project root is a directory holding
// the configuration directory or a .git entry.
func NewLocator(opts ...Option) *Locator {
	l := &Locator{
		configDirName:    ConfigDirName,
		templatesDirName: TemplatesDirName,
		logger:           logging.GetLogger("templating"),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.fs == nil {
		l.fs = filesystem.NewOS()
	}
	if l.root == nil {
		l.root = rootdir.NewMarkerLocator(l.fs, rootdir.WithMarkers(l.configDirName, ".git"))
	}
	if l.installation == nil {
		l.installation = locations.Default()
	}

	return l
}

// LocateBuiltin returns the templates directory shipped with the tool: the
// first of <installation>/Templates and <installation>/../Templates that
// exists.
func (l *Locator) LocateBuiltin() locations.Location {
	installation := l.installation.InstallationPath()

	candidates := []string{
		filepath.Join(installation, BuiltinTemplatesDirName),
		filepath.Join(filepath.Dir(installation), BuiltinTemplatesDirName),
	}

	for _, candidate := range candidates {
		exists := l.fs.Exists(candidate)
		l.logger.Trace().Str("path", candidate).Bool("exists", exists).Msg("probing built-in templates")
		if exists {
			l.logger.Debug().Str("path", candidate).Msg("built-in templates found")
			return locations.Found(candidate)
		}
	}

	l.logger.Debug().Str("installation", installation).Msg("no built-in templates")

	return locations.NotFound()
}

// LocateCustom returns the custom templates directory of the project
// enclosing path, if that directory exists.
func (l *Locator) LocateCustom(path string) locations.Location {
	candidate, ok := l.Locate(path).Get()
	if !ok {
		return locations.NotFound()
	}

	exists := l.fs.Exists(candidate)
	l.logger.Trace().Str("path", candidate).Bool("exists", exists).Msg("probing custom templates")
	if !exists {
		return locations.NotFound()
	}

	l.logger.Debug().Str("path", candidate).Msg("custom templates found")

	return locations.Found(candidate)
}

// Locate returns where the custom templates directory of the project
// enclosing path would be. The returned path is not checked for existence.
func (l *Locator) Locate(path string) locations.Location {
	root := l.root.Locate(path)
	if !root.IsFound() {
		l.logger.Debug().Str("from", path).Msg("no project root")
	}

	return root.Join(l.configDirName, l.templatesDirName)
}

// TemplateDirectories lists every template: the entries of the built-in
// directory followed by the entries of the custom directory. Entries present
// in both are returned twice.
func (l *Locator) TemplateDirectories(path string) ([]string, error) {
	builtin, err := l.contents(l.LocateBuiltin())
	if err != nil {
		return nil, fmt.Errorf("listing built-in templates: %w", err)
	}

	custom, err := l.contents(l.LocateCustom(path))
	if err != nil {
		return nil, fmt.Errorf("listing custom templates: %w", err)
	}

	return append(builtin, custom...), nil
}

// Roots returns the existing templates directories, built-in first.
func (l *Locator) Roots(path string) []string {
	roots := []string{}
	for _, location := range []locations.Location{l.LocateBuiltin(), l.LocateCustom(path)} {
		if dir, ok := location.Get(); ok {
			roots = append(roots, dir)
		}
	}

	return roots
}

func (l *Locator) contents(location locations.Location) ([]string, error) {
	dir, ok := location.Get()
	if !ok {
		return []string{}, nil
	}

	return l.fs.ContentsOfDirectory(dir)
}
