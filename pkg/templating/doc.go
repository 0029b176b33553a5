// Package templating discovers the directories templates are loaded from.
//
// Two directories are considered. The built-in one is shipped with the tool
// and found next to, or one level above, its installation path. The custom
// one belongs to a project and lives under <root>/.scaffold/Templates, where
// <root> is the nearest ancestor recognized as a project root.
//
// Set SCAFFOLD_INSTALLATION_PATH to point the built-in lookup somewhere else.
package templating
