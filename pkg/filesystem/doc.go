// Package filesystem provides the filesystem access used to discover
// template directories.
//
// The FileSystem interface only covers what discovery needs: existence
// checks and listing the immediate children of a directory. The afero
// backed implementation works over the OS filesystem in production and
// over an in-memory filesystem in tests.
package filesystem
