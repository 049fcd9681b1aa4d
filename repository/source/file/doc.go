// Package file provides a repository source backed by a directory of
// YAML config fragments.
package file
