// Package memory provides an in-memory repository source.
package memory
