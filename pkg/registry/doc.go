// Package registry provides a generic, thread-safe registry that keeps items
// in registration order. The dispatcher relies on that order: the first
// registered handler whose pattern matches wins.
package registry
