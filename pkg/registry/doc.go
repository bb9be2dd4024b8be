// Package registry provides a generic, type-safe registry used to bind
// documentation topics to their handlers. Bindings are established once
// at startup and never mutated afterwards.
package registry
