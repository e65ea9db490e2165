// Package mocks provides hand-rolled in-memory implementations of the
// store and auth interfaces for tests. Each mock offers optional function
// fields for per-test behavior overrides on top of a working in-memory
// default.
package mocks
