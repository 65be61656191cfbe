// Package mocks provides hand-written mock implementations of the store and
// service interfaces for use in tests. Every mock supports two styles:
// function fields for per-test behavior, and an in-memory default
// implementation for simple happy-path tests.
package mocks
