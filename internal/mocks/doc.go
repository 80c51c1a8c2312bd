// Package mocks provides centralized in-memory implementations of the
// store interfaces for testing.
//
// Each mock offers a default map-backed implementation plus per-method
// function fields for overriding behavior in individual tests. Using
// these instead of inline mocks keeps the ownership-scoping semantics
// (id AND owner matching) consistent across test packages.
package mocks
