// Package store defines the persistence interfaces consumed by the
// service layer, along with the sentinel errors every implementation
// must return. Implementations live in internal/platform/postgres; an
// in-memory fake for tests lives in internal/mocks.
package store
