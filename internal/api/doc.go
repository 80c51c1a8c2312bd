// Package api contains the HTTP handlers, the response projections,
// and the centralized error responder. Handlers stay thin: decode the
// closed request shape, call the service, shape the envelope. All
// authorization decisions live in the service layer's ownership checks.
package api
