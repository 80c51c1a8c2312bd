// Package service implements the ownership-scoped CRUD services that
// sit between the HTTP handlers and the stores. Every operation runs
// the validation gate on its input, proves the ownership chain
// (User -> Contact -> Address) for the caller's identity, and only then
// touches persistence. A broken chain at any link yields a not-found
// error, regardless of whether the row exists under a different owner.
package service
