// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding and decoding, error mapping, logging, recovery, and
// correlation ID propagation. Route groups let feature modules mount their
// endpoints under a path prefix.
package pkgrouter
