// Package pkgroutine runs background work with bounded concurrency.
//
// The Manager type limits concurrency, collects returned errors and recovered
// panics, and is awaited on shutdown so background work is never cut short.
package pkgroutine
