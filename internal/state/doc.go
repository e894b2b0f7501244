// Package state provides the in-memory recipe store and search filter.
//
// # Overview
//
// The Store is the authoritative recipe list for a session. It is loaded
// wholesale from the remote service at startup and then reconciled after
// each successful write: create appends, update replaces in place by id,
// delete removes by id. Failed remote calls never touch the store, so its
// contents always reflect the last successful response for each recipe.
//
// # Concurrency
//
// Bubble Tea delivers messages to the model one at a time, but commands
// run in their own goroutines, so the Store guards its slice with a
// RWMutex and returns defensive copies:
//
//   - Recipes() clones the backing slice before returning it
//   - ReplaceAll() clones its argument before storing it
//
// Mutating a returned slice therefore never corrupts the store.
//
// # Search
//
// Filter is a pure function over a snapshot: case-insensitive substring
// match against the title or any single ingredient line, empty query
// matches all, input order preserved. It runs on every render; the
// dataset is a personal recipe collection, so there is nothing worth
// caching.
package state
