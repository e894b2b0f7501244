// Package app wires ladle's pieces together: configuration, logging, the
// recipe service client, the in-memory store, and the TUI.
package app
