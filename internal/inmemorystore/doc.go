// Package inmemorystore provides a thread-safe, in-memory implementation
// of the cellstore.Store interface. Content lives only for the lifetime of
// the sheet session.
package inmemorystore
