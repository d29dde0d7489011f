// Package memstore provides in-memory implementations of the catalog
// collaborator interfaces, plus a JSON library loader for fixtures and
// the oneshot CLI.
package memstore
