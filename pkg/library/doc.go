// Package library models a small home library: a Room owns Shelves, each
// Shelf holds an ordered sequence of Books, and a Catalog provides the
// organizing and reporting operations over one Room — distributing a pile
// of loose books onto shelves by category, sorting every shelf by title,
// and dumping the room contents as text.
//
// The package is pure in-memory and single-threaded. Callers construct the
// Room/Shelf/Book graph themselves (or load it through a storage
// collaborator) and hand it to NewCatalog; the catalog borrows the room and
// mutates its shelves in place.
package library
