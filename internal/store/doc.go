// Package store provides the in-memory address book for a contactbook session.
//
// MemoryBook implements domain.AddressBook. Records are keyed by their name
// string and kept in insertion order, which drives both `show all` and the
// `show page` cursor. Nothing is written to disk; a new session starts empty.
package store
