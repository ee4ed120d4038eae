package interfaces

import domaintypes "contactbook/internal/domain/types"

// AddressBook owns the session's records, keyed by name in insertion order.
type AddressBook interface {
	AddRecord(record *domaintypes.Record) error
	DeleteRecord(name string) error
	GetRecord(name string) (*domaintypes.Record, error)
	Has(name string) bool
	Len() int

	// Views
	RenderOne(name string) string
	RenderAll() string

	// Pagination; ok is false once a pass is exhausted.
	NextPage() (page []*domaintypes.Record, ok bool)
	ResetCursor()
}
