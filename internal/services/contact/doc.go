// Package contact implements the record flows behind the add, delete, change
// and show commands on top of a domain.AddressBook.
package contact
