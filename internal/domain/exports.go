package domain

import (
	interfaces "contactbook/internal/domain/interfaces"
	types "contactbook/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Name     = types.Name
	Phone    = types.Phone
	Birthday = types.Birthday
	Record   = types.Record
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AddressBook    = interfaces.AddressBook
	ContactService = interfaces.ContactService
	CommandHandler = interfaces.CommandHandler
)

// Error kinds re-exported from the types subpackage.
var (
	ErrValidation      = types.ErrValidation
	ErrMissingArgument = types.ErrMissingArgument
	ErrUnknownCommand  = types.ErrUnknownCommand
	ErrDuplicateKey    = types.ErrDuplicateKey
	ErrNotFound        = types.ErrNotFound
	ErrEmptyInput      = types.ErrEmptyInput
)
