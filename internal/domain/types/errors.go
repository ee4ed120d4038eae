package types

import "errors"

// Error kinds. Failures wrap one of these with fmt.Errorf("%w: ...") so the
// dispatcher can classify them with errors.Is.
var (
	// ErrValidation is returned when a raw value fails a field predicate or an
	// argument cannot be classified as a phone or a birthday.
	ErrValidation = errors.New("validation failed")
	// ErrMissingArgument is returned when a command gets the wrong number of arguments.
	ErrMissingArgument = errors.New("missing argument")
	// ErrUnknownCommand is returned for a command word with no handler.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrDuplicateKey is returned when a record with the same name already exists.
	ErrDuplicateKey = errors.New("duplicate contact")
	// ErrNotFound is returned when a name, phone or birthday is not present.
	ErrNotFound = errors.New("not found")
	// ErrEmptyInput is returned by the tokenizer for a blank line.
	ErrEmptyInput = errors.New("empty input")
)
