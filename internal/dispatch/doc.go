// Package dispatch maps command words to handlers over a contact service.
//
// Every handler failure is caught here and rewritten as one line prefixed by
// its kind (ValidationError, MissingArgumentError, UnknownCommandError,
// DuplicateKeyError, NotFoundError). Only Parse can fail outward, with
// domain.ErrEmptyInput for a blank line; what to do with it is the session's
// call.
package dispatch
