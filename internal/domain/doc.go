// Package domain defines the contact model and the contracts shared across the app.
// It re-exports the validated value types, the Record aggregate and the error
// kinds from the types subpackage, and the store and service interfaces from
// the interfaces subpackage.
package domain
