// Package errs defines the typed validation and lookup errors shared by the
// domain model, the use cases, and the adapters.
//
// Every error type pairs a struct carrying the failure details with a package
// sentinel it unwraps to, so callers classify failures with errors.Is while
// messages keep the offending parameter name:
//   - ValueIsRequiredError / ErrValueIsRequired: a mandatory value is missing
//   - ValueIsInvalidError / ErrValueIsInvalid: a value failed validation
//   - ValueIsOutOfRangeError / ErrValueIsOutOfRange: a value lies outside its bounds
//   - ObjectNotFoundError / ErrObjectNotFound: a referenced object does not exist
//
// The HTTP adapter maps these sentinels onto response status codes, which is
// why use cases return errs types rather than ad hoc fmt.Errorf values.
package errs
