// Package errs provides the standardized error types used across the freight
// application.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - an Error() method for formatting
//   - an Unwrap() method so errors.Is can match the sentinel
//
// The taxonomy maps directly to client-visible outcomes: ObjectNotFoundError
// becomes a "not found" response, ValueIsInvalidError/ValueIsRequiredError a
// validation rejection, and ConflictError a duplicate-key rejection. Anything
// else propagates unmodified as an internal failure.
package errs
