// Package errs defines the HTTP error type returned by every layer and the
// constructors for the conditions the API reports.
//
// Clients always receive the same shape: {"error": "<message>"}.
package errs
