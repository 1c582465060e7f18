// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package,
// calls the service layer, and writes JSON responses. Errors are
// returned to the global error handler untouched.
package handler
