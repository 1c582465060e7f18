// Package validation binds request input and validates it,
// turning failures into 400 errors the client can understand.
//
// Rules are expressed with `validator` struct tags; field-level
// details are kept on the error for the logs.
package validation
