package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/deppfellow/club-feedback/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// ErrCode reports the Code of the first *Error or *pgconn.PgError in the
// chain of err, and Other if there is none.
func ErrCode(err error) Code {
	if sqlErr, ok := Classify(err); ok {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// Classify finds the database error in the chain of err.
//
// Server-side errors are converted from *pgconn.PgError; failures to reach
// the server are reported as ConnectionException.
func Classify(err error) (*Error, bool) {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr), true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return &Error{
			Code:      ConnectionException,
			Severity:  SeverityFatal,
			Message:   connectErr.Error(),
			driverErr: connectErr,
		}, true
	}

	return nil, false
}

// LogFields adds the database details of err to a log event. Events for
// errors that did not come from the database are returned unchanged.
func LogFields(e *zerolog.Event, err error) *zerolog.Event {
	sqlErr, ok := Classify(err)
	if !ok {
		return e
	}

	e = e.Str("db.code", string(sqlErr.Code)).
		Str("db.severity", string(sqlErr.Severity))
	if sqlErr.DatabaseCode != "" {
		e = e.Str("db.sqlstate", sqlErr.DatabaseCode)
	}
	if sqlErr.TableName != "" {
		e = e.Str("db.table", sqlErr.TableName)
	}
	if sqlErr.ColumnName != "" {
		e = e.Str("db.column", sqlErr.ColumnName)
	}
	if sqlErr.ConstraintName != "" {
		e = e.Str("db.constraint", sqlErr.ConstraintName)
	}
	return e
}

// HandleError converts a low-level error into an application-level error.
//
//   - *errs.HTTPError: returned unchanged
//   - ErrNoRows: 404 Not Found
//   - anything else, database errors included: 500 Internal Server Error
//
// Nothing from the original error reaches the returned message.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
