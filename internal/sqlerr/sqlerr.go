// Package sqlerr specifically handles database driver errors.
//
// It parses the SQLSTATE codes reported by the pgx driver into a small set of
// categories so the error handler can log them meaningfully, and converts
// every driver error into an application error that reveals nothing of the
// database to the client.
package sqlerr

import "strings"

// Code is a category of SQLSTATE codes.
type Code string

const (
	Other                 Code = "other"
	NotNullViolation      Code = "not_null_violation"
	ForeignKeyViolation   Code = "foreign_key_violation"
	UniqueViolation       Code = "unique_violation"
	CheckViolation        Code = "check_violation"
	InvalidTextInput      Code = "invalid_text_representation"
	UndefinedTable        Code = "undefined_table"
	UndefinedColumn       Code = "undefined_column"
	SyntaxError           Code = "syntax_error"
	InsufficientPrivilege Code = "insufficient_privilege"
	QueryCanceled         Code = "query_canceled"
	ConnectionException   Code = "connection_exception"
	ServerShutdown        Code = "server_shutdown"
	TooManyConnections    Code = "too_many_connections"
)

// MapCode maps a SQLSTATE code to a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "22P02":
		return InvalidTextInput
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	case "42601":
		return SyntaxError
	case "42501":
		return InsufficientPrivilege
	case "57014":
		return QueryCanceled
	case "57P01", "57P02", "57P03":
		return ServerShutdown
	case "53300":
		return TooManyConnections
	}

	// Class 08 covers every connection exception.
	if strings.HasPrefix(sqlState, "08") {
		return ConnectionException
	}
	return Other
}

// Severity is the severity reported by the server.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity maps a server severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch Severity(strings.ToUpper(severity)) {
	case SeverityFatal:
		return SeverityFatal
	case SeverityPanic:
		return SeverityPanic
	case SeverityWarning:
		return SeverityWarning
	case SeverityNotice:
		return SeverityNotice
	case SeverityDebug:
		return SeverityDebug
	case SeverityInfo:
		return SeverityInfo
	case SeverityLog:
		return SeverityLog
	default:
		return SeverityError
	}
}

// Error is a classified database error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return string(e.Severity) + ": " + e.Message + " (SQLSTATE " + e.DatabaseCode + ")"
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}
