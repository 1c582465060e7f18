package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/club-feedback/internal/server"
)

// TracingMiddleware owns New Relic related Echo middleware.
//
// It holds:
//   - server: shared deps (config, logger)
//   - nrApp: the New Relic application, nil when no license key is configured
//
// It provides two layers that must run in this order:
//  1. NewRelicMiddleware() -> starts one transaction per request
//  2. EnhanceTracing()     -> decorates that transaction and notices errors
//
// Both degrade to pass-through middleware when New Relic is disabled.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

// NewTracingMiddleware constructs TracingMiddleware.
func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware returns the New Relic Echo middleware.
//
// With nrApp set, nrecho.Middleware:
//   - starts a transaction named after the route for each request
//   - stores it in the request context
//   - records duration and response status when the handler returns
//
// newrelic.FromContext only finds a transaction downstream of this
// middleware, so ContextEnhancer and EnhanceTracing are registered after it.
// Without nrApp the handler chain is returned unchanged.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds custom attributes to the current transaction.
//
// It adds:
//   - client IP and user agent
//   - the request id set by RequestID, for correlating traces with logs
//   - the final response status, read after the handler ran
//
// Returned errors are noticed through nrpkgerrors.Wrap, which keeps the
// pkg/errors stack trace and reports the error class of the cause.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// nil when New Relic is disabled or NewRelicMiddleware did not run first.
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())
			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)

			// NoticeError only records the error on the transaction. The error
			// is still returned so that GlobalErrorHandler writes the response.
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			// When err is non-nil the error handler has not run yet, so this
			// may still read 200; nrecho records the status actually written.
			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}
