package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/club-feedback/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupRequest struct {
	Name  string `query:"name" validate:"required"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=10"`
}

func (r *lookupRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *lookupRequest) FailureMessage() string {
	return "Missing name"
}

type plainRequest struct {
	Code string `query:"code"`
}

func (r *plainRequest) Validate() error {
	if r.Code == "bad" {
		return CustomValidationErrors{{Field: "code", Message: "is not allowed"}}
	}
	if r.Code == "boom" {
		return errors.New("code rejected")
	}
	return nil
}

func newContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	testCases := []struct {
		name        string
		target      string
		payload     Validatable
		wantMessage string
		wantFields  []errs.FieldError
	}{
		{
			name:    "valid query",
			target:  "/lookup?name=chess&limit=3",
			payload: &lookupRequest{},
		},
		{
			name:        "missing required field uses request message",
			target:      "/lookup",
			payload:     &lookupRequest{},
			wantMessage: "Missing name",
			wantFields:  []errs.FieldError{{Field: "name", Error: "is required"}},
		},
		{
			name:        "out of range",
			target:      "/lookup?name=chess&limit=11",
			payload:     &lookupRequest{},
			wantMessage: "Missing name",
			wantFields:  []errs.FieldError{{Field: "limit", Error: "must not exceed 10"}},
		},
		{
			name:        "custom errors use default message",
			target:      "/plain?code=bad",
			payload:     &plainRequest{},
			wantMessage: "Validation failed",
			wantFields:  []errs.FieldError{{Field: "code", Error: "is not allowed"}},
		},
		{
			name:        "other errors",
			target:      "/plain?code=boom",
			payload:     &plainRequest{},
			wantMessage: "Validation failed: code rejected",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := BindAndValidate(newContext(tc.target), tc.payload)
			if tc.wantMessage == "" {
				require.NoError(t, err)
				return
			}

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tc.wantMessage, httpErr.Message)
			assert.Equal(t, tc.wantFields, httpErr.Errors)
		})
	}
}

func TestBindAndValidate_BindFailure(t *testing.T) {
	err := BindAndValidate(newContext("/lookup?name=chess&limit=lots"), &lookupRequest{})

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Missing name", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "request", httpErr.Errors[0].Field)
}
