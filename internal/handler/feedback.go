package handler

import (
	"github.com/deppfellow/club-feedback/internal/errs"
	"github.com/deppfellow/club-feedback/internal/model"
	"github.com/deppfellow/club-feedback/internal/server"
	"github.com/deppfellow/club-feedback/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// DepartmentFeedbackRequest is the query of GET /api/department.
type DepartmentFeedbackRequest struct {
	Department string `query:"department" validate:"required"`
	ClubName   string `query:"club_name" validate:"required"`
}

func (r *DepartmentFeedbackRequest) Validate() error {
	return validate.Struct(r)
}

// FailureMessage is the body sent when either parameter is missing.
func (r *DepartmentFeedbackRequest) FailureMessage() string {
	return errs.MessageMissingParams
}

// FeedbackHandler serves the department feedback endpoint.
type FeedbackHandler struct {
	Handler
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(s *server.Server, feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		Handler:         NewHandler(s),
		feedbackService: feedbackService,
	}
}

// GetDepartmentFeedback returns the summarized feedback for a club's department.
func (h *FeedbackHandler) GetDepartmentFeedback(c echo.Context, req *DepartmentFeedbackRequest) ([]model.DepartmentFeedback, error) {
	return h.feedbackService.DepartmentFeedback(c.Request().Context(), req.Department, req.ClubName)
}
