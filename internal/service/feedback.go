package service

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/deppfellow/club-feedback/internal/errs"
	"github.com/deppfellow/club-feedback/internal/model"
	"github.com/deppfellow/club-feedback/internal/repository"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=./feedback.go -package=svcmocks -destination=./mocks/feedback_repository.mock.go

// FeedbackRepository is the data access FeedbackService needs.
type FeedbackRepository interface {
	FindClubByName(ctx context.Context, name string) (model.Club, error)
	ListDepartmentFeedback(ctx context.Context, clubID int64, department string) ([]model.AggregatedFeedback, error)
}

// FeedbackService answers feedback queries for a club department.
type FeedbackService struct {
	repo   FeedbackRepository
	logger *zerolog.Logger
}

// NewFeedbackService creates a FeedbackService. logger is used when the
// request context carries none.
func NewFeedbackService(repo FeedbackRepository, logger *zerolog.Logger) *FeedbackService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &FeedbackService{
		repo:   repo,
		logger: logger,
	}
}

// DepartmentFeedback resolves clubName and returns the summarized feedback of
// every user who answered an interview of that club for department, highest
// rating first.
//
// Errors:
//   - 400 when department or clubName is empty
//   - 404 when no club has exactly that name
//   - repository errors are returned as they are
func (s *FeedbackService) DepartmentFeedback(ctx context.Context, department, clubName string) ([]model.DepartmentFeedback, error) {
	if department == "" || clubName == "" {
		return nil, errs.NewBadRequestError(errs.MessageMissingParams, false, nil, nil)
	}

	logger := s.contextLogger(ctx).With().
		Str("club_name", clubName).
		Str("department", department).
		Logger()

	club, err := s.repo.FindClubByName(ctx, clubName)
	if errors.Is(err, repository.ErrClubNotFound) {
		return nil, errs.NewNotFoundError(errs.MessageClubNotFound, false, nil)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListDepartmentFeedback(ctx, club.ID, department)
	if err != nil {
		return nil, err
	}

	result := make([]model.DepartmentFeedback, 0, len(rows))
	for _, row := range rows {
		var feedback string
		if row.Feedback != nil {
			feedback = Summarize(*row.Feedback)
		}

		logger.Debug().
			Str("user_email", row.UserEmail).
			Int("rating", row.Rating).
			Bool("feedback_present", row.Feedback != nil).
			Int("feedback_words", WordCount(feedback)).
			Msg("summarized feedback row")

		result = append(result, model.DepartmentFeedback{
			UserEmail:  row.UserEmail,
			ClubName:   row.ClubName,
			Department: row.Department,
			TechStack:  row.TechStack,
			Rating:     row.Rating,
			Feedback:   feedback,
		})
	}

	// Stable, so rows of equal rating keep the database order.
	slices.SortStableFunc(result, func(a, b model.DepartmentFeedback) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	logger.Info().
		Int64("club_id", club.ID).
		Int("rows", len(result)).
		Msg("department feedback loaded")

	return result, nil
}

func (s *FeedbackService) contextLogger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
