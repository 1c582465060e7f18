package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/club-feedback/internal/model"
	"github.com/jackc/pgx/v5"
	pkgerrors "github.com/pkg/errors"
)

// ErrClubNotFound is returned when no club matches the requested name.
var ErrClubNotFound = errors.New("club not found")

const findClubByNameSQL = `
SELECT id, "clubName"
FROM "ClubEmail"
WHERE "clubName" = $1
LIMIT 1`

// Answers of one club and department, grouped per user, interview
// description and rating. The inner joins drop interviews without answers.
const listDepartmentFeedbackSQL = `
SELECT ua."userEmail",
       ce."clubName",
       mi."jobPosition"              AS department,
       COALESCE(mi."jobDesc", '')    AS tech_stack,
       ua."rating"::integer          AS rating,
       STRING_AGG(ua."feedback", ' ') AS all_feedback
FROM "UserAnswer" ua
JOIN "MockInterview" mi ON ua."mockIdRef" = mi."mockId"
JOIN "ClubEmail" ce ON mi."clubId" = ce."id"
WHERE ce."id" = $1 AND mi."jobPosition" = $2
GROUP BY ua."userEmail", ce."clubName", mi."jobPosition", mi."jobDesc", ua."rating"
ORDER BY ua."rating"::integer DESC`

// FeedbackRepository runs the feedback queries against a Querier.
type FeedbackRepository struct {
	db Querier
}

// NewFeedbackRepository creates a FeedbackRepository.
func NewFeedbackRepository(db Querier) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// FindClubByName resolves a club by exact name match.
func (r *FeedbackRepository) FindClubByName(ctx context.Context, name string) (model.Club, error) {
	var club model.Club

	err := r.db.QueryRow(ctx, findClubByNameSQL, name).Scan(&club.ID, &club.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Club{}, ErrClubNotFound
	}
	if err != nil {
		return model.Club{}, pkgerrors.Wrapf(err, "querying club %q", name)
	}

	return club, nil
}

// ListDepartmentFeedback returns the aggregated feedback rows of a club and
// department, highest rating first.
func (r *FeedbackRepository) ListDepartmentFeedback(ctx context.Context, clubID int64, department string) ([]model.AggregatedFeedback, error) {
	rows, err := r.db.Query(ctx, listDepartmentFeedbackSQL, clubID, department)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "querying department feedback")
	}
	defer rows.Close()

	result := make([]model.AggregatedFeedback, 0)
	for rows.Next() {
		var row model.AggregatedFeedback
		if err := rows.Scan(
			&row.UserEmail,
			&row.ClubName,
			&row.Department,
			&row.TechStack,
			&row.Rating,
			&row.Feedback,
		); err != nil {
			return nil, pkgerrors.Wrap(err, "scanning department feedback")
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "reading department feedback")
	}

	return result, nil
}
