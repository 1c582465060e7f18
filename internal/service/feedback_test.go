package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/deppfellow/club-feedback/internal/errs"
	"github.com/deppfellow/club-feedback/internal/model"
	"github.com/deppfellow/club-feedback/internal/repository"
	svcmocks "github.com/deppfellow/club-feedback/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr(s string) *string { return &s }

func TestFeedbackService_DepartmentFeedback(t *testing.T) {
	long := strings.Repeat("solid answer ", 40) // 80 words

	testCases := []struct {
		name       string
		department string
		clubName   string
		mock       func(ctrl *gomock.Controller) FeedbackRepository
		wantStatus int
		wantErr    error
		wantRows   []model.DepartmentFeedback
	}{
		{
			name:       "missing department",
			department: "",
			clubName:   "Robotics Club",
			mock: func(ctrl *gomock.Controller) FeedbackRepository {
				return svcmocks.NewMockFeedbackRepository(ctrl)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing club name",
			department: "Backend",
			clubName:   "",
			mock: func(ctrl *gomock.Controller) FeedbackRepository {
				return svcmocks.NewMockFeedbackRepository(ctrl)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown club",
			department: "Backend",
			clubName:   "Chess Club",
			mock: func(ctrl *gomock.Controller) FeedbackRepository {
				repo := svcmocks.NewMockFeedbackRepository(ctrl)
				repo.EXPECT().FindClubByName(gomock.Any(), "Chess Club").
					Return(model.Club{}, repository.ErrClubNotFound)
				return repo
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "club lookup fails",
			department: "Backend",
			clubName:   "Robotics Club",
			mock: func(ctrl *gomock.Controller) FeedbackRepository {
				repo := svcmocks.NewMockFeedbackRepository(ctrl)
				repo.EXPECT().FindClubByName(gomock.Any(), "Robotics Club").
					Return(model.Club{}, errDB)
				return repo
			},
			wantErr: errDB,
		},
		{
			name:       "aggregation fails",
			department: "Backend",
			clubName:   "Robotics Club",
			mock: func(ctrl *gomock.Controller) FeedbackRepository {
				repo := svcmocks.NewMockFeedbackRepository(ctrl)
				repo.EXPECT().FindClubByName(gomock.Any(), "Robotics Club").
					Return(model.Club{ID: 7, Name: "Robotics Club"}, nil)
				repo.EXPECT().ListDepartmentFeedback(gomock.Any(), int64(7), "Backend").
					Return(nil, errDB)
				return repo
			},
			wantErr: errDB,
		},
		{
			name:       "known club with answers",
			department: "Backend",
			clubName:   "Robotics Club",
			mock: func(ctrl *gomock.Controller) FeedbackRepository {
				repo := svcmocks.NewMockFeedbackRepository(ctrl)
				repo.EXPECT().FindClubByName(gomock.Any(), "Robotics Club").
					Return(model.Club{ID: 7, Name: "Robotics Club"}, nil)
				repo.EXPECT().ListDepartmentFeedback(gomock.Any(), int64(7), "Backend").
					Return([]model.AggregatedFeedback{
						{UserEmail: "a@club.io", ClubName: "Robotics Club", Department: "Backend", TechStack: "Go", Rating: 9, Feedback: ptr("good great")},
						{UserEmail: "b@club.io", ClubName: "Robotics Club", Department: "Backend", TechStack: "Go", Rating: 3, Feedback: ptr("ok")},
					}, nil)
				return repo
			},
			wantRows: []model.DepartmentFeedback{
				{UserEmail: "a@club.io", ClubName: "Robotics Club", Department: "Backend", TechStack: "Go", Rating: 9, Feedback: "good great"},
				{UserEmail: "b@club.io", ClubName: "Robotics Club", Department: "Backend", TechStack: "Go", Rating: 3, Feedback: "ok"},
			},
		},
		{
			name:       "long feedback truncated, null feedback tolerated, rating order enforced",
			department: "Backend",
			clubName:   "Robotics Club",
			mock: func(ctrl *gomock.Controller) FeedbackRepository {
				repo := svcmocks.NewMockFeedbackRepository(ctrl)
				repo.EXPECT().FindClubByName(gomock.Any(), "Robotics Club").
					Return(model.Club{ID: 7, Name: "Robotics Club"}, nil)
				repo.EXPECT().ListDepartmentFeedback(gomock.Any(), int64(7), "Backend").
					Return([]model.AggregatedFeedback{
						{UserEmail: "c@club.io", Rating: 2, Feedback: nil},
						{UserEmail: "a@club.io", Rating: 8, Feedback: ptr(long)},
						{UserEmail: "d@club.io", Rating: 8, Feedback: ptr("tie second")},
					}, nil)
				return repo
			},
			wantRows: []model.DepartmentFeedback{
				{UserEmail: "a@club.io", Rating: 8, Feedback: strings.TrimSpace(strings.Repeat("solid answer ", 25)) + "..."},
				{UserEmail: "d@club.io", Rating: 8, Feedback: "tie second"},
				{UserEmail: "c@club.io", Rating: 2, Feedback: ""},
			},
		},
		{
			name:       "no answers",
			department: "Frontend",
			clubName:   "Robotics Club",
			mock: func(ctrl *gomock.Controller) FeedbackRepository {
				repo := svcmocks.NewMockFeedbackRepository(ctrl)
				repo.EXPECT().FindClubByName(gomock.Any(), "Robotics Club").
					Return(model.Club{ID: 7, Name: "Robotics Club"}, nil)
				repo.EXPECT().ListDepartmentFeedback(gomock.Any(), int64(7), "Frontend").
					Return([]model.AggregatedFeedback{}, nil)
				return repo
			},
			wantRows: []model.DepartmentFeedback{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewFeedbackService(tc.mock(ctrl), nil)
			rows, err := svc.DepartmentFeedback(context.Background(), tc.department, tc.clubName)

			switch {
			case tc.wantStatus != 0:
				var httpErr *errs.HTTPError
				require.True(t, errors.As(err, &httpErr), "got %v", err)
				assert.Equal(t, tc.wantStatus, httpErr.Status)
				assert.Nil(t, rows)
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, rows)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantRows, rows)
			}
		})
	}
}

func TestFeedbackService_DepartmentFeedback_Repeatable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := svcmocks.NewMockFeedbackRepository(ctrl)
	repo.EXPECT().FindClubByName(gomock.Any(), "Robotics Club").
		Return(model.Club{ID: 7, Name: "Robotics Club"}, nil).Times(2)
	repo.EXPECT().ListDepartmentFeedback(gomock.Any(), int64(7), "Backend").
		Return([]model.AggregatedFeedback{
			{UserEmail: "a@club.io", Rating: 9, Feedback: ptr("good great")},
			{UserEmail: "b@club.io", Rating: 3, Feedback: ptr("ok")},
		}, nil).Times(2)

	svc := NewFeedbackService(repo, nil)
	first, err := svc.DepartmentFeedback(context.Background(), "Backend", "Robotics Club")
	require.NoError(t, err)
	second, err := svc.DepartmentFeedback(context.Background(), "Backend", "Robotics Club")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

var errDB = errors.New("connection refused")
