package service

import (
	"github.com/deppfellow/club-feedback/internal/repository"
	"github.com/deppfellow/club-feedback/internal/server"
)

// Services groups every business service.
type Services struct {
	Feedback *FeedbackService
}

// NewServices wires the services on top of the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Feedback: NewFeedbackService(repos.Feedback, s.Logger),
	}
}
