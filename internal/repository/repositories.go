package repository

import (
	"github.com/deppfellow/club-feedback/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Feedback *FeedbackRepository
}

// NewRepositories constructs the repository container on top of the
// server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Feedback: NewFeedbackRepository(s.DB.Pool),
	}
}
