package handler

import (
	"github.com/deppfellow/club-feedback/internal/server"
	"github.com/deppfellow/club-feedback/internal/service"
)

// Handlers groups all HTTP handlers.
type Handlers struct {
	Feedback *FeedbackHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Feedback: NewFeedbackHandler(s, services.Feedback),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
