package services

import (
	"context"

	health "contactrelay/gen/health"
)

// HealthService implements the health service
type HealthService struct {
	name string
}

// NewHealthService creates a new health service
func NewHealthService(name string) *HealthService {
	return &HealthService{name: name}
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) (*health.Healthresult, error) {
	status := "healthy"
	service := s.name
	return &health.Healthresult{
		Status:  &status,
		Service: &service,
	}, nil
}
