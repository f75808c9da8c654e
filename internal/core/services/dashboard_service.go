package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/freight_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freight_management_app/internal/core/ports/services"
)

type dashboardService struct {
	BaseService
	repo portsrepo.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo portsrepo.DashboardRepository) portssvc.DashboardService {
	return &dashboardService{repo: repo}
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

// GetSummary returns counts and totals for the landing page.
func (s *dashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary, err := s.repo.GetDashboardSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load dashboard summary")
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	if summary.ShipmentsByStatus == nil {
		summary.ShipmentsByStatus = map[domain.ShipmentStatus]int{}
	}
	return summary, nil
}
