package services

import (
	"fmt"
	"math"

	"registration-service/internal/models"
	"registration-service/internal/repository"
)

type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
}

func NewDashboardService(dashboardRepo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
	}
}

func (s *DashboardService) GetAgentStats(agentID string) (*models.CustomerStats, error) {
	stats, err := s.dashboardRepo.GetCustomerStatsByAgent(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent stats: %w", err)
	}
	return stats, nil
}

func (s *DashboardService) GetOverallStats() (*models.OverallStats, error) {
	stats, err := s.dashboardRepo.GetOverallStats()
	if err != nil {
		return nil, fmt.Errorf("failed to get overall stats: %w", err)
	}
	return stats, nil
}

func (s *DashboardService) GetAgentPerformance() ([]models.AgentPerformance, error) {
	results, err := s.dashboardRepo.GetAgentPerformance()
	if err != nil {
		return nil, fmt.Errorf("failed to get agent performance: %w", err)
	}
	return results, nil
}

// GetProductPopularity returns per-product signup counts with each
// product's share of all signups as a rounded percentage.
func (s *DashboardService) GetProductPopularity() ([]models.ProductPopularity, error) {
	results, err := s.dashboardRepo.GetProductPopularity()
	if err != nil {
		return nil, fmt.Errorf("failed to get product popularity: %w", err)
	}

	total := 0
	for _, result := range results {
		total += result.Count
	}
	applyPercentages(results, total)

	return results, nil
}

func applyPercentages(results []models.ProductPopularity, total int) {
	if total <= 0 {
		return
	}
	for i := range results {
		results[i].Percentage = int(math.Round(float64(results[i].Count) * 100 / float64(total)))
	}
}
