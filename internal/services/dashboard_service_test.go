package services

import (
	"testing"

	"registration-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestProductPopularityPercentages(t *testing.T) {
	results := []models.ProductPopularity{
		{ProductName: "OPPORTUNITY", Count: 6},
		{ProductName: "MOMENTUM", Count: 3},
		{ProductName: "PINNACLE", Count: 1},
	}

	total := 0
	for _, r := range results {
		total += r.Count
	}
	assert.Equal(t, 10, total)

	applyPercentages(results, total)

	assert.Equal(t, 60, results[0].Percentage)
	assert.Equal(t, 30, results[1].Percentage)
	assert.Equal(t, 10, results[2].Percentage)
}

func TestProductPopularityPercentages_NoSignups(t *testing.T) {
	results := []models.ProductPopularity{
		{ProductName: "OPPORTUNITY", Count: 0},
		{ProductName: "MOMENTUM", Count: 0},
	}

	applyPercentages(results, 0)

	assert.Equal(t, 0, results[0].Percentage)
	assert.Equal(t, 0, results[1].Percentage)
}
