package service

import (
	"context"
	"log"

	"github.com/Disha-01-alt/PollutionBackend/internal/domain"
	"github.com/Disha-01-alt/PollutionBackend/internal/observability"
)

// DatasetRepository is re-exported from domain for convenience
type DatasetRepository = domain.DatasetRepository

// PollutionService answers pollution data queries over the loaded dataset
type PollutionService struct {
	repo    DatasetRepository
	metrics *observability.Metrics
}

// NewPollutionService creates a new pollution service
func NewPollutionService(repo DatasetRepository, metrics *observability.Metrics) *PollutionService {
	return &PollutionService{
		repo:    repo,
		metrics: metrics,
	}
}

// GetPollution returns records matching the optional city and type filters.
// Filters are exact-match and case-sensitive; both present means AND. The
// fixed city and type lists are always returned in full.
func (s *PollutionService) GetPollution(ctx context.Context, city, pollutionType string) domain.PollutionResponse {
	ds := s.dataset(ctx)

	filtered := make([]domain.PollutionRecord, 0, len(ds.Data))
	for _, rec := range ds.Data {
		if city != "" && rec.City != city {
			continue
		}
		if pollutionType != "" && rec.Type != pollutionType {
			continue
		}
		filtered = append(filtered, rec)
	}

	return domain.PollutionResponse{
		Data:           filtered,
		Cities:         ds.Cities,
		PollutionTypes: ds.PollutionTypes,
	}
}

// GetCities returns the fixed city list, order preserved
func (s *PollutionService) GetCities(ctx context.Context) []string {
	return s.dataset(ctx).Cities
}

// GetPollutionTypes returns the fixed pollution type list, order preserved
func (s *PollutionService) GetPollutionTypes(ctx context.Context) []string {
	return s.dataset(ctx).PollutionTypes
}

// Health reports whether the backing store is reachable
func (s *PollutionService) Health(ctx context.Context) error {
	return s.repo.Health(ctx)
}

// dataset fetches the dataset, degrading to an empty one on repository
// failure. Errors are logged and never propagated to callers.
func (s *PollutionService) dataset(ctx context.Context) domain.Dataset {
	ds, err := s.repo.LoadDataset(ctx)
	if err != nil {
		log.Printf("service: error loading pollution dataset: %v", err)
		if s.metrics != nil {
			s.metrics.DatasetLoadErrors.Inc()
		}
		return domain.EmptyDataset()
	}

	if s.metrics != nil {
		s.metrics.DatasetRecords.Set(float64(len(ds.Data)))
	}
	return ds
}
