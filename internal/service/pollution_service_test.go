package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Disha-01-alt/PollutionBackend/internal/domain"
	"github.com/Disha-01-alt/PollutionBackend/internal/generator"
	"github.com/Disha-01-alt/PollutionBackend/internal/observability"
	"github.com/Disha-01-alt/PollutionBackend/internal/service"
)

type stubRepository struct {
	dataset domain.Dataset
	err     error
}

func (s *stubRepository) LoadDataset(_ context.Context) (domain.Dataset, error) {
	return s.dataset, s.err
}

func (s *stubRepository) Health(_ context.Context) error { return s.err }

func newTestService(repo domain.DatasetRepository) *service.PollutionService {
	return service.NewPollutionService(repo, observability.NewMetricsForTesting())
}

func TestGetPollution_NoFilters(t *testing.T) {
	svc := newTestService(&stubRepository{dataset: generator.BuildDataset()})

	result := svc.GetPollution(context.Background(), "", "")

	assert.Len(t, result.Data, 30)
	assert.Equal(t, domain.Cities, result.Cities)
	assert.Equal(t, domain.PollutionTypes, result.PollutionTypes)
}

func TestGetPollution_FilterByCity(t *testing.T) {
	svc := newTestService(&stubRepository{dataset: generator.BuildDataset()})

	result := svc.GetPollution(context.Background(), "Delhi", "")

	assert.Len(t, result.Data, 3)
	for _, rec := range result.Data {
		assert.Equal(t, "Delhi", rec.City)
	}
}

func TestGetPollution_FilterByType(t *testing.T) {
	svc := newTestService(&stubRepository{dataset: generator.BuildDataset()})

	result := svc.GetPollution(context.Background(), "", "soil")

	assert.Len(t, result.Data, 10)
	for _, rec := range result.Data {
		assert.Equal(t, "soil", rec.Type)
	}
}

func TestGetPollution_CombinedFilters(t *testing.T) {
	svc := newTestService(&stubRepository{dataset: generator.BuildDataset()})

	result := svc.GetPollution(context.Background(), "Delhi", "water")

	require.Len(t, result.Data, 1)
	assert.Equal(t, "Delhi", result.Data[0].City)
	assert.Equal(t, "water", result.Data[0].Type)
}

func TestGetPollution_UnknownCity(t *testing.T) {
	svc := newTestService(&stubRepository{dataset: generator.BuildDataset()})

	result := svc.GetPollution(context.Background(), "Atlantis", "")

	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, domain.Cities, result.Cities)
	assert.Equal(t, domain.PollutionTypes, result.PollutionTypes)
}

func TestGetPollution_FiltersAreCaseSensitive(t *testing.T) {
	svc := newTestService(&stubRepository{dataset: generator.BuildDataset()})

	assert.Empty(t, svc.GetPollution(context.Background(), "delhi", "").Data)
	assert.Empty(t, svc.GetPollution(context.Background(), "", "Water").Data)
}

func TestGetCities(t *testing.T) {
	svc := newTestService(&stubRepository{dataset: generator.BuildDataset()})

	assert.Equal(t, domain.Cities, svc.GetCities(context.Background()))
}

func TestGetPollutionTypes(t *testing.T) {
	svc := newTestService(&stubRepository{dataset: generator.BuildDataset()})

	assert.Equal(t, []string{"water", "soil", "plastic"}, svc.GetPollutionTypes(context.Background()))
}

func TestRepositoryErrorDegradesToEmpty(t *testing.T) {
	svc := newTestService(&stubRepository{err: errors.New("store unavailable")})

	result := svc.GetPollution(context.Background(), "", "")

	assert.Empty(t, result.Data)
	assert.Empty(t, result.Cities)
	assert.Empty(t, result.PollutionTypes)
	assert.Empty(t, svc.GetCities(context.Background()))
	assert.Empty(t, svc.GetPollutionTypes(context.Background()))
}
