package catalogs

import (
	"context"
	"errors"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts/mocks"
	"ot-tracking-service/internal/pkg/catalog"
	"ot-tracking-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogUsecase(redisRepo *mocks.MockRedisRepository) *catalogUsecase {
	return &catalogUsecase{
		RedisRepository: redisRepo,
		InternalConfig:  &config.InternalConfig{Cache: config.AppCache{CatalogTTLInHours: 24}},
		Log:             zap.NewNop(),
	}
}

func TestBuildProgramEvaluationCatalog(t *testing.T) {
	result := BuildProgramEvaluationCatalog()

	assert.Len(t, result.Questions, 17)
	assert.Equal(t, 85, result.MaxTotalScore)
	require.Len(t, result.Domains, 4)
	assert.Equal(t, catalog.DomainPlay, result.Domains[0].ID)
	assert.Equal(t, []string{"q1", "q2", "q3", "q4", "q5"}, result.Domains[0].QuestionIDs)
	assert.Len(t, result.Domains[3].QuestionIDs, 3, "gross motor has three questions")
	assert.Len(t, result.RatingScale, 5)
}

func TestBuildROMCatalog(t *testing.T) {
	result := BuildROMCatalog()

	require.Len(t, result.Regions, 7)
	assert.Equal(t, catalog.RegionShoulder, result.Regions[0].ID)
	assert.Equal(t, "Elbow/Forearm", result.Regions[1].Name)
	total := 0
	for _, region := range result.Regions {
		assert.Equal(t, catalog.MeasurementsByRegion(region.ID), region.Measurements)
		total += len(region.Measurements)
	}
	assert.Equal(t, len(catalog.Measurements()), total)
}

func TestGetProgramEvaluationCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache Hit", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("Get", mock.Anything, constvars.RedisKeyProgramEvaluationCatalog).
			Return(`{"questions":[],"domains":[],"rating_scale":[],"max_total_score":85}`, nil)

		result, err := newCatalogUsecase(redisRepo).GetProgramEvaluationCatalog(ctx)

		require.NoError(t, err)
		assert.Equal(t, 85, result.MaxTotalScore)
		assert.Empty(t, result.Questions)
		redisRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cache Miss Rebuilds And Stores", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("Get", mock.Anything, constvars.RedisKeyProgramEvaluationCatalog).Return("", nil)
		redisRepo.On("Set", mock.Anything, constvars.RedisKeyProgramEvaluationCatalog, mock.Anything, 24*time.Hour).Return(nil)

		result, err := newCatalogUsecase(redisRepo).GetProgramEvaluationCatalog(ctx)

		require.NoError(t, err)
		assert.Len(t, result.Questions, 17)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Redis Down Still Serves", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("Get", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		result, err := newCatalogUsecase(redisRepo).GetProgramEvaluationCatalog(ctx)

		require.NoError(t, err)
		assert.Len(t, result.Domains, 4)
	})
}

func TestGetROMCatalog(t *testing.T) {
	redisRepo := new(mocks.MockRedisRepository)
	redisRepo.On("Get", mock.Anything, constvars.RedisKeyROMCatalog).Return("{not json", nil)
	redisRepo.On("Set", mock.Anything, constvars.RedisKeyROMCatalog, mock.Anything, 24*time.Hour).Return(nil)

	result, err := newCatalogUsecase(redisRepo).GetROMCatalog(context.Background())

	require.NoError(t, err, "corrupt cache entries are rebuilt")
	assert.Len(t, result.Regions, 7)
	redisRepo.AssertExpectations(t)
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	keys := []string{constvars.RedisKeyProgramEvaluationCatalog, constvars.RedisKeyROMCatalog}

	t.Run("Deletes And Rewarms", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("Delete", mock.Anything, keys).Return(nil)
		redisRepo.On("Set", mock.Anything, constvars.RedisKeyProgramEvaluationCatalog, mock.Anything, 24*time.Hour).Return(nil)
		redisRepo.On("Set", mock.Anything, constvars.RedisKeyROMCatalog, mock.Anything, 24*time.Hour).Return(nil)

		err := newCatalogUsecase(redisRepo).Refresh(ctx)

		require.NoError(t, err)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Delete Failure", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("Delete", mock.Anything, keys).Return(errors.New("timeout"))

		err := newCatalogUsecase(redisRepo).Refresh(ctx)

		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Warm Failure", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("Delete", mock.Anything, keys).Return(nil)
		redisRepo.On("Set", mock.Anything, constvars.RedisKeyProgramEvaluationCatalog, mock.Anything, mock.Anything).Return(errors.New("oom"))

		err := newCatalogUsecase(redisRepo).Refresh(ctx)

		assert.EqualError(t, err, "oom")
	})
}
