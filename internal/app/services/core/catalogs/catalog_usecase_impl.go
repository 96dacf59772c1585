package catalogs

import (
	"context"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/app/services/shared/redis"
	"ot-tracking-service/internal/pkg/catalog"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type catalogUsecase struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
	catalogUsecaseError    error
)

func NewCatalogUsecase(
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.CatalogUsecase, error) {
	onceCatalogUsecase.Do(func() {
		instance := &catalogUsecase{
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}

		err := instance.initializeData(context.Background())
		if err != nil {
			catalogUsecaseError = err
			return
		}
		catalogUsecaseInstance = instance
	})

	return catalogUsecaseInstance, catalogUsecaseError
}

func (uc *catalogUsecase) GetProgramEvaluationCatalog(ctx context.Context) (*responses.ProgramEvaluationCatalog, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.GetProgramEvaluationCatalog called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result responses.ProgramEvaluationCatalog
	found, err := redis.Load(ctx, uc.RedisRepository, constvars.RedisKeyProgramEvaluationCatalog, &result)
	if err != nil {
		uc.Log.Warn("catalogUsecase.GetProgramEvaluationCatalog cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if found {
		uc.Log.Info("catalogUsecase.GetProgramEvaluationCatalog succeeded from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &result, nil
	}

	built := BuildProgramEvaluationCatalog()
	uc.store(ctx, requestID, constvars.RedisKeyProgramEvaluationCatalog, built)

	uc.Log.Info("catalogUsecase.GetProgramEvaluationCatalog succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("question_count", len(built.Questions)),
	)
	return built, nil
}

func (uc *catalogUsecase) GetROMCatalog(ctx context.Context) (*responses.ROMCatalog, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.GetROMCatalog called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result responses.ROMCatalog
	found, err := redis.Load(ctx, uc.RedisRepository, constvars.RedisKeyROMCatalog, &result)
	if err != nil {
		uc.Log.Warn("catalogUsecase.GetROMCatalog cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if found {
		uc.Log.Info("catalogUsecase.GetROMCatalog succeeded from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &result, nil
	}

	built := BuildROMCatalog()
	uc.store(ctx, requestID, constvars.RedisKeyROMCatalog, built)

	uc.Log.Info("catalogUsecase.GetROMCatalog succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("region_count", len(built.Regions)),
	)
	return built, nil
}

// Refresh drops both cached catalogs and writes them again.
func (uc *catalogUsecase) Refresh(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyProgramEvaluationCatalog, constvars.RedisKeyROMCatalog)
	if err != nil {
		uc.Log.Error("catalogUsecase.Refresh error deleting cached catalogs",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.initializeData(ctx)
	if err != nil {
		return err
	}

	uc.Log.Info("catalogUsecase.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *catalogUsecase) initializeData(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.initializeData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ttl := uc.InternalConfig.Cache.CatalogTTL()
	err := uc.RedisRepository.Set(ctx, constvars.RedisKeyProgramEvaluationCatalog, BuildProgramEvaluationCatalog(), ttl)
	if err != nil {
		uc.Log.Error("catalogUsecase.initializeData error caching program evaluation catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyROMCatalog, BuildROMCatalog(), ttl)
	if err != nil {
		uc.Log.Error("catalogUsecase.initializeData error caching rom catalog",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("catalogUsecase.initializeData succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *catalogUsecase) store(ctx context.Context, requestID, key string, value interface{}) {
	err := uc.RedisRepository.Set(ctx, key, value, uc.InternalConfig.Cache.CatalogTTL())
	if err != nil {
		uc.Log.Warn("catalogUsecase.store cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

func BuildProgramEvaluationCatalog() *responses.ProgramEvaluationCatalog {
	domains := catalog.Domains()
	result := &responses.ProgramEvaluationCatalog{
		Questions:     catalog.Questions(),
		Domains:       make([]responses.CatalogDomain, 0, len(domains)),
		RatingScale:   catalog.RatingScale(),
		MaxTotalScore: catalog.MaxTotalScore(),
	}
	for _, domain := range domains {
		questions := catalog.QuestionsByDomain(domain)
		ids := make([]string, len(questions))
		for i, question := range questions {
			ids[i] = question.ID
		}
		result.Domains = append(result.Domains, responses.CatalogDomain{
			ID:          domain,
			Name:        catalog.DomainName(domain),
			QuestionIDs: ids,
		})
	}
	return result
}

func BuildROMCatalog() *responses.ROMCatalog {
	regions := catalog.Regions()
	result := &responses.ROMCatalog{Regions: make([]responses.CatalogRegion, 0, len(regions))}
	for _, region := range regions {
		result.Regions = append(result.Regions, responses.CatalogRegion{
			ID:           region,
			Name:         catalog.RegionName(region),
			Measurements: catalog.MeasurementsByRegion(region),
		})
	}
	return result
}
