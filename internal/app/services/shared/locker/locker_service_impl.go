package locker

import (
	"context"
	"fmt"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/pkg/constvars"
	"ot-tracking-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

type lockService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	newToken        func() string
}

func NewLockService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockService{
			RedisRepository: redisRepository,
			Log:             logger,
			newToken:        uuid.NewString,
		}
	})
	return lockerServiceInstance
}

// TryLock returns the token that must be handed back to Unlock. A lock held
// by someone else is not an error.
func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	token := s.newToken()
	acquired, err := s.RedisRepository.TrySetNX(ctx, key, token, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling RedisRepository.TrySetNX",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock lock held elsewhere",
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock acquired",
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, token),
		zap.Duration(constvars.LoggingLockTTLKey, expiration),
	)
	return true, token, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	stored, err := s.RedisRepository.Get(ctx, key)
	if err != nil {
		s.Log.Error("lockService.Unlock error calling RedisRepository.Get",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}

	// Expired already.
	if stored == "" {
		return nil
	}

	// Values are stored JSON encoded.
	if stored != fmt.Sprintf("%q", lockValue) {
		err := exceptions.ErrRedisUnlock(fmt.Errorf("lock %s is owned by another holder", key))
		s.Log.Error("lockService.Unlock ownership mismatch",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}

	err = s.RedisRepository.Delete(ctx, key)
	if err != nil {
		s.Log.Error("lockService.Unlock error calling RedisRepository.Delete",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("lockService.Unlock succeeded",
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}
