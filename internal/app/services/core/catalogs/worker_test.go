package catalogs

import (
	"context"
	"errors"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts/mocks"
	"ot-tracking-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newWorker(spec string, locker *mocks.MockLockerService, catalogUsecase *mocks.MockCatalogUsecase) *Worker {
	cfg := &config.InternalConfig{Cache: config.AppCache{CatalogRefreshCron: spec}}
	return NewWorker(zap.NewNop(), cfg, locker, catalogUsecase)
}

func TestWorkerRunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Leader Refreshes", func(t *testing.T) {
		locker := new(mocks.MockLockerService)
		catalogUsecase := new(mocks.MockCatalogUsecase)
		locker.On("TryLock", ctx, constvars.RedisKeyCatalogRefreshLock, refreshLockTTL).Return(true, "token-1", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisKeyCatalogRefreshLock, "token-1").Return(nil)
		catalogUsecase.On("Refresh", ctx).Return(nil)

		newWorker("@every 1h", locker, catalogUsecase).runOnce(ctx)

		locker.AssertExpectations(t)
		catalogUsecase.AssertExpectations(t)
	})

	t.Run("Lock Held Elsewhere", func(t *testing.T) {
		locker := new(mocks.MockLockerService)
		catalogUsecase := new(mocks.MockCatalogUsecase)
		locker.On("TryLock", ctx, constvars.RedisKeyCatalogRefreshLock, refreshLockTTL).Return(false, "", nil)

		newWorker("@every 1h", locker, catalogUsecase).runOnce(ctx)

		catalogUsecase.AssertNotCalled(t, "Refresh", mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Refresh Failure Still Unlocks", func(t *testing.T) {
		locker := new(mocks.MockLockerService)
		catalogUsecase := new(mocks.MockCatalogUsecase)
		locker.On("TryLock", ctx, constvars.RedisKeyCatalogRefreshLock, refreshLockTTL).Return(true, "token-1", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisKeyCatalogRefreshLock, "token-1").Return(nil)
		catalogUsecase.On("Refresh", ctx).Return(errors.New("redis down"))

		newWorker("@every 1h", locker, catalogUsecase).runOnce(ctx)

		locker.AssertCalled(t, "Unlock", mock.Anything, constvars.RedisKeyCatalogRefreshLock, "token-1")
	})

	t.Run("Unlocks After Run Context Is Cancelled", func(t *testing.T) {
		runCtx, cancel := context.WithCancel(context.Background())
		locker := new(mocks.MockLockerService)
		catalogUsecase := new(mocks.MockCatalogUsecase)
		locker.On("TryLock", runCtx, constvars.RedisKeyCatalogRefreshLock, refreshLockTTL).Return(true, "token-1", nil)
		catalogUsecase.On("Refresh", runCtx).Run(func(mock.Arguments) { cancel() }).Return(nil)
		locker.On("Unlock", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }),
			constvars.RedisKeyCatalogRefreshLock, "token-1").Return(nil)

		newWorker("@every 1h", locker, catalogUsecase).runOnce(runCtx)

		locker.AssertExpectations(t)
	})

	t.Run("Lock Error", func(t *testing.T) {
		locker := new(mocks.MockLockerService)
		catalogUsecase := new(mocks.MockCatalogUsecase)
		locker.On("TryLock", ctx, constvars.RedisKeyCatalogRefreshLock, refreshLockTTL).Return(false, "", errors.New("redis down"))

		newWorker("@every 1h", locker, catalogUsecase).runOnce(ctx)

		catalogUsecase.AssertNotCalled(t, "Refresh", mock.Anything)
	})
}

func TestWorkerStartStop(t *testing.T) {
	t.Run("Invalid Spec Falls Back", func(t *testing.T) {
		worker := newWorker("not a cron spec", new(mocks.MockLockerService), new(mocks.MockCatalogUsecase))
		worker.Start(context.Background())

		entries := worker.cron.Entries()
		assert.Len(t, entries, 1, "fallback schedule is registered")
		worker.Stop()
	})

	t.Run("Stop Cancels Run Context", func(t *testing.T) {
		worker := newWorker("@every 1h", new(mocks.MockLockerService), new(mocks.MockCatalogUsecase))
		worker.Start(context.Background())
		worker.Stop()

		assert.ErrorIs(t, worker.runCtx.Err(), context.Canceled)
	})

	t.Run("Stop Before Start", func(t *testing.T) {
		worker := newWorker("@every 1h", new(mocks.MockLockerService), new(mocks.MockCatalogUsecase))
		assert.NotPanics(t, worker.Stop)
	})
}
