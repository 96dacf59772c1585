package catalogs

import (
	"context"
	"ot-tracking-service/internal/app/config"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	fallbackRefreshSpec = "@daily"
	refreshLockTTL      = time.Minute
	unlockTimeout       = 5 * time.Second
)

// Worker re-warms the catalog cache on a schedule. Only the instance holding
// the refresh lock does the work.
type Worker struct {
	log      *zap.Logger
	cfg      *config.InternalConfig
	locker   contracts.LockerService
	catalogs contracts.CatalogUsecase
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerService contracts.LockerService, catalogUsecase contracts.CatalogUsecase) *Worker {
	return &Worker{log: log, cfg: cfg, locker: lockerService, catalogs: catalogUsecase}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)

	spec := w.cfg.Cache.CatalogRefreshCron
	c := cron.New()
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("catalogs.Worker invalid cron spec, falling back",
			zap.String(constvars.LoggingCronSpecKey, spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackRefreshSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running refresh to finish, then cancels the run context.
func (w *Worker) Stop() {
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyCatalogRefreshLock, refreshLockTTL)
	if err != nil {
		w.log.Warn("catalogs.Worker lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		return
	}
	defer func() {
		// The lock must be released even when the run context is gone.
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unlockTimeout)
		defer cancel()
		if err := w.locker.Unlock(unlockCtx, constvars.RedisKeyCatalogRefreshLock, token); err != nil {
			w.log.Warn("catalogs.Worker failed to release lock", zap.Error(err))
		}
	}()

	err = w.catalogs.Refresh(ctx)
	if err != nil {
		w.log.Warn("catalogs.Worker refresh failed", zap.Error(err))
		return
	}
	w.log.Info("catalogs.Worker refreshed catalog cache")
}
