package redis

import (
	"context"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/pkg/constvars"
	"strings"

	"go.uber.org/zap"
)

// Invalidate drops cached entries after a write. Failures are logged, not
// returned.
func Invalidate(ctx context.Context, repo contracts.RedisRepository, log *zap.Logger, keys ...string) {
	if repo == nil || len(keys) == 0 {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := repo.Delete(ctx, keys...); err != nil {
		log.Warn("redis.Invalidate failed to drop cached keys",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, strings.Join(keys, ",")),
			zap.Error(err),
		)
	}
}
