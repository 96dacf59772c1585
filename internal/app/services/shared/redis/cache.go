package redis

import (
	"context"
	"ot-tracking-service/internal/app/contracts"
	"ot-tracking-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// Load decodes a cached JSON value into dest. It reports false on a miss.
func Load(ctx context.Context, repo contracts.RedisRepository, key string, dest interface{}) (bool, error) {
	data, err := repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, exceptions.ErrCannotParseJSON(err)
	}
	return true, nil
}
