package redis

import (
	"context"
	"errors"
	"ot-tracking-service/internal/app/contracts/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	type payload struct {
		Count int `json:"count"`
	}

	t.Run("Hit", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("Get", ctx, "k").Return(`{"count":3}`, nil)

		var out payload
		found, err := Load(ctx, repo, "k", &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 3, out.Count)
	})

	t.Run("Miss", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("Get", ctx, "k").Return("", nil)

		var out payload
		found, err := Load(ctx, repo, "k", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Corrupt Entry", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("Get", ctx, "k").Return(`{"count":`, nil)

		var out payload
		found, err := Load(ctx, repo, "k", &out)
		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes Keys", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("Delete", ctx, []string{"a", "b"}).Return(nil)

		Invalidate(ctx, repo, zap.NewNop(), "a", "b")
		repo.AssertExpectations(t)
	})

	t.Run("Failure Is Logged Only", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("Delete", mock.Anything, mock.Anything).Return(errors.New("redis down"))

		assert.NotPanics(t, func() { Invalidate(ctx, repo, zap.NewNop(), "a") })
	})

	t.Run("No Keys", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		Invalidate(ctx, repo, zap.NewNop())
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
