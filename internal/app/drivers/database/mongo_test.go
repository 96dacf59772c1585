package database

import (
	"ot-tracking-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMongoURI(t *testing.T) {
	t.Run("With Credentials", func(t *testing.T) {
		cfg := &config.DriverConfig{MongoDB: config.MongoDB{Host: "db", Port: "27017", Username: "ot", Password: "secret"}}
		assert.Equal(t, "mongodb://ot:secret@db:27017", MongoURI(cfg))
	})

	t.Run("Without Credentials", func(t *testing.T) {
		cfg := &config.DriverConfig{MongoDB: config.MongoDB{Host: "localhost", Port: "27017"}}
		assert.Equal(t, "mongodb://localhost:27017", MongoURI(cfg))
	})
}
