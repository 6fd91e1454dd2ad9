package database

import (
	"testing"

	"github.com/OzanKutlar/Ders-Control/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func TestMongoURI(t *testing.T) {
	t.Run("Without Credentials", func(t *testing.T) {
		assert.Equal(t, "mongodb://localhost:27017", mongoURI(config.MongoDB{Host: "localhost", Port: "27017"}))
	})
	t.Run("With Credentials", func(t *testing.T) {
		uri := mongoURI(config.MongoDB{Host: "db", Port: "27017", Username: "u", Password: "p"})
		assert.Equal(t, "mongodb://u:p@db:27017", uri)
	})
}
