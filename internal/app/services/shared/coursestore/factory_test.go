package coursestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/OzanKutlar/Ders-Control/internal/app/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("CSV Driver Uses The CSV Sibling Of The Committed File", func(t *testing.T) {
		cfg := &config.InternalConfig{Planner: config.Planner{StoreDriver: "csv", CommittedFile: filepath.Join(dir, "eklenenders.json")}}
		store, closer, err := New(ctx, cfg, &config.DriverConfig{})
		require.NoError(t, err)
		defer closer(ctx)

		csvStore, ok := store.(*csvFileStore)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "eklenenders.csv"), csvStore.Path)
	})

	t.Run("Default Driver Is JSON", func(t *testing.T) {
		cfg := &config.InternalConfig{Planner: config.Planner{CommittedFile: "eklenenders.json"}}
		store, _, err := New(ctx, cfg, &config.DriverConfig{})
		require.NoError(t, err)
		assert.IsType(t, &jsonFileStore{}, store)
	})

	t.Run("Unknown Driver", func(t *testing.T) {
		cfg := &config.InternalConfig{Planner: config.Planner{StoreDriver: "sqlite"}}
		_, _, err := New(ctx, cfg, &config.DriverConfig{})
		assert.ErrorContains(t, err, "sqlite")
	})
}

func TestOpenFile(t *testing.T) {
	assert.IsType(t, &csvFileStore{}, OpenFile("course_data.CSV"))
	assert.IsType(t, &jsonFileStore{}, OpenFile("course_data.json"))
}
