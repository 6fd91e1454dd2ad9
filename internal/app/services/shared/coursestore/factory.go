package coursestore

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/config"
	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/drivers/database"
	"github.com/OzanKutlar/Ders-Control/internal/app/drivers/storage"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"
)

// Closer releases whatever client a store was built on.
type Closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

// New builds the committed-course store selected by the planner config.
func New(ctx context.Context, internalConfig *config.InternalConfig, driverConfig *config.DriverConfig) (contracts.CourseStore, Closer, error) {
	planner := internalConfig.Planner

	switch planner.StoreDriver {
	case "", constvars.StoreDriverJSON:
		return NewJSONFileStore(planner.CommittedFile), noopCloser, nil
	case constvars.StoreDriverCSV:
		return NewCSVFileStore(withExtension(planner.CommittedFile, ".csv")), noopCloser, nil
	case constvars.StoreDriverMinio:
		client, err := storage.NewMinio(ctx, driverConfig)
		if err != nil {
			return nil, nil, err
		}
		return NewMinioStore(client, driverConfig.Minio.BucketName, planner.StoreKey), noopCloser, nil
	case constvars.StoreDriverMongo:
		client, err := database.NewMongoDB(ctx, driverConfig)
		if err != nil {
			return nil, nil, err
		}
		return NewMongoStore(client, driverConfig.MongoDB.DbName, planner.StoreKey), client.Disconnect, nil
	case constvars.StoreDriverRedis:
		client, err := database.NewRedisClient(ctx, driverConfig)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(client, planner.StoreKey), func(context.Context) error { return client.Close() }, nil
	default:
		return nil, nil, exceptions.ErrUnknownStoreDriver(nil, planner.StoreDriver)
	}
}

// OpenFile picks the file store matching the file extension. Anything
// other than .csv is read as JSON.
func OpenFile(path string) contracts.CourseStore {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return NewCSVFileStore(path)
	}
	return NewJSONFileStore(path)
}

func withExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
