package coursestore

import (
	"bytes"
	"context"
	"io"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

const minioNoSuchKey = "NoSuchKey"

type minioStore struct {
	MinioClient *minio.Client
	BucketName  string
	ObjectName  string
}

// NewMinioStore keeps the committed courses as one JSON object.
func NewMinioStore(minioClient *minio.Client, bucketName, key string) contracts.CourseStore {
	return &minioStore{
		MinioClient: minioClient,
		BucketName:  bucketName,
		ObjectName:  objectName(key),
	}
}

func objectName(key string) string {
	return key + ".json"
}

func (s *minioStore) Load(ctx context.Context) ([]models.Course, error) {
	object, err := s.MinioClient.GetObject(ctx, s.BucketName, s.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			return []models.Course{}, nil
		}
		return nil, exceptions.ErrMinioReadObject(err)
	}
	return DecodeCoursesJSON(data)
}

func (s *minioStore) Save(ctx context.Context, courses []models.Course) error {
	data, err := EncodeCoursesJSON(courses)
	if err != nil {
		return err
	}
	_, err = s.MinioClient.PutObject(
		ctx,
		s.BucketName,
		s.ObjectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: constvars.MIMEApplicationJSON},
	)
	if err != nil {
		return exceptions.ErrMinioPutObject(err)
	}
	return nil
}
