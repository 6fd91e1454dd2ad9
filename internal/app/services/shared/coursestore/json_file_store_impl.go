package coursestore

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type jsonFileStore struct {
	Path string
}

func NewJSONFileStore(path string) contracts.CourseStore {
	return &jsonFileStore{Path: path}
}

func (s *jsonFileStore) Load(ctx context.Context) ([]models.Course, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Course{}, nil
	}
	if err != nil {
		return nil, exceptions.ErrCannotReadFile(err, s.Path)
	}
	return DecodeCoursesJSON(data)
}

func (s *jsonFileStore) Save(ctx context.Context, courses []models.Course) error {
	data, err := EncodeCoursesJSON(courses)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return exceptions.ErrCannotWriteFile(err, s.Path)
	}
	return nil
}

// DecodeCoursesJSON reads a JSON array of course rows. Blank input is an
// empty list.
func DecodeCoursesJSON(data []byte) ([]models.Course, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Course{}, nil
	}
	var courses []models.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

func EncodeCoursesJSON(courses []models.Course) ([]byte, error) {
	if courses == nil {
		courses = []models.Course{}
	}
	data, err := json.MarshalIndent(courses, "", "    ")
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return data, nil
}
