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

	"github.com/gocarina/gocsv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// courseRow is the CSV shape of a course. An empty Schedule cell reads
// back as a missing schedule.
type courseRow struct {
	CourseCode     string `csv:"Course Code"`
	CourseName     string `csv:"Course Name"`
	Section        string `csv:"Section"`
	FullCourseName string `csv:"Full Course Name"`
	Instructor     string `csv:"Instructor"`
	Schedule       string `csv:"Schedule"`
	Location       string `csv:"Location"`
	Capacity       string `csv:"Capacity"`
}

func toRow(c models.Course) courseRow {
	row := courseRow{
		CourseCode:     c.CourseCode,
		CourseName:     c.CourseName,
		Section:        c.Section,
		FullCourseName: c.FullCourseName,
		Instructor:     c.Instructor,
		Location:       c.Location,
		Capacity:       string(c.Capacity),
	}
	if c.Schedule != nil {
		row.Schedule = *c.Schedule
	}
	return row
}

func (r courseRow) toCourse() models.Course {
	c := models.Course{
		CourseCode:     r.CourseCode,
		CourseName:     r.CourseName,
		Section:        r.Section,
		FullCourseName: r.FullCourseName,
		Instructor:     r.Instructor,
		Location:       r.Location,
		Capacity:       models.FlexString(r.Capacity),
	}
	if r.Schedule != "" {
		schedule := r.Schedule
		c.Schedule = &schedule
	}
	return c
}

type csvFileStore struct {
	Path string
}

func NewCSVFileStore(path string) contracts.CourseStore {
	return &csvFileStore{Path: path}
}

func (s *csvFileStore) Load(ctx context.Context) ([]models.Course, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Course{}, nil
	}
	if err != nil {
		return nil, exceptions.ErrCannotReadFile(err, s.Path)
	}
	return DecodeCoursesCSV(data)
}

func (s *csvFileStore) Save(ctx context.Context, courses []models.Course) error {
	data, err := EncodeCoursesCSV(courses)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return exceptions.ErrCannotWriteFile(err, s.Path)
	}
	return nil
}

// DecodeCoursesCSV reads a header row followed by course rows, with or
// without a leading byte order mark.
func DecodeCoursesCSV(data []byte) ([]models.Course, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Course{}, nil
	}
	var rows []courseRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, exceptions.ErrCannotParseCSV(err)
	}
	courses := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.toCourse())
	}
	return courses, nil
}

// EncodeCoursesCSV writes courses with a byte order mark so spreadsheet
// tools pick up UTF-8.
func EncodeCoursesCSV(courses []models.Course) ([]byte, error) {
	rows := make([]courseRow, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, toRow(c))
	}
	body, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalCSV(err)
	}
	return append(append([]byte{}, utf8BOM...), body...), nil
}
