package importer

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/coursestore"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"
)

// listingFields is the number of text blocks describing one course in a
// copied listing page.
const listingFields = 8

var blankLines = regexp.MustCompile(`\n\s*\n+`)

// ParseListing turns the text of a course listing page into courses. Blocks
// are separated by blank lines and every eight blocks form one course, in
// column order. A short final group leaves the remaining fields empty.
func ParseListing(text string) []models.Course {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return []models.Course{}
	}
	blocks := blankLines.Split(text, -1)

	courses := make([]models.Course, 0, (len(blocks)+listingFields-1)/listingFields)
	for i := 0; i < len(blocks); i += listingFields {
		field := func(n int) string {
			if i+n < len(blocks) {
				return blocks[i+n]
			}
			return ""
		}
		course := models.Course{
			CourseCode:     field(0),
			CourseName:     field(1),
			Section:        field(2),
			FullCourseName: field(3),
			Instructor:     field(4),
			Location:       field(6),
			Capacity:       models.FlexString(field(7)),
		}
		if sched := field(5); sched != "" {
			course.Schedule = &sched
		}
		courses = append(courses, course)
	}
	return courses
}

// AppendListingCSV adds courses to the CSV at path, creating the file when
// it does not exist yet. It reports whether the file was created.
func AppendListingCSV(path string, courses []models.Course) (bool, error) {
	existing := []models.Course{}
	created := false

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		created = true
	case err != nil:
		return false, exceptions.ErrCannotReadFile(err, path)
	default:
		existing, err = coursestore.DecodeCoursesCSV(data)
		if err != nil {
			return false, err
		}
	}

	out, err := coursestore.EncodeCoursesCSV(append(existing, courses...))
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return false, exceptions.ErrCannotWriteFile(err, path)
	}
	return created, nil
}
