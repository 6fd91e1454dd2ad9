package importer

import (
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/xuri/excelize/v2"
)

// SheetNames lists the sheets of the workbook at path in file order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, exceptions.ErrCannotOpenWorkbook(err, path)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// ReadWorkbook reads courses from a registration export. The first row is
// the header and the first eight columns hold the course fields. An empty
// sheet name selects the first sheet.
func ReadWorkbook(path, sheet string) ([]models.Course, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, exceptions.ErrCannotOpenWorkbook(err, path)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, exceptions.ErrCannotOpenWorkbook(err, path)
	}

	courses := []models.Course{}
	for i, row := range rows {
		if i == 0 {
			continue
		}
		courses = append(courses, courseFromRow(row))
	}
	return courses, nil
}

func courseFromRow(row []string) models.Course {
	cell := func(n int) string {
		if n < len(row) {
			return strings.TrimSpace(row[n])
		}
		return ""
	}
	course := models.Course{
		CourseCode:     cell(0),
		CourseName:     cell(1),
		Section:        cell(2),
		FullCourseName: cell(3),
		Instructor:     cell(4),
		Location:       cell(6),
		Capacity:       models.FlexString(cell(7)),
	}
	if sched := cell(5); sched != "" {
		course.Schedule = &sched
	}
	return course
}
