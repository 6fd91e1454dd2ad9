package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/shared/coursestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingText = `
CS101

Intro to Programming

CS101-01

CS101 Intro to Programming

Dr. Ada

MON : 09:00 - 10:50


B101

40

MATH201

Calculus
`

func TestParseListing(t *testing.T) {
	t.Run("Groups Blocks Into Courses", func(t *testing.T) {
		courses := ParseListing(listingText)
		require.Len(t, courses, 2)

		first := courses[0]
		assert.Equal(t, "CS101", first.CourseCode)
		assert.Equal(t, "Intro to Programming", first.CourseName)
		assert.Equal(t, "CS101-01", first.Section)
		assert.Equal(t, "CS101 Intro to Programming", first.FullCourseName)
		assert.Equal(t, "Dr. Ada", first.Instructor)
		require.NotNil(t, first.Schedule)
		assert.Equal(t, "MON : 09:00 - 10:50", *first.Schedule)
		assert.Equal(t, "B101", first.Location)
		assert.Equal(t, models.FlexString("40"), first.Capacity)
	})

	t.Run("Short Final Group Leaves Fields Empty", func(t *testing.T) {
		last := ParseListing(listingText)[1]
		assert.Equal(t, "MATH201", last.CourseCode)
		assert.Equal(t, "Calculus", last.CourseName)
		assert.Equal(t, "", last.Section)
		assert.Nil(t, last.Schedule)
		assert.Equal(t, models.FlexString(""), last.Capacity)
	})

	t.Run("Windows Line Endings", func(t *testing.T) {
		courses := ParseListing("A\r\n\r\nB\r\n\r\nC")
		require.Len(t, courses, 1)
		assert.Equal(t, "B", courses[0].CourseName)
		assert.Equal(t, "C", courses[0].Section)
	})

	t.Run("Blank Text", func(t *testing.T) {
		assert.Empty(t, ParseListing(" \n\n "))
	})
}

func TestAppendListingCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course_data.csv")
	courses := ParseListing(listingText)

	created, err := AppendListingCSV(path, courses[:1])
	require.NoError(t, err)
	assert.True(t, created)

	created, err = AppendListingCSV(path, courses[1:])
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	stored, err := coursestore.DecodeCoursesCSV(data)
	require.NoError(t, err)
	assert.Equal(t, courses, stored)
}
