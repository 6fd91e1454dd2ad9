package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registrationPage = `<html><body>
<table>
<tr id="__item5-__xmlview3--moduleTable-1">
  <td>x</td><td>x</td><td><span id="__text10-a">Physics</span></td><td>PHYS1-01</td><td>x</td>
  <td>Dr. Curie</td><td>TUE : 13:00 - 14:50</td><td><span id="__text11-a">  </span></td><td>30</td>
</tr>
<tr id="__item4-__xmlview3--moduleTable-0">
  <td>x</td><td>x</td><td>Intro to Programming</td><td>CS101-01</td><td>x</td>
  <td>Dr. Ada</td><td>MON : 09:00 - 10:50 - WED: 09:00 - 10:50 -</td><td>B101</td><td>40</td>
</tr>
<tr id="__item6-__xmlview3--moduleTable-2"><td>too</td><td>short</td></tr>
<tr id="header-moduleTable-9"><td>ignored</td></tr>
</table>
</body></html>`

func TestParseRegistrationPage(t *testing.T) {
	classes, err := ParseRegistrationPage(strings.NewReader(registrationPage))
	require.NoError(t, err)
	require.Len(t, classes, 2)

	t.Run("Rows Follow Table Order", func(t *testing.T) {
		assert.Equal(t, "CS101-01", classes[0].Code)
		assert.Equal(t, "PHYS1-01", classes[1].Code)
	})

	t.Run("Columns Are Mapped", func(t *testing.T) {
		c := classes[0]
		assert.Equal(t, "Intro to Programming", c.Name)
		assert.Equal(t, "Dr. Ada", c.Teacher)
		assert.Equal(t, []string{"MON : 09:00 - 10:50", "WED: 09:00 - 10:50"}, c.TimeSlots)
		assert.Equal(t, "B101", c.Classroom)
		assert.Equal(t, "40", c.Capacity)
	})

	t.Run("Empty Text Spans Read As NULL", func(t *testing.T) {
		assert.Equal(t, "NULL", classes[1].Classroom)
	})
}

func TestSplitTimeSlots(t *testing.T) {
	assert.Equal(t,
		[]string{"MON : 09:00 - 10:50", "THU : 13:00 - 14:50"},
		SplitTimeSlots(" MON : 09:00 - 10:50 - THU : 13:00 - 14:50 - "),
	)
	assert.Empty(t, SplitTimeSlots("TBA"))
}

func TestExtractPageText(t *testing.T) {
	page := `<html><head><title>t</title><script>var x = 1;</script></head><body>
<p>CS101</p><p>Intro   to
Programming</p>
<div>Dr. Ada</div><div><span id="__text3-b"></span></div>
</body></html>`

	text, err := ExtractPageText(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "CS101\n\nIntro to Programming\n\nDr. Ada\nNULL", text)

	courses := ParseListing(text)
	require.Len(t, courses, 1)
	assert.Equal(t, "Intro to Programming", courses[0].CourseName)
}
