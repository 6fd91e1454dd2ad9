package importer

import (
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/PuerkitoBio/goquery"
)

var (
	moduleRowID  = regexp.MustCompile(`__item\d+-__xmlview\d+--moduleTable-(\d+)$`)
	textSpanID   = regexp.MustCompile(`^__text\d+-`)
	slotDay      = regexp.MustCompile(`\s*([A-Z]{3})\s*:\s*`)
	trailingDash = regexp.MustCompile(`\s*-\s*$`)
)

// Cells of a module table row, in export order: code, name, teacher,
// time slots, classroom, capacity.
var exportColumns = []int{3, 2, 5, 6, 7, 8}

// ParseRegistrationPage extracts the module table of a saved registration
// page. Rows are returned in table order; rows missing a cell are skipped.
func ParseRegistrationPage(r io.Reader) ([]models.ExportedClass, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, exceptions.ErrCannotParseHTML(err)
	}
	fillEmptySpans(doc)

	rows := map[int]*goquery.Selection{}
	doc.Find(`[id*="moduleTable-"]`).Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		match := moduleRowID.FindStringSubmatch(id)
		if match == nil {
			return
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			return
		}
		rows[n] = s
	})

	indexes := make([]int, 0, len(rows))
	for n := range rows {
		indexes = append(indexes, n)
	}
	sort.Ints(indexes)

	classes := make([]models.ExportedClass, 0, len(indexes))
	for _, n := range indexes {
		cells := rows[n].Children()
		if cells.Length() <= exportColumns[len(exportColumns)-1] {
			continue
		}
		text := func(col int) string {
			return cellText(cells.Eq(exportColumns[col]))
		}
		classes = append(classes, models.ExportedClass{
			Code:      text(0),
			Name:      text(1),
			Teacher:   text(2),
			TimeSlots: SplitTimeSlots(text(3)),
			Classroom: text(4),
			Capacity:  text(5),
		})
	}
	return classes, nil
}

// SplitTimeSlots breaks "MON : 09:00 - 10:50 - TUE : 13:00 - 14:50" into
// one string per day marker.
func SplitTimeSlots(input string) []string {
	marks := slotDay.FindAllStringIndex(input, -1)
	slots := make([]string, 0, len(marks))
	for i, m := range marks {
		end := len(input)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		entry := strings.TrimSpace(input[m[0]:end])
		slots = append(slots, trailingDash.ReplaceAllString(entry, ""))
	}
	return slots
}

// fillEmptySpans marks blank text cells so positional fields stay aligned.
func fillEmptySpans(doc *goquery.Document) {
	doc.Find(`span[id^="__text"]`).Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if textSpanID.MatchString(id) && strings.TrimSpace(s.Text()) == "" {
			s.SetText(constvars.NullLocation)
		}
	})
}

func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
