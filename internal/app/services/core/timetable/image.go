package timetable

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/app/services/core/schedule"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/utils"

	"github.com/fogleman/gg"
)

const (
	imageWidth   = 1500
	imageHeight  = 1000
	marginLeft   = 90
	marginRight  = 20
	marginTop    = 70
	marginBottom = 30

	gridStart = constvars.TimetableDayStartMinute
	gridEnd   = constvars.TimetableDayEndMinute
)

// Palette repeats once there are more courses than colours.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var slotPattern = regexp.MustCompile(`^([A-Z]+)\s*:\s*(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)

// Block is one course meeting placed on the timetable grid.
type Block struct {
	Column int
	Start  int
	End    int
	Text   string
	Color  string
}

// Blocks places every slot of the selected courses on the Monday to Friday
// grid. Starts before 09:00 are clipped, slots over by 09:00 are dropped
// and ends are rounded up to the next half hour.
func Blocks(selected models.SelectedCourses) []Block {
	var blocks []Block
	for i, class := range selected.SelectedCourses {
		text := class.Code + "\n" + class.Name
		if class.Classroom != constvars.NullLocation {
			text += "\n" + class.Classroom
		}
		color := Palette[i%len(Palette)]

		for _, raw := range class.TimeSlots {
			column, start, end, ok := placeSlot(raw)
			if !ok {
				continue
			}
			blocks = append(blocks, Block{Column: column, Start: start, End: end, Text: text, Color: color})
		}
	}
	return blocks
}

func placeSlot(raw string) (column, start, end int, ok bool) {
	match := slotPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, 0, 0, false
	}
	column = schedule.DayOfWeek(match[1]).Position()
	if column < 0 {
		return 0, 0, 0, false
	}
	start, okStart := minutes(match[2])
	end, okEnd := minutes(match[3])
	if !okStart || !okEnd || end <= gridStart {
		return 0, 0, 0, false
	}
	if start < gridStart {
		start = gridStart
	}
	end = utils.RoundUpHalfHour(end)
	if start >= end {
		return 0, 0, 0, false
	}
	return column, start, end, true
}

func minutes(hhmm string) (int, bool) {
	h, m, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, false
	}
	hour, errH := strconv.Atoi(h)
	minute, errM := strconv.Atoi(m)
	if errH != nil || errM != nil || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// RenderImage draws the weekly timetable of the selected courses as a PNG.
func RenderImage(selected models.SelectedCourses, w io.Writer) error {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	colWidth := float64(imageWidth-marginLeft-marginRight) / float64(len(dayNames))
	hourHeight := float64(imageHeight-marginTop-marginBottom) / float64((gridEnd-gridStart)/60)
	yOf := func(minute int) float64 {
		return marginTop + float64(utils.ClampMinutes(minute, gridStart, gridEnd)-gridStart)/60*hourHeight
	}

	dc.SetHexColor("#000000")
	dc.DrawStringAnchored("Weekly Course Timetable", imageWidth/2, marginTop/3, 0.5, 0.5)
	for i, name := range dayNames {
		dc.DrawStringAnchored(name, marginLeft+colWidth*(float64(i)+0.5), marginTop-15, 0.5, 0.5)
	}

	for minute := gridStart; minute <= gridEnd; minute += 30 {
		y := yOf(minute)
		dc.SetRGBA(0.5, 0.5, 0.5, 0.3)
		if minute%60 != 0 {
			dc.SetRGBA(0.5, 0.5, 0.5, 0.2)
			dc.SetDash(4, 4)
		}
		dc.DrawLine(marginLeft, y, imageWidth-marginRight, y)
		dc.Stroke()
		dc.SetDash()
		if minute < gridEnd {
			dc.SetHexColor("#000000")
			dc.DrawStringAnchored(fmt.Sprintf("%d:%02d", minute/60, minute%60), marginLeft-10, y, 1, 0.5)
		}
	}
	for i := 0; i <= len(dayNames); i++ {
		x := marginLeft + colWidth*float64(i)
		dc.SetRGBA(0.5, 0.5, 0.5, 0.3)
		dc.DrawLine(x, marginTop, x, imageHeight-marginBottom)
		dc.Stroke()
	}

	for _, b := range Blocks(selected) {
		if b.Start >= gridEnd {
			continue
		}
		x := marginLeft + colWidth*float64(b.Column)
		top, bottom := yOf(b.Start), yOf(b.End)

		r, g, bl := hexRGB(b.Color)
		dc.SetRGBA(r, g, bl, 0.7)
		dc.DrawRectangle(x, top, colWidth, bottom-top)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1)
		dc.Stroke()

		lines := strings.Split(b.Text, "\n")
		textWidth, lineHeight := 0.0, dc.FontHeight()
		for _, line := range lines {
			if lw, _ := dc.MeasureString(line); lw > textWidth {
				textWidth = lw
			}
		}
		boxHeight := lineHeight * 1.5 * float64(len(lines))
		cx, cy := x+colWidth/2, (top+bottom)/2
		dc.SetRGBA(1, 1, 1, 0.7)
		dc.DrawRoundedRectangle(cx-textWidth/2-6, cy-boxHeight/2-4, textWidth+12, boxHeight+8, 4)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringWrapped(b.Text, cx, cy, 0.5, 0.5, colWidth-8, 1.5, gg.AlignCenter)
	}

	if err := dc.EncodePNG(w); err != nil {
		return exceptions.ErrCannotRenderImage(err)
	}
	return nil
}

// SaveImage writes the timetable PNG to path.
func SaveImage(selected models.SelectedCourses, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return exceptions.ErrCannotWriteFile(err, path)
	}
	if err := RenderImage(selected, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return exceptions.ErrCannotWriteFile(err, path)
	}
	return nil
}

func hexRGB(hex string) (float64, float64, float64) {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return float64(v>>16&0xff) / 255, float64(v>>8&0xff) / 255, float64(v&0xff) / 255
}
