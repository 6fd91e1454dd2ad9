package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

const exportedClassFields = 6

// ExportedClass is the positional record written by the registration page
// export: [code, name, teacher, [time slots], classroom, capacity].
type ExportedClass struct {
	Code      string
	Name      string
	Teacher   string
	TimeSlots []string
	Classroom string
	Capacity  string
}

func (c *ExportedClass) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) < exportedClassFields {
		return fmt.Errorf("exported class needs %d fields, got %d", exportedClassFields, len(fields))
	}

	var text [5]FlexString
	for i, pos := range []int{0, 1, 2, 4, 5} {
		if err := json.Unmarshal(fields[pos], &text[i]); err != nil {
			return fmt.Errorf("exported class field %d: %w", pos, err)
		}
	}

	var slots []string
	if err := json.Unmarshal(fields[3], &slots); err != nil {
		return fmt.Errorf("exported class time slots: %w", err)
	}

	*c = ExportedClass{
		Code:      string(text[0]),
		Name:      string(text[1]),
		Teacher:   string(text[2]),
		TimeSlots: slots,
		Classroom: string(text[3]),
		Capacity:  string(text[4]),
	}
	return nil
}

func (c ExportedClass) MarshalJSON() ([]byte, error) {
	slots := c.TimeSlots
	if slots == nil {
		slots = []string{}
	}
	return json.Marshal([]interface{}{c.Code, c.Name, c.Teacher, slots, c.Classroom, c.Capacity})
}

// SelectedCourses is the input of the timetable renderer.
type SelectedCourses struct {
	SelectedCourses []ExportedClass `json:"selected_courses"`
}
