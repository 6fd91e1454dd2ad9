package requests

// Course mirrors a course record as the browser page sends it.
type Course struct {
	CourseCode string  `json:"course_code"`
	CourseName string  `json:"course_name" validate:"required"`
	Section    string  `json:"section" validate:"required"`
	Instructor string  `json:"instructor"`
	Schedule   *string `json:"schedule"`
	Location   string  `json:"location"`
	Capacity   string  `json:"capacity"`
}

type CheckScheduleRequest struct {
	Committed  []Course `json:"committed" validate:"dive"`
	Candidates []Course `json:"candidates" validate:"required,min=1,dive"`
}

type SlotRequest struct {
	Day   string `json:"day" validate:"required"`
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

type FitsRequest struct {
	Committed []Course      `json:"committed" validate:"dive"`
	Slots     []SlotRequest `json:"slots" validate:"required,min=1,dive"`
}

type LoadClassFileRequest struct {
	Filename string `json:"filename" validate:"required,filename"`
}
