package responses

// Course is a candidate that fits the committed week.
type Course struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Instructor string   `json:"instructor,omitempty"`
	Location   string   `json:"location"`
	Capacity   string   `json:"capacity,omitempty"`
	TimeSlots  []string `json:"time_slots"`
}

// ProcessedClass is what the browser page consumes from /load_json.
type ProcessedClass struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Teacher   string   `json:"teacher"`
	TimeSlots []string `json:"timeSlots"`
	Classroom string   `json:"classroom"`
	Capacity  string   `json:"capacity"`
}

type WeeklyEntry struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Label    string `json:"label"`
}

type WeeklyDay struct {
	Day     string        `json:"day"`
	Entries []WeeklyEntry `json:"entries"`
}

type Weekly struct {
	Days []WeeklyDay `json:"days"`
}

type ParseProblem struct {
	Course string `json:"course"`
	Error  string `json:"error"`
}

type ScheduleCheck struct {
	Fitting  []Course       `json:"fitting"`
	Weekly   Weekly         `json:"weekly"`
	Problems []ParseProblem `json:"problems,omitempty"`
}

type SlotVerdict struct {
	Day       string   `json:"day"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Fits      bool     `json:"fits"`
	Conflicts []string `json:"conflicts,omitempty"`
}

type SlotCheck struct {
	Fits  bool          `json:"fits"`
	Slots []SlotVerdict `json:"slots"`
}
