package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Schedule messages
	CheckScheduleSuccessMessage = "fitting courses computed successfully"
	FitsSuccessMessage          = "slots checked successfully"
	GetWeeklySuccessMessage     = "get weekly schedule successfully"
)
