package constvars

type ContextKey string

const (
	ResourceSchedule = "schedule"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "DERS_"
)

const (
	StoreDriverJSON  = "json"
	StoreDriverCSV   = "csv"
	StoreDriverMinio = "minio"
	StoreDriverMongo = "mongo"
	StoreDriverRedis = "redis"
)

const (
	CommitLockKey        = "ders_control:commit:lock"
	CommitLockTTLSeconds = 10
)

const (
	EventCourseCommitted = "course.committed"
)

const (
	// Weekly timetable grid shown on the image, in minutes since midnight.
	TimetableDayStartMinute = 9 * 60
	TimetableDayEndMinute   = 19 * 60
	// Slots the browser page schedules must sit inside this window.
	ClassFileDayStartMinute = 9 * 60
	ClassFileDayEndMinute   = 20 * 60
	NullLocation            = "NULL"
)
