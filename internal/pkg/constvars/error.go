package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must have at least %s items",
	"max":      "must have at most %s items",
	"hhmm":     "must be a zero padded 24 hour time like 09:00",
	"filename": "must be a plain file name",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyRequests               = "too many requests, slow down"
	ErrClientCourseNotFound                = "No Such Class exists."
	ErrClientScheduleConflict              = "the class conflicts with your current schedule"
	ErrClientFileNotFound                  = "file not found"
	ErrClientInvalidFilename               = "invalid filename"
	ErrClientRouteNotFound                 = "the requested route does not exist"
	ErrClientInvalidTimeRange              = "slot end must be after its start"
	ErrClientRequestTooLarge               = "request body is too large"
	ErrClientCommitInProgress              = "another class is being added, try again"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON   = "cannot parse JSON"
	ErrDevCannotMarshalJSON = "cannot marshal JSON"
	ErrDevCannotParseCSV    = "cannot parse CSV"
	ErrDevCannotMarshalCSV  = "cannot marshal CSV"
	ErrDevValidationFailed  = "validation failed"
	ErrDevRequestTooLarge   = "request body exceeds %d bytes"

	// Planner messages
	ErrDevCourseNotFound    = "no course with section %q in the candidate pool"
	ErrDevScheduleConflict  = "course %s conflicts with %s"
	ErrDevUnknownStore      = "unknown course store driver %q"
	ErrDevInvalidFilename   = "filename %q escapes the downloads directory"
	ErrDevInvalidTimeRange  = "invalid time range %s - %s"
	ErrDevCannotRenderImage = "failed to render timetable image"

	// File messages
	ErrDevFileNotFound       = "file %s not found"
	ErrDevCannotReadFile     = "failed to read file %s"
	ErrDevCannotWriteFile    = "failed to write file %s"
	ErrDevCannotReadDir      = "failed to read directory %s"
	ErrDevCannotOpenWorkbook = "failed to open workbook %s"
	ErrDevCannotParseHTML    = "failed to parse registration page"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document from database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"

	// Redis messages
	ErrDevRedisGet         = "failed to get value from redis"
	ErrDevRedisSet         = "failed to set value into redis"
	ErrDevRedisDel         = "failed to delete value from redis"
	ErrDevRedisUnlock      = "lock not owned by this client"
	ErrDevCommitInProgress = "commit lock %s is held by another client"

	// Minio messages
	ErrDevMinioGetObject   = "failed to get object from minio"
	ErrDevMinioPutObject   = "failed to put object into minio"
	ErrDevMinioReadObject  = "failed to read object from minio"
	ErrDevMinioCheckBucket = "failed to check minio bucket"
	ErrDevMinioMakeBucket  = "failed to create minio bucket"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq"

	// Server messages
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevRouteNotFound          = "route not found"
	ErrDevTooManyRequests        = "rate limit exceeded"
	ErrDevServerPanic            = "recovered from panic"
	ErrDevMissingRequestID       = "request id not found in context"
)
