package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingOperationKey   = "operation"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingSectionKey     = "section"
	LoggingFileKey        = "file"
	LoggingStoreDriverKey = "store_driver"
	LoggingCountKey       = "count"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingLockKey        = "lock_key"
	LoggingLockValueKey   = "lock_value"
)
