package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingUIDKey           = "uid"
	LoggingPatientIDKey     = "patient_id"
	LoggingAssessmentIDKey  = "assessment_id"
	LoggingGoalIDKey        = "goal_id"
	LoggingSessionNoteIDKey = "session_note_id"
	LoggingResponseCountKey = "response_count"
	LoggingStatusKey        = "status"
	LoggingRedisKey         = "redis_key"
	LoggingObjectNameKey    = "object_name"
	LoggingLockValueKey     = "lock_value"
	LoggingLockTTLKey       = "lock_ttl"
	LoggingCronSpecKey      = "cron_spec"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
