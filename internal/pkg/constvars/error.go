package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"min":               "must be at least %s",
	"max":               "must be at most %s",
	"gte":               "must be greater than or equal to %s",
	"lte":               "must be less than or equal to %s",
	"oneof":             "must be one of %s",
	"date_only":         "must be a date in YYYY-MM-DD format",
	"assessment_type":   "must be either pre or post",
	"assessment_status": "must be either in_progress or complete",
	"goal_category":     "must be a known goal category",
	"goal_status":       "must be a known goal status",
	"attendance_status": "must be a known attendance status",
	"body_region":       "must contain only known body regions",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "the requested %s could not be found"
	ErrClientAssessmentIncomplete          = "please answer all questions before submitting"
	ErrClientROMRegionRequired             = "please select at least one body region to assess"
	ErrClientROMMeasurementRequired        = "please enter at least one ROM measurement"
	ErrClientRatingOutOfRange              = "ratings must be between %d and %d"
	ErrClientUnknownQuestion               = "unknown question %s"
	ErrClientUnknownMeasurement            = "unknown measurement %s"
	ErrClientUnknownRegion                 = "unknown body region %s"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevMissingRequestID       = "request id missing from context"
	ErrDevMissingUID             = "uid missing from context"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevDocumentNotFound       = "%s document not found"
	ErrDevURLParamIDValidation   = "url param %s is not valid"
	ErrDevInvalidFormat          = "invalid format on %s"

	// Scoring/save-path messages
	ErrDevAssessmentIncomplete     = "assessment marked complete with unanswered question %s"
	ErrDevROMRegionRequired        = "rom assessment marked complete without selected regions"
	ErrDevROMMeasurementRequired   = "rom assessment marked complete without measurements"
	ErrDevRatingOutOfRange         = "rating for %s is out of range"
	ErrDevUnknownQuestion          = "response references unknown question id %s"
	ErrDevUnknownMeasurement       = "measurement key %s is not in catalog"
	ErrDevUnknownRegion            = "region %s is not in catalog"
	ErrDevNonNumericValue          = "value for %s is not numeric"
	ErrDevPatientOwnershipMismatch = "patient %s does not belong to uid"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthUIDClaimMissing       = "uid claim missing from token"
	ErrDevAPIKeyRequired            = "api key required"
	ErrDevAPIKeyInvalid             = "api key invalid"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents on database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to presign object url on bucket %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Server messages
	ErrDevServerInternalError = "internal server error"
	ErrDevServerPanic         = "recovered from panic"
	ErrDevRateLimited         = "rate limit exceeded"
)
