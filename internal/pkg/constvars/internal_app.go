package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_UID_KEY                  ContextKey = "uid"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "OTTRK_SVC_"
)

const (
	ResourcePatients        = "patients"
	ResourceAssessments     = "assessments"
	ResourceROMAssessments  = "rom-assessments"
	ResourceGoals           = "goals"
	ResourceSessionNotes    = "session-notes"
	ResourceCatalogs        = "catalogs"
	ResourceOverview        = "overview"
	ResourceProgressReports = "progress-reports"
)

const (
	DateOnlyLayout = "2006-01-02"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
