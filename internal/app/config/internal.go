package config

import "time"

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	JWT      AppJWT      `mapstructure:"jwt"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	Cache    AppCache    `mapstructure:"cache"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	CORSAllowedOrigins         []string `mapstructure:"cors_allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int      `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
	RequestTimeoutInSeconds    int      `mapstructure:"request_timeout_in_seconds"`
	// AdminAPIKeyHash is the bcrypt hash of the key guarding admin routes.
	AdminAPIKeyHash            string `mapstructure:"admin_api_key_hash"`
	ReportExportPerMinute      int    `mapstructure:"report_export_per_minute"`
	ReportExportBurst          int    `mapstructure:"report_export_burst"`
	ReportExportBlockInSeconds int    `mapstructure:"report_export_block_in_seconds"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

type AppMongoDB struct {
	DBName string `mapstructure:"db_name"`
}

type AppMinio struct {
	BucketName                          string `mapstructure:"bucket_name"`
	PreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
}

type AppRabbitMQ struct {
	AssessmentEventQueue string `mapstructure:"assessment_event_queue"`
}

type AppCache struct {
	CatalogTTLInHours    int    `mapstructure:"catalog_ttl_in_hours"`
	OverviewTTLInSeconds int    `mapstructure:"overview_ttl_in_seconds"`
	CatalogRefreshCron   string `mapstructure:"catalog_refresh_cron"`
}

func (c AppMinio) PreSignedURLExpiry() time.Duration {
	return time.Duration(c.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
}

func (c AppCache) CatalogTTL() time.Duration {
	return time.Duration(c.CatalogTTLInHours) * time.Hour
}

func (c AppCache) OverviewTTL() time.Duration {
	return time.Duration(c.OverviewTTLInSeconds) * time.Second
}

func (a App) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutInSeconds) * time.Second
}
