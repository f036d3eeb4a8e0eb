package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Log           LogConfig           `yaml:"log"`
	Workflow      WorkflowConfig      `yaml:"workflow"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
}

// ServerConfig holds HTTP server settings for the operational endpoints.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// QueryTimeout bounds every service-level store call.
	QueryTimeout time.Duration `yaml:"query_timeout" env:"DATABASE_QUERY_TIMEOUT" env-default:"5s"`
	AutoMigrate  bool          `yaml:"auto_migrate"  env:"DATABASE_AUTO_MIGRATE"  env-default:"false"`
	// LogQueries traces every statement at debug level.
	LogQueries bool `yaml:"log_queries" env:"DATABASE_LOG_QUERIES" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// WorkflowConfig holds review workflow policy settings.
type WorkflowConfig struct {
	ApprovedPoints    int `yaml:"approved_points"    env:"WORKFLOW_APPROVED_POINTS"    env-default:"10"`
	ImplementedPoints int `yaml:"implemented_points" env:"WORKFLOW_IMPLEMENTED_POINTS" env-default:"20"`
	// GuardRepeatedRewards skips the award when the status does not change.
	GuardRepeatedRewards bool `yaml:"guard_repeated_rewards" env:"WORKFLOW_GUARD_REPEATED_REWARDS" env-default:"false"`
	StrictTransitions    bool `yaml:"strict_transitions"     env:"WORKFLOW_STRICT_TRANSITIONS"     env-default:"false"`
}

// NotificationsConfig holds notification dispatcher settings.
type NotificationsConfig struct {
	// MatchEmployeeTarget additionally restricts listings to notifications
	// addressed to the caller's employee number (or to nobody in particular).
	MatchEmployeeTarget bool `yaml:"match_employee_target" env:"NOTIFICATIONS_MATCH_EMPLOYEE_TARGET" env-default:"false"`
	DefaultPageSize     int  `yaml:"default_page_size"     env:"NOTIFICATIONS_DEFAULT_PAGE_SIZE"     env-default:"20"`
}

// TelemetryConfig holds OpenTelemetry tracing settings.
type TelemetryConfig struct {
	Enabled      bool   `yaml:"enabled"       env:"OTEL_ENABLED"                     env-default:"false"`
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `yaml:"service_name"  env:"OTEL_SERVICE_NAME"                env-default:"kaizen-backend"`
}
