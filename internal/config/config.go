package config

import (
	"time"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported export sinks.
const (
	SinkDir = "dir"
	SinkS3  = "s3"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Export   ExportConfig   `yaml:"export"`
}

// DatabaseConfig selects and configures the station store.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	SQLitePath      string        `yaml:"sqlite_path"        env:"DATABASE_SQLITE_PATH"        env-default:"data/radio_stations.db"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// UpstreamConfig configures the radio-browser directory client.
type UpstreamConfig struct {
	BaseURL              string        `yaml:"base_url"               env:"UPSTREAM_BASE_URL"               env-default:"https://de1.api.radio-browser.info/json"`
	Timeout              time.Duration `yaml:"timeout"                env:"UPSTREAM_TIMEOUT"                env-default:"30s"`
	MaxRetries           int           `yaml:"max_retries"            env:"UPSTREAM_MAX_RETRIES"            env-default:"3"`
	RetryInitialInterval time.Duration `yaml:"retry_initial_interval" env:"UPSTREAM_RETRY_INITIAL_INTERVAL" env-default:"500ms"`
	UserAgent            string        `yaml:"user_agent"             env:"UPSTREAM_USER_AGENT"             env-default:"radiocatalog/1.0"`
	Order                string        `yaml:"order"                  env:"UPSTREAM_ORDER"                  env-default:"stationcount"`
	Reverse              bool          `yaml:"reverse"                env:"UPSTREAM_REVERSE"                env-default:"true"`
}

// IngestConfig holds ingestion pipeline settings.
type IngestConfig struct {
	PageSize        int           `yaml:"page_size"          env:"INGEST_PAGE_SIZE"          env-default:"1000"`
	MaxPages        int           `yaml:"max_pages"          env:"INGEST_MAX_PAGES"          env-default:"1000"`
	StopOnEmptyPage bool          `yaml:"stop_on_empty_page" env:"INGEST_STOP_ON_EMPTY_PAGE" env-default:"true"`
	SweepStale      bool          `yaml:"sweep_stale"        env:"INGEST_SWEEP_STALE"        env-default:"false"`
	Timeout         time.Duration `yaml:"timeout"            env:"INGEST_TIMEOUT"            env-default:"30m"`
}

// ExportConfig holds aggregation/export settings.
type ExportConfig struct {
	Threshold     int      `yaml:"threshold"      env:"EXPORT_THRESHOLD"      env-default:"25"`
	Sink          string   `yaml:"sink"           env:"EXPORT_SINK"           env-default:"dir"`
	Dir           string   `yaml:"dir"            env:"EXPORT_DIR"            env-default:"public/stations"`
	LangStatsFile string   `yaml:"langstats_file" env:"EXPORT_LANGSTATS_FILE" env-default:"processed_languages.json"`
	S3            S3Config `yaml:"s3"`
}

// S3Config configures an S3-compatible bucket used as export sink.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"   env:"EXPORT_S3_ENDPOINT"`
	Region    string `yaml:"region"     env:"EXPORT_S3_REGION"     env-default:"us-east-1"`
	AccessKey string `yaml:"access_key" env:"EXPORT_S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"EXPORT_S3_SECRET_KEY"`
	Bucket    string `yaml:"bucket"     env:"EXPORT_S3_BUCKET"`
	Prefix    string `yaml:"prefix"     env:"EXPORT_S3_PREFIX"     env-default:"stations"`
	UseSSL    bool   `yaml:"use_ssl"    env:"EXPORT_S3_USE_SSL"    env-default:"true"`
}
