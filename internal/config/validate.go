package config

import (
	"fmt"
	"strings"
)

const maxPageSize = 100000

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Upstream.validate(); err != nil {
		return fmt.Errorf("upstream: %w", err)
	}
	if err := c.Ingest.validate(); err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	if err := c.Export.validate(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
	switch d.Driver {
	case DriverPostgres:
		if strings.TrimSpace(d.DSN) == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
	case DriverSQLite:
		if strings.TrimSpace(d.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", d.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", d.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}

func (u *UpstreamConfig) validate() error {
	if strings.TrimSpace(u.BaseURL) == "" {
		return fmt.Errorf("base_url is required")
	}
	if u.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", u.Timeout)
	}
	if u.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", u.MaxRetries)
	}
	return nil
}

func (i *IngestConfig) validate() error {
	if i.PageSize <= 0 || i.PageSize > maxPageSize {
		return fmt.Errorf("page_size must be in (0, %d] (got %d)", maxPageSize, i.PageSize)
	}
	if i.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be > 0 (got %d)", i.MaxPages)
	}
	return nil
}

func (e *ExportConfig) validate() error {
	if e.Threshold < 0 {
		return fmt.Errorf("threshold must be >= 0 (got %d)", e.Threshold)
	}

	e.Sink = strings.ToLower(strings.TrimSpace(e.Sink))
	switch e.Sink {
	case SinkDir:
		if strings.TrimSpace(e.Dir) == "" {
			return fmt.Errorf("dir is required for sink %q", e.Sink)
		}
	case SinkS3:
		if e.S3.Endpoint == "" || e.S3.Bucket == "" {
			return fmt.Errorf("s3 endpoint and bucket are required for sink %q", e.Sink)
		}
		if e.S3.AccessKey == "" || e.S3.SecretKey == "" {
			return fmt.Errorf("s3 access_key and secret_key are required for sink %q", e.Sink)
		}
	default:
		return fmt.Errorf("unknown sink %q (want %q or %q)", e.Sink, SinkDir, SinkS3)
	}
	return nil
}
