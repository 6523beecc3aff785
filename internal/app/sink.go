package app

import (
	"fmt"

	"github.com/heartmarshall/radiocatalog/internal/adapter/artifact"
	"github.com/heartmarshall/radiocatalog/internal/app/export"
	"github.com/heartmarshall/radiocatalog/internal/config"
)

// NewSink builds the artifact sink selected by export.sink.
func NewSink(cfg config.ExportConfig) (export.Sink, error) {
	switch cfg.Sink {
	case config.SinkDir:
		return artifact.NewDirSink(cfg.Dir), nil
	case config.SinkS3:
		sink, err := artifact.NewS3Sink(cfg.S3)
		if err != nil {
			return nil, err
		}
		return sink, nil
	default:
		return nil, fmt.Errorf("unsupported export sink %q", cfg.Sink)
	}
}
