package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrUpstreamFetch   = errors.New("upstream fetch failed")
	ErrMalformedRecord = errors.New("malformed record")
	ErrStoreWrite      = errors.New("store write failed")
	ErrExportIO        = errors.New("export write failed")
	ErrRunInProgress   = errors.New("ingestion run already in progress")
)

// MalformedRecordError reports a station record that is missing a required field.
type MalformedRecordError struct {
	StationID string
	Field     string
	Message   string
}

func (e *MalformedRecordError) Error() string {
	if e.StationID == "" {
		return fmt.Sprintf("malformed record: %s %s", e.Field, e.Message)
	}
	return fmt.Sprintf("malformed record %s: %s %s", e.StationID, e.Field, e.Message)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// RecordError attaches replay context (station ID and page offset) to a
// per-record failure.
type RecordError struct {
	StationID string
	Offset    int
	Err       error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %q at offset %d: %v", e.StationID, e.Offset, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
