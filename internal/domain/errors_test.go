package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestMalformedRecordError(t *testing.T) {
	t.Parallel()

	err := &MalformedRecordError{StationID: "abc", Field: "url", Message: "is required"}

	if got := err.Error(); got != "malformed record abc: url is required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatal("errors.Is(err, ErrMalformedRecord) = false")
	}
}

func TestMalformedRecordError_NoID(t *testing.T) {
	t.Parallel()

	err := &MalformedRecordError{Field: "id", Message: "is required"}
	if got := err.Error(); got != "malformed record: id is required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
}

func TestRecordError_Unwrap(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("station x: %w", ErrStoreWrite)
	err := &RecordError{StationID: "x", Offset: 2000, Err: inner}

	if !errors.Is(err, ErrStoreWrite) {
		t.Fatal("errors.Is(err, ErrStoreWrite) = false")
	}
	if got := err.Error(); got != `record "x" at offset 2000: station x: store write failed` {
		t.Fatalf("unexpected Error(): %q", got)
	}

	var re *RecordError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &re) {
		t.Fatal("errors.As should find RecordError")
	}
	if re.Offset != 2000 {
		t.Errorf("Offset = %d, want 2000", re.Offset)
	}
}
