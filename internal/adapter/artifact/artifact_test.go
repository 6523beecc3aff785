package artifact

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/heartmarshall/radiocatalog/internal/config"
)

func TestDirSink_Put(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "public", "stations")
	sink := NewDirSink(root)
	ctx := context.Background()

	if err := sink.Put(ctx, "english.json", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := sink.Put(ctx, "english.json", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	if err := sink.Put(ctx, "nested/index.json", []byte(`[]`)); err != nil {
		t.Fatalf("Put nested: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(root, "english.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != `{"a":2}` {
		t.Errorf("content = %q, want overwritten value", got)
	}
	if _, err := os.Stat(filepath.Join(root, "nested", "index.json")); err != nil {
		t.Errorf("nested artifact missing: %v", err)
	}
}

func TestDirSink_RejectsEscapingNames(t *testing.T) {
	t.Parallel()

	sink := NewDirSink(t.TempDir())
	for _, name := range []string{"", "  ", ".", "..", "../x.json", "a/../../x.json", "/etc/passwd"} {
		if err := sink.Put(context.Background(), name, nil); err == nil {
			t.Errorf("Put(%q) succeeded, want error", name)
		}
	}
}

func TestDirSink_WriteError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	// A regular file where the sink expects a directory.
	blocker := filepath.Join(root, "blocked")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewDirSink(blocker).Put(context.Background(), "x.json", []byte("{}")); err == nil {
		t.Fatal("expected error writing under a file")
	}
}

func TestDirSink_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewDirSink(t.TempDir()).Put(ctx, "x.json", nil); err == nil {
		t.Fatal("expected context error")
	}
}

func TestNewS3Sink_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.S3Config
		wantErr bool
	}{
		{"missing endpoint", config.S3Config{Bucket: "b", AccessKey: "k", SecretKey: "s"}, true},
		{"missing credentials", config.S3Config{Endpoint: "localhost:9000", Bucket: "b"}, true},
		{"missing bucket", config.S3Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s"}, true},
		{"complete", config.S3Config{Endpoint: "localhost:9000", Bucket: "b", AccessKey: "k", SecretKey: "s"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewS3Sink(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewS3Sink() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestS3Sink_ObjectKey(t *testing.T) {
	t.Parallel()

	s, err := NewS3Sink(config.S3Config{
		Endpoint: "localhost:9000", Bucket: "b", AccessKey: "k", SecretKey: "s", Prefix: "/stations/",
	})
	if err != nil {
		t.Fatalf("NewS3Sink: %v", err)
	}
	if got := s.objectKey("index.json"); got != "stations/index.json" {
		t.Errorf("objectKey = %q", got)
	}

	s.prefix = ""
	if got := s.objectKey("index.json"); got != "index.json" {
		t.Errorf("objectKey without prefix = %q", got)
	}

	if contentType("english.json") != "application/json" || contentType("x.bin") != "application/octet-stream" {
		t.Error("unexpected content types")
	}
}

type fakeObjectStore struct {
	existsErrs []error // returned by successive BucketExists calls
	exists     bool
	callLog    []string
	objects    map[string][]byte
}

func (f *fakeObjectStore) BucketExists(context.Context, string) (bool, error) {
	f.callLog = append(f.callLog, "BucketExists")
	if len(f.existsErrs) > 0 {
		err := f.existsErrs[0]
		f.existsErrs = f.existsErrs[1:]
		if err != nil {
			return false, err
		}
	}
	return f.exists, nil
}

func (f *fakeObjectStore) MakeBucket(context.Context, string, minio.MakeBucketOptions) error {
	f.callLog = append(f.callLog, "MakeBucket")
	f.exists = true
	return nil
}

func (f *fakeObjectStore) PutObject(_ context.Context, _, key string, r io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.callLog = append(f.callLog, "PutObject")
	data, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[key] = data
	return minio.UploadInfo{Key: key}, nil
}

func TestS3Sink_BucketCheckRetriedAfterFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeObjectStore{existsErrs: []error{errors.New("connection reset")}, exists: true}
	s := &S3Sink{client: fake, bucket: "b", prefix: "stations"}
	ctx := context.Background()

	if err := s.Put(ctx, "english.json", []byte("{}")); err == nil {
		t.Fatal("expected first Put to fail")
	}
	if err := s.Put(ctx, "english.json", []byte("{}")); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	if err := s.Put(ctx, "index.json", []byte("{}")); err != nil {
		t.Fatalf("third Put: %v", err)
	}

	want := []string{"BucketExists", "BucketExists", "PutObject", "PutObject"}
	if len(fake.callLog) != len(want) {
		t.Fatalf("calls = %v, want %v", fake.callLog, want)
	}
	for i := range want {
		if fake.callLog[i] != want[i] {
			t.Fatalf("calls = %v, want %v", fake.callLog, want)
		}
	}
	if string(fake.objects["stations/index.json"]) != "{}" {
		t.Errorf("objects = %v", fake.objects)
	}
}

func TestS3Sink_CreatesMissingBucket(t *testing.T) {
	t.Parallel()

	fake := &fakeObjectStore{}
	s := &S3Sink{client: fake, bucket: "b"}

	if err := s.Put(context.Background(), "index.json", []byte("{}")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	want := []string{"BucketExists", "MakeBucket", "PutObject"}
	if len(fake.callLog) != 3 || fake.callLog[1] != want[1] {
		t.Errorf("calls = %v, want %v", fake.callLog, want)
	}
}
