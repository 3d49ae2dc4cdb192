package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeGetter struct {
	objects map[string]string
	err     error
	gotKey  string
	gotBkt  string
}

func (f *fakeGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gotKey = aws.ToString(params.Key)
	f.gotBkt = aws.ToString(params.Bucket)
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[f.gotKey]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestNewStorageRequiresConfig(t *testing.T) {
	// Should not panic with valid config (will fail to connect, but that's OK)
	_, err := New(context.Background(), Config{
		Endpoint:  "http://localhost:9000",
		Bucket:    "test",
		AccessKey: "test",
		SecretKey: "test",
	})
	if err != nil {
		t.Fatalf("expected no error creating storage client, got: %v", err)
	}
}

func TestReadObject(t *testing.T) {
	getter := &fakeGetter{objects: map[string]string{"catalog.toml": "[[video]]\nid = \"a\"\n"}}
	s := &Storage{client: getter, bucket: "resources", maxBytes: 1024}

	data, err := s.ReadObject(context.Background(), "catalog.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `id = "a"`) {
		t.Errorf("unexpected body %q", data)
	}
	if getter.gotBkt != "resources" || getter.gotKey != "catalog.toml" {
		t.Errorf("unexpected request bucket=%q key=%q", getter.gotBkt, getter.gotKey)
	}
}

func TestReadObject_NotFound(t *testing.T) {
	s := &Storage{client: &fakeGetter{objects: map[string]string{}}, bucket: "resources", maxBytes: 1024}

	_, err := s.ReadObject(context.Background(), "missing.toml")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReadObject_ClientError(t *testing.T) {
	s := &Storage{client: &fakeGetter{err: errors.New("access denied")}, bucket: "resources", maxBytes: 1024}

	_, err := s.ReadObject(context.Background(), "catalog.toml")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected non-NotFound error, got %v", err)
	}
}

func TestReadObject_TooLarge(t *testing.T) {
	getter := &fakeGetter{objects: map[string]string{"big.toml": strings.Repeat("x", 11)}}
	s := &Storage{client: getter, bucket: "resources", maxBytes: 10}

	if _, err := s.ReadObject(context.Background(), "big.toml"); err == nil {
		t.Fatal("expected size limit error")
	}
}

func TestReadObject_NilStorage(t *testing.T) {
	var s *Storage
	if _, err := s.ReadObject(context.Background(), "catalog.toml"); err == nil {
		t.Fatal("expected error for nil storage")
	}
}
