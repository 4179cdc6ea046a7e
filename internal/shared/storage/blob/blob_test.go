package blob

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubUploader struct {
	url string
	err error
	key string
}

func (s *stubUploader) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	s.key = key
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func TestGatewayStoreReturnsBackendURL(t *testing.T) {
	up := &stubUploader{url: "https://bucket.s3.amazonaws.com/cv/abc-resume.pdf"}
	g := NewGateway(up, "cv")

	url, durable := g.Store(context.Background(), "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	if !durable {
		t.Fatalf("expected durable store")
	}
	if url != up.url {
		t.Fatalf("unexpected url: %s", url)
	}
	if !strings.HasPrefix(up.key, "cv/") || !strings.HasSuffix(up.key, "-resume.pdf") {
		t.Fatalf("unexpected key: %s", up.key)
	}
}

func TestGatewayStoreFallsBackOnError(t *testing.T) {
	up := &stubUploader{err: errors.New("no credentials")}
	g := NewGateway(up, "cv")

	url, durable := g.Store(context.Background(), "resume.pdf", "application/pdf", []byte("data"))
	if durable {
		t.Fatalf("expected fallback store")
	}
	if !strings.HasPrefix(url, "local://") {
		t.Fatalf("expected local:// url, got %s", url)
	}
	if !strings.HasSuffix(url, "-resume.pdf") {
		t.Fatalf("expected original file name preserved, got %s", url)
	}
}

func TestGatewayStoreFallsBackWithoutUploader(t *testing.T) {
	g := NewGateway(nil, "")

	url, durable := g.Store(context.Background(), "cv.docx", "", nil)
	if durable {
		t.Fatalf("expected fallback store")
	}
	if !strings.HasPrefix(url, "local://") {
		t.Fatalf("expected local:// url, got %s", url)
	}
}

func TestGatewayStoreSanitizesHostileName(t *testing.T) {
	g := NewGateway(nil, "cv")

	url, _ := g.Store(context.Background(), "../../etc/passwd", "", nil)
	if strings.Contains(url, "..") {
		t.Fatalf("traversal pattern leaked into url: %s", url)
	}
	if !strings.HasSuffix(url, "-resume") {
		t.Fatalf("expected generic name for rejected input, got %s", url)
	}
}
