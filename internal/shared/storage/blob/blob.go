package blob

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mentorcv-backend/internal/shared/util"
)

// Uploader pushes raw bytes to a durable blob backend and returns a
// publicly retrievable URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Gateway stores resume files. When no uploader is configured, or the
// backend errors, it falls back to a local placeholder URL so a URL is
// always returned.
type Gateway struct {
	uploader Uploader
	prefix   string
}

// NewGateway constructs a Gateway. uploader may be nil, in which case
// every Store call takes the fallback path.
func NewGateway(uploader Uploader, prefix string) *Gateway {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = "cv"
	}
	return &Gateway{uploader: uploader, prefix: prefix}
}

// Store persists the file and returns its URL. The second return value
// reports whether the bytes landed on the durable backend; callers decide
// what to do about a fallback URL. Store never fails.
func (g *Gateway) Store(ctx context.Context, fileName, contentType string, data []byte) (string, bool) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		name = "resume"
	}
	unique := fmt.Sprintf("%s-%s", uuid.NewString(), name)

	if g.uploader != nil {
		url, err := g.uploader.Upload(ctx, g.prefix+"/"+unique, contentType, data)
		if err == nil {
			return url, true
		}
	}
	return "local://" + unique, false
}
