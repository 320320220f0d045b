package ports

import (
	"context"
	"io"
	"net/url"
)

// FileStore persists binary objects, such as CNH license images, in blob
// storage and returns their public URL.
type FileStore interface {
	// Upload stores the object under the given name and returns the URL it
	// is reachable at. An existing object with the same name is replaced.
	Upload(ctx context.Context, name, contentType string, body io.Reader) (*url.URL, error)
}
