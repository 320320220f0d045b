// Package gcs implements file storage on Google Cloud Storage through its
// JSON API. Objects are uploaded with media upload requests and addressed by
// their public storage URL.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://storage.googleapis.com"
	uploadTimeout  = 30 * time.Second
)

// Client uploads objects to a single GCS bucket. It implements the FileStore
// port used by the license image workflow.
type Client struct {
	httpClient *http.Client
	baseURL    string
	bucket     string
	tokens     TokenSource
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the storage endpoint. Used by tests to point the
// client at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a GCS client bound to the given bucket.
func NewClient(bucket string, tokens TokenSource, opts ...Option) (*Client, error) {
	if bucket == "" {
		return nil, errors.New("gcs bucket name is required")
	}
	if tokens == nil {
		return nil, errors.New("gcs token source is required")
	}

	c := &Client{
		httpClient: &http.Client{Timeout: uploadTimeout},
		baseURL:    defaultBaseURL,
		bucket:     bucket,
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Upload stores the object under name and returns its public storage URL.
// An existing object with the same name is overwritten, so re-uploading a
// driver's license image replaces the previous one.
func (c *Client) Upload(ctx context.Context, name string, contentType string, body io.Reader) (*url.URL, error) {
	if name == "" {
		return nil, errors.New("object name is required")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching storage token: %w", err)
	}

	uploadURL := fmt.Sprintf(
		"%s/upload/storage/v1/b/%s/o?uploadType=media&name=%s",
		c.baseURL,
		url.PathEscape(c.bucket),
		url.QueryEscape(name),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading object %s: %w", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if len(b) > 0 {
			return nil, fmt.Errorf("gcs upload failed: %s: %s", resp.Status, strings.TrimSpace(string(b)))
		}
		return nil, fmt.Errorf("gcs upload failed: %s", resp.Status)
	}

	return c.objectURL(name), nil
}

func (c *Client) objectURL(name string) *url.URL {
	raw := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.bucket), url.PathEscape(name))
	u, err := url.Parse(raw)
	if err != nil {
		// The components are escaped above; a parse failure means the bucket
		// name itself is malformed.
		panic(fmt.Sprintf("building object url for %s: %v", name, err))
	}
	return u
}
