package gcs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

const metadataTokenURL = "http://metadata.google.internal/computeMetadata/v1/instance/service-accounts/default/token"

// TokenSource yields OAuth2 access tokens for storage requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed token. Intended for local development
// against storage emulators.
type StaticTokenSource string

func (s StaticTokenSource) Token(_ context.Context) (string, error) {
	if s == "" {
		return "", errors.New("static token is empty")
	}
	return string(s), nil
}

// MetadataTokenSource fetches access tokens from the GCE metadata server and
// caches them until shortly before expiry.
type MetadataTokenSource struct {
	httpClient *http.Client

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewMetadataTokenSource creates a token source backed by the metadata
// server of the instance the service runs on.
func NewMetadataTokenSource(httpClient *http.Client) *MetadataTokenSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &MetadataTokenSource{httpClient: httpClient}
}

func (t *MetadataTokenSource) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && time.Until(t.expiry) > time.Minute {
		return t.token, nil
	}

	token, expiry, err := t.fetch(ctx)
	if err != nil {
		return "", err
	}
	t.token = token
	t.expiry = expiry
	return token, nil
}

func (t *MetadataTokenSource) fetch(ctx context.Context) (string, time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, metadataTokenURL, nil)
	if err != nil {
		return "", time.Time{}, err
	}
	req.Header.Set("Metadata-Flavor", "Google")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("fetching metadata token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("metadata token request failed: %s", resp.Status)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", time.Time{}, fmt.Errorf("decoding metadata token: %w", err)
	}
	if payload.AccessToken == "" {
		return "", time.Time{}, errors.New("metadata token response missing access_token")
	}

	return payload.AccessToken, time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second), nil
}
