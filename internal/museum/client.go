package museum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"museum-shop/internal/model"

	"github.com/rs/zerolog"
)

// ErrObjectUnavailable signals that the remote source could not produce the
// requested object: network failure and non-success status both map here,
// since the aggregator treats them identically.
var ErrObjectUnavailable = errors.New("museum object unavailable")

// Client defines read access to the external collection source.
type Client interface {
	// GetObject fetches a single object by its source-assigned ID.
	GetObject(ctx context.Context, id int) (*model.MuseumObject, error)
}

// httpClient implements Client against the collection HTTP API.
type httpClient struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewClient creates a collection API client with a bounded per-request
// timeout. The remote's availability is untrusted.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "museum-client").Logger(),
	}
}

// GetObject fetches a single object by ID.
func (c *httpClient) GetObject(ctx context.Context, id int) (*model.MuseumObject, error) {
	url := fmt.Sprintf("%s/objects/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for object %d: %w", id, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Int("object_id", id).Msg("object fetch failed")
		return nil, fmt.Errorf("object %d: %w", id, ErrObjectUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug().
			Int("object_id", id).
			Int("status", resp.StatusCode).
			Msg("object fetch returned non-success status")
		return nil, fmt.Errorf("object %d: status %d: %w", id, resp.StatusCode, ErrObjectUnavailable)
	}

	var obj model.MuseumObject
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		c.logger.Debug().Err(err).Int("object_id", id).Msg("failed to decode object response")
		return nil, fmt.Errorf("object %d: %w", id, ErrObjectUnavailable)
	}

	return &obj, nil
}
