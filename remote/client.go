// Package remote implements the HTTPS blob-fetch collaborator described in
// spec section 6: two GETs per tile (keys, values) against a configured
// base URL, with 404-body-as-version-hint availability mapping, retry on
// transient network failures, and structured logging.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vectortile/roadaux/errs"
	"github.com/vectortile/roadaux/internal/hash"
	"github.com/vectortile/roadaux/internal/options"
	"github.com/vectortile/roadaux/overlay"
)

// CurrentVersion is the highest data version this client understands. A
// 404 body naming a version above this is reported as overlay.ExpiredApp.
const CurrentVersion = 0

// Client fetches traffic-key and traffic-value blobs for named tiles.
type Client struct {
	base       string
	httpClient *http.Client
	logger     *logrus.Logger
	maxRetries uint64
}

// ClientOption configures a Client via the functional-options pattern.
type ClientOption = options.Option[*Client]

// WithHTTPClient overrides the client's underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return options.NoError(func(c *Client) {
		c.httpClient = hc
	})
}

// WithLogger overrides the client's structured logger.
func WithLogger(logger *logrus.Logger) ClientOption {
	return options.NoError(func(c *Client) {
		c.logger = logger
	})
}

// WithMaxRetries bounds the number of retry attempts for transient network
// failures. It does not affect 404 handling, which is never retried.
func WithMaxRetries(n uint64) ClientOption {
	return options.NoError(func(c *Client) {
		c.maxRetries = n
	})
}

// NewClient constructs a Client against base, applying opts in order.
func NewClient(base string, opts ...ClientOption) (*Client, error) {
	c := &Client{
		base:       base,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logrus.StandardLogger(),
		maxRetries: 3,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// CacheKey derives a stable correlation key for a (tileName, version) pair,
// used to tag log lines and any caller-side blob cache.
func CacheKey(tileName string, version int) uint64 {
	return hash.ID(fmt.Sprintf("%s@%d", tileName, version))
}

// FetchKeys retrieves the traffic-key blob for tileName at version.
func (c *Client) FetchKeys(ctx context.Context, tileName string, version int) ([]byte, overlay.Availability, error) {
	return c.fetch(ctx, tileName, version, "traffic.keys")
}

// FetchValues retrieves the traffic-value blob for tileName at version.
func (c *Client) FetchValues(ctx context.Context, tileName string, version int) ([]byte, overlay.Availability, error) {
	return c.fetch(ctx, tileName, version, "traffic")
}

func (c *Client) fetch(ctx context.Context, tileName string, version int, suffix string) ([]byte, overlay.Availability, error) {
	reqURL := fmt.Sprintf("%s/%d/%s.%s", c.base, version, url.PathEscape(tileName), suffix)
	key := CacheKey(tileName, version)

	log := c.logger.WithFields(logrus.Fields{
		"cache_key": key,
		"tile":      tileName,
		"version":   version,
		"url":       reqURL,
	})

	var body []byte
	var status int

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return backoff.Permanent(errors.Wrapf(err, "remote: build request for %s", reqURL))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return errors.Wrapf(err, "remote: fetch %s", reqURL)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrapf(err, "remote: read body for %s", reqURL)
		}

		status = resp.StatusCode
		body = data
		return nil
	}

	bo := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries)
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		log.WithError(err).Warn("remote: fetch failed after retries")
		return nil, overlay.Unknown, fmt.Errorf("%w: %s", errs.ErrNetworkError, err)
	}

	switch {
	case status == http.StatusOK:
		log.WithField("bytes", len(body)).Info("remote: fetch succeeded")
		return body, overlay.IsAvailable, nil
	case status == http.StatusNotFound:
		avail := availabilityFromNotFoundBody(body, version)
		log.WithField("availability", avail.String()).Info("remote: fetch returned 404")
		return nil, avail, nil
	default:
		log.WithField("status", status).Warn("remote: fetch returned unexpected status")
		return nil, overlay.Unknown, fmt.Errorf("%w: status %d from %s", errs.ErrNetworkError, status, reqURL)
	}
}

// availabilityFromNotFoundBody interprets a 404 response body as a decimal
// server-side data version, per spec section 6: a server version beyond
// what this client understands is ExpiredApp; a server version newer than
// the locally requested one, but still within what the client supports, is
// ExpiredData; anything else, including an unparseable body, is NoData.
func availabilityFromNotFoundBody(body []byte, localVersion int) overlay.Availability {
	serverVersion, err := strconv.Atoi(string(body))
	if err != nil {
		return overlay.NoData
	}

	if serverVersion > CurrentVersion {
		return overlay.ExpiredApp
	}
	if serverVersion > localVersion {
		return overlay.ExpiredData
	}

	return overlay.NoData
}
