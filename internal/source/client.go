// Package source is the data source adapter: it issues the outbound catalog
// request and decodes the JSON payload into the catalog types. No retry
// backoff and no timeout beyond the underlying http.Client.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"prodview/internal/catalog"
	"prodview/internal/logging"
)

// DefaultEndpoint is the public demo catalog the app points at out of the box.
const DefaultEndpoint = "https://dummyjson.com/products"

// DefaultLimit is the page size requested from the remote source.
const DefaultLimit = 100

// fetchAllConcurrency bounds the page walk in FetchAll.
const fetchAllConcurrency = 4

// Client fetches the product listing from a fixed remote endpoint.
type Client struct {
	endpoint string
	limit    int
	client   *http.Client
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLimit overrides the page size requested from the source.
func WithLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

// WithHTTPClient swaps the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New creates a catalog client for the given endpoint. An empty endpoint
// falls back to the default demo source.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		limit:    DefaultLimit,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logging.Get(logging.CategorySource),
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured remote endpoint.
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch performs one GET against the endpoint and returns the decoded
// listing. A non-success status or transport failure is surfaced as a single
// retrieval error; callers show it verbatim and offer a manual retry.
func (c *Client) Fetch(ctx context.Context) (*catalog.Listing, error) {
	return c.fetchPage(ctx, 0)
}

func (c *Client) fetchPage(ctx context.Context, skip int) (*catalog.Listing, error) {
	reqID := uuid.NewString()

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("limit", fmt.Sprintf("%d", c.limit))
	if skip > 0 {
		q.Set("skip", fmt.Sprintf("%d", skip))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching catalog page",
		zap.String("req", reqID),
		zap.String("url", u.String()),
		zap.Int("skip", skip),
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("catalog request failed", zap.String("req", reqID), zap.Error(err))
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		c.logger.Warn("catalog request rejected",
			zap.String("req", reqID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("catalog request failed: unexpected status %d", resp.StatusCode)
	}

	var listing catalog.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode catalog payload: %w", err)
	}

	c.logger.Info("catalog page fetched",
		zap.String("req", reqID),
		zap.Int("records", len(listing.Products)),
		zap.Int("total", listing.Total),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &listing, nil
}

// FetchAll walks every page of the remote source and returns the complete
// catalog in source order. The first page is fetched alone to learn the
// total; the remaining pages are pulled concurrently with a bounded group.
func (c *Client) FetchAll(ctx context.Context) (*catalog.Listing, error) {
	first, err := c.fetchPage(ctx, 0)
	if err != nil {
		return nil, err
	}
	if len(first.Products) == 0 || len(first.Products) >= first.Total {
		return first, nil
	}

	type page struct {
		skip     int
		products []catalog.Product
	}

	pageSize := len(first.Products)
	var pages []*page
	for skip := pageSize; skip < first.Total; skip += pageSize {
		pages = append(pages, &page{skip: skip})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchAllConcurrency)
	for _, p := range pages {
		p := p
		g.Go(func() error {
			listing, err := c.fetchPage(gctx, p.skip)
			if err != nil {
				return err
			}
			p.products = listing.Products
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := &catalog.Listing{
		Products: first.Products,
		Total:    first.Total,
		Skip:     0,
		Limit:    first.Total,
	}
	for _, p := range pages {
		all.Products = append(all.Products, p.products...)
	}
	return all, nil
}
