package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mercora/storefront/pkg/config"
	pkgerrors "github.com/mercora/storefront/pkg/errors"
	"github.com/mercora/storefront/pkg/logger"
)

const (
	pingTimeout    = 5 * time.Second
	maxPayloadSize = 1 << 20
)

// Loader is the collaborator surface the cart engine depends on.
type Loader interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Client fetches products from the remote catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logg       *logger.Logger
}

// NewClient builds a catalog client from configuration.
func NewClient(cfg config.CatalogConfig, logg *logger.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("catalog base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		logg:       logg,
	}, nil
}

// GetProduct fetches and normalizes a single catalog record.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	u := fmt.Sprintf("%s/api/v1/products/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalogFetch, err, "catalog request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		err := fmt.Errorf("catalog responded %s: %s", resp.Status, strings.TrimSpace(string(body)))
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalogFetch, err, "catalog request rejected")
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeCatalogFetch, err, "read catalog payload")
	}

	product, err := Normalize(payload)
	if err != nil {
		return nil, err
	}
	if c.logg != nil {
		c.logg.Debug(c.logg.WithProductID(ctx, product.ID), "catalog product fetched")
	}
	return product, nil
}

// Ping verifies the catalog endpoint is reachable.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health/live", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog health check failed: %s", resp.Status)
	}
	return nil
}
