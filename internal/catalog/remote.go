package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"storefront/internal/domain"
)

// RemoteCatalog resolves products from an external catalog service.
// It exists so the static demo catalog can be swapped for a real data
// source without touching the checkout computation.
type RemoteCatalog struct {
	baseURL    string
	httpClient *http.Client
}

func NewRemoteCatalog(baseURL string, timeout time.Duration) *RemoteCatalog {
	return &RemoteCatalog{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *RemoteCatalog) Resolve(ctx context.Context, id string) (domain.Product, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/products/%s", c.baseURL, url.PathEscape(id)), nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Product{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Product{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Product{}, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var p domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

var _ Repository = (*RemoteCatalog)(nil)
