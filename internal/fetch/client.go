// Package fetch downloads dataset spreadsheets with a write-through file
// cache, so the assistant can pick up a published analysis file once and keep
// working offline afterwards.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/informagico/fantavibe/internal/store"
)

type Client struct {
	HTTP         *http.Client
	Store        *store.JSONStore
	UserAgent    string
	UseCache     bool
	DisableWrite bool
}

func NewClient(st *store.JSONStore) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 30 * time.Second},
		Store:     st,
		UserAgent: "fantavibe/1.0",
		UseCache:  true,
	}
}

// FetchDataset downloads url and caches it under relPath in the store.
// With the cache enabled and force false, an existing cached copy is returned
// without touching the network.
func (c *Client) FetchDataset(ctx context.Context, url string, relPath string, force bool) ([]byte, error) {
	if !force && c.UseCache && c.Store.Exists(relPath) {
		return c.Store.ReadRaw(relPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d", url, resp.StatusCode)
	}

	if !c.DisableWrite {
		if err := c.Store.WriteRaw(relPath, body, false); err != nil {
			return nil, err
		}
	}
	return body, nil
}
