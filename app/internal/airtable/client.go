// Package airtable implements the record fetcher against the Airtable
// list-records API, following pagination offsets until a table is exhausted.
package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/voicedash/airtable-proxy/app/domain/entities"
)

// Client issues authenticated list-records calls against one Airtable base.
type Client struct {
	baseURL    string
	baseID     string
	apiKey     string
	httpClient *http.Client
}

// listPage is one page of the Airtable list-records response. Offset is the
// continuation token for the next page; absent on the final page.
type listPage struct {
	Records []entities.Record `json:"records"`
	Offset  string            `json:"offset"`
}

// NewClient creates a client with injected credentials. baseURL is the API
// root (https://api.airtable.com/v0 in production, a test server in tests).
func NewClient(baseURL, baseID, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		baseID:     baseID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchAll retrieves every record of the named table, issuing one request
// per page and passing the previous page's offset until none is returned.
// Upstream record order is preserved across pages. Any transport, status or
// decode failure aborts the whole fetch; no partial results are returned.
func (c *Client) FetchAll(ctx context.Context, table string, params url.Values) ([]entities.Record, error) {
	var records []entities.Record
	offset := ""

	for {
		page, err := c.fetchPage(ctx, table, params, offset)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

func (c *Client) fetchPage(ctx context.Context, table string, params url.Values, offset string) (*listPage, error) {
	query := url.Values{}
	for k, vs := range params {
		query[k] = vs
	}
	if offset != "" {
		query.Set("offset", offset)
	}

	target := fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", entities.ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: table %q returned status %d: %s", entities.ErrUpstream, table, resp.StatusCode, body)
	}

	var page listPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: decoding response for table %q: %v", entities.ErrUpstream, table, err)
	}
	return &page, nil
}
