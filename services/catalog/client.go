package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"podwave/models"
)

// Client is a minimal client for the remote catalog API. It issues single
// requests only: no retry, no backoff, no pagination. The API is treated as
// an opaque collaborator returning JSON with a fixed shape, so responses are
// decoded and returned without further validation.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a catalog client for the given base URL. Pass a nil
// http.Client to use a default with a 15 second timeout.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// FetchCatalog retrieves the full show-preview list in one request.
// Element order of the response body is preserved.
func (c *Client) FetchCatalog(ctx context.Context) ([]models.ShowPreview, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/shows", nil)
	if err != nil {
		return nil, transportErrf("create request: %v", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, transportErrf("catalog request: %v", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Error occurred while fetching podcasts: %d", resp.StatusCode),
		}
	}

	var previews []models.ShowPreview
	if err := json.NewDecoder(resp.Body).Decode(&previews); err != nil {
		return nil, transportErrf("decode catalog response: %v", err)
	}
	return previews, nil
}

// FetchShowDetail retrieves the full record for one show. A 404 maps to
// NotFoundError, any other non-2xx to HTTPError. The parsed detail is
// returned unchanged.
func (c *Client) FetchShowDetail(ctx context.Context, id string) (*models.ShowDetail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/id/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, transportErrf("create request: %v", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, transportErrf("show detail request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{}
	}
	if !is2xx(resp.StatusCode) {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("Failed to fetch show details: %d", resp.StatusCode),
		}
	}

	var detail models.ShowDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, transportErrf("decode show detail response: %v", err)
	}
	return &detail, nil
}

func is2xx(status int) bool {
	return status >= 200 && status <= 299
}
