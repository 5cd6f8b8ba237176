package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"realestate-listings/models"
)

// Client is a thin HTTP client for the listings API. Error responses still
// carry the envelope, so callers get the server's message on 404s and 500s
// instead of a bare status code.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) GetProperties(ctx context.Context, filter models.PropertyFilter) (models.Envelope[models.Page[models.PropertySummary]], error) {
	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.Address != "" {
		query.Set("address", filter.Address)
	}
	if filter.MinPrice != nil {
		query.Set("minPrice", strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != nil {
		query.Set("maxPrice", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}
	query.Set("pageNumber", strconv.Itoa(filter.PageNumber))
	query.Set("pageSize", strconv.Itoa(filter.PageSize))

	var envelope models.Envelope[models.Page[models.PropertySummary]]
	err := c.get(ctx, "/api/properties?"+query.Encode(), &envelope)
	return envelope, err
}

func (c *Client) GetProperty(ctx context.Context, id string) (models.Envelope[models.PropertyDetail], error) {
	var envelope models.Envelope[models.PropertyDetail]
	err := c.get(ctx, "/api/properties/"+url.PathEscape(id), &envelope)
	return envelope, err
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}
