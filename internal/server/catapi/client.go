// Package catapi wraps the external breed and fact APIs (TheCatAPI and
// catfact.ninja) behind small HTTP clients with bounded timeouts. Transport
// failures are translated into wrapped errors so raw HTTP errors never
// reach the handlers.
package catapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/catcurious/catcurious/internal/logging"
)

// DefaultTimeout bounds every outbound request.
const DefaultTimeout = 5 * time.Second

// ErrNoBreedData is returned when the API responds without breed
// information for the requested code.
var ErrNoBreedData = errors.New("no breed information received from API")

// ErrNoImageData is returned when the API responds without an image URL.
var ErrNoImageData = errors.New("no cat image URL received from API")

// Client fetches per-breed information and images from TheCatAPI.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logging.Logger
}

// NewClient constructs a breed info client. baseURL is TheCatAPI root,
// e.g. "https://api.thecatapi.com/v1". A zero timeout falls back to
// DefaultTimeout.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger.With("module", "catapi"),
	}
}

// imageSearchResult mirrors the relevant part of TheCatAPI
// /images/search response.
type imageSearchResult struct {
	URL    string `json:"url"`
	Breeds []struct {
		Description    string `json:"description"`
		AffectionLevel int    `json:"affection_level"`
		LifeSpan       string `json:"life_span"`
	} `json:"breeds"`
}

// imageSearch performs GET /images/search with limit=1 and the given breed
// filter (empty for a random image) and returns the first result.
func (c *Client) imageSearch(ctx context.Context, breed string) (*imageSearchResult, error) {
	q := url.Values{}
	q.Set("limit", "1")
	if breed != "" {
		q.Set("breed_ids", breed)
	}
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	reqURL := c.baseURL + "/images/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "request to TheCatAPI failed", "error", err)
		return nil, fmt.Errorf("request to TheCatAPI failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error(ctx, "unexpected status from TheCatAPI", "status", resp.Status)
		return nil, fmt.Errorf("request to TheCatAPI failed: %s", resp.Status)
	}

	var results []imageSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding TheCatAPI response: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoBreedData
	}
	return &results[0], nil
}

// breedInfo returns the breed block of an image search for breed.
func (c *Client) breedInfo(ctx context.Context, breed string) (*imageSearchResult, error) {
	res, err := c.imageSearch(ctx, breed)
	if err != nil {
		return nil, err
	}
	if len(res.Breeds) == 0 {
		return nil, fmt.Errorf("breed %q: %w", breed, ErrNoBreedData)
	}
	return res, nil
}

// Description returns the breed's description text.
func (c *Client) Description(ctx context.Context, breed string) (string, error) {
	res, err := c.breedInfo(ctx, breed)
	if err != nil {
		return "", err
	}
	if res.Breeds[0].Description == "" {
		return "", fmt.Errorf("breed %q: %w", breed, ErrNoBreedData)
	}
	return res.Breeds[0].Description, nil
}

// AffectionLevel returns the breed's affection level (1–5).
func (c *Client) AffectionLevel(ctx context.Context, breed string) (int, error) {
	res, err := c.breedInfo(ctx, breed)
	if err != nil {
		return 0, err
	}
	return res.Breeds[0].AffectionLevel, nil
}

// Lifespan returns the breed's estimated lifespan range, e.g. "12 - 16".
func (c *Client) Lifespan(ctx context.Context, breed string) (string, error) {
	res, err := c.breedInfo(ctx, breed)
	if err != nil {
		return "", err
	}
	if res.Breeds[0].LifeSpan == "" {
		return "", fmt.Errorf("breed %q: %w", breed, ErrNoBreedData)
	}
	return res.Breeds[0].LifeSpan, nil
}

// BreedImageURL returns a picture URL for the given breed.
func (c *Client) BreedImageURL(ctx context.Context, breed string) (string, error) {
	res, err := c.imageSearch(ctx, breed)
	if err != nil {
		return "", err
	}
	if res.URL == "" {
		return "", fmt.Errorf("breed %q: %w", breed, ErrNoImageData)
	}
	return res.URL, nil
}

// RandomImageURL returns a random cat picture URL.
func (c *Client) RandomImageURL(ctx context.Context) (string, error) {
	res, err := c.imageSearch(ctx, "")
	if err != nil {
		return "", err
	}
	if res.URL == "" {
		return "", ErrNoImageData
	}
	return res.URL, nil
}
