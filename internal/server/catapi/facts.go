package catapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/catcurious/catcurious/internal/logging"
)

// ErrNoFactData is returned when the facts API responds without the
// expected data list.
var ErrNoFactData = errors.New("invalid response from Cat Facts API")

// FactsClient fetches random cat facts from catfact.ninja.
type FactsClient struct {
	httpClient *http.Client
	baseURL    string
	logger     logging.Logger
}

// NewFactsClient constructs a facts client. baseURL is the catfact.ninja
// root, e.g. "https://catfact.ninja". A zero timeout falls back to
// DefaultTimeout.
func NewFactsClient(baseURL string, timeout time.Duration, logger logging.Logger) *FactsClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &FactsClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger.With("module", "catfacts"),
	}
}

// RandomFacts returns count random cat facts.
func (c *FactsClient) RandomFacts(ctx context.Context, count int) ([]string, error) {
	reqURL := c.baseURL + "/facts?limit=" + strconv.Itoa(count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "request to Cat Facts API failed", "error", err)
		return nil, fmt.Errorf("request to Cat Facts API failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error(ctx, "unexpected status from Cat Facts API", "status", resp.Status)
		return nil, fmt.Errorf("request to Cat Facts API failed: %s", resp.Status)
	}

	var payload struct {
		Data []struct {
			Fact string `json:"fact"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding Cat Facts API response: %w", err)
	}
	if payload.Data == nil {
		return nil, ErrNoFactData
	}

	facts := make([]string, 0, len(payload.Data))
	for _, d := range payload.Data {
		facts = append(facts, d.Fact)
	}
	return facts, nil
}
