// Package catalog is the client for the remote ExerciseDB reference
// catalog. Failures surface as errors with no retries; callers decide how
// to present them.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// DefaultBaseURL is the production ExerciseDB endpoint.
const DefaultBaseURL = "https://exercisedb.p.rapidapi.com/exercises"

// Client calls the ExerciseDB API. The API key goes out as the RapidAPI
// auth header; an empty key is allowed and simply yields unauthorized
// responses upstream.
type Client struct {
	baseURL    string
	host       string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	host := ""
	if u, err := url.Parse(baseURL); err == nil {
		host = u.Host
	}
	return &Client{
		baseURL:    baseURL,
		host:       host,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("catalog: create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("catalog: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog: %s returned %d: %s", path, resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return nil
}

// BodyParts lists the catalog's body part names.
func (c *Client) BodyParts(ctx context.Context) ([]string, error) {
	var parts []string
	if err := c.get(ctx, "/bodyPartList", &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

// ByBodyPart lists exercises for one body part.
func (c *Client) ByBodyPart(ctx context.Context, part string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := c.get(ctx, "/bodyPart/"+url.PathEscape(part), &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// ByName lists exercises matching a name.
func (c *Client) ByName(ctx context.Context, name string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := c.get(ctx, "/name/"+url.PathEscape(name), &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// ByTarget lists exercises for one target muscle.
func (c *Client) ByTarget(ctx context.Context, target string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	if err := c.get(ctx, "/target/"+url.PathEscape(target), &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// Search tries name, then body part, then target muscle (the latter two
// lowercased); the first non-empty result wins. All three coming back empty
// is not an error.
func (c *Client) Search(ctx context.Context, term string) ([]models.Exercise, error) {
	exercises, err := c.ByName(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(exercises) > 0 {
		return exercises, nil
	}

	lower := strings.ToLower(term)
	exercises, err = c.ByBodyPart(ctx, lower)
	if err != nil {
		return nil, err
	}
	if len(exercises) > 0 {
		return exercises, nil
	}

	return c.ByTarget(ctx, lower)
}
