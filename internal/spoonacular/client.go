// Package spoonacular is a client for the Spoonacular recipe API.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/types"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL     = "https://api.spoonacular.com/recipes"
	DefaultTimeout     = 10 * time.Second
	DefaultConcurrency = 5

	// apiKeyHeader carries the provider key. Request URLs must not contain it.
	apiKeyHeader = "x-api-key"

	// maxErrorBody bounds how much of a failed response is kept for logging
	maxErrorBody = 1024
)

// Config configures the provider client
type Config struct {
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	Concurrency int
}

// Client calls the provider's search and information endpoints
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	concurrency int
	logger      *slog.Logger
}

// NewClient creates a provider client, filling unset config with defaults
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:      cfg.APIKey,
		concurrency: cfg.Concurrency,
		logger:      logger,
	}
}

// FetchInformation returns the full provider record for id
func (c *Client) FetchInformation(ctx context.Context, id int64) (*types.RecipeInfo, error) {
	if id <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidArgument, "Invalid recipe ID")
	}

	query := url.Values{}
	query.Set("includeNutrition", "false")

	var info types.RecipeInfo
	if err := c.getJSON(ctx, "information", fmt.Sprintf("/%d/information", id), query, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Search runs a complex search and enriches every hit with its information
// record. Detail lookups run in parallel, bounded by the configured
// concurrency. Results keep the provider's ranking order; any failed lookup
// fails the whole search.
func (c *Client) Search(ctx context.Context, params types.SearchParams) ([]types.RecipeInfo, error) {
	if params.Query == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidArgument, "search query is required")
	}

	query := url.Values{}
	query.Set("query", params.Query)
	query.Set("cuisine", params.Cuisine)
	query.Set("diet", params.Diet)
	query.Set("intolerances", params.Intolerances)
	if params.Number > 0 {
		query.Set("number", strconv.Itoa(params.Number))
	}

	var search searchResponse
	if err := c.getJSON(ctx, "complexSearch", "/complexSearch", query, &search); err != nil {
		return nil, err
	}

	hits := search.Results
	if params.Number > 0 && len(hits) > params.Number {
		hits = hits[:params.Number]
	}

	recipes := make([]types.RecipeInfo, len(hits))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, hit := range hits {
		g.Go(func() error {
			info, err := c.FetchInformation(gctx, hit.ID)
			if err != nil {
				return fmt.Errorf("recipe %d: %w", hit.ID, err)
			}
			recipes[i] = *info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeProvider, "recipe search failed", err)
	}

	return recipes, nil
}

// FetchRandom returns n random recipes as summaries
func (c *Client) FetchRandom(ctx context.Context, n int) ([]types.RecipeSummary, error) {
	if n <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidArgument, "Invalid number of recipes requested")
	}

	query := url.Values{}
	query.Set("number", strconv.Itoa(n))

	var random randomResponse
	if err := c.getJSON(ctx, "random", "/random", query, &random); err != nil {
		return nil, err
	}

	summaries := make([]types.RecipeSummary, 0, len(random.Recipes))
	for i := range random.Recipes {
		summaries = append(summaries, random.Recipes[i].ToSummary())
	}
	return summaries, nil
}

// FetchFullDetails returns the detail projection of id
func (c *Client) FetchFullDetails(ctx context.Context, id int64) (*types.RecipeDetail, error) {
	info, err := c.FetchInformation(ctx, id)
	if err != nil {
		return nil, err
	}
	if info.ID == 0 {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("No data found for recipe ID: %d", id))
	}

	detail := info.Detail()
	return &detail, nil
}

// getJSON performs a GET against the provider and decodes the JSON body into dst
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, dst any) error {
	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeProvider, "failed to build provider request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	providerDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		providerRequests.WithLabelValues(endpoint, "error").Inc()
		c.logger.WarnContext(ctx, "provider request failed", "endpoint", endpoint, "error", err)
		return apperrors.WrapWithContext(apperrors.ErrCodeProvider, "provider request failed", err,
			map[string]any{"endpoint": endpoint})
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		providerRequests.WithLabelValues(endpoint, "not_found").Inc()
		return apperrors.New(apperrors.ErrCodeNotFound, "Recipe not found")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		providerRequests.WithLabelValues(endpoint, "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.WarnContext(ctx, "provider returned error status",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"body", string(body),
		)
		return apperrors.NewWithContext(apperrors.ErrCodeProvider,
			fmt.Sprintf("provider returned status %d", resp.StatusCode),
			map[string]any{"endpoint": endpoint, "status": resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		providerRequests.WithLabelValues(endpoint, "error").Inc()
		return apperrors.Wrap(apperrors.ErrCodeProvider, "invalid provider response", err)
	}

	providerRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}
