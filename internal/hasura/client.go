package hasura

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
	"github.com/mmcdole/watchthis/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "WatchThis/1.0"
)

// Client implements domain.ShowRepository against a Hasura GraphQL endpoint
type Client struct {
	endpoint string
	headers  map[string]string
	gql      *graphql.Client
	logger   *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHeaders sets extra headers sent with every request
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = headers
	}
}

// NewClient creates a new GraphQL client for the given endpoint.
// A zero timeout falls back to the default.
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	gql := graphql.NewClient(endpoint, graphql.WithHTTPClient(&http.Client{
		Timeout: timeout,
	}))
	gql.Log = func(s string) {
		logger.Debug("graphql trace", "line", s)
	}

	c := &Client{
		endpoint: endpoint,
		gql:      gql,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// run executes a document and decodes its data into resp.
// Errors are returned unchanged so their message can be shown verbatim.
func (c *Client) run(ctx context.Context, name, document string, vars map[string]interface{}, resp interface{}) error {
	req := graphql.NewRequest(document)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Header.Set("User-Agent", userAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("graphql request", "operation", name, "endpoint", c.endpoint)

	start := time.Now()
	if err := c.gql.Run(ctx, req, resp); err != nil {
		c.logger.Error("graphql request failed", "operation", name, "error", err)
		return err
	}

	c.logger.Debug("graphql response", "operation", name, "elapsed", time.Since(start))
	return nil
}

// ListShows returns all non-archived shows ordered by id descending
func (c *Client) ListShows(ctx context.Context) ([]domain.Show, error) {
	var resp getShowsResponse
	if err := c.run(ctx, "GetShows", getShowsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return mapShows(resp.Shows), nil
}

// SetCurrent sets the isCurrent flag of the show with the given id
func (c *Client) SetCurrent(ctx context.Context, id int, value bool) error {
	var resp setIsCurrentResponse
	vars := map[string]interface{}{
		"showId":    id,
		"isCurrent": value,
	}
	if err := c.run(ctx, "SetIsCurrent", setIsCurrentMutation, vars, &resp); err != nil {
		return err
	}
	c.logger.Info("set current", "showID", id, "isCurrent", value, "affectedRows", resp.UpdateShows.AffectedRows)
	return nil
}

// ArchiveShow sets isArchived on the show with the given primary key
func (c *Client) ArchiveShow(ctx context.Context, id int) error {
	var resp archiveShowResponse
	vars := map[string]interface{}{
		"showId": id,
	}
	if err := c.run(ctx, "ArchiveShow", archiveShowMutation, vars, &resp); err != nil {
		return err
	}
	if resp.UpdateShowsByPK == nil {
		return fmt.Errorf("archive show %d: %w", id, domain.ErrShowNotFound)
	}
	c.logger.Info("archived show", "showID", id)
	return nil
}

// AddShow inserts a show with the draft's title and platform text.
// New shows are neither current nor archived.
func (c *Client) AddShow(ctx context.Context, draft domain.ShowDraft) (int, error) {
	var resp addShowResponse
	vars := map[string]interface{}{
		"title":     draft.Title,
		"platforms": draft.Platforms,
	}
	if err := c.run(ctx, "AddShow", addShowMutation, vars, &resp); err != nil {
		return 0, err
	}
	if resp.InsertShowsOne == nil {
		return 0, errors.New("insert show returned no row")
	}
	c.logger.Info("added show", "showID", resp.InsertShowsOne.ID, "title", draft.Title)
	return resp.InsertShowsOne.ID, nil
}
