package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/youruser/outfitapp/internal/util"
)

// ErrNoData is returned when the profile service answers with an empty document.
var ErrNoData = errors.New("profile service returned no data")

// Config holds the profile service settings.
type Config struct {
	// URL is the player-info endpoint; uid and region are added as query parameters.
	URL string `mapstructure:"url" default:"https://info-outfit-ayacte.vercel.app/player-info"`
	// TimeoutSeconds bounds one lookup.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"12"`
}

// Client looks up player records over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a profile client from cfg.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: cfg.URL,
		http:    util.NewHTTPClient(cfg.TimeoutSeconds),
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// Fetch returns the record for uid in region.
func (c *Client) Fetch(ctx context.Context, uid, region string) (*PlayerRecord, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse profile url: %w", err)
	}
	q := u.Query()
	q.Set("uid", uid)
	q.Set("region", region)
	u.RawQuery = q.Encode()

	body, err := util.GetBytes(ctx, c.http, u.String())
	if err != nil {
		return nil, fmt.Errorf("profile lookup: %w", err)
	}
	return ParseRecord(body)
}

// ParseRecord decodes a profile document. null and {} are reported as ErrNoData.
func ParseRecord(b []byte) (*PlayerRecord, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if len(top) == 0 {
		return nil, ErrNoData
	}
	var rec PlayerRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &rec, nil
}
