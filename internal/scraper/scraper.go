// Package scraper pulls season stat tables from a pro-football-reference style
// site and turns them into player records for the merge step. Fetching and
// parsing are split so tests can feed fixture HTML straight to the parsers.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/dk-lineup/internal/types"
	"github.com/stitts-dev/dk-lineup/pkg/logger"
)

const defaultUserAgent = "dk-lineup/1.0"

// Client fetches stat pages with a bounded timeout and an honest User-Agent
type Client struct {
	http      *http.Client
	userAgent string
	log       *logrus.Entry
}

// NewClient creates a scraper client. A zero timeout falls back to 20s.
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
		log:       logger.WithService("scraper"),
	}
}

// FetchOffenseStats downloads and parses the season fantasy offense table
func (c *Client) FetchOffenseStats(ctx context.Context, url string) ([]types.PlayerRecord, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	records, err := ParseOffenseTable(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse offense table from %s: %w", url, err)
	}
	c.log.WithFields(logrus.Fields{"url": url, "records": len(records)}).Info("Offense stats fetched")
	return records, nil
}

// FetchDefenseStats downloads and parses the team defense table
func (c *Client) FetchDefenseStats(ctx context.Context, url string) ([]types.PlayerRecord, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	records, err := ParseDefenseTable(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse defense table from %s: %w", url, err)
	}
	c.log.WithFields(logrus.Fields{"url": url, "records": len(records)}).Info("Defense stats fetched")
	return records, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}
	return resp.Body, nil
}
