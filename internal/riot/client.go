// Package riot provides a minimal client for the Riot match-v5 API.
package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ErrNotFound is returned when the API reports 404 for a resource.
var ErrNotFound = errors.New("riot: not found")

// defaultCooldown is the wait applied on a 429 without a Retry-After header.
const defaultCooldown = 10 * time.Second

// regionRouting maps platform regions to their match-v5 routing cluster.
var regionRouting = map[string]string{
	"na1": "americas", "br1": "americas", "la1": "americas", "la2": "americas",
	"euw1": "europe", "eun1": "europe", "tr1": "europe", "ru": "europe",
	"kr": "asia", "jp1": "asia",
	"oc1": "sea", "sg2": "sea", "tw2": "sea", "vn2": "sea",
}

// RoutingValue returns the routing cluster for a platform region.
func RoutingValue(region string) (string, error) {
	r, ok := regionRouting[region]
	if !ok {
		return "", fmt.Errorf("riot: invalid region %q", region)
	}
	return r, nil
}

// Client is a Riot match-v5 API client. It is the collaborator boundary for
// upstream failures: a rate-limited request waits out one cooldown and is
// retried once here; all other errors propagate to the caller untouched.
type Client struct {
	apiKey   string
	http     *http.Client
	cacheDir string // raw match payload cache; empty disables caching
}

// NewClient returns a client authenticated with the given API key. Raw match
// detail payloads are cached under cacheDir when it is non-empty.
func NewClient(apiKey, cacheDir string) *Client {
	return &Client{
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		cacheDir: cacheDir,
	}
}

// get performs an authenticated GET and JSON-decodes the response into out.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("X-Riot-Token", c.apiKey)

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("GET %s: %w", rawURL, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("riot: decode response from %s: %w", rawURL, err)
			}
			return nil
		case http.StatusNotFound:
			return fmt.Errorf("%w: GET %s", ErrNotFound, rawURL)
		case http.StatusForbidden:
			return fmt.Errorf("riot: API key invalid or expired")
		case http.StatusTooManyRequests:
			if attempt > 0 {
				return fmt.Errorf("riot: still rate limited after cooldown")
			}
			wait := retryAfter(resp)
			log.Printf("riot: rate limited, waiting %s before retrying", wait)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		default:
			snippet := string(body)
			if len(snippet) > 200 {
				snippet = snippet[:200]
			}
			return fmt.Errorf("riot: HTTP %d: %s", resp.StatusCode, snippet)
		}
	}
}

func retryAfter(resp *http.Response) time.Duration {
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultCooldown
}

// AccountByRiotID resolves a game name + tag line to an account (puuid).
func (c *Client) AccountByRiotID(ctx context.Context, region, gameName, tagLine string) (*Account, error) {
	routing, err := RoutingValue(region)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		routing, url.PathEscape(gameName), url.PathEscape(tagLine))
	var acc Account
	if err := c.get(ctx, u, &acc); err != nil {
		return nil, err
	}
	if acc.PUUID == "" {
		return nil, fmt.Errorf("riot: no puuid for %s#%s", gameName, tagLine)
	}
	return &acc, nil
}

// MatchIDs returns up to count recent match ids for a puuid, newest first.
func (c *Client) MatchIDs(ctx context.Context, region, puuid string, count int) ([]string, error) {
	routing, err := RoutingValue(region)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		routing, puuid, count)
	var ids []string
	if err := c.get(ctx, u, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Match returns the detail payload for one match, consulting the raw-payload
// disk cache first.
func (c *Client) Match(ctx context.Context, region, matchID string) (*Match, error) {
	if raw, ok := c.loadCached(matchID); ok {
		var m Match
		if err := json.Unmarshal(raw, &m); err == nil {
			return &m, nil
		}
		// Corrupt cache entry: refetch and overwrite.
	}

	routing, err := RoutingValue(region)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", routing, matchID)
	var m Match
	if err := c.get(ctx, u, &m); err != nil {
		return nil, err
	}
	c.saveCached(matchID, &m)
	return &m, nil
}

// Timeline returns the timeline payload for one match.
func (c *Client) Timeline(ctx context.Context, region, matchID string) (*Timeline, error) {
	routing, err := RoutingValue(region)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s/timeline", routing, matchID)
	var tl Timeline
	if err := c.get(ctx, u, &tl); err != nil {
		return nil, err
	}
	return &tl, nil
}

func (c *Client) cachePath(matchID string) string {
	return filepath.Join(c.cacheDir, "match_"+matchID+".json")
}

func (c *Client) loadCached(matchID string) ([]byte, bool) {
	if c.cacheDir == "" {
		return nil, false
	}
	raw, err := os.ReadFile(c.cachePath(matchID))
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (c *Client) saveCached(matchID string, m *Match) {
	if c.cacheDir == "" {
		return
	}
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		log.Printf("riot: create cache dir: %v", err)
		return
	}
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(c.cachePath(matchID), raw, 0o644); err != nil {
		log.Printf("riot: write cache for %s: %v", matchID, err)
	}
}
