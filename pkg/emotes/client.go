package emotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SetGlobal is the sentinel set identifier for the platform-wide emote set.
const SetGlobal = "global"

// Client fetches emote sets from the Helix-shaped upstream API. The auth
// token comes from the host platform's authorized callback and is passed
// through opaquely.
type Client struct {
	baseURL  string
	clientID string
	http     *http.Client
}

const defaultBaseURL = "https://api.twitch.tv/helix"

// NewClient returns a client for baseURL (the production API when empty).
func NewClient(baseURL, clientID string) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	return &Client{
		baseURL:  baseURL,
		clientID: clientID,
		http: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

// FetchSet fetches one emote set. setID may be SetGlobal. A 404 or an empty
// data list comes back as an empty response, not an error; the caller treats
// it as "no emotes added".
func (c *Client) FetchSet(ctx context.Context, token, setID string) (SetResponse, error) {
	setID = strings.TrimSpace(setID)
	if setID == "" {
		return SetResponse{}, fmt.Errorf("setID is required")
	}

	endpoint := c.baseURL + "/chat/emotes/set"
	var query url.Values
	if setID == SetGlobal {
		endpoint = c.baseURL + "/chat/emotes/global"
	} else {
		query = url.Values{"emote_set_id": {setID}}
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return SetResponse{}, err
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return SetResponse{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.clientID != "" {
		req.Header.Set("Client-Id", c.clientID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return SetResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return SetResponse{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		return SetResponse{}, fmt.Errorf("emotes: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out SetResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SetResponse{}, err
	}

	return out, nil
}
