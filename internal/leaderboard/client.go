package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a Backend talking to a remote Server.
type Client struct {
	baseURL string
	http    *http.Client
	dialer  *websocket.Dialer
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		dialer:  &websocket.Dialer{HandshakeTimeout: timeout},
	}
}

// Save posts an entry. A 429 response maps to ErrRateLimited.
func (c *Client) Save(ctx context.Context, e Entry) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("leaderboard: encode entry: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ScoresPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leaderboard: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: submit: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= 300:
		return fmt.Errorf("leaderboard: submit: %s", statusError(resp))
	}
	return nil
}

// Top fetches up to n ranked entries.
func (c *Client) Top(ctx context.Context, n int) ([]Entry, error) {
	u := c.baseURL + ScoresPath + "?limit=" + strconv.Itoa(n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: fetch top: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard: fetch top: %s", statusError(resp))
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("leaderboard: decode top: %w", err)
	}
	return entries, nil
}

// Watch streams entries accepted by the server to fn until ctx is done
// or the connection drops.
func (c *Client) Watch(ctx context.Context, fn func(Entry)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	feedURL, err := c.feedURL()
	if err != nil {
		return err
	}

	conn, _, err := c.dialer.DialContext(ctx, feedURL, nil)
	if err != nil {
		return fmt.Errorf("leaderboard: dial feed: %w", err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("leaderboard: read feed: %w", err)
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			continue
		}
		fn(e)
	}
}

func (c *Client) feedURL() (string, error) {
	u, err := url.Parse(c.baseURL + FeedPath)
	if err != nil {
		return "", fmt.Errorf("leaderboard: parse url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	return u.String(), nil
}

func statusError(resp *http.Response) string {
	var body errorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		return fmt.Sprintf("%s: %s", resp.Status, body.Error)
	}
	return resp.Status
}
