package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	appListURL    = "https://api.steampowered.com/ISteamApps/GetAppList/v2/"
	appDetailsURL = "https://store.steampowered.com/api/appdetails"
)

// ErrAppNotFound is returned when Steam has no details for the requested app.
var ErrAppNotFound = errors.New("steam app not found")

// Client talks to the Steam Web API.
type Client struct {
	apiKey string
	client *http.Client

	// Endpoint URLs, swappable in tests.
	AppListURL    string
	AppDetailsURL string
}

// NewClient creates a Steam API client with the given credential.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:        apiKey,
		client:        &http.Client{Timeout: 10 * time.Second},
		AppListURL:    appListURL,
		AppDetailsURL: appDetailsURL,
	}
}

// AppEntry is one id/name pair from the full Steam app list.
type AppEntry struct {
	AppID uint   `json:"appid"`
	Name  string `json:"name"`
}

type appListResponse struct {
	AppList struct {
		Apps []AppEntry `json:"apps"`
	} `json:"applist"`
}

// GetAppList fetches the complete Steam app catalog. The list is large
// (tens of thousands of entries) and carries only ids and names.
func (c *Client) GetAppList(ctx context.Context) ([]AppEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.AppListURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("steam app list request failed: %s", resp.Status)
	}

	var out appListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	return out.AppList.Apps, nil
}

// ReleaseDate is the release information of a Steam app.
type ReleaseDate struct {
	ComingSoon bool   `json:"coming_soon"`
	Date       string `json:"date"`
}

// AppDetails is the rich metadata Steam serves for a single app.
type AppDetails struct {
	SteamAppID       uint        `json:"steam_appid"`
	Name             string      `json:"name"`
	ShortDescription string      `json:"short_description"`
	HeaderImage      string      `json:"header_image"`
	Developers       []string    `json:"developers"`
	Publishers       []string    `json:"publishers"`
	ReleaseDate      ReleaseDate `json:"release_date"`
}

type appDetailsEntry struct {
	Success bool       `json:"success"`
	Data    AppDetails `json:"data"`
}

// GetAppDetails fetches store details for one app. Steam wraps the payload
// in an object keyed by the app id, with a success flag per entry.
func (c *Client) GetAppDetails(ctx context.Context, appID uint) (*AppDetails, error) {
	id := strconv.FormatUint(uint64(appID), 10)

	u, err := url.Parse(c.AppDetailsURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("appids", id)
	q.Set("key", c.apiKey)
	q.Set("l", "korean")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("steam app details request failed for appid %s: %s", id, resp.Status)
	}

	var out map[string]appDetailsEntry
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	entry, ok := out[id]
	if !ok || !entry.Success {
		return nil, ErrAppNotFound
	}

	return &entry.Data, nil
}
