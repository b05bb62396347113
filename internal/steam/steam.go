package steam

// Package-wide client and app list cache, initialized once from main.

var (
	DefaultClient *Client
	Apps          *AppListCache
)

// Init wires up the shared Steam client and its app list cache.
func Init(apiKey string) {
	DefaultClient = NewClient(apiKey)
	Apps = NewAppListCache(DefaultClient.GetAppList)
}
