package timeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// #region remote

const hydrateTimeout = 5 * time.Second

// Hydrate fetches a session timeline from the external analytics API,
// falling back to the local store when the API is unreachable, errors, or
// returns nothing. A malformed response body counts as empty, not as an
// error: the debrief view degrades to local data rather than failing.
func Hydrate(ctx context.Context, apiBaseURL, sessionID string, fallback Store) []Entry {
	if entries := fetchRemote(ctx, apiBaseURL, sessionID); len(entries) > 0 {
		return entries
	}
	if fallback == nil {
		return nil
	}
	entries, err := fallback.ReadAll(sessionID)
	if err != nil {
		return nil
	}
	return entries
}

// fetchRemote queries GET <base>/api/timeline/<sessionID>.
func fetchRemote(ctx context.Context, apiBaseURL, sessionID string) []Entry {
	if apiBaseURL == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, hydrateTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/api/timeline/%s", apiBaseURL, sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}
	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil
	}
	return entries
}

// #endregion remote
