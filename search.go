package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// SearchPage selects a window of a paged result set.
//
// Most search and list endpoints return at most 500 results per request;
// advance Offset to page through larger result sets.
type SearchPage struct {
	// Count is the maximum number of results to return. Zero uses the
	// server's default (20 for most endpoints).
	Count int
	// Offset is the number of results to skip.
	Offset int
}

// AllResults requests the largest page most endpoints will serve.
var AllResults = SearchPage{Count: 500}

// SearchResult holds the artists, albums and songs matching a search.
type SearchResult struct {
	Artists []Artist `json:"artist"`
	Albums  []Album  `json:"album"`
	Songs   []Song   `json:"song"`
}

// Search returns artists, albums and songs matching the given search
// criteria, organised by ID3 tags. Each category pages independently; a zero
// SearchPage uses the server defaults.
func (c *Client) Search(ctx context.Context, query string, artists, albums, songs SearchPage) (SearchResult, error) {
	type response struct {
		SearchResult2 SearchResult `json:"searchResult2"`
		SearchResult3 SearchResult `json:"searchResult3"`
	}
	q := url.Values{"query": {query}}
	artists.apply(q, "artist")
	albums.apply(q, "album")
	songs.apply(q, "song")
	resp, err := call[response](ctx, c, "search", q)
	if len(resp.SearchResult3.Artists) > 0 || len(resp.SearchResult3.Albums) > 0 || len(resp.SearchResult3.Songs) > 0 {
		return resp.SearchResult3, err
	}
	return resp.SearchResult2, err
}

func (p SearchPage) apply(q url.Values, category string) {
	if p.Count > 0 {
		q.Set(category+"Count", strconv.Itoa(p.Count))
	}
	if p.Offset > 0 {
		q.Set(category+"Offset", strconv.Itoa(p.Offset))
	}
}
