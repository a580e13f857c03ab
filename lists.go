package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// ListType selects the ordering of an album list.
type ListType string

const (
	ListRandom               ListType = "random"
	ListNewest               ListType = "newest"
	ListHighest              ListType = "highest"
	ListFrequent             ListType = "frequent"
	ListRecent               ListType = "recent"
	ListAlphabeticalByName   ListType = "alphabeticalByName"
	ListAlphabeticalByArtist ListType = "alphabeticalByArtist"
	ListStarred              ListType = "starred"
	ListByYear               ListType = "byYear"
	ListByGenre              ListType = "byGenre"
)

type albumListResponse struct {
	AlbumList struct {
		Album []Album `json:"album"`
	} `json:"albumList"`
	AlbumList2 struct {
		Album []Album `json:"album"`
	} `json:"albumList2"`
}

func (r albumListResponse) albums() []Album {
	if len(r.AlbumList2.Album) > 0 {
		return r.AlbumList2.Album
	}
	return r.AlbumList.Album
}

// GetAlbumList returns a list of albums in the given order, organised by ID3
// tags.
//
// For ListByYear and ListByGenre, use GetAlbumListByYear and
// GetAlbumListByGenre, which take the extra parameters those orderings
// require.
func (c *Client) GetAlbumList(ctx context.Context, listType ListType, page SearchPage) ([]Album, error) {
	return c.albumList(ctx, listType, page, nil)
}

// GetAlbumListByYear returns albums released between fromYear and toYear,
// inclusive. Reversing the two years reverses the sort order.
func (c *Client) GetAlbumListByYear(ctx context.Context, fromYear, toYear int, page SearchPage) ([]Album, error) {
	return c.albumList(ctx, ListByYear, page, url.Values{
		"fromYear": {strconv.Itoa(fromYear)},
		"toYear":   {strconv.Itoa(toYear)},
	})
}

// GetAlbumListByGenre returns albums in the given genre.
func (c *Client) GetAlbumListByGenre(ctx context.Context, genre string, page SearchPage) ([]Album, error) {
	return c.albumList(ctx, ListByGenre, page, url.Values{"genre": {genre}})
}

func (c *Client) albumList(ctx context.Context, listType ListType, page SearchPage, extra url.Values) ([]Album, error) {
	q := url.Values{"type": {string(listType)}}
	for key, values := range extra {
		q[key] = values
	}
	if page.Count > 0 {
		q.Set("size", strconv.Itoa(page.Count))
	}
	if page.Offset > 0 {
		q.Set("offset", strconv.Itoa(page.Offset))
	}
	resp, err := call[albumListResponse](ctx, c, "getAlbumList", q)
	return resp.albums(), err
}

// GetRandomSongs returns random songs matching the given criteria. size
// limits the number of songs (the server default is 10); genre or fromYear /
// toYear may be zero to disable the filter.
func (c *Client) GetRandomSongs(ctx context.Context, size int, genre string, fromYear, toYear int) ([]Song, error) {
	type response struct {
		RandomSongs struct {
			Song []Song `json:"song"`
		} `json:"randomSongs"`
	}
	q := make(url.Values)
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	if genre != "" {
		q.Set("genre", genre)
	}
	if fromYear > 0 {
		q.Set("fromYear", strconv.Itoa(fromYear))
	}
	if toYear > 0 {
		q.Set("toYear", strconv.Itoa(toYear))
	}
	resp, err := call[response](ctx, c, "getRandomSongs", q)
	return resp.RandomSongs.Song, err
}

// GetSongsByGenre returns songs in the given genre.
func (c *Client) GetSongsByGenre(ctx context.Context, genre string, page SearchPage) ([]Song, error) {
	type response struct {
		SongsByGenre struct {
			Song []Song `json:"song"`
		} `json:"songsByGenre"`
	}
	q := url.Values{"genre": {genre}}
	if page.Count > 0 {
		q.Set("count", strconv.Itoa(page.Count))
	}
	if page.Offset > 0 {
		q.Set("offset", strconv.Itoa(page.Offset))
	}
	resp, err := call[response](ctx, c, "getSongsByGenre", q)
	return resp.SongsByGenre.Song, err
}
