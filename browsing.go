package subsonic

import (
	"context"
	"net/url"
	"strconv"
)

// MusicFolder is a top-level music folder configured on the server.
type MusicFolder struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// Artist is an artist, organised by ID3 tags.
type Artist struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CoverArt   string  `json:"coverArt"`
	Starred    string  `json:"starred"`
	AlbumCount int     `json:"albumCount"`
	Album      []Album `json:"album"`
}

// Album is an album, organised by ID3 tags. Song is only populated when the
// album is retrieved directly through GetAlbum.
type Album struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	ArtistID  string `json:"artistId"`
	CoverArt  string `json:"coverArt"`
	Created   string `json:"created"`
	Genre     string `json:"genre"`
	Starred   string `json:"starred"`
	SongCount int    `json:"songCount"`
	Duration  int    `json:"duration"`
	PlayCount int64  `json:"playCount"`
	Year      int    `json:"year"`
	Song      []Song `json:"song"`
}

// Song is a single piece of music on the server.
type Song struct {
	ID                    string `json:"id"`
	Parent                string `json:"parent"`
	Title                 string `json:"title"`
	Album                 string `json:"album"`
	AlbumID               string `json:"albumId"`
	Artist                string `json:"artist"`
	ArtistID              string `json:"artistId"`
	Genre                 string `json:"genre"`
	CoverArt              string `json:"coverArt"`
	ContentType           string `json:"contentType"`
	Suffix                string `json:"suffix"`
	TranscodedContentType string `json:"transcodedContentType"`
	TranscodedSuffix      string `json:"transcodedSuffix"`
	Path                  string `json:"path"`
	Created               string `json:"created"`
	Starred               string `json:"starred"`
	Type                  string `json:"type"`
	Size                  int64  `json:"size"`
	PlayCount             int64  `json:"playCount"`
	Track                 int    `json:"track"`
	Year                  int    `json:"year"`
	Duration              int    `json:"duration"`
	BitRate               int    `json:"bitRate"`
	IsVideo               bool   `json:"isVideo"`
}

// Video is a video file on the server.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ContentType string `json:"contentType"`
	Suffix      string `json:"suffix"`
	Created     string `json:"created"`
	Size        int64  `json:"size"`
	Duration    int    `json:"duration"`
}

// Directory is a filesystem-organised directory of songs and subdirectories.
type Directory struct {
	ID      string `json:"id"`
	Parent  string `json:"parent"`
	Name    string `json:"name"`
	Starred string `json:"starred"`
	Child   []Song `json:"child"`
}

// Index is one alphabetical section of the artist index.
type Index struct {
	Name   string   `json:"name"`
	Artist []Artist `json:"artist"`
}

// Genre is a genre with its number of albums and songs.
type Genre struct {
	Name       string `json:"value"`
	SongCount  int    `json:"songCount"`
	AlbumCount int    `json:"albumCount"`
}

// ArtistInfo holds artist notes and references, typically sourced from last.fm.
type ArtistInfo struct {
	Biography      string   `json:"biography"`
	MusicBrainzID  string   `json:"musicBrainzId"`
	LastFMURL      string   `json:"lastFmUrl"`
	SmallImageURL  string   `json:"smallImageUrl"`
	MediumImageURL string   `json:"mediumImageUrl"`
	LargeImageURL  string   `json:"largeImageUrl"`
	SimilarArtist  []Artist `json:"similarArtist"`
}

// AlbumInfo holds album notes and references, typically sourced from last.fm.
type AlbumInfo struct {
	Notes          string `json:"notes"`
	MusicBrainzID  string `json:"musicBrainzId"`
	LastFMURL      string `json:"lastFmUrl"`
	SmallImageURL  string `json:"smallImageUrl"`
	MediumImageURL string `json:"mediumImageUrl"`
	LargeImageURL  string `json:"largeImageUrl"`
}

// Lyrics holds the lyrics for a song.
type Lyrics struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Text   string `json:"value"`
}

// NowPlaying is one entry in the server's now-playing list.
type NowPlaying struct {
	Song
	Username   string `json:"username"`
	PlayerName string `json:"playerName"`
	MinutesAgo int    `json:"minutesAgo"`
	PlayerID   int    `json:"playerId"`
}

// Starred holds all starred artists, albums and songs.
type Starred struct {
	Artist []Artist `json:"artist"`
	Album  []Album  `json:"album"`
	Song   []Song   `json:"song"`
}

// GetMusicFolders returns all configured top-level music folders.
func (c *Client) GetMusicFolders(ctx context.Context) ([]MusicFolder, error) {
	type response struct {
		MusicFolders struct {
			MusicFolder []MusicFolder `json:"musicFolder"`
		} `json:"musicFolders"`
	}
	resp, err := call[response](ctx, c, "getMusicFolders", nil)
	return resp.MusicFolders.MusicFolder, err
}

// GetIndexes returns the folder-organised index of artists. musicFolderID
// limits the index to one music folder; pass an empty string for all folders.
// Prefer GetArtists, which organises by ID3 tags.
func (c *Client) GetIndexes(ctx context.Context, musicFolderID string) ([]Index, error) {
	type response struct {
		Indexes struct {
			Index []Index `json:"index"`
		} `json:"indexes"`
	}
	q := make(url.Values)
	if musicFolderID != "" {
		q.Set("musicFolderId", musicFolderID)
	}
	resp, err := call[response](ctx, c, "getIndexes", q)
	return resp.Indexes.Index, err
}

// GetMusicDirectory returns a directory's songs and subdirectories.
func (c *Client) GetMusicDirectory(ctx context.Context, id string) (Directory, error) {
	type response struct {
		Directory Directory `json:"directory"`
	}
	resp, err := call[response](ctx, c, "getMusicDirectory", url.Values{"id": {id}})
	return resp.Directory, err
}

// GetGenres returns all genres on the server.
func (c *Client) GetGenres(ctx context.Context) ([]Genre, error) {
	type response struct {
		Genres struct {
			Genre []Genre `json:"genre"`
		} `json:"genres"`
	}
	resp, err := call[response](ctx, c, "getGenres", nil)
	return resp.Genres.Genre, err
}

// GetArtists returns the ID3-organised index of all artists.
func (c *Client) GetArtists(ctx context.Context) ([]Index, error) {
	type response struct {
		Artists struct {
			Index []Index `json:"index"`
		} `json:"artists"`
	}
	resp, err := call[response](ctx, c, "getArtists", nil)
	return resp.Artists.Index, err
}

// GetArtist returns an artist with its albums.
func (c *Client) GetArtist(ctx context.Context, id string) (Artist, error) {
	type response struct {
		Artist Artist `json:"artist"`
	}
	resp, err := call[response](ctx, c, "getArtist", url.Values{"id": {id}})
	return resp.Artist, err
}

// GetAlbum returns an album with its songs.
func (c *Client) GetAlbum(ctx context.Context, id string) (Album, error) {
	type response struct {
		Album Album `json:"album"`
	}
	resp, err := call[response](ctx, c, "getAlbum", url.Values{"id": {id}})
	return resp.Album, err
}

// GetSong returns a single song.
func (c *Client) GetSong(ctx context.Context, id string) (Song, error) {
	type response struct {
		Song Song `json:"song"`
	}
	resp, err := call[response](ctx, c, "getSong", url.Values{"id": {id}})
	return resp.Song, err
}

// GetVideos returns all video files on the server.
func (c *Client) GetVideos(ctx context.Context) ([]Video, error) {
	type response struct {
		Videos struct {
			Video []Video `json:"video"`
		} `json:"videos"`
	}
	resp, err := call[response](ctx, c, "getVideos", nil)
	return resp.Videos.Video, err
}

// GetArtistInfo returns notes and similar artists for an artist. count limits
// the number of similar artists; 0 uses the server default.
func (c *Client) GetArtistInfo(ctx context.Context, id string, count int) (ArtistInfo, error) {
	type response struct {
		ArtistInfo  ArtistInfo `json:"artistInfo"`
		ArtistInfo2 ArtistInfo `json:"artistInfo2"`
	}
	q := url.Values{"id": {id}}
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}
	resp, err := call[response](ctx, c, "getArtistInfo", q)
	if resp.ArtistInfo2.LastFMURL != "" || resp.ArtistInfo2.Biography != "" || len(resp.ArtistInfo2.SimilarArtist) > 0 {
		return resp.ArtistInfo2, err
	}
	return resp.ArtistInfo, err
}

// GetAlbumInfo returns notes and references for an album.
func (c *Client) GetAlbumInfo(ctx context.Context, id string) (AlbumInfo, error) {
	type response struct {
		AlbumInfo AlbumInfo `json:"albumInfo"`
	}
	resp, err := call[response](ctx, c, "getAlbumInfo", url.Values{"id": {id}})
	return resp.AlbumInfo, err
}

// GetSimilarSongs returns random songs similar to a given song, artist or
// album. count limits the result; 0 uses the server default.
func (c *Client) GetSimilarSongs(ctx context.Context, id string, count int) ([]Song, error) {
	type response struct {
		SimilarSongs struct {
			Song []Song `json:"song"`
		} `json:"similarSongs"`
		SimilarSongs2 struct {
			Song []Song `json:"song"`
		} `json:"similarSongs2"`
	}
	q := url.Values{"id": {id}}
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}
	resp, err := call[response](ctx, c, "getSimilarSongs", q)
	if len(resp.SimilarSongs2.Song) > 0 {
		return resp.SimilarSongs2.Song, err
	}
	return resp.SimilarSongs.Song, err
}

// GetTopSongs returns an artist's most played songs, as reported by last.fm.
// Requires server version 1.13.0.
func (c *Client) GetTopSongs(ctx context.Context, artist string, count int) ([]Song, error) {
	type response struct {
		TopSongs struct {
			Song []Song `json:"song"`
		} `json:"topSongs"`
	}
	q := url.Values{"artist": {artist}}
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}
	resp, err := call[response](ctx, c, "getTopSongs", q)
	return resp.TopSongs.Song, err
}

// GetLyrics searches for lyrics matching the given artist and song title.
func (c *Client) GetLyrics(ctx context.Context, artist, title string) (Lyrics, error) {
	type response struct {
		Lyrics Lyrics `json:"lyrics"`
	}
	q := make(url.Values)
	if artist != "" {
		q.Set("artist", artist)
	}
	if title != "" {
		q.Set("title", title)
	}
	resp, err := call[response](ctx, c, "getLyrics", q)
	return resp.Lyrics, err
}

// GetNowPlaying returns all media currently being played on the server.
func (c *Client) GetNowPlaying(ctx context.Context) ([]NowPlaying, error) {
	type response struct {
		NowPlaying struct {
			Entry []NowPlaying `json:"entry"`
		} `json:"nowPlaying"`
	}
	resp, err := call[response](ctx, c, "getNowPlaying", nil)
	return resp.NowPlaying.Entry, err
}

// GetStarred returns all starred artists, albums and songs.
func (c *Client) GetStarred(ctx context.Context) (Starred, error) {
	type response struct {
		Starred  Starred `json:"starred"`
		Starred2 Starred `json:"starred2"`
	}
	resp, err := call[response](ctx, c, "getStarred", nil)
	if len(resp.Starred2.Artist) > 0 || len(resp.Starred2.Album) > 0 || len(resp.Starred2.Song) > 0 {
		return resp.Starred2, err
	}
	return resp.Starred, err
}
