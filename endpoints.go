package subsonic

// endpoint describes one logical operation of the Subsonic API: the endpoint
// that serves it, the minimum protocol version that endpoint requires, and an
// optional ID3-organised alternate that is preferred whenever the negotiated
// version allows it.
type endpoint struct {
	// name is the primary endpoint, and doubles as the logical operation name.
	name       string
	minVersion Version
	// alt is the ID3-organised (or otherwise preferred) alternate endpoint.
	alt           string
	altMinVersion Version
	// required lists parameters that must be present. Requests missing any of
	// them fail locally, before a network call.
	required []string
	// mutates marks operations that change server state. These are sent as
	// POST and never retried automatically.
	mutates bool
}

// resolve picks the concrete endpoint for the negotiated version, preferring
// the alternate when available.
func (e endpoint) resolve(v Version) (string, error) {
	if e.alt != "" && v.AtLeast(e.altMinVersion) {
		return e.alt, nil
	}
	if v.AtLeast(e.minVersion) {
		return e.name, nil
	}
	return "", &UnsupportedVersionError{Endpoint: e.name, Version: v, Required: e.minVersion}
}

// endpoints is the catalog of supported operations, keyed by logical name.
// Version requirements follow the official API documentation.
var endpoints = map[string]endpoint{
	// system
	"ping":          {name: "ping", minVersion: Version{1, 0, 0}},
	"getLicense":    {name: "getLicense", minVersion: Version{1, 0, 0}},
	"startScan":     {name: "startScan", minVersion: Version{1, 15, 0}, mutates: true},
	"getScanStatus": {name: "getScanStatus", minVersion: Version{1, 15, 0}},

	// browsing
	"getMusicFolders":   {name: "getMusicFolders", minVersion: Version{1, 0, 0}},
	"getIndexes":        {name: "getIndexes", minVersion: Version{1, 0, 0}},
	"getMusicDirectory": {name: "getMusicDirectory", minVersion: Version{1, 0, 0}, required: []string{"id"}},
	"getGenres":         {name: "getGenres", minVersion: Version{1, 9, 0}},
	"getArtists":        {name: "getArtists", minVersion: Version{1, 8, 0}},
	"getArtist":         {name: "getArtist", minVersion: Version{1, 8, 0}, required: []string{"id"}},
	"getAlbum":          {name: "getAlbum", minVersion: Version{1, 8, 0}, required: []string{"id"}},
	"getSong":           {name: "getSong", minVersion: Version{1, 8, 0}, required: []string{"id"}},
	"getVideos":         {name: "getVideos", minVersion: Version{1, 8, 0}},
	"getArtistInfo":     {name: "getArtistInfo", minVersion: Version{1, 11, 0}, alt: "getArtistInfo2", altMinVersion: Version{1, 11, 0}, required: []string{"id"}},
	"getAlbumInfo":      {name: "getAlbumInfo", minVersion: Version{1, 14, 0}, alt: "getAlbumInfo2", altMinVersion: Version{1, 14, 0}, required: []string{"id"}},
	"getSimilarSongs":   {name: "getSimilarSongs", minVersion: Version{1, 11, 0}, alt: "getSimilarSongs2", altMinVersion: Version{1, 11, 0}, required: []string{"id"}},
	"getTopSongs":       {name: "getTopSongs", minVersion: Version{1, 13, 0}, required: []string{"artist"}},
	"getLyrics":         {name: "getLyrics", minVersion: Version{1, 2, 0}},
	"getNowPlaying":     {name: "getNowPlaying", minVersion: Version{1, 0, 0}},
	"getStarred":        {name: "getStarred", minVersion: Version{1, 8, 0}, alt: "getStarred2", altMinVersion: Version{1, 8, 0}},

	// album/song lists
	"getAlbumList":    {name: "getAlbumList", minVersion: Version{1, 2, 0}, alt: "getAlbumList2", altMinVersion: Version{1, 8, 0}, required: []string{"type"}},
	"getRandomSongs":  {name: "getRandomSongs", minVersion: Version{1, 2, 0}},
	"getSongsByGenre": {name: "getSongsByGenre", minVersion: Version{1, 9, 0}, required: []string{"genre"}},

	// searching
	"search": {name: "search2", minVersion: Version{1, 4, 0}, alt: "search3", altMinVersion: Version{1, 8, 0}, required: []string{"query"}},

	// playlists
	"getPlaylists":   {name: "getPlaylists", minVersion: Version{1, 0, 0}},
	"getPlaylist":    {name: "getPlaylist", minVersion: Version{1, 0, 0}, required: []string{"id"}},
	"createPlaylist": {name: "createPlaylist", minVersion: Version{1, 2, 0}, required: []string{"name"}, mutates: true},
	"updatePlaylist": {name: "updatePlaylist", minVersion: Version{1, 8, 0}, required: []string{"playlistId"}, mutates: true},
	"deletePlaylist": {name: "deletePlaylist", minVersion: Version{1, 2, 0}, required: []string{"id"}, mutates: true},

	// media retrieval
	"stream":      {name: "stream", minVersion: Version{1, 0, 0}, required: []string{"id"}},
	"download":    {name: "download", minVersion: Version{1, 0, 0}, required: []string{"id"}},
	"hls":         {name: "hls", minVersion: Version{1, 8, 0}, required: []string{"id"}},
	"getCoverArt": {name: "getCoverArt", minVersion: Version{1, 0, 0}, required: []string{"id"}},

	// media annotation
	"star":      {name: "star", minVersion: Version{1, 8, 0}, mutates: true},
	"unstar":    {name: "unstar", minVersion: Version{1, 8, 0}, mutates: true},
	"setRating": {name: "setRating", minVersion: Version{1, 6, 0}, required: []string{"id", "rating"}, mutates: true},
	"scrobble":  {name: "scrobble", minVersion: Version{1, 5, 0}, required: []string{"id"}, mutates: true},

	// jukebox
	"jukeboxControl": {name: "jukeboxControl", minVersion: Version{1, 2, 0}, required: []string{"action"}, mutates: true},

	// podcasts
	"getPodcasts":            {name: "getPodcasts", minVersion: Version{1, 6, 0}},
	"getNewestPodcasts":      {name: "getNewestPodcasts", minVersion: Version{1, 13, 0}},
	"refreshPodcasts":        {name: "refreshPodcasts", minVersion: Version{1, 9, 0}, mutates: true},
	"createPodcastChannel":   {name: "createPodcastChannel", minVersion: Version{1, 9, 0}, required: []string{"url"}, mutates: true},
	"deletePodcastChannel":   {name: "deletePodcastChannel", minVersion: Version{1, 9, 0}, required: []string{"id"}, mutates: true},
	"downloadPodcastEpisode": {name: "downloadPodcastEpisode", minVersion: Version{1, 9, 0}, required: []string{"id"}, mutates: true},
	"deletePodcastEpisode":   {name: "deletePodcastEpisode", minVersion: Version{1, 9, 0}, required: []string{"id"}, mutates: true},

	// internet radio
	"getInternetRadioStations":   {name: "getInternetRadioStations", minVersion: Version{1, 9, 0}},
	"createInternetRadioStation": {name: "createInternetRadioStation", minVersion: Version{1, 16, 0}, required: []string{"streamUrl", "name"}, mutates: true},
	"updateInternetRadioStation": {name: "updateInternetRadioStation", minVersion: Version{1, 16, 0}, required: []string{"id", "streamUrl", "name"}, mutates: true},
	"deleteInternetRadioStation": {name: "deleteInternetRadioStation", minVersion: Version{1, 16, 0}, required: []string{"id"}, mutates: true},

	// sharing
	"getShares":   {name: "getShares", minVersion: Version{1, 6, 0}},
	"createShare": {name: "createShare", minVersion: Version{1, 6, 0}, required: []string{"id"}, mutates: true},
	"updateShare": {name: "updateShare", minVersion: Version{1, 6, 0}, required: []string{"id"}, mutates: true},
	"deleteShare": {name: "deleteShare", minVersion: Version{1, 6, 0}, required: []string{"id"}, mutates: true},

	// bookmarks
	"getBookmarks":   {name: "getBookmarks", minVersion: Version{1, 9, 0}},
	"createBookmark": {name: "createBookmark", minVersion: Version{1, 9, 0}, required: []string{"id", "position"}, mutates: true},
	"deleteBookmark": {name: "deleteBookmark", minVersion: Version{1, 9, 0}, required: []string{"id"}, mutates: true},
	"getPlayQueue":   {name: "getPlayQueue", minVersion: Version{1, 12, 0}},
	"savePlayQueue":  {name: "savePlayQueue", minVersion: Version{1, 12, 0}, required: []string{"id"}, mutates: true},

	// chat
	"getChatMessages": {name: "getChatMessages", minVersion: Version{1, 2, 0}},
	"addChatMessage":  {name: "addChatMessage", minVersion: Version{1, 2, 0}, required: []string{"message"}, mutates: true},

	// user management
	"getUser":        {name: "getUser", minVersion: Version{1, 3, 0}, required: []string{"username"}},
	"getUsers":       {name: "getUsers", minVersion: Version{1, 8, 0}},
	"createUser":     {name: "createUser", minVersion: Version{1, 1, 0}, required: []string{"username", "password", "email"}, mutates: true},
	"updateUser":     {name: "updateUser", minVersion: Version{1, 10, 2}, required: []string{"username"}, mutates: true},
	"deleteUser":     {name: "deleteUser", minVersion: Version{1, 3, 0}, required: []string{"username"}, mutates: true},
	"changePassword": {name: "changePassword", minVersion: Version{1, 1, 0}, required: []string{"username", "password"}, mutates: true},
}
