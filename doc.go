/*
Package subsonic provides a client for media servers that implement the
Subsonic API, such as Subsonic, Airsonic, Navidrome and Gonic.

Create a client with New and call the method for the endpoint you need:

	c := subsonic.New("https://music.example.com", "admin", "secret")
	albums, err := c.GetAlbumList(ctx, subsonic.ListRandom, subsonic.SearchPage{Count: 10})

On the first request, the client negotiates the protocol version with the
server and picks the authentication scheme and endpoint variants that version
supports. Servers at 1.13.0 or later authenticate with a salted token, so the
password never travels on the wire; older servers fall back to plaintext
authentication. Servers below 1.8.0 are rejected.

Endpoints the client doesn't wrap can be reached through [Client.Call], which
returns the raw response envelope.
*/
package subsonic
