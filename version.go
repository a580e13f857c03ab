package subsonic

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Version is a Subsonic API protocol version, as reported by the server and
// advertised by the client.
type Version struct {
	Major int
	Minor int
	Patch int
}

var (
	// versionFloor is the oldest protocol version the library supports. 1.8.0
	// introduced ID3-organised browsing, which most of the library depends on.
	versionFloor = Version{1, 8, 0}
	// versionTarget is the protocol version the library implements in full.
	// Newer servers are supported on a best-effort basis.
	versionTarget = Version{1, 16, 0}
	// versionTokenAuth is the first version to support salted token authentication.
	versionTokenAuth = Version{1, 13, 0}
)

// ParseVersion parses a version string as reported by a Subsonic server.
// Missing components default to zero, so "1.12" parses as 1.12.0.
func ParseVersion(s string) (Version, error) {
	var version Version
	parts := strings.SplitN(strings.TrimSpace(s), ".", 4)
	targets := []*int{&version.Major, &version.Minor, &version.Patch}
	if len(parts) > len(targets) {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil || value < 0 {
			return Version{}, fmt.Errorf("invalid version %q", s)
		}
		*targets[i] = value
	}
	return version, nil
}

// String returns the version in "major.minor.patch" form, i.e. the format of
// the "v" request parameter.
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
}

// Compare returns -1, 0 or 1 depending on whether v is older than, equal to,
// or newer than o. Components compare numerically, not lexicographically.
func (v Version) Compare(o Version) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, o.Patch)
}

// AtLeast reports whether v is equal to or newer than o.
func (v Version) AtLeast(o Version) bool {
	return v.Compare(o) >= 0
}
