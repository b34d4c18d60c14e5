package contentchat

import (
	"net/url"
	"strings"
)

// SourceKind distinguishes what kind of content is loaded.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceWebpage
	SourceVideo
)

func (k SourceKind) String() string {
	switch k {
	case SourceWebpage:
		return "webpage"
	case SourceVideo:
		return "video"
	default:
		return "none"
	}
}

var videoHosts = map[string]bool{
	"youtube.com":       true,
	"www.youtube.com":   true,
	"m.youtube.com":     true,
	"music.youtube.com": true,
}

// ClassifyLocator decides whether a locator names a video or a webpage.
// Only a strict allow-list of YouTube URL shapes counts as a video:
// watch?v=, youtu.be/<id>, /shorts/<id>, /embed/<id>, /live/<id>.
// Everything else is fetched as a webpage instead of guessing a video
// ID from the last path segment. A URL that matches a video host but
// yields no ID fails with ErrLocatorUnparseable.
func ClassifyLocator(locator string) (SourceKind, string, error) {
	raw := locator
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return SourceWebpage, "", nil
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case host == "youtu.be":
		id := firstPathSegment(u.Path)
		if !validVideoID(id) {
			return SourceVideo, "", ErrLocatorUnparseable
		}
		return SourceVideo, id, nil

	case videoHosts[host]:
		if strings.HasPrefix(u.Path, "/watch") {
			id := u.Query().Get("v")
			if !validVideoID(id) {
				return SourceVideo, "", ErrLocatorUnparseable
			}
			return SourceVideo, id, nil
		}
		for _, prefix := range []string{"/shorts/", "/embed/", "/live/"} {
			if strings.HasPrefix(u.Path, prefix) {
				id := firstPathSegment(strings.TrimPrefix(u.Path, prefix))
				if !validVideoID(id) {
					return SourceVideo, "", ErrLocatorUnparseable
				}
				return SourceVideo, id, nil
			}
		}
		// A YouTube host without a recognized video path (channel
		// pages, playlists, the homepage) is still a webpage.
		return SourceWebpage, "", nil

	default:
		return SourceWebpage, "", nil
	}
}

func firstPathSegment(p string) string {
	p = strings.Trim(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

func validVideoID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
