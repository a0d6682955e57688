package discover

import (
	"net/url"
	"strings"
)

// PlatformFunc is a fast-path extractor: a pure function deriving a feed URL
// from a page URL of a known platform, or reporting none.
type PlatformFunc func(u *url.URL) (title, feedURL string, ok bool)

// platformTable is the closed set of per-domain fast-path extractors, keyed
// by registrable domain. A hit here short-circuits the rule catalog.
func platformTable() map[string]PlatformFunc {
	return map[string]PlatformFunc{
		"youtube.com": youtubeFeed,
		"reddit.com":  redditFeed,
		"github.com":  githubFeed,
		"medium.com":  mediumFeed,
		"vimeo.com":   vimeoFeed,
	}
}

// pathSegments splits a URL path into non-empty segments
func pathSegments(u *url.URL) []string {
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// youtubeFeed handles channel and legacy user pages. Playlist pages are left
// to the rule catalog, their id lives in the query string.
func youtubeFeed(u *url.URL) (string, string, bool) {
	segs := pathSegments(u)
	if len(segs) < 2 {
		return "", "", false
	}
	switch segs[0] {
	case "channel":
		return "Channel videos", "https://www.youtube.com/feeds/videos.xml?channel_id=" + url.QueryEscape(segs[1]), true
	case "user":
		return "Channel videos", "https://www.youtube.com/feeds/videos.xml?user=" + url.QueryEscape(segs[1]), true
	}
	return "", "", false
}

// redditFeed maps subreddit pages to their native RSS endpoint
func redditFeed(u *url.URL) (string, string, bool) {
	segs := pathSegments(u)
	if len(segs) < 2 || segs[0] != "r" {
		return "", "", false
	}
	return "r/" + segs[1], "https://www.reddit.com/r/" + url.PathEscape(segs[1]) + "/.rss", true
}

// githubFeed maps profile pages to the user activity feed and repository
// pages to the releases feed
func githubFeed(u *url.URL) (string, string, bool) {
	segs := pathSegments(u)
	switch len(segs) {
	case 1:
		return segs[0] + " activity", "https://github.com/" + url.PathEscape(segs[0]) + ".atom", true
	case 2:
		return segs[0] + "/" + segs[1] + " releases",
			"https://github.com/" + url.PathEscape(segs[0]) + "/" + url.PathEscape(segs[1]) + "/releases.atom", true
	}
	return "", "", false
}

// mediumFeed maps author pages to the author feed
func mediumFeed(u *url.URL) (string, string, bool) {
	segs := pathSegments(u)
	if len(segs) < 1 || !strings.HasPrefix(segs[0], "@") {
		return "", "", false
	}
	return segs[0], "https://medium.com/feed/" + segs[0], true
}

// vimeoFeed maps user pages to the videos feed
func vimeoFeed(u *url.URL) (string, string, bool) {
	segs := pathSegments(u)
	if len(segs) < 1 {
		return "", "", false
	}
	return segs[0] + " videos", "https://vimeo.com/" + url.PathEscape(segs[0]) + "/videos/rss", true
}
