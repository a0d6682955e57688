package rules

import (
	"fmt"
	"net/url"
)

// builtinCatalog returns rules shipped with the binary. These cover targets
// that cannot be expressed as a plain path template and therefore need a
// generator, plus a few template rules for sites the remote catalog tends to
// miss.
func builtinCatalog() Catalog {
	return Catalog{
		"youtube.com": RuleSet{
			"playlist": []Rule{{
				Title:    "Playlist",
				Sources:  []string{"/playlist"},
				Generate: youtubePlaylist,
			}},
		},
		"stackoverflow.com": RuleSet{
			"tag": []Rule{{
				Title:   "Questions tagged",
				Sources: []string{"/questions/tagged/:tag"},
				Target:  "/feeds/tag/:tag",
			}},
		},
		"lobste.rs": RuleSet{
			"tag": []Rule{{
				Title:   "Tag stories",
				Sources: []string{"/t/:tag"},
				Target:  "/t/:tag.rss",
			}},
		},
	}
}

// youtubePlaylist derives the videos feed for a playlist page. The playlist
// id lives in the query string, out of reach of path templates.
func youtubePlaylist(_ map[string]string, pageURL *url.URL, _ string) (string, error) {
	list := pageURL.Query().Get("list")
	if list == "" {
		return "", fmt.Errorf("playlist page without list parameter")
	}
	return "https://www.youtube.com/feeds/videos.xml?playlist_id=" + url.QueryEscape(list), nil
}
