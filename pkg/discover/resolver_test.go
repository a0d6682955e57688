package discover

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedclip/feedclip/pkg/domain"
	"github.com/feedclip/feedclip/pkg/rules"
)

func TestResolver_Resolve_Rules(t *testing.T) {
	catalog := rules.Catalog{
		"example.com": rules.RuleSet{
			"user": []rules.Rule{{
				Title:   "User feed",
				Sources: []string{"/user/:id"},
				Target:  "/feed/:id",
			}},
		},
	}
	resolver := New()

	t.Run("template target resolved", func(t *testing.T) {
		got := resolver.Resolve("https://example.com/user/42", nil, catalog)
		require.Len(t, got, 1)
		assert.Equal(t, "https://example.com/feed/42", got[0].URL)
		assert.Equal(t, "User feed", got[0].Title)
		assert.Equal(t, domain.KindRule, got[0].Kind)
	})

	t.Run("query and fragment do not break template match", func(t *testing.T) {
		got := resolver.Resolve("https://example.com/user/42?tab=posts#top", nil, catalog)
		require.Len(t, got, 1)
		assert.Equal(t, "https://example.com/feed/42", got[0].URL)
	})

	t.Run("subdomain falls back to registrable domain rules", func(t *testing.T) {
		got := resolver.Resolve("https://blog.example.com/user/7", nil, catalog)
		require.Len(t, got, 1)
		assert.Equal(t, "https://blog.example.com/feed/7", got[0].URL)
	})

	t.Run("no rule match yields empty list", func(t *testing.T) {
		got := resolver.Resolve("https://example.com/about", nil, catalog)
		assert.Empty(t, got)
	})

	t.Run("invalid page url yields empty list", func(t *testing.T) {
		got := resolver.Resolve("::not-a-url", nil, catalog)
		assert.Empty(t, got)
	})

	t.Run("insecure page scheme discards relative targets", func(t *testing.T) {
		got := resolver.Resolve("http://example.com/user/42", nil, catalog)
		assert.Empty(t, got)
	})

	t.Run("unresolved placeholder in target discards candidate", func(t *testing.T) {
		bad := rules.Catalog{"example.com": rules.RuleSet{
			"broken": []rules.Rule{{Sources: []string{"/user/:id"}, Target: "/feed/:other"}},
		}}
		got := resolver.Resolve("https://example.com/user/42", nil, bad)
		assert.Empty(t, got)
	})

	t.Run("malformed template skipped, other rules still apply", func(t *testing.T) {
		mixed := rules.Catalog{"example.com": rules.RuleSet{
			"a": []rules.Rule{{Sources: []string{"/user/:id("}, Target: "/x/:id"}},
			"b": []rules.Rule{{Title: "ok", Sources: []string{"/user/:id"}, Target: "/feed/:id"}},
		}}
		got := resolver.Resolve("https://example.com/user/42", nil, mixed)
		require.Len(t, got, 1)
		assert.Equal(t, "https://example.com/feed/42", got[0].URL)
	})
}

func TestResolver_Resolve_Generators(t *testing.T) {
	resolver := New()

	t.Run("generator builds target from query", func(t *testing.T) {
		catalog := rules.Catalog{"example.com": rules.RuleSet{
			"playlist": []rules.Rule{{
				Title:   "Playlist",
				Sources: []string{"/playlist"},
				Generate: func(_ map[string]string, u *url.URL, _ string) (string, error) {
					list := u.Query().Get("list")
					if list == "" {
						return "", fmt.Errorf("no list parameter")
					}
					return "https://example.com/feeds/playlist/" + list, nil
				},
			}},
		}}

		got := resolver.Resolve("https://example.com/playlist?list=PL123", nil, catalog)
		require.Len(t, got, 1)
		assert.Equal(t, "https://example.com/feeds/playlist/PL123", got[0].URL)

		// missing required query parameter yields no candidate
		got = resolver.Resolve("https://example.com/playlist", nil, catalog)
		assert.Empty(t, got)
	})

	t.Run("panicking generator is skipped", func(t *testing.T) {
		catalog := rules.Catalog{"example.com": rules.RuleSet{
			"a": []rules.Rule{{
				Sources:  []string{"*"},
				Generate: func(map[string]string, *url.URL, string) (string, error) { panic("boom") },
			}},
			"b": []rules.Rule{{Title: "ok", Sources: []string{"/user/:id"}, Target: "/feed/:id"}},
		}}
		got := resolver.Resolve("https://example.com/user/1", nil, catalog)
		require.Len(t, got, 1)
		assert.Equal(t, "https://example.com/feed/1", got[0].URL)
	})
}

func TestResolver_Resolve_Platforms(t *testing.T) {
	resolver := New()
	catalog := rules.Catalog{"youtube.com": rules.RuleSet{
		"never": []rules.Rule{{Sources: []string{"*"}, Target: "/should/not/appear"}},
	}}

	t.Run("platform hit short-circuits catalog", func(t *testing.T) {
		got := resolver.Resolve("https://www.youtube.com/channel/UCabc", nil, catalog)
		require.Len(t, got, 1)
		assert.Equal(t, "https://www.youtube.com/feeds/videos.xml?channel_id=UCabc", got[0].URL)
		assert.Equal(t, domain.KindPlatform, got[0].Kind)
	})

	t.Run("platform miss falls back to catalog", func(t *testing.T) {
		got := resolver.Resolve("https://www.youtube.com/playlist?list=x", nil, catalog)
		require.Len(t, got, 1)
		assert.Equal(t, domain.KindRule, got[0].Kind)
	})

	t.Run("github profile", func(t *testing.T) {
		got := resolver.Resolve("https://github.com/alice", nil, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "https://github.com/alice.atom", got[0].URL)
	})

	t.Run("reddit subreddit", func(t *testing.T) {
		got := resolver.Resolve("https://www.reddit.com/r/golang/", nil, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "https://www.reddit.com/r/golang/.rss", got[0].URL)
	})
}

func TestResolver_Resolve_DetectedAndDedup(t *testing.T) {
	resolver := New()
	catalog := rules.Catalog{"example.com": rules.RuleSet{
		"user": []rules.Rule{{Title: "User feed", Sources: []string{"/user/:id"}, Target: "/feed/:id"}},
	}}

	detected := []domain.FeedCandidate{
		{Title: "Native", URL: "https://example.com/feed/42"},
		{Title: "Other", URL: "https://example.com/other.xml"},
	}

	got := resolver.Resolve("https://example.com/user/42", detected, catalog)
	require.Len(t, got, 2)

	// detected feeds come first and win on URL collisions
	assert.Equal(t, "https://example.com/feed/42", got[0].URL)
	assert.Equal(t, domain.KindStandard, got[0].Kind)
	assert.Equal(t, "Native", got[0].Title)
	assert.Equal(t, "https://example.com/other.xml", got[1].URL)
}
