// Package badge derives the small indicator state shown next to the
// current page: new subscribable feeds win over the unread counter.
package badge

import "github.com/feedclip/feedclip/pkg/domain"

// Kind is the visual state of the badge
type Kind string

// badge kinds
const (
	KindNone     Kind = "none"
	KindNewFeeds Kind = "new-feeds"
	KindUnread   Kind = "unread"
)

// State is the derived badge for one page view
type State struct {
	Kind  Kind
	Count int // meaningful only for KindUnread
}

// Derive computes the badge from the feeds detected on the current page, the
// subscription set and the unread count of feed-sourced articles. Pure
// function; the caller re-runs it on tab switches, navigation, subscription
// changes and ingestion completion.
func Derive(detected []domain.FeedCandidate, subs []domain.Subscription, unreadFeedArticles int) State {
	subscribed := make(map[string]bool, len(subs))
	for _, s := range subs {
		subscribed[s.URL] = true
	}

	for _, d := range detected {
		if d.URL != "" && !subscribed[d.URL] {
			return State{Kind: KindNewFeeds}
		}
	}

	if unreadFeedArticles > 0 {
		return State{Kind: KindUnread, Count: unreadFeedArticles}
	}
	return State{Kind: KindNone}
}
