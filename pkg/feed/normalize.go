package feed

import (
	"time"

	"github.com/feedclip/feedclip/pkg/domain"
)

// Normalize maps parsed entries into cache-ready raw items. The feed title
// always comes from the subscription record, never from the feed document,
// so a rename applies retroactively without a re-fetch. Read state and
// extracted content default to their zero values; the cache merge preserves
// any existing ones.
func Normalize(entries []Entry, sub domain.Subscription, now time.Time) []domain.RawItem {
	items := make([]domain.RawItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, domain.RawItem{
			GUID:        e.GUID,
			FeedURL:     sub.URL,
			FeedTitle:   sub.Title,
			Title:       e.Title,
			Link:        e.Link,
			Published:   e.Published,
			Description: e.Description,
			Content:     e.Content,
			IsRead:      false,
			FetchedAt:   now,
		})
	}
	return items
}
