package server

import (
	"time"

	"github.com/feedclip/feedclip/pkg/domain"
)

// wire types decouple the JSON surface from the domain structs

type subscriptionJSON struct {
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

type candidateJSON struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind"`
}

type itemJSON struct {
	GUID        string     `json:"guid"`
	FeedURL     string     `json:"feed_url"`
	FeedTitle   string     `json:"feed_title"`
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Published   *time.Time `json:"published,omitempty"`
	Description string     `json:"description"`
	IsRead      bool       `json:"is_read"`
}

type articleJSON struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Content     string     `json:"content,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Excerpt     string     `json:"excerpt"`
	DateAdded   time.Time  `json:"date_added"`
	Published   *time.Time `json:"published,omitempty"`
	IsFavorite  bool       `json:"is_favorite"`
	IsReadLater bool       `json:"is_read_later"`
	IsRead      bool       `json:"is_read"`
	Tags        []string   `json:"tags"`
	Source      string     `json:"source"`
	FeedURL     string     `json:"feed_url,omitempty"`
	FeedTitle   string     `json:"feed_title,omitempty"`
}

func toSubscriptionJSON(s domain.Subscription) subscriptionJSON {
	return subscriptionJSON{URL: s.URL, Title: s.Title, SubscribedAt: s.SubscribedAt}
}

func toSubscriptionsJSON(subs []domain.Subscription) []subscriptionJSON {
	res := make([]subscriptionJSON, len(subs))
	for i, s := range subs {
		res[i] = toSubscriptionJSON(s)
	}
	return res
}

func toCandidatesJSON(candidates []domain.FeedCandidate) []candidateJSON {
	res := make([]candidateJSON, len(candidates))
	for i, c := range candidates {
		res[i] = candidateJSON{Title: c.Title, URL: c.URL, Kind: string(c.Kind)}
	}
	return res
}

func toItemsJSON(items []domain.RawItem) []itemJSON {
	res := make([]itemJSON, len(items))
	for i, it := range items {
		res[i] = itemJSON{
			GUID:        it.GUID,
			FeedURL:     it.FeedURL,
			FeedTitle:   it.FeedTitle,
			Title:       it.Title,
			Link:        it.Link,
			Published:   optionalTime(it.Published),
			Description: it.Description,
			IsRead:      it.IsRead,
		}
	}
	return res
}

func toArticleJSON(a domain.Article) articleJSON {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return articleJSON{
		ID:          a.ID,
		Title:       a.Title,
		URL:         a.URL,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		Excerpt:     a.Excerpt,
		DateAdded:   a.DateAdded,
		Published:   optionalTime(a.Published),
		IsFavorite:  a.IsFavorite,
		IsReadLater: a.IsReadLater,
		IsRead:      a.IsRead,
		Tags:        tags,
		Source:      string(a.Source),
		FeedURL:     a.FeedURL,
		FeedTitle:   a.FeedTitle,
	}
}

func toArticlesJSON(articles []domain.Article) []articleJSON {
	res := make([]articleJSON, len(articles))
	for i := range articles {
		res[i] = toArticleJSON(articles[i])
		res[i].Content = "" // list responses skip the body
	}
	return res
}

// optionalTime maps the zero time (unparsable feed date) to a JSON null
func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
