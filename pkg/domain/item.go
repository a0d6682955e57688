package domain

import "time"

// RawItem is a cached feed entry. Identity key is (GUID, FeedURL).
// IsRead and ReadabilityContent are user-local and survive re-fetches;
// everything else is replaced by the latest reading of the feed.
type RawItem struct {
	GUID               string
	FeedURL            string
	FeedTitle          string
	Title              string
	Link               string
	Published          time.Time
	Description        string
	Content            string // full HTML supplied by the feed, if any
	ReadabilityContent string // extracted full text, set once per item
	IsRead             bool
	FetchedAt          time.Time
}

// Key returns the cache identity of the item
func (i *RawItem) Key() ItemKey {
	return ItemKey{GUID: i.GUID, FeedURL: i.FeedURL}
}

// ItemKey identifies a raw item in the cache
type ItemKey struct {
	GUID    string
	FeedURL string
}
