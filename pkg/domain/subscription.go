package domain

import "time"

// Subscription represents a feed the user follows. The URL is the unique key;
// SubscribedAt gates promotion eligibility (zero value means unknown, which
// makes every item eligible).
type Subscription struct {
	URL          string
	Title        string
	SubscribedAt time.Time
}
