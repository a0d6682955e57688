package domain

// CandidateKind classifies how a feed candidate was found
type CandidateKind string

// candidate kinds
const (
	KindStandard CandidateKind = "standard"
	KindPlatform CandidateKind = "platform-handled"
	KindRule     CandidateKind = "rule-derived"
)

// FeedCandidate is a subscribable feed URL discovered for a page
type FeedCandidate struct {
	Title string
	URL   string
	Kind  CandidateKind
}

// IngestResult summarizes one ingestion batch
type IngestResult struct {
	FeedsChecked  int
	FeedsFetched  int
	FeedsFailed   int
	NewItems      int
	Promoted      int
	PersistErrors int
}
