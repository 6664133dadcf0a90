package feed

import (
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"
)

type FeedType string

const (
	TypeRSS  FeedType = "rss"
	TypeAtom FeedType = "atom"
)

// Candidate is a URL that validated as a live feed.
type Candidate struct {
	URL   string
	Type  FeedType
	Title string
}

// validateFeed decides whether a fetched body is a feed. The type heuristic
// matches "atom" anywhere in the raw body rather than inspecting the parsed
// document's namespace.
func validateFeed(url string, res FetchResult) *Candidate {
	if !res.OK || res.StatusCode != http.StatusOK || res.Body == "" {
		return nil
	}

	parsed, err := gofeed.NewParser().ParseString(res.Body)
	if err != nil || parsed == nil {
		return nil
	}

	typ := TypeRSS
	if strings.Contains(strings.ToLower(res.Body), "atom") {
		typ = TypeAtom
	}

	return &Candidate{URL: url, Type: typ, Title: parsed.Title}
}
