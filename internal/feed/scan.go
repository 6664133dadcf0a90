package feed

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var anchorWords = []string{"rss", "feed", "atom", "subscribe"}

// scanFeedLinks extracts candidate feed URLs from a page: first every
// <link> advertising a feed MIME type, then every anchor whose text looks
// feed-related. Candidates are returned in document order, undeduplicated;
// validation happens at the caller.
func scanFeedLinks(baseURL, body string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	var candidates []string

	doc.Find(`link[type="application/rss+xml"], link[type="application/atom+xml"]`).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		if abs := resolveRef(base, href); abs != "" {
			candidates = append(candidates, abs)
		}
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(s.Text())
		for _, word := range anchorWords {
			if strings.Contains(text, word) {
				href, _ := s.Attr("href")
				if abs := resolveRef(base, href); abs != "" {
					candidates = append(candidates, abs)
				}
				break
			}
		}
	})

	return candidates
}

func resolveRef(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
