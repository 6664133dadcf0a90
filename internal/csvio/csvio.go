package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julienpequegnot/feedscout/internal/feed"
)

// ReadSites reads site URLs from a CSV file with a blog_url or url column.
// Per row, blog_url wins when both are present and non-empty.
func ReadSites(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	blogIdx, urlIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "blog_url":
			blogIdx = i
		case "url":
			urlIdx = i
		}
	}
	if blogIdx < 0 && urlIdx < 0 {
		return nil, fmt.Errorf("no blog_url or url column in %s", path)
	}

	var sites []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		site := ""
		if blogIdx >= 0 && blogIdx < len(row) {
			site = strings.TrimSpace(row[blogIdx])
		}
		if site == "" && urlIdx >= 0 && urlIdx < len(row) {
			site = strings.TrimSpace(row[urlIdx])
		}
		if site != "" {
			sites = append(sites, site)
		}
	}
	return sites, nil
}

var reportHeader = []string{"Blog URL", "Feed URL", "Feed Type", "Status", "Error"}

// WriteReport writes the discovery report: one row per feed, or a single
// "No feeds found" row for sites that yielded nothing. Written in one pass
// after the whole batch has completed.
func WriteReport(path string, results []feed.SiteResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		return err
	}

	for _, r := range results {
		if len(r.Feeds) == 0 {
			msg := r.Err
			if msg == "" {
				msg = "No feeds found"
			}
			if err := w.Write([]string{r.SiteURL, "", "", string(r.Status), msg}); err != nil {
				return err
			}
			continue
		}
		for _, c := range r.Feeds {
			if err := w.Write([]string{r.SiteURL, c.URL, string(c.Type), string(r.Status), r.Err}); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
