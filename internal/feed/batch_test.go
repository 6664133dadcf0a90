package feed

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRunReturnsOneResultPerSite(t *testing.T) {
	mux := newCountingMux(map[string]string{"/feed": rssDoc})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := testFinder(Options{Timeout: 200 * time.Millisecond})
	urls := []string{srv.URL, "http://127.0.0.1:1", "not a url"}

	results := f.Run(context.Background(), urls, BatchOptions{})
	if len(results) != len(urls) {
		t.Fatalf("expected %d results, got %d", len(urls), len(results))
	}

	byURL := make(map[string]SiteResult)
	for _, r := range results {
		byURL[r.SiteURL] = r
	}

	if r := byURL[srv.URL]; len(r.Feeds) != 1 || r.Status != StatusSuccess {
		t.Errorf("expected one feed for live site, got %+v", r)
	}
	if r := byURL["http://127.0.0.1:1"]; len(r.Feeds) != 0 || r.Status != StatusSuccess {
		t.Errorf("expected empty success for unreachable site, got %+v", r)
	}
	if r := byURL["https://not a url"]; r.Status != StatusError {
		t.Errorf("expected error for invalid URL, got %+v", r)
	}
}

func TestRunReportsProgress(t *testing.T) {
	f := testFinder(Options{Timeout: 100 * time.Millisecond})
	urls := []string{"http://127.0.0.1:1", "http://127.0.0.1:1", "http://127.0.0.1:1"}

	var calls [][2]int
	f.Run(context.Background(), urls, BatchOptions{
		Progress: func(done, total int) {
			calls = append(calls, [2]int{done, total})
		},
	})

	if len(calls) != 3 {
		t.Fatalf("expected 3 progress calls, got %d", len(calls))
	}
	for i, c := range calls {
		if c[0] != i+1 || c[1] != 3 {
			t.Errorf("progress call %d was (%d, %d), want (%d, 3)", i, c[0], c[1], i+1)
		}
	}
}

func TestRunWithConcurrencyCap(t *testing.T) {
	mux := newCountingMux(map[string]string{"/feed": rssDoc})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := testFinder(Options{})
	urls := []string{srv.URL, srv.URL, srv.URL}

	results := f.Run(context.Background(), urls, BatchOptions{Concurrency: 1})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if len(r.Feeds) != 1 {
			t.Errorf("expected one feed per site, got %+v", r)
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	f := testFinder(Options{})
	if results := f.Run(context.Background(), nil, BatchOptions{}); len(results) != 0 {
		t.Errorf("expected no results for empty input, got %d", len(results))
	}
}
