package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// testFinder builds a Finder with fast settings for tests. Zero fields in
// opts keep test-friendly values rather than the production defaults.
func testFinder(opts Options) *Finder {
	if opts.Timeout <= 0 {
		opts.Timeout = 2 * time.Second
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 1000
	}
	if opts.BaseRetryDelay <= 0 {
		opts.BaseRetryDelay = time.Millisecond
	}
	if opts.Logger == nil {
		log := logrus.New()
		log.SetOutput(io.Discard)
		opts.Logger = log
	}
	return NewFinder(opts)
}

func TestFetchReturnsBodyAndStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "hello")
	}))
	defer srv.Close()

	f := testFinder(Options{})
	res := f.fetch(context.Background(), srv.URL)

	if !res.OK {
		t.Fatal("expected ok result")
	}
	if res.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", res.StatusCode)
	}
	if res.Body != "hello" {
		t.Errorf("expected body %q, got %q", "hello", res.Body)
	}
}

func TestFetchNon200IsStillACompletedFetch(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	f := testFinder(Options{})
	res := f.fetch(context.Background(), srv.URL+"/missing")

	if !res.OK {
		t.Fatal("a 404 response is a completed fetch, not a failure")
	}
	if res.StatusCode != 404 {
		t.Errorf("expected status 404, got %d", res.StatusCode)
	}
}

func TestFetchAbsorbsNetworkFailure(t *testing.T) {
	f := testFinder(Options{Timeout: 200 * time.Millisecond})

	// Nothing listens here; every attempt fails at the transport level.
	res := f.fetch(context.Background(), "http://127.0.0.1:1/feed")

	if res.OK {
		t.Error("expected not-ok result for unreachable host")
	}
	if res.StatusCode != 0 || res.Body != "" {
		t.Errorf("expected zero result, got %+v", res)
	}
}

func TestFetchRetriesMaskTransientFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			// Drop the connection so the client sees a transport error.
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Error("server does not support hijacking")
				return
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				t.Errorf("hijack failed: %v", err)
				return
			}
			conn.Close()
			return
		}
		fmt.Fprint(w, "finally")
	}))
	defer srv.Close()

	f := testFinder(Options{MaxRetries: 3})
	res := f.fetch(context.Background(), srv.URL)

	if !res.OK {
		t.Fatal("expected success after retries")
	}
	if res.Body != "finally" {
		t.Errorf("expected body %q, got %q", "finally", res.Body)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("expected 3 requests, got %d", n)
	}
}

func TestFetchStopsAtRedirectLimit(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer srv.Close()

	f := testFinder(Options{MaxRedirects: 2})
	res := f.fetch(context.Background(), srv.URL+"/a")

	if res.OK {
		t.Error("expected exhausted redirects to be absorbed as a failed fetch")
	}
}

func TestFetchSendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	f := testFinder(Options{UserAgent: "feedscout-test/1.0"})
	f.fetch(context.Background(), srv.URL)

	if got != "feedscout-test/1.0" {
		t.Errorf("expected custom user agent, got %q", got)
	}
}
