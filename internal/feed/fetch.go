package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 5 * 1024 * 1024

// FetchResult is a completed HTTP response, or a failure marker when OK is
// false. Network failures never escape the fetcher as errors.
type FetchResult struct {
	Body       string
	StatusCode int
	OK         bool
}

// fetch performs one rate-limited, retried GET. Any failure left after the
// retries are exhausted is absorbed into a zero FetchResult.
func (f *Finder) fetch(ctx context.Context, url string) FetchResult {
	if err := f.limiter.Wait(ctx); err != nil {
		f.log.WithFields(logrus.Fields{"url": url, "error": err}).Error("rate limiter wait aborted")
		return FetchResult{}
	}

	res, err := f.withRetry(ctx, url, func() (FetchResult, error) {
		return f.get(ctx, url)
	})
	if err != nil {
		f.log.WithFields(logrus.Fields{"url": url, "error": err}).Error("fetch failed")
		return FetchResult{}
	}
	return res
}

// get performs a single GET attempt. A completed response of any status
// code is a success at this layer; the validator rejects non-200 later.
func (f *Finder) get(ctx context.Context, url string) (FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return FetchResult{}, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return FetchResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return FetchResult{}, err
	}

	return FetchResult{Body: string(body), StatusCode: resp.StatusCode, OK: true}, nil
}

func newHTTPClient(timeout time.Duration, maxRedirects int) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}
