package feed

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// withRetry runs op up to maxRetries times, sleeping baseDelay*2^attempt
// between failures. The last error is returned once attempts run out.
func (f *Finder) withRetry(ctx context.Context, url string, op func() (FetchResult, error)) (FetchResult, error) {
	var lastErr error
	for attempt := 0; attempt < f.maxRetries; attempt++ {
		res, err := op()
		if err == nil {
			return res, nil
		}
		lastErr = err

		if attempt == f.maxRetries-1 {
			break
		}

		delay := f.baseRetryDelay * time.Duration(1<<attempt)
		f.log.WithFields(logrus.Fields{
			"url":     url,
			"attempt": attempt + 1,
			"delay":   delay,
			"error":   err,
		}).Warn("fetch attempt failed, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return FetchResult{}, ctx.Err()
		}
	}
	return FetchResult{}, lastErr
}
