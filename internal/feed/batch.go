package feed

import "context"

// BatchOptions tunes one Run invocation. Concurrency of 0 means one
// goroutine per site with the shared rate limiter as the only throttle; a
// positive value caps in-flight discoveries on top of that.
type BatchOptions struct {
	Concurrency int
	Progress    func(done, total int)
}

// Run discovers feeds for many sites concurrently and returns one result
// per input URL, in completion order. Run never fails: per-site problems
// are carried in each SiteResult.
func (f *Finder) Run(ctx context.Context, urls []string, opts BatchOptions) []SiteResult {
	total := len(urls)
	if total == 0 {
		return nil
	}

	var sem chan struct{}
	if opts.Concurrency > 0 {
		sem = make(chan struct{}, opts.Concurrency)
	}

	ch := make(chan SiteResult, total)
	for _, u := range urls {
		go func(u string) {
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			ch <- f.Discover(ctx, u)
		}(u)
	}

	results := make([]SiteResult, 0, total)
	for done := 1; done <= total; done++ {
		results = append(results, <-ch)
		if opts.Progress != nil {
			opts.Progress(done, total)
		}
	}
	return results
}
