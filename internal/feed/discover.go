package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Well-known feed locations, probed in order. Includes WordPress and other
// CMS-specific variants.
var knownPaths = []string{
	"/feed",
	"/rss",
	"/atom.xml",
	"/feed.xml",
	"/rss.xml",
	"/index.xml",
	"/feed/atom",
	"/feed/rss",
	"/rss/atom",
	"/blog/feed",
	"/blog.atom",
	"/feed/wp-rss2.xml",
	"/wp-feed.php",
	"/wp-rss.php",
	"/blog/index.rss",
	"/syndication.axd",
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// SiteResult is the outcome of discovery for one site. Feeds preserve probe
// order; an empty list with StatusSuccess means no feeds were found, which
// is not an error.
type SiteResult struct {
	SiteURL string
	Feeds   []Candidate
	Status  Status
	Err     string
}

// Options configures a Finder. Zero fields fall back to defaults.
type Options struct {
	Timeout           time.Duration
	MaxRedirects      int
	MaxRetries        int
	RequestsPerSecond float64
	BaseRetryDelay    time.Duration
	UserAgent         string
	Logger            *logrus.Logger
}

// Finder discovers RSS/Atom feeds for websites. One Finder holds the rate
// limiter shared by every discovery it runs, so a single instance should be
// used per session.
type Finder struct {
	client         *http.Client
	limiter        *Limiter
	log            *logrus.Logger
	maxRetries     int
	baseRetryDelay time.Duration
	userAgent      string
}

func NewFinder(opts Options) *Finder {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = 5
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 2.0
	}
	if opts.BaseRetryDelay <= 0 {
		opts.BaseRetryDelay = time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "feedscout/0.1"
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	return &Finder{
		client:         newHTTPClient(opts.Timeout, opts.MaxRedirects),
		limiter:        NewLimiter(opts.RequestsPerSecond),
		log:            opts.Logger,
		maxRetries:     opts.MaxRetries,
		baseRetryDelay: opts.BaseRetryDelay,
		userAgent:      opts.UserAgent,
	}
}

// CleanURL normalizes a raw site URL: https scheme when none is given,
// trailing slashes stripped.
func CleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return strings.TrimRight(raw, "/")
}

// Discover probes one site for feeds: every known path first, then the
// site's own HTML when no known path validated. All probes for a site run
// sequentially; parallelism belongs to Run across sites.
func (f *Finder) Discover(ctx context.Context, rawURL string) (result SiteResult) {
	site := CleanURL(rawURL)
	result = SiteResult{SiteURL: site, Status: StatusSuccess}

	defer func() {
		if r := recover(); r != nil {
			result.Status = StatusError
			result.Err = fmt.Sprintf("discovery panic: %v", r)
		}
	}()

	parsed, err := url.Parse(site)
	if err != nil {
		result.Status = StatusError
		result.Err = fmt.Sprintf("invalid url: %v", err)
		return result
	}
	if parsed.Host == "" {
		result.Status = StatusError
		result.Err = fmt.Sprintf("invalid url: no host in %q", site)
		return result
	}

	// Phase 1: probe every known path, not stopping at the first hit, so
	// all available feed variants surface. Paths are root-relative, so a
	// site URL carrying a path component still probes the host root.
	for _, path := range knownPaths {
		probe := parsed.ResolveReference(&url.URL{Path: path}).String()
		if c := validateFeed(probe, f.fetch(ctx, probe)); c != nil {
			result.Feeds = append(result.Feeds, *c)
		}
	}

	// Phase 2: scan the homepage HTML, but only when guessing found nothing.
	if len(result.Feeds) == 0 {
		res := f.fetch(ctx, site)
		if res.OK && res.StatusCode == http.StatusOK && res.Body != "" {
			for _, candidate := range scanFeedLinks(site, res.Body) {
				if c := validateFeed(candidate, f.fetch(ctx, candidate)); c != nil {
					result.Feeds = append(result.Feeds, *c)
				}
			}
		}
	}

	return result
}
