package catalog

import (
	"fmt"
	"time"

	"github.com/julienpequegnot/feedscout/internal/database"
	"github.com/julienpequegnot/feedscout/internal/feed"
)

// Entry is one recorded discovery: a feed found for a site, or a sentinel
// row when a site yielded nothing.
type Entry struct {
	ID           int64
	SiteURL      string
	FeedURL      string
	FeedType     string
	Title        string
	Status       string
	Error        string
	DiscoveredAt time.Time
}

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Save records a discovery result, replacing any previous rows for the
// same site.
func (r *Repository) Save(result feed.SiteResult) error {
	if _, err := r.db.Exec(`DELETE FROM discoveries WHERE site_url = ?`, result.SiteURL); err != nil {
		return fmt.Errorf("failed to clear previous rows: %w", err)
	}

	if len(result.Feeds) == 0 {
		msg := result.Err
		if msg == "" {
			msg = "No feeds found"
		}
		_, err := r.db.Exec(
			`INSERT INTO discoveries (site_url, status, error) VALUES (?, ?, ?)`,
			result.SiteURL, string(result.Status), msg,
		)
		if err != nil {
			return fmt.Errorf("failed to insert discovery: %w", err)
		}
		return nil
	}

	for _, c := range result.Feeds {
		_, err := r.db.Exec(
			`INSERT INTO discoveries (site_url, feed_url, feed_type, title, status, error) VALUES (?, ?, ?, ?, ?, ?)`,
			result.SiteURL, c.URL, string(c.Type), c.Title, string(result.Status), result.Err,
		)
		if err != nil {
			return fmt.Errorf("failed to insert discovery: %w", err)
		}
	}
	return nil
}

func (r *Repository) List() ([]Entry, error) {
	rows, err := r.db.Query(`SELECT id, site_url, feed_url, feed_type, title, status, error, discovered_at FROM discoveries ORDER BY site_url, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SiteURL, &e.FeedURL, &e.FeedType, &e.Title, &e.Status, &e.Error, &e.DiscoveredAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) ListBySite(siteURL string) ([]Entry, error) {
	rows, err := r.db.Query(`SELECT id, site_url, feed_url, feed_type, title, status, error, discovered_at FROM discoveries WHERE site_url = ? ORDER BY id`, siteURL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SiteURL, &e.FeedURL, &e.FeedType, &e.Title, &e.Status, &e.Error, &e.DiscoveredAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
