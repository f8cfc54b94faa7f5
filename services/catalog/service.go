package catalog

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"podwave/models"
)

// Sort orders accepted by ListQuery.Sort.
const (
	SortTitleAsc    = "title-asc"
	SortTitleDesc   = "title-desc"
	SortUpdatedDesc = "updated-desc"
	SortUpdatedAsc  = "updated-asc"
)

// ListQuery narrows and orders the directory listing.
type ListQuery struct {
	Search  string // case-insensitive title substring
	GenreID int    // 0 means no genre filter
	Sort    string // one of the Sort* constants; default SortTitleAsc
	Limit   int    // 0 means no limit
	Offset  int
}

// Service holds the in-memory show directory. The preview list is loaded
// once at startup and replaced wholesale on Refresh; individual previews
// are never mutated.
type Service struct {
	client *Client

	mu       sync.RWMutex
	shows    []models.ShowPreview
	loadedAt time.Time
}

func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Refresh fetches the catalog and replaces the directory contents. On
// failure the previous contents are kept.
func (s *Service) Refresh(ctx context.Context) error {
	start := time.Now()
	previews, err := s.client.FetchCatalog(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.shows = previews
	s.loadedAt = time.Now()
	s.mu.Unlock()

	log.Printf("[catalog] loaded %d shows in %dms", len(previews), time.Since(start).Milliseconds())
	return nil
}

// Snapshot returns a copy of the current preview list in catalog order.
func (s *Service) Snapshot() []models.ShowPreview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ShowPreview, len(s.shows))
	copy(out, s.shows)
	return out
}

// LoadedAt reports when the directory was last replaced. Zero if the
// catalog has never loaded successfully.
func (s *Service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// List applies the query's filter, sort, and pagination over the current
// directory snapshot. It returns the page of previews and the total number
// of matches before pagination.
func (s *Service) List(q ListQuery) ([]models.ShowPreview, int) {
	shows := s.Snapshot()

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		filtered := shows[:0]
		for _, show := range shows {
			if strings.Contains(strings.ToLower(show.Title), search) {
				filtered = append(filtered, show)
			}
		}
		shows = filtered
	}

	if q.GenreID != 0 {
		filtered := shows[:0]
		for _, show := range shows {
			if containsInt(show.GenreIDs, q.GenreID) {
				filtered = append(filtered, show)
			}
		}
		shows = filtered
	}

	sortShows(shows, q.Sort)

	total := len(shows)
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	shows = shows[offset:]
	if q.Limit > 0 && q.Limit < len(shows) {
		shows = shows[:q.Limit]
	}
	return shows, total
}

// sortShows orders previews in place. Title order uses locale-aware,
// case-insensitive collation so e.g. "a" and "A" sort together.
func sortShows(shows []models.ShowPreview, order string) {
	switch order {
	case SortUpdatedDesc:
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].Updated > shows[j].Updated
		})
	case SortUpdatedAsc:
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].Updated < shows[j].Updated
		})
	case SortTitleDesc:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(shows, func(i, j int) bool {
			return c.CompareString(shows[i].Title, shows[j].Title) > 0
		})
	default: // SortTitleAsc
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(shows, func(i, j int) bool {
			return c.CompareString(shows[i].Title, shows[j].Title) < 0
		})
	}
}

func containsInt(values []int, want int) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
