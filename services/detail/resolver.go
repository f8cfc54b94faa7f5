// Package detail resolves full show records and derives the display-ready
// aggregates the details screen needs: genre labels, episode totals, and
// season selection.
package detail

import (
	"context"

	"podwave/models"
)

// ShowFetcher retrieves the full record for one show.
type ShowFetcher interface {
	FetchShowDetail(ctx context.Context, id string) (*models.ShowDetail, error)
}

// Bundle is a show detail together with its derived aggregates, sized for a
// single details-screen payload.
type Bundle struct {
	Show          *models.ShowDetail `json:"show"`
	GenreLabels   []string           `json:"genreLabels"`
	TotalEpisodes int                `json:"totalEpisodes"`
}

// Resolver fetches show details and computes derived aggregates. It is
// stateless; every Resolve is one upstream request.
type Resolver struct {
	fetcher ShowFetcher
	genres  GenreLabeler
}

func NewResolver(fetcher ShowFetcher, genres GenreLabeler) *Resolver {
	return &Resolver{fetcher: fetcher, genres: genres}
}

// Resolve fetches the show with the given id and returns it with derived
// aggregates attached. Errors pass through from the fetch unchanged.
func (r *Resolver) Resolve(ctx context.Context, id string) (*Bundle, error) {
	show, err := r.fetcher.FetchShowDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Bundle{
		Show:          show,
		GenreLabels:   GenreLabels(show, r.genres),
		TotalEpisodes: TotalEpisodeCount(show),
	}, nil
}
