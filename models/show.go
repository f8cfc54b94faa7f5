package models

// ShowPreview is one entry in the remote catalog listing. Previews are
// immutable once fetched; the whole list is replaced on refetch.
type ShowPreview struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	SeasonCount int    `json:"seasonCount"`
	Updated     string `json:"updated"` // ISO-8601
	GenreIDs    []int  `json:"genreIds"`
}

// Episode is a single playable episode within a season.
type Episode struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AudioFile   string `json:"audioFile"`
}

// Season groups the episodes of one season of a show.
type Season struct {
	SeasonNumber int       `json:"seasonNumber"`
	Title        string    `json:"title"`
	Image        string    `json:"image"`
	Episodes     []Episode `json:"episodes"`
}

// ShowDetail is the expanded record for one show. It is fetched fresh per
// show id and never partially updated: a new fetch replaces it wholesale,
// a failed fetch leaves it absent.
type ShowDetail struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Updated     string   `json:"updated"`
	GenreIDs    []int    `json:"genreIds"`
	Seasons     []Season `json:"seasons"`
}
