package detail

import (
	"podwave/models"
)

// summaryLimit is the character count an episode description is cut to
// before the ellipsis marker is appended.
const summaryLimit = 150

// GenreLabeler resolves a genre id to its display title.
type GenreLabeler interface {
	Label(id int) string
}

// GenreLabels maps the detail's genre ids through the reference list. Order
// follows detail.GenreIDs and duplicates are kept; ids with no match come
// back as "Unknown (<id>)".
func GenreLabels(detail *models.ShowDetail, genres GenreLabeler) []string {
	labels := make([]string, 0, len(detail.GenreIDs))
	for _, id := range detail.GenreIDs {
		labels = append(labels, genres.Label(id))
	}
	return labels
}

// TotalEpisodeCount sums episode counts across all seasons. Zero when the
// show has no seasons.
func TotalEpisodeCount(detail *models.ShowDetail) int {
	total := 0
	for _, season := range detail.Seasons {
		total += len(season.Episodes)
	}
	return total
}

// SelectedSeason returns the season at index, reporting false when the
// index is out of range.
func SelectedSeason(detail *models.ShowDetail, index int) (models.Season, bool) {
	if index < 0 || index >= len(detail.Seasons) {
		return models.Season{}, false
	}
	return detail.Seasons[index], true
}

// EpisodeSummary returns the episode description truncated to 150
// characters with an ellipsis marker appended. The marker is appended even
// when the description is already shorter than the limit; that matches the
// shipped behavior and is kept until product says otherwise.
func EpisodeSummary(episode models.Episode) string {
	runes := []rune(episode.Description)
	if len(runes) > summaryLimit {
		runes = runes[:summaryLimit]
	}
	return string(runes) + "..."
}
