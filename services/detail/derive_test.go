package detail

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"podwave/models"
)

// mapLabeler is a minimal GenreLabeler for tests.
type mapLabeler map[int]string

func (m mapLabeler) Label(id int) string {
	if title, ok := m[id]; ok {
		return title
	}
	return fmt.Sprintf("Unknown (%d)", id)
}

func TestGenreLabels(t *testing.T) {
	ref := mapLabeler{1: "Comedy"}
	show := &models.ShowDetail{GenreIDs: []int{1, 99}}

	got := GenreLabels(show, ref)
	want := []string{"Comedy", "Unknown (99)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenreLabels = %v, want %v", got, want)
	}

	// Idempotent: same inputs, same output.
	if again := GenreLabels(show, ref); !reflect.DeepEqual(again, got) {
		t.Fatalf("second call differs: %v vs %v", again, got)
	}
}

func TestGenreLabelsKeepsOrderAndDuplicates(t *testing.T) {
	ref := mapLabeler{3: "History", 8: "News"}
	show := &models.ShowDetail{GenreIDs: []int{8, 3, 8}}

	got := GenreLabels(show, ref)
	want := []string{"News", "History", "News"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GenreLabels = %v, want %v", got, want)
	}
}

func TestTotalEpisodeCount(t *testing.T) {
	a, b, c := models.Episode{Title: "a"}, models.Episode{Title: "b"}, models.Episode{Title: "c"}
	tests := []struct {
		name    string
		seasons []models.Season
		want    int
	}{
		{"two seasons", []models.Season{{Episodes: []models.Episode{a, b}}, {Episodes: []models.Episode{c}}}, 3},
		{"no seasons", []models.Season{}, 0},
		{"empty season", []models.Season{{Episodes: nil}}, 0},
	}

	for _, tt := range tests {
		got := TotalEpisodeCount(&models.ShowDetail{Seasons: tt.seasons})
		if got != tt.want {
			t.Errorf("%s: TotalEpisodeCount = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSelectedSeason(t *testing.T) {
	show := &models.ShowDetail{Seasons: []models.Season{
		{SeasonNumber: 1, Title: "Season 1"},
		{SeasonNumber: 2, Title: "Season 2"},
	}}

	season, ok := SelectedSeason(show, 0)
	if !ok || season.SeasonNumber != 1 {
		t.Fatalf("index 0: got %+v ok=%v", season, ok)
	}

	if _, ok := SelectedSeason(show, 2); ok {
		t.Error("index past the end should be absent")
	}
	if _, ok := SelectedSeason(show, -1); ok {
		t.Error("negative index should be absent")
	}
	if _, ok := SelectedSeason(&models.ShowDetail{}, 0); ok {
		t.Error("empty seasons should be absent")
	}
}

func TestEpisodeSummaryTruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("x", 400)
	got := EpisodeSummary(models.Episode{Description: long})
	if len([]rune(got)) != 153 {
		t.Fatalf("expected 150 chars plus marker, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("missing ellipsis marker: %q", got)
	}
}

func TestEpisodeSummaryAlwaysAppendsMarker(t *testing.T) {
	// Shipped behavior: the marker is appended even when the description
	// is already under the limit.
	got := EpisodeSummary(models.Episode{Description: "ten chars."})
	if got != "ten chars...." {
		t.Fatalf("EpisodeSummary = %q, want %q", got, "ten chars....")
	}
}
