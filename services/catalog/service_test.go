package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podwave/models"
)

func newTestDirectory(t *testing.T, previews []models.ShowPreview) *Service {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(previews)
	}))
	t.Cleanup(server.Close)

	svc := NewService(NewClient(server.URL, nil))
	require.NoError(t, svc.Refresh(context.Background()))
	return svc
}

func directoryFixture() []models.ShowPreview {
	return []models.ShowPreview{
		{ID: "1", Title: "zebra hour", Updated: "2023-05-01T00:00:00.000Z", GenreIDs: []int{4}},
		{ID: "2", Title: "Atlas of Sound", Updated: "2024-01-15T00:00:00.000Z", GenreIDs: []int{3, 4}},
		{ID: "3", Title: "backyard history", Updated: "2022-11-03T00:00:00.000Z", GenreIDs: []int{3}},
		{ID: "4", Title: "The Atlas Review", Updated: "2023-09-20T00:00:00.000Z", GenreIDs: []int{8}},
	}
}

func TestRefreshReplacesWholesale(t *testing.T) {
	previews := directoryFixture()
	svc := newTestDirectory(t, previews)

	snap := svc.Snapshot()
	require.Len(t, snap, 4)
	assert.Equal(t, "1", snap[0].ID, "snapshot keeps catalog order")
	assert.False(t, svc.LoadedAt().IsZero())
}

func TestListDefaultSortIsTitleCollation(t *testing.T) {
	svc := newTestDirectory(t, directoryFixture())

	items, total := svc.List(ListQuery{})
	require.Equal(t, 4, total)
	titles := []string{items[0].Title, items[1].Title, items[2].Title, items[3].Title}
	// Case-insensitive collation: lowercase titles interleave with uppercase.
	assert.Equal(t, []string{"Atlas of Sound", "backyard history", "The Atlas Review", "zebra hour"}, titles)
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	svc := newTestDirectory(t, directoryFixture())

	items, total := svc.List(ListQuery{Search: "ATLAS"})
	require.Equal(t, 2, total)
	assert.Equal(t, "Atlas of Sound", items[0].Title)
	assert.Equal(t, "The Atlas Review", items[1].Title)
}

func TestListGenreFilter(t *testing.T) {
	svc := newTestDirectory(t, directoryFixture())

	items, total := svc.List(ListQuery{GenreID: 3, Sort: SortUpdatedDesc})
	require.Equal(t, 2, total)
	assert.Equal(t, "Atlas of Sound", items[0].Title, "most recently updated first")
	assert.Equal(t, "backyard history", items[1].Title)
}

func TestListPagination(t *testing.T) {
	svc := newTestDirectory(t, directoryFixture())

	items, total := svc.List(ListQuery{Limit: 2, Offset: 2})
	assert.Equal(t, 4, total, "total reports pre-pagination matches")
	require.Len(t, items, 2)
	assert.Equal(t, "The Atlas Review", items[0].Title)

	items, total = svc.List(ListQuery{Limit: 2, Offset: 10})
	assert.Equal(t, 4, total)
	assert.Empty(t, items, "offset past the end yields an empty page")
}

func TestListUpdatedAscSort(t *testing.T) {
	svc := newTestDirectory(t, directoryFixture())

	items, _ := svc.List(ListQuery{Sort: SortUpdatedAsc})
	assert.Equal(t, "backyard history", items[0].Title)
	assert.Equal(t, "Atlas of Sound", items[3].Title)
}

func TestRefreshFailureKeepsPreviousContents(t *testing.T) {
	svc := newTestDirectory(t, directoryFixture())

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	svc.client = NewClient(failing.URL, nil)
	err := svc.Refresh(context.Background())
	require.Error(t, err)
	assert.Len(t, svc.Snapshot(), 4, "failed refresh keeps the old list")
}
