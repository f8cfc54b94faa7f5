// Package genres loads and serves the static genre reference list. Genre
// ids carried on shows resolve through this list; the list itself never
// changes at runtime.
package genres

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"podwave/models"
)

//go:embed genres.json
var defaultGenres []byte

type Service struct {
	list []models.Genre
	byID map[int]string
}

// NewService builds the reference list from the embedded defaults.
func NewService() *Service {
	s, err := fromJSON(defaultGenres)
	if err != nil {
		// The embedded list is part of the binary; failing to parse it is
		// a build defect, not a runtime condition.
		panic("genres: invalid embedded reference list: " + err.Error())
	}
	return s
}

// NewServiceFromFile builds the reference list from a local JSON file with
// shape [{id, title}]. File order is preserved.
func NewServiceFromFile(fs afero.Fs, path string) (*Service, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read genre file: %w", err)
	}
	s, err := fromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse genre file %s: %w", path, err)
	}
	return s, nil
}

func fromJSON(data []byte) (*Service, error) {
	var list []models.Genre
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	byID := make(map[int]string, len(list))
	for _, g := range list {
		byID[g.ID] = g.Title
	}
	return &Service{list: list, byID: byID}, nil
}

// Label resolves a genre id to its title. Ids missing from the reference
// list render as "Unknown (<id>)" rather than failing.
func (s *Service) Label(id int) string {
	if title, ok := s.byID[id]; ok {
		return title
	}
	return fmt.Sprintf("Unknown (%d)", id)
}

// List returns the reference list in source order.
func (s *Service) List() []models.Genre {
	out := make([]models.Genre, len(s.list))
	copy(out, s.list)
	return out
}
