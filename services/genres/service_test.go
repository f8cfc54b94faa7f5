package genres

import (
	"testing"

	"github.com/spf13/afero"
)

func TestEmbeddedReferenceList(t *testing.T) {
	svc := NewService()

	list := svc.List()
	if len(list) != 9 {
		t.Fatalf("expected 9 embedded genres, got %d", len(list))
	}
	if list[0].ID != 1 || list[0].Title != "Personal Growth" {
		t.Errorf("unexpected first genre: %+v", list[0])
	}
	if got := svc.Label(4); got != "Comedy" {
		t.Errorf("Label(4) = %q, want Comedy", got)
	}
}

func TestLabelUnknownID(t *testing.T) {
	svc := NewService()
	if got := svc.Label(99); got != "Unknown (99)" {
		t.Errorf("Label(99) = %q, want %q", got, "Unknown (99)")
	}
}

func TestLoadFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `[{"id": 1, "title": "True Crime"}, {"id": 2, "title": "Science"}]`
	if err := afero.WriteFile(fs, "/etc/podwave/genres.json", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	svc, err := NewServiceFromFile(fs, "/etc/podwave/genres.json")
	if err != nil {
		t.Fatalf("NewServiceFromFile failed: %v", err)
	}
	if len(svc.List()) != 2 {
		t.Fatalf("expected 2 genres, got %d", len(svc.List()))
	}
	if got := svc.Label(2); got != "Science" {
		t.Errorf("Label(2) = %q, want Science", got)
	}
	if got := svc.Label(4); got != "Unknown (4)" {
		t.Errorf("Label(4) = %q, want Unknown (4)", got)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	if _, err := NewServiceFromFile(fs, "/missing.json"); err == nil {
		t.Error("expected error for missing file")
	}

	afero.WriteFile(fs, "/bad.json", []byte(`{"id": 1}`), 0o644)
	if _, err := NewServiceFromFile(fs, "/bad.json"); err == nil {
		t.Error("expected error for non-array JSON")
	}
}
