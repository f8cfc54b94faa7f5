package models

// Genre is one entry of the static genre reference list. The list is loaded
// from a local source, not the remote catalog, and is never mutated.
type Genre struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
