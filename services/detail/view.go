package detail

import (
	"context"
	"sync"

	"podwave/models"
)

// Status is the lifecycle state of the detail view.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// View owns the state behind a show details screen: the current show id,
// the resolved bundle, and the selected season. Loads are asynchronous and
// each new Load supersedes any still in flight; a completion for a
// superseded load is discarded, so rapid navigation can never leave a
// stale show's data on screen regardless of completion order.
type View struct {
	resolver *Resolver

	mu          sync.Mutex
	token       uint64
	showID      string
	status      Status
	bundle      *Bundle
	err         error
	seasonIndex int

	// notify receives the token of every completed load after its result
	// has been applied or discarded. Test hook; nil outside tests.
	notify chan uint64
}

// ViewState is a consistent snapshot of the view for rendering. Bundle and
// Err are only set in StatusLoaded and StatusFailed respectively.
type ViewState struct {
	ShowID      string
	Status      Status
	Bundle      *Bundle
	Err         error
	SeasonIndex int
}

func NewView(resolver *Resolver) *View {
	return &View{resolver: resolver, status: StatusIdle}
}

// Load starts resolving the given show id. It returns immediately; the
// result is applied when the fetch completes, and only if no newer Load has
// been issued since.
func (v *View) Load(ctx context.Context, id string) {
	v.mu.Lock()
	v.token++
	token := v.token
	v.showID = id
	v.status = StatusLoading
	v.mu.Unlock()

	go func() {
		bundle, err := v.resolver.Resolve(ctx, id)

		v.mu.Lock()
		defer v.mu.Unlock()
		if token != v.token {
			// Superseded by a newer Load; drop the result.
			v.signal(token)
			return
		}
		if err != nil {
			v.status = StatusFailed
			v.bundle = nil
			v.err = err
		} else {
			v.status = StatusLoaded
			v.bundle = bundle
			v.err = nil
			v.seasonIndex = 0
		}
		v.signal(token)
	}()
}

// SelectSeason changes the selected season. Out-of-range indexes are
// rejected, so the index stays valid whenever the loaded show has seasons.
func (v *View) SelectSeason(index int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status != StatusLoaded || v.bundle == nil || v.bundle.Show == nil {
		return false
	}
	if index < 0 || index >= len(v.bundle.Show.Seasons) {
		return false
	}
	v.seasonIndex = index
	return true
}

// SelectedSeason returns the currently selected season of the loaded show.
func (v *View) SelectedSeason() (models.Season, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.status != StatusLoaded || v.bundle == nil || v.bundle.Show == nil {
		return models.Season{}, false
	}
	return SelectedSeason(v.bundle.Show, v.seasonIndex)
}

// EpisodeSummaries returns the summary line for every episode of the
// currently selected season.
func (v *View) EpisodeSummaries() []string {
	season, ok := v.SelectedSeason()
	if !ok {
		return nil
	}
	summaries := make([]string, 0, len(season.Episodes))
	for _, episode := range season.Episodes {
		summaries = append(summaries, EpisodeSummary(episode))
	}
	return summaries
}

// State returns a snapshot of the view.
func (v *View) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return ViewState{
		ShowID:      v.showID,
		Status:      v.status,
		Bundle:      v.bundle,
		Err:         v.err,
		SeasonIndex: v.seasonIndex,
	}
}

func (v *View) signal(token uint64) {
	if v.notify != nil {
		v.notify <- token
	}
}
