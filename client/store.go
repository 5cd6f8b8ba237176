package client

import (
	"context"
	"sync"

	"realestate-listings/models"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// FilterPatch is a partial filter update. Nil fields are left unchanged;
// ClearPrices drops price bounds the patch does not replace, so a form that
// owns the price inputs can submit its exact state.
type FilterPatch struct {
	Name        *string
	Address     *string
	MinPrice    *float64
	MaxPrice    *float64
	PageSize    *int
	ClearPrices bool
}

// State is a point-in-time snapshot of the store.
type State struct {
	Properties  []models.PropertySummary
	Filters     models.PropertyFilter
	TotalCount  int
	TotalPages  int
	CurrentPage int
	Loading     bool
	Err         string
}

// Store is the client-side query state container. Every transition goes
// through FetchProperties, SetFilters, SetPage or ClearFilters; reads go
// through Snapshot. A failed fetch keeps the last successfully loaded page
// and only flips the error message.
type Store struct {
	api *Client

	mu       sync.Mutex
	state    State
	fetchSeq uint64
}

func NewStore(api *Client) *Store {
	return &Store{
		api: api,
		state: State{
			Filters: models.PropertyFilter{PageNumber: DefaultPageNumber, PageSize: DefaultPageSize},
		},
	}
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FetchProperties loads the page for the given filter. A fetch for the filter
// already loaded is skipped, unless the previous fetch failed, so reapplying
// identical filters after an error still retries. Each fetch takes a sequence
// number; a response whose fetch is no longer the latest is discarded, which
// keeps a slow stale response from overwriting newer state.
func (s *Store) FetchProperties(ctx context.Context, filter models.PropertyFilter) {
	s.mu.Lock()
	if filtersEqual(filter, s.state.Filters) && len(s.state.Properties) > 0 && s.state.Err == "" {
		s.mu.Unlock()
		return
	}
	s.fetchSeq++
	seq := s.fetchSeq
	s.state.Filters = filter
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	envelope, err := s.api.GetProperties(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		return
	}
	s.state.Loading = false

	if err != nil {
		s.state.Err = err.Error()
		return
	}
	if !envelope.Success || envelope.Data == nil {
		message := envelope.Message
		if message == "" {
			message = "Error fetching properties"
		}
		s.state.Err = message
		return
	}

	page := *envelope.Data
	s.state.Properties = page.Data
	s.state.TotalCount = page.TotalCount
	s.state.TotalPages = page.TotalPages
	s.state.CurrentPage = page.PageNumber
}

// SetFilters merges the patch into the current filters and resets to the
// first page. Changing any filter restarts pagination.
func (s *Store) SetFilters(ctx context.Context, patch FilterPatch, fetch bool) {
	s.mu.Lock()
	filter := s.state.Filters
	if patch.Name != nil {
		filter.Name = *patch.Name
	}
	if patch.Address != nil {
		filter.Address = *patch.Address
	}
	if patch.ClearPrices {
		filter.MinPrice = nil
		filter.MaxPrice = nil
	}
	if patch.MinPrice != nil {
		filter.MinPrice = patch.MinPrice
	}
	if patch.MaxPrice != nil {
		filter.MaxPrice = patch.MaxPrice
	}
	if patch.PageSize != nil {
		filter.PageSize = *patch.PageSize
	}
	filter.PageNumber = DefaultPageNumber
	s.mu.Unlock()

	// The fetch compares against the previously stored filters and records the
	// new ones itself; writing them first would defeat the dedup check.
	if fetch {
		s.FetchProperties(ctx, filter)
		return
	}
	s.mu.Lock()
	s.state.Filters = filter
	s.mu.Unlock()
}

// SetPage moves to another page; the other filter fields are preserved.
func (s *Store) SetPage(ctx context.Context, page int) {
	s.mu.Lock()
	filter := s.state.Filters
	filter.PageNumber = page
	s.mu.Unlock()

	s.FetchProperties(ctx, filter)
}

// ClearFilters drops every predicate, keeps the default page number and size,
// and refetches.
func (s *Store) ClearFilters(ctx context.Context) {
	filter := models.PropertyFilter{PageNumber: DefaultPageNumber, PageSize: DefaultPageSize}
	s.FetchProperties(ctx, filter)
}

func filtersEqual(a, b models.PropertyFilter) bool {
	return a.Name == b.Name &&
		a.Address == b.Address &&
		floatPtrEqual(a.MinPrice, b.MinPrice) &&
		floatPtrEqual(a.MaxPrice, b.MaxPrice) &&
		a.PageNumber == b.PageNumber &&
		a.PageSize == b.PageSize
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
