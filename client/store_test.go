package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-listings/models"
)

// listServer fakes the listings API: it counts hits, echoes the requested
// page number back and can be flipped into failure mode.
type listServer struct {
	*httptest.Server
	hits atomic.Int64
	fail atomic.Bool
}

func newListServer(t *testing.T) *listServer {
	t.Helper()
	srv := &listServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.hits.Add(1)
		writeListResponse(w, r, srv.fail.Load())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeListResponse(w http.ResponseWriter, r *http.Request, fail bool) {
	w.Header().Set("Content-Type", "application/json")
	if fail {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.Fail[models.Page[models.PropertySummary]]("Error retrieving properties", "connection reset"))
		return
	}

	pageNumber, _ := strconv.Atoi(r.URL.Query().Get("pageNumber"))
	page := models.Page[models.PropertySummary]{
		Data: []models.PropertySummary{
			{ID: "1", Name: "Casa Moderna", AddressProperty: "La Calera", PriceProperty: 850000000},
		},
		TotalCount: 42,
		PageNumber: pageNumber,
		PageSize:   10,
		TotalPages: 5,
	}
	json.NewEncoder(w).Encode(models.OK(page, "Properties retrieved successfully"))
}

func defaultFilter() models.PropertyFilter {
	return models.PropertyFilter{PageNumber: DefaultPageNumber, PageSize: DefaultPageSize}
}

func TestFetchPropertiesLoadsState(t *testing.T) {
	srv := newListServer(t)
	store := NewStore(New(srv.URL))

	store.FetchProperties(context.Background(), defaultFilter())

	state := store.Snapshot()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
	require.Len(t, state.Properties, 1)
	assert.Equal(t, "Casa Moderna", state.Properties[0].Name)
	assert.Equal(t, 42, state.TotalCount)
	assert.Equal(t, 5, state.TotalPages)
	assert.Equal(t, 1, state.CurrentPage)
}

func TestFetchPropertiesDedupsIdenticalFilters(t *testing.T) {
	srv := newListServer(t)
	store := NewStore(New(srv.URL))

	store.FetchProperties(context.Background(), defaultFilter())
	store.FetchProperties(context.Background(), defaultFilter())

	assert.Equal(t, int64(1), srv.hits.Load())
}

func TestFetchPropertiesRetriesAfterError(t *testing.T) {
	srv := newListServer(t)
	store := NewStore(New(srv.URL))

	srv.fail.Store(true)
	store.FetchProperties(context.Background(), defaultFilter())
	require.NotEmpty(t, store.Snapshot().Err)

	// identical filters, but the previous fetch failed: must hit the server again
	srv.fail.Store(false)
	store.FetchProperties(context.Background(), defaultFilter())

	assert.Equal(t, int64(2), srv.hits.Load())
	state := store.Snapshot()
	assert.Empty(t, state.Err)
	assert.Len(t, state.Properties, 1)
}

func TestFetchPropertiesErrorKeepsStaleData(t *testing.T) {
	srv := newListServer(t)
	store := NewStore(New(srv.URL))

	store.FetchProperties(context.Background(), defaultFilter())
	require.Len(t, store.Snapshot().Properties, 1)

	srv.fail.Store(true)
	store.SetPage(context.Background(), 2)

	state := store.Snapshot()
	assert.Equal(t, "Error retrieving properties", state.Err)
	assert.False(t, state.Loading)
	assert.Len(t, state.Properties, 1, "last loaded page must survive a failed fetch")
}

func TestSetFiltersResetsPageNumber(t *testing.T) {
	srv := newListServer(t)
	store := NewStore(New(srv.URL))

	store.SetPage(context.Background(), 5)
	require.Equal(t, 5, store.Snapshot().Filters.PageNumber)

	name := "casa"
	store.SetFilters(context.Background(), FilterPatch{Name: &name}, true)

	state := store.Snapshot()
	assert.Equal(t, "casa", state.Filters.Name)
	assert.Equal(t, DefaultPageNumber, state.Filters.PageNumber)
}

func TestSetPagePreservesFilters(t *testing.T) {
	srv := newListServer(t)
	store := NewStore(New(srv.URL))

	name := "casa"
	min := 500000000.0
	store.SetFilters(context.Background(), FilterPatch{Name: &name, MinPrice: &min}, true)
	store.SetPage(context.Background(), 3)

	state := store.Snapshot()
	assert.Equal(t, "casa", state.Filters.Name)
	require.NotNil(t, state.Filters.MinPrice)
	assert.Equal(t, min, *state.Filters.MinPrice)
	assert.Equal(t, 3, state.Filters.PageNumber)
	assert.Equal(t, 3, state.CurrentPage)
}

func TestSetFiltersWithoutFetch(t *testing.T) {
	srv := newListServer(t)
	store := NewStore(New(srv.URL))

	name := "casa"
	store.SetFilters(context.Background(), FilterPatch{Name: &name}, false)

	assert.Equal(t, int64(0), srv.hits.Load())
	assert.Equal(t, "casa", store.Snapshot().Filters.Name)
}

func TestClearFilters(t *testing.T) {
	srv := newListServer(t)
	store := NewStore(New(srv.URL))

	name := "casa"
	min := 100.0
	store.SetFilters(context.Background(), FilterPatch{Name: &name, MinPrice: &min}, true)
	store.ClearFilters(context.Background())

	state := store.Snapshot()
	assert.Empty(t, state.Filters.Name)
	assert.Nil(t, state.Filters.MinPrice)
	assert.Equal(t, DefaultPageNumber, state.Filters.PageNumber)
	assert.Equal(t, DefaultPageSize, state.Filters.PageSize)
}

func TestSetFiltersClearPrices(t *testing.T) {
	srv := newListServer(t)
	store := NewStore(New(srv.URL))

	min := 100.0
	store.SetFilters(context.Background(), FilterPatch{MinPrice: &min}, false)
	require.NotNil(t, store.Snapshot().Filters.MinPrice)

	store.SetFilters(context.Background(), FilterPatch{ClearPrices: true}, false)
	assert.Nil(t, store.Snapshot().Filters.MinPrice)
}

func TestStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	firstArrived := make(chan struct{})
	var once sync.Once
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pageNumber") == "1" {
			once.Do(func() { close(firstArrived) })
			<-release
		}
		writeListResponse(w, r, false)
	}))
	defer srv.Close()

	store := NewStore(New(srv.URL))

	done := make(chan struct{})
	go func() {
		store.FetchProperties(context.Background(), defaultFilter())
		close(done)
	}()
	<-firstArrived

	// a newer navigation fires while page 1 is still in flight
	store.SetPage(context.Background(), 2)
	close(release)
	<-done

	state := store.Snapshot()
	assert.Equal(t, 2, state.CurrentPage, "slow page-1 response must not overwrite page 2")
	assert.Equal(t, 2, state.Filters.PageNumber)
	assert.False(t, state.Loading)
}
