package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"realestate-listings/client"
	"realestate-listings/models"
)

// Handler renders the listing views. All query state lives in the client
// store; the handlers only translate requests into store actions and render
// the resulting snapshot.
type Handler struct {
	store  *client.Store
	api    *client.Client
	logger *slog.Logger
}

func NewHandler(api *client.Client, logger *slog.Logger) *Handler {
	return &Handler{store: client.NewStore(api), api: api, logger: logger}
}

type propertiesView struct {
	State    client.State
	MinPrice string
	MaxPrice string
	Pages    []int
}

type detailView struct {
	ID       string
	Property *models.PropertyDetail
	Err      string
}

// Properties handles GET /. The filter form, the pagination links and the
// clear action all land here and map onto one store transition each.
func (h *Handler) Properties(c echo.Context) error {
	ctx := c.Request().Context()

	switch {
	case c.QueryParam("clear") != "":
		h.store.ClearFilters(ctx)
	case c.QueryParam("page") != "":
		page, err := strconv.Atoi(c.QueryParam("page"))
		if err != nil || page < 1 {
			page = client.DefaultPageNumber
		}
		h.store.SetPage(ctx, page)
	case hasFilterParams(c):
		h.store.SetFilters(ctx, patchFromQuery(c), true)
	default:
		h.store.FetchProperties(ctx, h.store.Snapshot().Filters)
	}

	state := h.store.Snapshot()
	view := propertiesView{
		State:    state,
		MinPrice: formatPrice(state.Filters.MinPrice),
		MaxPrice: formatPrice(state.Filters.MaxPrice),
		Pages:    pageNumbers(state.TotalPages),
	}
	return c.Render(http.StatusOK, "properties.html", view)
}

// PropertyDetail handles GET /properties/:id. Detail views bypass the store;
// they fetch on demand like the original modal did.
func (h *Handler) PropertyDetail(c echo.Context) error {
	id := c.Param("id")
	view := detailView{ID: id}

	envelope, err := h.api.GetProperty(c.Request().Context(), id)
	switch {
	case err != nil:
		h.logger.Warn("failed to fetch property", "id", id, "error", err)
		view.Err = "Failed to load property"
	case !envelope.Success:
		view.Err = envelope.Message
	default:
		view.Property = envelope.Data
	}
	return c.Render(http.StatusOK, "property.html", view)
}

func hasFilterParams(c echo.Context) bool {
	params := c.QueryParams()
	for _, key := range []string{"name", "address", "minPrice", "maxPrice"} {
		if params.Has(key) {
			return true
		}
	}
	return false
}

// patchFromQuery treats the form as authoritative: text fields are always
// replaced and price bounds the form left blank are cleared.
func patchFromQuery(c echo.Context) client.FilterPatch {
	name := c.QueryParam("name")
	address := c.QueryParam("address")
	patch := client.FilterPatch{
		Name:        &name,
		Address:     &address,
		ClearPrices: true,
	}
	if value, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		patch.MinPrice = &value
	}
	if value, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		patch.MaxPrice = &value
	}
	return patch
}

func formatPrice(price *float64) string {
	if price == nil {
		return ""
	}
	return strconv.FormatFloat(*price, 'f', -1, 64)
}

func pageNumbers(totalPages int) []int {
	pages := make([]int, 0, totalPages)
	for page := 1; page <= totalPages; page++ {
		pages = append(pages, page)
	}
	return pages
}
