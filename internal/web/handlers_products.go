package web

// handlers_products.go implements the product collection endpoints. The
// filter criteria live in the store, mirroring the frontend's event flow:
// query parameters on the list endpoint set the criteria, and the response
// is the memoized projection.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ingrediq/catalog/internal/catalog"
)

var errProductNotFound = errors.New("product not found")

// productListResponse is the list endpoint payload.
type productListResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
	Filters  catalog.Filters   `json:"filters"`
	Loading  bool              `json:"isLoading"`
	Error    string            `json:"error,omitempty"`
}

// handleListProducts returns the filtered projection. Query parameters, when
// present, update the store's filter criteria first: q (search term),
// category and supplier (empty value clears the constraint).
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Has("q") {
		s.store.SetSearchTerm(q.Get("q"))
	}
	if q.Has("category") {
		s.store.SetFilter("category", optional(q.Get("category")))
	}
	if q.Has("supplier") {
		s.store.SetFilter("supplier", optional(q.Get("supplier")))
	}

	resp := productListResponse{
		Products: s.store.Filtered(),
		Total:    s.store.Len(),
		Filters:  s.store.Filters(),
		Loading:  s.store.Loading(),
	}
	if err := s.store.Err(); err != nil {
		resp.Error = catalog.MapError(err).Message
	}
	writeJSON(w, resp)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	p, ok := s.store.Product(id)
	if !ok {
		s.respondError(w, r, errProductNotFound, http.StatusNotFound)
		return
	}
	writeJSON(w, p)
}

// handleUpdateProduct replaces one working-set record. The body carries the
// whole record; the caller is responsible for carrying forward unchanged
// fields. The original snapshot is unaffected.
func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	if _, ok := s.store.Product(id); !ok {
		s.respondError(w, r, errProductNotFound, http.StatusNotFound)
		return
	}

	var updated catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		s.respondError(w, r, errors.New("invalid JSON: "+err.Error()), http.StatusBadRequest)
		return
	}
	updated.ID = id

	s.store.UpdateProduct(updated)

	p, _ := s.store.Product(id)
	writeJSON(w, p)
}

func (s *Server) handleSelectProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	p, ok := s.store.Product(id)
	if !ok {
		s.respondError(w, r, errProductNotFound, http.StatusNotFound)
		return
	}

	s.store.SetSelectedProduct(&p)
	writeJSON(w, p)
}

func (s *Server) handleSelectedProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.store.SelectedProduct()
	if !ok {
		writeJSON(w, nil)
		return
	}
	writeJSON(w, p)
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	s.store.SetSelectedProduct(nil)
	w.WriteHeader(http.StatusNoContent)
}

// handleReset discards all session edits: the working set reverts to the
// original snapshot, filters and selection clear.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.store.ResetToOriginal()
	writeJSON(w, productListResponse{
		Products: s.store.Filtered(),
		Total:    s.store.Len(),
		Filters:  s.store.Filters(),
	})
}

func (s *Server) handleGetFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Filters())
}

// filtersRequest distinguishes absent fields from explicit nulls: an absent
// field leaves that criterion alone, an explicit null clears it.
type filtersRequest struct {
	Category   json.RawMessage `json:"category"`
	Supplier   json.RawMessage `json:"supplier"`
	SearchTerm *string         `json:"searchTerm"`
}

func (s *Server) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, errors.New("invalid JSON: "+err.Error()), http.StatusBadRequest)
		return
	}

	if err := s.applyFilterField("category", req.Category); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.applyFilterField("supplier", req.Supplier); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}
	if req.SearchTerm != nil {
		s.store.SetSearchTerm(*req.SearchTerm)
	}

	writeJSON(w, s.store.Filters())
}

func (s *Server) applyFilterField(key string, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}

	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return errors.New("invalid JSON: " + err.Error())
	}
	s.store.SetFilter(key, value)
	return nil
}

func (s *Server) handleClearFilters(w http.ResponseWriter, r *http.Request) {
	s.store.ClearFilters()
	writeJSON(w, s.store.Filters())
}

// handleListFacets returns the distinct categories and suppliers of the
// working set, for the filter dropdowns.
func (s *Server) handleListFacets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string][]string{
		"categories": s.store.Categories(),
		"suppliers":  s.store.Suppliers(),
	})
}

// optional maps an empty query value to nil (no constraint).
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
