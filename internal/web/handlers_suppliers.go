package web

// handlers_suppliers.go exposes the supplier feed: the index, per-supplier
// catalog ingestion, and display theming. Feed failures are transport
// failures: they abort the ingestion and leave the store untouched.

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ingrediq/catalog/internal/catalog"
)

func (s *Server) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.suppliers.Index(r.Context())
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, suppliers)
}

// handleSupplierProducts fetches a supplier's feed and ingests it, replacing
// the canonical collection like any other ingestion.
func (s *Server) handleSupplierProducts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "supplierID")

	sup, err := s.suppliers.Find(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	token := s.store.BeginIngest()
	products, err := s.suppliers.Products(r.Context(), sup)
	if err != nil {
		s.failIngest(w, r, token, catalog.SourceSupplier, sup.ProductsFile, err)
		return
	}
	s.completeIngest(w, r, token, catalog.SourceSupplier, sup.ProductsFile, products)
}

func (s *Server) handleSupplierTheme(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "supplierID")

	sup, err := s.suppliers.Find(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, http.StatusNotFound)
		return
	}

	theme, err := s.suppliers.Theme(r.Context(), sup)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}
	writeJSON(w, theme)
}
