package catalog

// store.go holds the canonical product collection.
//
// The Store keeps two collections: the original snapshot captured at load
// time (the rollback target, never mutated after ingestion) and the live
// working set that edits apply to. Every mutation path goes through a method
// here so the snapshot/working-set separation is enforceable; records are
// treated as immutable-by-replacement, so accessors return copies of the
// slices rather than deep copies of the records.

import "sync"

// Filters is the active filter criteria. A nil Category or Supplier means no
// constraint; an empty SearchTerm matches everything.
type Filters struct {
	Category   *string `json:"category"`
	Supplier   *string `json:"supplier"`
	SearchTerm string  `json:"searchTerm"`
}

// Store is the single source of truth for the canonical collection.
// All methods are safe for concurrent use, but ingestion itself is expected
// to be serialized: callers obtain a token from BeginIngest and the store
// ignores completions carrying a stale token, so a superseded slow ingestion
// cannot overwrite a newer one.
type Store struct {
	mu       sync.RWMutex
	original []Product
	products []Product
	selected *Product
	filters  Filters
	loading  bool
	err      error

	ingestSeq uint64

	// version increments on every change to products or filters and drives
	// the memoized filter projection.
	version     uint64
	projVersion uint64
	projValid   bool
	projection  []Product
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// SetProducts replaces both the original snapshot and the working set with
// list, and clears the loading flag.
func (s *Store) SetProducts(list []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyProducts(list)
}

// SetProductsFromCategoryStructure normalizes a category-structured source
// and then behaves as SetProducts.
func (s *Store) SetProductsFromCategoryStructure(categories CategoryProducts) {
	s.SetProducts(FromCategoryMap(categories))
}

// applyProducts is the single write path for full-collection replacement.
// Caller must hold the write lock.
func (s *Store) applyProducts(list []Product) {
	s.original = append([]Product(nil), list...)
	s.products = append([]Product(nil), list...)
	s.loading = false
	s.err = nil
	s.version++
}

// ResetToOriginal discards all edits: the working set becomes a fresh copy
// of the original snapshot, filters reset to their empty defaults and the
// selection is cleared.
func (s *Store) ResetToOriginal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]Product(nil), s.original...)
	s.filters = Filters{}
	s.selected = nil
	s.version++
}

// UpdateProduct replaces the working-set record whose ID matches updated.
// This is whole-record replacement: the caller carries forward unchanged
// fields. UpdatedAt is refreshed, and a matching selection is refreshed to
// the new value. Unknown IDs are a silent no-op. The original snapshot is
// never touched.
func (s *Store) UpdateProduct(updated Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != updated.ID {
			continue
		}
		updated.UpdatedAt = nowISO()
		s.products[i] = updated
		if s.selected != nil && s.selected.ID == updated.ID {
			sel := updated
			s.selected = &sel
		}
		s.version++
		return
	}
}

// SetFilter sets one of the named filter criteria ("category" or
// "supplier"). nil clears that constraint. Unknown keys are ignored.
func (s *Store) SetFilter(key string, value *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "category":
		s.filters.Category = value
	case "supplier":
		s.filters.Supplier = value
	default:
		return
	}
	s.version++
}

// SetSearchTerm replaces the free-text search term.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchTerm = term
	s.version++
}

// ClearFilters resets all three filter fields to their empty defaults.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = Filters{}
	s.version++
}

// SetSelectedProduct sets or clears the detail-view selection.
func (s *Store) SetSelectedProduct(p *Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p == nil {
		s.selected = nil
		return
	}
	sel := *p
	s.selected = &sel
}

// SetError records a user-facing ingestion error. nil clears it.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// SetLoading sets the loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// BeginIngest marks the store as loading and returns a token identifying
// this ingestion. Only the most recent token can complete or fail; earlier
// tokens become silent no-ops, guarding against a superseded slow ingestion
// settling after a newer one.
func (s *Store) BeginIngest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ingestSeq++
	s.loading = true
	s.err = nil
	return s.ingestSeq
}

// CompleteIngest applies the ingestion result for token. Returns false if a
// newer ingestion has started since token was issued, in which case the
// store is left untouched.
func (s *Store) CompleteIngest(token uint64, list []Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.ingestSeq {
		return false
	}
	s.applyProducts(list)
	return true
}

// FailIngest records an ingestion failure for token, leaving both
// collections untouched. Stale tokens are ignored.
func (s *Store) FailIngest(token uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.ingestSeq {
		return false
	}
	s.loading = false
	s.err = err
	return true
}

// Products returns a copy of the working set.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// OriginalProducts returns a copy of the original snapshot.
func (s *Store) OriginalProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.original...)
}

// Product returns the working-set record with the given id.
func (s *Store) Product(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// SelectedProduct returns the current selection, if any.
func (s *Store) SelectedProduct() (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return Product{}, false
	}
	return *s.selected, true
}

// Filters returns the active filter criteria.
func (s *Store) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Loading reports whether an ingestion is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded ingestion error, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Len returns the working-set size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Categories returns the distinct categories in the working set, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinct(s.products, func(p Product) string { return p.Category })
}

// Suppliers returns the distinct suppliers in the working set, sorted.
func (s *Store) Suppliers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinct(s.products, func(p Product) string { return p.Supplier })
}
