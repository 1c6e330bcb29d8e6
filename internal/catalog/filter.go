package catalog

// filter.go computes the filtered view of the working set.
//
// The projection is the ordered subsequence of products matching the active
// criteria: a case-insensitive search term that substring-matches any
// field's string representation, plus exact category and supplier
// constraints. All three are conjunctive. The result is memoized on the
// store version, so repeated reads between mutations cost one slice copy.

import (
	"sort"
	"strconv"
	"strings"
)

// Filtered returns the products matching the active filters, in working-set
// order. The projection never mutates the working set.
func (s *Store) Filtered() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.projValid || s.projVersion != s.version {
		s.projection = projectFiltered(s.products, s.filters)
		s.projVersion = s.version
		s.projValid = true
	}
	return append([]Product(nil), s.projection...)
}

// projectFiltered applies filters to products, preserving order.
func projectFiltered(products []Product, filters Filters) []Product {
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesFilters(p, filters) {
			result = append(result, p)
		}
	}
	return result
}

func matchesFilters(p Product, filters Filters) bool {
	if filters.Category != nil && p.Category != *filters.Category {
		return false
	}
	if filters.Supplier != nil && p.Supplier != *filters.Supplier {
		return false
	}

	term := strings.TrimSpace(strings.ToLower(filters.SearchTerm))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(searchText(p)), term)
}

// searchText joins every field's string representation for substring search.
func searchText(p Product) string {
	fields := []string{
		p.ID,
		p.Name,
		p.Description,
		p.Category,
		p.Supplier,
		p.Unit,
		p.ImageURL,
		p.TechnicalDetails,
		p.ItemNumber,
		p.URL,
		p.CreatedAt,
		p.UpdatedAt,
		strconv.FormatBool(p.Available),
	}
	if p.Price != nil {
		fields = append(fields, strconv.FormatFloat(*p.Price, 'f', -1, 64))
	}
	fields = append(fields, p.Applications...)
	fields = append(fields, p.Badges...)
	return strings.Join(fields, "\x00")
}

// distinct collects the unique non-empty values of field across products.
func distinct(products []Product, field func(Product) string) []string {
	seen := make(map[string]bool)
	for _, p := range products {
		if v := field(p); v != "" {
			seen[v] = true
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
