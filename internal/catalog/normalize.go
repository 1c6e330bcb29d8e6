package catalog

// normalize.go maps source-shaped records onto the canonical Product.
//
// Three entry points, one per source shape: CSV rows, flat JSON items, and
// category-structured JSON. All are pure and total: a missing or malformed
// field is resolved by defaulting, never raised as an error. The only errors
// this file produces are ingestion-level ones (invalid JSON syntax, an
// unrecognized top-level shape), surfaced by ParseJSON.

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrUnrecognizedFormat is returned when a JSON document is syntactically
// valid but matches neither supported shape: an array of items, or an object
// whose values are arrays of items.
var ErrUnrecognizedFormat = errors.New("unrecognized format: expected an array of products or a category-structured object")

// FromCSVRow converts a parsed CSV row to a Product.
// Column matching is case-insensitive (DecodeCSV lowercases header names).
// A row without an id gets the synthetic id "temp-<index>".
//
// Available defaults to false when the column is absent. This differs from
// the JSON paths, which default to true; the asymmetry is a source-format
// policy carried over from the historical importers and is pinned by tests.
func FromCSVRow(row CSVRow, index int) Product {
	id := stringify(row["id"])
	if id == "" {
		id = fmt.Sprintf("temp-%d", index)
	}

	now := nowISO()
	createdAt := stringify(row["createdat"])
	if createdAt == "" {
		createdAt = now
	}
	updatedAt := stringify(row["updatedat"])
	if updatedAt == "" {
		updatedAt = now
	}

	return Product{
		ID:           id,
		Name:         stringify(row["name"]),
		Description:  stringify(row["description"]),
		Category:     stringify(row["category"]),
		Supplier:     stringify(row["supplier"]),
		Price:        ToPrice(row["price"]),
		Unit:         stringify(row["unit"]),
		Available:    ToBool(row["available"], false),
		Applications: []string{},
		Badges:       []string{},
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// FromFlatItem converts an arbitrary JSON item to a Product using the alias
// tables. An item without an id gets a generated UUID. Available defaults to
// true when the field is absent.
func FromFlatItem(item map[string]any) Product {
	id := stringify(item["id"])
	if id == "" {
		id = uuid.New().String()
	}

	available := true
	if v, ok := firstPresent(item, availableAliases); ok {
		available = ToBool(v, true)
	}

	var price *float64
	if v, ok := firstPresent(item, priceAliases); ok {
		price = ToPrice(v)
	}

	var applications []string
	if v, ok := firstPresent(item, applicationsAliases); ok {
		applications = ToStringList(v)
	} else {
		applications = []string{}
	}

	var badges []string
	if v, ok := firstPresent(item, badgesAliases); ok {
		badges = ToStringList(v)
	} else {
		badges = []string{}
	}

	now := nowISO()

	return Product{
		ID:               id,
		Name:             aliasString(item, nameAliases, ""),
		Description:      aliasString(item, descriptionAliases, ""),
		Category:         aliasString(item, categoryAliases, DefaultCategory),
		Supplier:         aliasString(item, supplierAliases, DefaultSupplier),
		Price:            price,
		Unit:             aliasString(item, unitAliases, ""),
		Available:        available,
		ImageURL:         aliasString(item, imageURLAliases, ""),
		TechnicalDetails: aliasString(item, technicalDetailsAliases, ""),
		Applications:     applications,
		Badges:           badges,
		ItemNumber:       aliasString(item, itemNumberAliases, ""),
		URL:              aliasString(item, urlAliases, ""),
		CreatedAt:        aliasString(item, createdAtAliases, now),
		UpdatedAt:        aliasString(item, updatedAtAliases, now),
	}
}

// FromCategoryMap converts a category-structured source to a Product list.
// Items are normalized exactly like flat items except Category, which is
// always overwritten with the enclosing key: the structural key is
// authoritative even when the item carries its own category field.
//
// Go maps carry no insertion order, so category keys are sorted for
// deterministic output; within-category order is preserved. ParseJSON keeps
// the document's own key order instead, since the decoder sees it.
func FromCategoryMap(categories CategoryProducts) []Product {
	keys := make([]string, 0, len(categories))
	for key := range categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]categoryGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, categoryGroup{name: key, items: categories[key]})
	}
	return fromCategoryGroups(groups)
}

// categoryGroup is one category key and its items, in source order.
type categoryGroup struct {
	name  string
	items []map[string]any
}

func fromCategoryGroups(groups []categoryGroup) []Product {
	var products []Product
	for _, group := range groups {
		for _, item := range group.items {
			p := FromFlatItem(item)
			p.Category = group.name
			products = append(products, p)
		}
	}
	return products
}

// ParseJSON parses and normalizes a JSON catalog document.
//
// Format detection: a non-array object where at least one top-level value is
// an array is treated as category-structured; a top-level array is treated
// as flat; any other shape yields ErrUnrecognizedFormat. Syntax errors are
// wrapped and surfaced as ingestion failures.
func ParseJSON(data []byte) ([]Product, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// Bare string, number, bool or null at the top level.
		return nil, ErrUnrecognizedFormat
	}

	switch delim {
	case '[':
		return parseFlat(data)
	case '{':
		return parseCategoryStructured(dec)
	default:
		return nil, ErrUnrecognizedFormat
	}
}

// parseFlat normalizes a top-level array of items.
// Non-object elements normalize to fully-defaulted records rather than
// failing the ingestion; upstream data is expected to be inconsistent.
func parseFlat(data []byte) ([]Product, error) {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	products := make([]Product, 0, len(raw))
	for _, elem := range raw {
		item, _ := elem.(map[string]any)
		if item == nil {
			item = map[string]any{}
		}
		products = append(products, FromFlatItem(item))
	}
	return products, nil
}

// parseCategoryStructured walks the top-level object in document order,
// collecting each key's raw value, then normalizes every array-valued key as
// a category. Non-array values are ignored; a document with no array values
// at all is not category-structured and is rejected.
func parseCategoryStructured(dec *json.Decoder) ([]Product, error) {
	var groups []categoryGroup
	sawArray := false

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, ErrUnrecognizedFormat
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}

		trimmed := bytes.TrimLeft(raw, " \t\r\n")
		if len(trimmed) == 0 || trimmed[0] != '[' {
			continue
		}
		sawArray = true

		var elems []any
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}

		items := make([]map[string]any, 0, len(elems))
		for _, elem := range elems {
			item, _ := elem.(map[string]any)
			if item == nil {
				item = map[string]any{}
			}
			items = append(items, item)
		}
		groups = append(groups, categoryGroup{name: key, items: items})
	}

	if !sawArray {
		return nil, ErrUnrecognizedFormat
	}
	return fromCategoryGroups(groups), nil
}
