// Package catalog provides the normalization and state-reconciliation engine
// for product-catalog data. It converts heterogeneous sources (CSV uploads,
// flat or category-structured JSON, supplier feeds, XLSX spreadsheets) into
// one canonical Product collection and holds that collection in a Store that
// tracks an original snapshot for rollback.
//
// This package has no UI or transport dependencies and can be used by any
// frontend.
package catalog

import "time"

// DefaultCategory is assigned when a JSON source carries no category field.
const DefaultCategory = "Uncategorized"

// DefaultSupplier is assigned when a source carries no supplier field.
const DefaultSupplier = "Unknown"

// Product is the canonical record all ingestion paths converge to.
//
// Price is nil when the source had no price or the value could not be parsed;
// downstream presentation treats nil as "no price", it is never an error.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Supplier         string   `json:"supplier"`
	Price            *float64 `json:"price,omitempty"`
	Unit             string   `json:"unit,omitempty"`
	Available        bool     `json:"available"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	TechnicalDetails string   `json:"technicalDetails,omitempty"`
	Applications     []string `json:"applications"`
	Badges           []string `json:"badges,omitempty"`
	ItemNumber       string   `json:"item_number,omitempty"`
	URL              string   `json:"url,omitempty"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// CSVRow is one parsed CSV (or spreadsheet) row: column name to raw cell
// value. Values are strings as delivered by the parser; absent columns are
// absent keys, not empty strings.
type CSVRow map[string]any

// CategoryProducts is the category-structured source shape: category name to
// the raw items published under it.
type CategoryProducts map[string][]map[string]any

// nowISO returns the current time as an ISO-8601 string, the canonical
// timestamp format for Product records.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
