package web

// handlers_export.go streams the current filtered view as a CSV download,
// using the same canonical column set the CSV importer recognizes so an
// export can be re-ingested.

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/ingrediq/catalog/internal/catalog"
)

// exportColumns is the canonical CSV column order.
var exportColumns = []string{
	"id", "name", "description", "category", "supplier",
	"price", "unit", "available", "item_number", "url",
	"createdAt", "updatedAt",
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	products := s.store.Filtered()

	filename := "products-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	cw.Write(exportColumns)
	for _, p := range products {
		cw.Write(exportRecord(p))
	}
	cw.Flush()
}

func exportRecord(p catalog.Product) []string {
	price := ""
	if p.Price != nil {
		price = strconv.FormatFloat(*p.Price, 'f', -1, 64)
	}
	return []string{
		p.ID,
		p.Name,
		p.Description,
		p.Category,
		p.Supplier,
		price,
		p.Unit,
		strconv.FormatBool(p.Available),
		p.ItemNumber,
		p.URL,
		p.CreatedAt,
		p.UpdatedAt,
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.history.Recent())
}
