package web

// handlers_upload.go implements the ingestion endpoints.
//
// Each upload obtains an ingest token from the store before any parsing
// starts. The store only honors the most recent token, so a slow upload that
// settles after a newer one cannot overwrite it; the superseded request gets
// a superseded response instead of an error.

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ingrediq/catalog/internal/catalog"
	"github.com/ingrediq/catalog/internal/logging"
)

var errNoFile = errors.New("no file provided")

// uploadResponse is returned by all ingestion endpoints.
type uploadResponse struct {
	Records    int    `json:"records"`
	Source     string `json:"source,omitempty"`
	FileName   string `json:"fileName,omitempty"`
	Superseded bool   `json:"superseded,omitempty"`
}

// previewResponse is returned by the preview endpoint.
type previewResponse struct {
	Format   string            `json:"format"`
	Total    int               `json:"total"`
	Products []catalog.Product `json:"products"`
}

func (s *Server) handleUploadCSV(w http.ResponseWriter, r *http.Request) {
	data, name, err := s.readUploadFile(w, r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	token := s.store.BeginIngest()
	rows, err := catalog.DecodeCSV(bytes.NewReader(data))
	if err != nil {
		s.failIngest(w, r, token, catalog.SourceCSV, name, err)
		return
	}
	s.completeIngest(w, r, token, catalog.SourceCSV, name, catalog.NormalizeCSVRows(rows))
}

func (s *Server) handleUploadJSON(w http.ResponseWriter, r *http.Request) {
	data, name, err := s.readUploadFile(w, r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	token := s.store.BeginIngest()
	products, err := catalog.ParseJSON(data)
	if err != nil {
		s.failIngest(w, r, token, catalog.SourceJSON, name, err)
		return
	}
	s.completeIngest(w, r, token, catalog.SourceJSON, name, products)
}

func (s *Server) handleUploadXLSX(w http.ResponseWriter, r *http.Request) {
	data, name, err := s.readUploadFile(w, r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	token := s.store.BeginIngest()
	rows, err := catalog.DecodeXLSX(data)
	if err != nil {
		s.failIngest(w, r, token, catalog.SourceXLSX, name, err)
		return
	}
	s.completeIngest(w, r, token, catalog.SourceXLSX, name, catalog.NormalizeCSVRows(rows))
}

// handleUploadPreview normalizes an upload without touching the store, so
// the UI can show what an ingestion would produce. The format is chosen by
// file extension, falling back to JSON.
func (s *Server) handleUploadPreview(w http.ResponseWriter, r *http.Request) {
	data, name, err := s.readUploadFile(w, r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	var (
		products []catalog.Product
		format   string
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		format = "csv"
		rows, derr := catalog.DecodeCSV(bytes.NewReader(data))
		if derr != nil {
			s.respondError(w, r, derr, http.StatusBadRequest)
			return
		}
		products = catalog.NormalizeCSVRows(rows)
	case ".xlsx":
		format = "xlsx"
		rows, derr := catalog.DecodeXLSX(data)
		if derr != nil {
			s.respondError(w, r, derr, http.StatusBadRequest)
			return
		}
		products = catalog.NormalizeCSVRows(rows)
	default:
		format = "json"
		products, err = catalog.ParseJSON(data)
		if err != nil {
			s.respondError(w, r, err, http.StatusBadRequest)
			return
		}
	}

	total := len(products)
	if limit := s.cfg.Upload.PreviewRows; total > limit {
		products = products[:limit]
	}

	writeJSON(w, previewResponse{Format: format, Total: total, Products: products})
}

// readUploadFile extracts the multipart "file" field, bounded by the
// configured size limit.
func (s *Server) readUploadFile(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", errNoFile
		}
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

// completeIngest applies a successful ingestion and records it.
func (s *Server) completeIngest(w http.ResponseWriter, r *http.Request, token uint64, src catalog.IngestSource, name string, products []catalog.Product) {
	if !s.store.CompleteIngest(token, products) {
		// A newer ingestion started while this one was parsing.
		writeJSON(w, uploadResponse{Superseded: true})
		return
	}

	s.history.RecordSuccess(src, name, len(products))
	logging.FromContext(r.Context()).Info("catalog ingested",
		"source", src,
		"file", name,
		"records", len(products),
	)
	writeJSON(w, uploadResponse{Records: len(products), Source: string(src), FileName: name})
}

// failIngest records an ingestion failure and responds with the mapped
// user-facing message. The store's collections are left untouched.
func (s *Server) failIngest(w http.ResponseWriter, r *http.Request, token uint64, src catalog.IngestSource, name string, err error) {
	s.store.FailIngest(token, err)
	s.history.RecordFailure(src, name, err)

	status := http.StatusBadRequest
	if errors.Is(err, catalog.ErrUnrecognizedFormat) {
		status = http.StatusUnprocessableEntity
	}
	s.respondError(w, r, err, status)
}
