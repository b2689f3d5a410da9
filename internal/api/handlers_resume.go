package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/tailorhq/tailor/internal/parser"
	"github.com/tailorhq/tailor/internal/resume"
)

func (s *Server) handleResumeParse(w http.ResponseWriter, r *http.Request) {
	rec, status, err := s.parseResumeUpload(w, r)
	if err != nil {
		jsonError(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"resume": rec})
}

// parseResumeUpload reads the multipart "file" field, runs the format
// parser, and structures the text. Returns an HTTP status alongside any
// error so handlers can share it.
func (s *Server) parseResumeUpload(w http.ResponseWriter, r *http.Request) (*resume.Record, int, error) {
	// Limit total request size, with headroom for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("file is required: %w", err)
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		return nil, http.StatusBadRequest, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
	if header.Size > s.cfg.MaxUploadBytes {
		return nil, http.StatusRequestEntityTooLarge,
			fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	text, err := p.Parse(file, filename)
	if err != nil {
		s.log.Error("resume parse failed", "filename", filename, "error", err)
		return nil, http.StatusUnprocessableEntity, fmt.Errorf("parse %s: %w", filename, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, http.StatusUnprocessableEntity, fmt.Errorf("no text content in %s", filename)
	}

	return resume.Structure(text), http.StatusOK, nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
