// Package handlers serves the upload, preview and download pages of the
// web converter.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"sync"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix"
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/output"
)

// DefaultMaxUploadBytes caps the size of an uploaded file.
const DefaultMaxUploadBytes = 32 << 20

// Handler holds at most one converted file. Each upload replaces it.
type Handler struct {
	opts     ccurefix.Options
	maxBytes int64
	logger   *slog.Logger

	mu       sync.Mutex
	fileName string
	report   *models.Report
}

// NewHandler creates a Handler. maxBytes <= 0 uses DefaultMaxUploadBytes;
// a nil logger uses slog.Default().
func NewHandler(opts ccurefix.Options, maxBytes int64, logger *slog.Logger) *Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{opts: opts, maxBytes: maxBytes, logger: logger}
}

// Routes registers the handler's endpoints on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /upload", h.Upload)
	mux.HandleFunc("GET /download", h.Download)
	mux.HandleFunc("GET /api/records", h.Records)
	mux.HandleFunc("POST /reset", h.Reset)
	return mux
}

// current returns the held file name and report.
func (h *Handler) current() (string, *models.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fileName, h.report
}

func (h *Handler) replace(name string, report *models.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fileName = name
	h.report = report
}

// Index renders the upload form and a preview of the held report.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	name, report := h.current()

	page := output.Page{FileName: name}
	if report != nil {
		page.Preview = output.NewPreview(report.Records, h.opts.PreviewRows())
		page.DownloadName = ccurefix.FixedFileName(name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := output.RenderHTML(w, page); err != nil {
		h.logger.Error("render page", "error", err)
	}
}

// Upload converts the posted file and replaces the held report.
// Posting without a file leaves everything unchanged.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	file, hdr, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	report, err := ccurefix.ConvertReader(file, hdr.Filename, h.opts)
	if err != nil {
		h.logger.Warn("conversion failed", "file", hdr.Filename, "error", err)
		http.Error(w, "conversion failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.replace(hdr.Filename, report)
	h.logger.Info("file converted",
		"file", hdr.Filename,
		"rows", report.DataRows,
		"records", len(report.Records),
		"message_column", report.MessageColumn,
	)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Download sends the held report as a corrected workbook.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	name, report := h.current()
	if report == nil {
		http.Error(w, "no file converted", http.StatusNotFound)
		return
	}

	f, err := output.ToXLSX(report.Records)
	if err != nil {
		h.logger.Error("build workbook", "file", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.logger.Error("write workbook", "file", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	fixed := ccurefix.FixedFileName(name)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": fixed})
	if disposition == "" {
		disposition = "attachment"
	}
	w.Header().Set("Content-Disposition", disposition)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("send workbook", "file", fixed, "error", err)
		return
	}
	h.logger.Info("workbook downloaded", "file", fixed, "records", len(report.Records))
}

// Records returns the held report as JSON.
func (h *Handler) Records(w http.ResponseWriter, r *http.Request) {
	_, report := h.current()
	if report == nil {
		http.Error(w, "no file converted", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		h.logger.Warn("encode records", "error", err)
	}
}

// Reset discards the held report.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.replace("", nil)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
