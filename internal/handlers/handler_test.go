package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix"
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/output"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = "Date/Time,Message Text\n" +
	"01/02/2024 10:15:30,Admitido 'Ana' (Card: 42)\n" +
	",en 'Puerta Norte'.\n" +
	",Denegado 'Luis' (Card: 7).\n"

func newTestHandler() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(ccurefix.DefaultOptions(), 0, logger)
}

func uploadRequest(t *testing.T, field, name, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		io.WriteString(fw, content)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadPreviewDownload(t *testing.T) {
	h := newTestHandler()
	mux := h.Routes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, uploadRequest(t, "file", "eventos.csv", sampleCSV))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	page := rec.Body.String()
	if !strings.Contains(page, "Puerta Norte") || !strings.Contains(page, "eventos_fixed.xlsx") {
		t.Errorf("Preview missing converted data:\n%s", page)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if name := attachmentName(t, rec.Header().Get("Content-Disposition")); name != "eventos_fixed.xlsx" {
		t.Errorf("Expected attachment eventos_fixed.xlsx, got %q", name)
	}

	f, err := excelize.OpenReader(rec.Body)
	if err != nil {
		t.Fatalf("Download is not a workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(output.SheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 records, got %d rows", len(rows))
	}
	if rows[1][2] != "Puerta Norte" || rows[2][0] != "7" {
		t.Errorf("Unexpected rows %q", rows)
	}
}

func attachmentName(t *testing.T, disposition string) string {
	t.Helper()

	kind, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		t.Fatalf("Invalid Content-Disposition %q: %v", disposition, err)
	}
	if kind != "attachment" {
		t.Errorf("Expected attachment disposition, got %q", disposition)
	}
	return params["filename"]
}

func TestDownloadNonASCIIFileName(t *testing.T) {
	h := newTestHandler()
	mux := h.Routes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, uploadRequest(t, "file", "Informe_Años.csv", sampleCSV))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "filename*=") {
		t.Errorf("Expected RFC 2231 filename* parameter, got %q", cd)
	}
	if name := attachmentName(t, cd); name != "Informe_Años_fixed.xlsx" {
		t.Errorf("Expected attachment Informe_Años_fixed.xlsx, got %q", name)
	}
}

func TestRecordsJSON(t *testing.T) {
	h := newTestHandler()
	mux := h.Routes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/records", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 before upload, got %d", rec.Code)
	}

	mux.ServeHTTP(httptest.NewRecorder(), uploadRequest(t, "file", "eventos.csv", sampleCSV))

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/records", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var report models.Report
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if report.BookName != "eventos.csv" || len(report.Records) != 2 {
		t.Errorf("Unexpected report %+v", report)
	}
	if report.Records[1].DateTime != "01/02/2024 10:15:30" {
		t.Errorf("Expected propagated date, got %q", report.Records[1].DateTime)
	}
}

func TestUploadWithoutFileIsNoop(t *testing.T) {
	h := newTestHandler()
	mux := h.Routes()

	mux.ServeHTTP(httptest.NewRecorder(), uploadRequest(t, "file", "eventos.csv", sampleCSV))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, uploadRequest(t, "", "", ""))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rec.Code)
	}

	name, report := h.current()
	if name != "eventos.csv" || report == nil || len(report.Records) != 2 {
		t.Errorf("Held report changed: %q %+v", name, report)
	}
}

func TestUploadReplacesPrevious(t *testing.T) {
	h := newTestHandler()
	mux := h.Routes()

	mux.ServeHTTP(httptest.NewRecorder(), uploadRequest(t, "file", "a.csv", sampleCSV))
	mux.ServeHTTP(httptest.NewRecorder(), uploadRequest(t, "file", "b.csv", "Message Text\nRechazado 'Eva'.\n"))

	name, report := h.current()
	if name != "b.csv" || len(report.Records) != 1 || report.Records[0].Name != "Eva" {
		t.Errorf("Expected only b.csv records, got %q %+v", name, report)
	}
}

func TestUploadUnsupported(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, uploadRequest(t, "file", "notes.txt", "hello"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
	if _, report := h.current(); report != nil {
		t.Error("Failed upload must not replace the held report")
	}
}

func TestUploadTooLarge(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(ccurefix.DefaultOptions(), 64, logger)

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, uploadRequest(t, "file", "big.csv", strings.Repeat("x", 4096)))
	if rec.Code != http.StatusRequestEntityTooLarge && rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 413 or 400, got %d", rec.Code)
	}
	if _, report := h.current(); report != nil {
		t.Error("Oversized upload must not be converted")
	}
}

func TestDownloadAndResetWithoutReport(t *testing.T) {
	h := newTestHandler()
	mux := h.Routes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/download", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}

	mux.ServeHTTP(httptest.NewRecorder(), uploadRequest(t, "file", "eventos.csv", sampleCSV))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reset", nil))
	if rec.Code != http.StatusSeeOther {
		t.Errorf("Expected 303, got %d", rec.Code)
	}
	if _, report := h.current(); report != nil {
		t.Error("Reset should discard the held report")
	}
}
