package output

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ccurefix/ccurefix-go/pkg/ccurefix/models"
	"github.com/xuri/excelize/v2"
)

var sampleRecords = []models.Record{
	{
		Numero:      "42",
		Name:        "Ana",
		DoorName:    "Puerta Norte",
		MessageType: "Admitido",
		MessageText: "Admitido 'Ana' (Card: 42) en 'Puerta Norte'.",
		DateTime:    "01/02/2024 10:15:30",
	},
	{
		Numero:      "007",
		MessageText: "Denegado (Card: 007).",
		MessageType: "Denegado",
	},
}

func TestToXLSX(t *testing.T) {
	f, err := ToXLSX(sampleRecords)
	if err != nil {
		t.Fatalf("ToXLSX failed: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); !reflect.DeepEqual(got, []string{SheetName}) {
		t.Fatalf("Expected single sheet %q, got %v", SheetName, got)
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], models.Columns) {
		t.Errorf("Unexpected header %q", rows[0])
	}
	if !reflect.DeepEqual(rows[1], sampleRecords[0].Values()) {
		t.Errorf("Unexpected first row %q", rows[1])
	}
	// leading zeros survive because cells are stored as strings
	if rows[2][0] != "007" {
		t.Errorf("Expected \"007\", got %q", rows[2][0])
	}
}

func TestSaveXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out_fixed.xlsx")
	if err := SaveXLSX(path, sampleRecords); err != nil {
		t.Fatalf("SaveXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to reopen: %v", err)
	}
	defer f.Close()

	v, err := f.GetCellValue(SheetName, "C2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if v != "Puerta Norte" {
		t.Errorf("Expected \"Puerta Norte\", got %q", v)
	}
}

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, nil); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected header only, got %d rows", len(rows))
	}
}
