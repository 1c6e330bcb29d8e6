package catalog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeXLSX(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"Name", "Category", "Price", "Available"},
		{"Milk", "Dairy", "$3.50", "true"},
		{"Bread", "Bakery", "2.00", ""},
	})

	rows, err := DecodeXLSX(data)
	if err != nil {
		t.Fatalf("DecodeXLSX() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if rows[0]["name"] != "Milk" || rows[0]["category"] != "Dairy" {
		t.Errorf("rows[0] = %v", rows[0])
	}
	if rows[1]["name"] != "Bread" {
		t.Errorf("rows[1] = %v", rows[1])
	}
}

func TestDecodeXLSX_AgreesWithCSVDefaults(t *testing.T) {
	data := buildWorkbook(t, [][]any{
		{"name", "price"},
		{"Milk", "3.50"},
	})

	rows, err := DecodeXLSX(data)
	if err != nil {
		t.Fatalf("DecodeXLSX() error = %v", err)
	}

	products := NormalizeCSVRows(rows)
	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}
	if products[0].ID != "temp-0" {
		t.Errorf("ID = %q, want temp-0", products[0].ID)
	}
	if products[0].Available {
		t.Error("Available = true, want the spreadsheet path to share the CSV false default")
	}
	if products[0].Price == nil || *products[0].Price != 3.5 {
		t.Errorf("Price = %v, want 3.5", products[0].Price)
	}
}

func TestDecodeXLSX_EmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	_, err := DecodeXLSX(buf.Bytes())
	if !errors.Is(err, ErrEmptyWorkbook) {
		t.Errorf("error = %v, want ErrEmptyWorkbook", err)
	}
}

func TestDecodeXLSX_NotAWorkbook(t *testing.T) {
	if _, err := DecodeXLSX([]byte("name,category\nMilk,Dairy\n")); err == nil {
		t.Error("expected error for non-XLSX input")
	}
}
