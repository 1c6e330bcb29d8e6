package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeCSV(t *testing.T) {
	input := "Name,Category,Price,Available\nMilk,Dairy,$3.50,true\nBread,Bakery,2.00,false\n"

	rows, err := DecodeCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}

	// Header names are lowercased.
	if rows[0]["name"] != "Milk" || rows[0]["category"] != "Dairy" {
		t.Errorf("rows[0] = %v", rows[0])
	}
	if rows[1]["price"] != "2.00" || rows[1]["available"] != "false" {
		t.Errorf("rows[1] = %v", rows[1])
	}
}

func TestDecodeCSV_ShortRowsLeaveKeysAbsent(t *testing.T) {
	input := "name,category,price\nMilk,Dairy\n"

	rows, err := DecodeCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if _, ok := rows[0]["price"]; ok {
		t.Error("price key should be absent for a short row")
	}
}

func TestDecodeCSV_SkipsEmptyRows(t *testing.T) {
	input := "name,category\nMilk,Dairy\n,\nBread,Bakery\n"

	rows, err := DecodeCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("len = %d, want 2 (empty row skipped)", len(rows))
	}
}

func TestDecodeCSV_EmptyFile(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyCSV) {
		t.Errorf("error = %v, want ErrEmptyCSV", err)
	}
}

func TestDecodeCSV_LazyQuoting(t *testing.T) {
	// Bare quotes inside a field are an Excel artifact, not a structural
	// failure; the decode succeeds with the quotes kept in the cell.
	input := "name,category\nMilk \"grade A\" whole,Dairy\n"

	rows, err := DecodeCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0]["name"] != `Milk "grade A" whole` || rows[0]["category"] != "Dairy" {
		t.Errorf("rows[0] = %v", rows[0])
	}
}

func TestDecodeCSV_BOMAndFormulaArtifacts(t *testing.T) {
	input := "\uFEFFname,item_number\nMilk,=\"00123\"\n"

	rows, err := DecodeCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if rows[0]["name"] != "Milk" {
		t.Errorf("BOM not stripped from header: %v", rows[0])
	}
	if rows[0]["item_number"] != "00123" {
		t.Errorf("formula prefix not stripped: %v", rows[0]["item_number"])
	}
}

func TestNormalizeCSVRows(t *testing.T) {
	input := "name,category,price\nMilk,Dairy,$3.50\nBread,Bakery,2\n"

	rows, err := DecodeCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}

	products := NormalizeCSVRows(rows)
	if len(products) != 2 {
		t.Fatalf("len = %d, want 2", len(products))
	}
	if products[0].ID != "temp-0" || products[1].ID != "temp-1" {
		t.Errorf("synthetic ids = %q, %q", products[0].ID, products[1].ID)
	}
	if products[0].Price == nil || *products[0].Price != 3.5 {
		t.Errorf("products[0].Price = %v, want 3.5", products[0].Price)
	}
	if products[0].Available || products[1].Available {
		t.Error("Available should default to false for CSV rows")
	}
}
