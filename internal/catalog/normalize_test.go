package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestFromCSVRow(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		row := CSVRow{
			"id":        "p-1",
			"name":      "Milk",
			"category":  "Dairy",
			"supplier":  "Acme",
			"price":     "$3.50",
			"unit":      "1L",
			"available": "true",
		}

		p := FromCSVRow(row, 0)
		if p.ID != "p-1" || p.Name != "Milk" || p.Category != "Dairy" || p.Supplier != "Acme" {
			t.Errorf("unexpected product: %+v", p)
		}
		if p.Price == nil || *p.Price != 3.5 {
			t.Errorf("Price = %v, want 3.5", p.Price)
		}
		if !p.Available {
			t.Error("Available = false, want true")
		}
		if p.CreatedAt == "" || p.UpdatedAt == "" {
			t.Error("timestamps not populated")
		}
	})

	t.Run("missing id gets synthetic id", func(t *testing.T) {
		p := FromCSVRow(CSVRow{"name": "Milk"}, 7)
		if p.ID != "temp-7" {
			t.Errorf("ID = %q, want %q", p.ID, "temp-7")
		}
	})

	t.Run("available defaults to false", func(t *testing.T) {
		p := FromCSVRow(CSVRow{"name": "Milk"}, 0)
		if p.Available {
			t.Error("Available = true, want false when column absent")
		}
	})

	t.Run("empty slices not nil", func(t *testing.T) {
		p := FromCSVRow(CSVRow{}, 0)
		if p.Applications == nil || p.Badges == nil {
			t.Error("Applications/Badges should be empty, not nil")
		}
	})
}

func TestFromFlatItem_Aliases(t *testing.T) {
	tests := []struct {
		name  string
		item  map[string]any
		check func(t *testing.T, p Product)
	}{
		{
			name: "canonical keys",
			item: map[string]any{"id": "p-1", "name": "Flour", "supplier": "Acme"},
			check: func(t *testing.T, p Product) {
				if p.ID != "p-1" || p.Name != "Flour" || p.Supplier != "Acme" {
					t.Errorf("unexpected product: %+v", p)
				}
			},
		},
		{
			name: "alias keys",
			item: map[string]any{"product_name": "Flour", "vendor": "Acme", "pack_size": "25kg"},
			check: func(t *testing.T, p Product) {
				if p.Name != "Flour" {
					t.Errorf("Name = %q, want Flour (via product_name)", p.Name)
				}
				if p.Supplier != "Acme" {
					t.Errorf("Supplier = %q, want Acme (via vendor)", p.Supplier)
				}
				if p.Unit != "25kg" {
					t.Errorf("Unit = %q, want 25kg (via pack_size)", p.Unit)
				}
			},
		},
		{
			name: "first alias wins",
			item: map[string]any{"name": "Primary", "title": "Secondary"},
			check: func(t *testing.T, p Product) {
				if p.Name != "Primary" {
					t.Errorf("Name = %q, want Primary", p.Name)
				}
			},
		},
		{
			name: "image and technical detail aliases",
			item: map[string]any{"imageUrl": "https://img.example.com/x.png", "technicalDetails": "spec sheet"},
			check: func(t *testing.T, p Product) {
				if p.ImageURL != "https://img.example.com/x.png" {
					t.Errorf("ImageURL = %q", p.ImageURL)
				}
				if p.TechnicalDetails != "spec sheet" {
					t.Errorf("TechnicalDetails = %q", p.TechnicalDetails)
				}
			},
		},
		{
			name: "empty available string is a defined false",
			item: map[string]any{"name": "Flour", "available": ""},
			check: func(t *testing.T, p Product) {
				if p.Available {
					t.Error("Available = true, want false: only an absent field takes the default")
				}
			},
		},
		{
			name: "defaults applied",
			item: map[string]any{"name": "Flour"},
			check: func(t *testing.T, p Product) {
				if p.Category != DefaultCategory {
					t.Errorf("Category = %q, want %q", p.Category, DefaultCategory)
				}
				if p.Supplier != DefaultSupplier {
					t.Errorf("Supplier = %q, want %q", p.Supplier, DefaultSupplier)
				}
				if !p.Available {
					t.Error("Available = false, want default true for JSON items")
				}
				if p.Price != nil {
					t.Errorf("Price = %v, want nil", *p.Price)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, FromFlatItem(tt.item))
		})
	}
}

func TestFromFlatItem_GeneratesUniqueIDs(t *testing.T) {
	a := FromFlatItem(map[string]any{"name": "A"})
	b := FromFlatItem(map[string]any{"name": "B"})
	if a.ID == "" || b.ID == "" {
		t.Fatal("generated IDs must not be empty")
	}
	if a.ID == b.ID {
		t.Errorf("generated IDs collide: %q", a.ID)
	}
}

func TestFromCategoryMap_CategoryKeyWins(t *testing.T) {
	categories := CategoryProducts{
		"Dairy": {
			{"name": "Milk", "category": "Beverages"},
			{"name": "Butter"},
		},
		"Bakery": {
			{"name": "Bread"},
		},
	}

	products := FromCategoryMap(categories)
	if len(products) != 3 {
		t.Fatalf("len = %d, want 3", len(products))
	}

	// Keys are sorted for deterministic output.
	if products[0].Category != "Bakery" || products[0].Name != "Bread" {
		t.Errorf("products[0] = %s/%s, want Bakery/Bread", products[0].Category, products[0].Name)
	}
	// The structural key overrides the item's own category field.
	if products[1].Category != "Dairy" || products[1].Name != "Milk" {
		t.Errorf("products[1] = %s/%s, want Dairy/Milk", products[1].Category, products[1].Name)
	}
	if products[2].Category != "Dairy" || products[2].Name != "Butter" {
		t.Errorf("products[2] = %s/%s, want Dairy/Butter", products[2].Category, products[2].Name)
	}
}

func TestParseJSON_FlatArray(t *testing.T) {
	data := []byte(`[
		{"id": "p-1", "name": "Milk", "price": 3.5, "category": "Dairy"},
		{"product_name": "Bread", "vendor": "Bakehouse"}
	]`)

	products, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("len = %d, want 2", len(products))
	}
	if products[0].ID != "p-1" || products[0].Price == nil || *products[0].Price != 3.5 {
		t.Errorf("products[0] = %+v", products[0])
	}
	if !products[0].Available {
		t.Error("Available = false, want true for JSON items")
	}
	if products[1].Name != "Bread" || products[1].Supplier != "Bakehouse" {
		t.Errorf("products[1] = %+v", products[1])
	}
	if products[1].ID == "" {
		t.Error("second item should receive a generated ID")
	}
}

func TestParseJSON_CategoryStructured(t *testing.T) {
	data := []byte(`{
		"Dairy": [{"name": "Milk"}, {"name": "Butter"}],
		"meta": {"version": 2},
		"Bakery": [{"name": "Bread", "category": "Other"}]
	}`)

	products, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("len = %d, want 3", len(products))
	}

	// Document order is preserved: Dairy entries before Bakery.
	wantCategories := []string{"Dairy", "Dairy", "Bakery"}
	for i, want := range wantCategories {
		if products[i].Category != want {
			t.Errorf("products[%d].Category = %q, want %q", i, products[i].Category, want)
		}
	}
	if products[2].Name != "Bread" {
		t.Errorf("products[2].Name = %q, want Bread", products[2].Name)
	}
}

func TestParseJSON_NonObjectArrayElements(t *testing.T) {
	products, err := ParseJSON([]byte(`[{"name": "Milk"}, "junk", 42]`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("len = %d, want 3", len(products))
	}
	for _, p := range products[1:] {
		if p.ID == "" || p.Category != DefaultCategory || p.Supplier != DefaultSupplier {
			t.Errorf("defaulted record not fully populated: %+v", p)
		}
	}
}

func TestParseJSON_UnrecognizedFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bare string", `"hello"`},
		{"bare number", `42`},
		{"object without array values", `{"a": 1, "b": {"c": 2}}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.data))
			if !errors.Is(err, ErrUnrecognizedFormat) {
				t.Errorf("ParseJSON(%s) error = %v, want ErrUnrecognizedFormat", tt.data, err)
			}
		})
	}
}

func TestParseJSON_InvalidSyntax(t *testing.T) {
	_, err := ParseJSON([]byte(`{"Dairy": [`))
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	if errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("syntax error misreported as format error: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("error = %q, want invalid JSON wrapping", err)
	}
}

func TestSourceFormatDefaults_Asymmetry(t *testing.T) {
	// The CSV path defaults availability to false, the JSON paths to true.
	csvP := FromCSVRow(CSVRow{"name": "Milk"}, 0)
	jsonP := FromFlatItem(map[string]any{"name": "Milk"})

	if csvP.Available {
		t.Error("CSV default: Available = true, want false")
	}
	if !jsonP.Available {
		t.Error("JSON default: Available = false, want true")
	}
}
