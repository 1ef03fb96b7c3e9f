package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		wantErr error
	}{
		{"empty", nil, ErrEmptyCatalog},
		{"valid", []Record{{ID: 1}, {ID: 2}}, nil},
		{"duplicate id", []Record{{ID: 1}, {ID: 1}}, ErrDuplicateID},
		{"zero id", []Record{{ID: 0}}, ErrInvalidID},
		{"negative id", []Record{{ID: -3}}, ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.records)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSpecMissingKeyIsEmpty(t *testing.T) {
	r := Record{ID: 1, Specs: map[SpecKey]string{SpecMaterial: "Kuningan"}}

	if got := r.Spec(SpecMaterial); got != "Kuningan" {
		t.Errorf("material = %q", got)
	}
	if got := r.Spec(SpecWarranty); got != "" {
		t.Errorf("missing warranty = %q, want empty", got)
	}

	// A record with no specs map at all behaves the same.
	bare := Record{ID: 2}
	if got := bare.Spec(SpecWeight); got != "" {
		t.Errorf("nil specs map = %q, want empty", got)
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		key  SpecKey
		want string
	}{
		{SpecMaterial, "Material"},
		{SpecDimensions, "Dimensi"},
		{SpecWeight, "Berat"},
		{SpecFinish, "Finishing"},
		{SpecCategory, "Kategori"},
		{SpecWarranty, "Garansi"},
		{SpecKey("custom"), "custom"},
	}
	for _, tt := range tests {
		if got := Label(tt.key); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestSpecOrderIsStable(t *testing.T) {
	order := SpecOrder()
	if len(order) != 6 {
		t.Fatalf("got %d keys", len(order))
	}
	if order[0] != SpecMaterial || order[len(order)-1] != SpecWarranty {
		t.Errorf("unexpected order: %v", order)
	}

	// Mutating the returned slice must not leak into the package.
	order[0] = SpecKey("tampered")
	if SpecOrder()[0] != SpecMaterial {
		t.Error("SpecOrder returned shared backing storage")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	records := []Record{
		{
			ID:          1,
			DisplayName: "Lentera Uji",
			ImageRef:    "lentera.png",
			Description: "Lentera untuk pengujian.",
			Specs: map[SpecKey]string{
				SpecMaterial:   "Kuningan",
				SpecDimensions: "20 x 20 x 35 cm",
			},
		},
		{ID: 2, DisplayName: "Cermin Uji"},
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := Save(path, records); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records", len(got))
	}
	if got[0].DisplayName != "Lentera Uji" {
		t.Errorf("name = %q", got[0].DisplayName)
	}
	if got[0].Spec(SpecDimensions) != "20 x 20 x 35 cm" {
		t.Errorf("dimensions = %q", got[0].Spec(SpecDimensions))
	}
	if got[1].Spec(SpecMaterial) != "" {
		t.Errorf("record without specs should read empty, got %q", got[1].Spec(SpecMaterial))
	}
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	data := "records:\n  - id: 1\n    name: a\n  - id: 1\n    name: b\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("got %v, want duplicate id error", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("records: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestByID(t *testing.T) {
	records := []Record{{ID: 3, DisplayName: "Tiga"}, {ID: 7, DisplayName: "Tujuh"}}

	r, ok := ByID(records, 7)
	if !ok || r.DisplayName != "Tujuh" {
		t.Errorf("ByID(7) = %+v, %v", r, ok)
	}
	if _, ok := ByID(records, 99); ok {
		t.Error("ByID(99) should miss")
	}
}

func TestDefaultCatalogValidates(t *testing.T) {
	records := Default()
	if err := Validate(records); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	for _, r := range records {
		if r.DisplayName == "" {
			t.Errorf("record %d has no name", r.ID)
		}
		if r.Spec(SpecMaterial) == "" {
			t.Errorf("record %d has no material", r.ID)
		}
	}
}
