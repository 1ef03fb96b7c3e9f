package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Domain errors for catalog loading and validation.
var (
	// ErrEmptyCatalog indicates a catalog with no records.
	ErrEmptyCatalog = errors.New("catalog: no records")

	// ErrDuplicateID indicates two records sharing the same id.
	ErrDuplicateID = errors.New("catalog: duplicate record id")

	// ErrInvalidID indicates a record with a non-positive id.
	ErrInvalidID = errors.New("catalog: record id must be positive")
)

// SpecKey is one of the fixed ornament attribute keys. The set is closed;
// unknown keys in a catalog file are ignored by rendering.
type SpecKey string

const (
	SpecMaterial   SpecKey = "material"
	SpecDimensions SpecKey = "dimensions"
	SpecWeight     SpecKey = "weight"
	SpecFinish     SpecKey = "finish"
	SpecCategory   SpecKey = "category"
	SpecWarranty   SpecKey = "warranty"
)

var specOrder = []SpecKey{
	SpecMaterial, SpecDimensions, SpecWeight, SpecFinish, SpecCategory, SpecWarranty,
}

var specLabels = map[SpecKey]string{
	SpecMaterial:   "Material",
	SpecDimensions: "Dimensi",
	SpecWeight:     "Berat",
	SpecFinish:     "Finishing",
	SpecCategory:   "Kategori",
	SpecWarranty:   "Garansi",
}

// SpecOrder returns the attribute keys in display order.
func SpecOrder() []SpecKey {
	out := make([]SpecKey, len(specOrder))
	copy(out, specOrder)
	return out
}

// Label returns the display label for a spec key, or the raw key for
// anything outside the fixed set.
func Label(k SpecKey) string {
	if l, ok := specLabels[k]; ok {
		return l
	}
	return string(k)
}

// Record is one ornament in the showcase. Records are immutable once loaded.
type Record struct {
	ID          int                `yaml:"id"`
	DisplayName string             `yaml:"name"`
	ImageRef    string             `yaml:"image"`
	Description string             `yaml:"description"`
	Specs       map[SpecKey]string `yaml:"specs"`
}

// Spec returns the value for key, or an empty string when the record does
// not carry it. A missing key is not an error.
func (r Record) Spec(k SpecKey) string {
	return r.Specs[k]
}

type catalogFile struct {
	Records []Record `yaml:"records"`
}

// Load reads a yaml catalog file and validates it.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := Validate(f.Records); err != nil {
		return nil, err
	}
	return f.Records, nil
}

// Save writes records to a yaml catalog file.
func Save(path string, records []Record) error {
	data, err := yaml.Marshal(catalogFile{Records: records})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the invariants the scene relies on: at least one record,
// positive ids, no duplicates. The record count is fixed for the session;
// the wheel layout derives its angular step from it.
func Validate(records []Record) error {
	if len(records) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[int]bool, len(records))
	for _, r := range records {
		if r.ID <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidID, r.ID)
		}
		if seen[r.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

// ByID returns the record with the given id.
func ByID(records []Record, id int) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}
