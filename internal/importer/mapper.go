// Package importer turns heterogeneous tabular input into normalized
// product drafts ready for persistence.
package importer

import (
	"encoding/csv"
	"io"
	"strings"

	"stocklens/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// DefaultReorderLevel is applied when a row carries no usable reorder level.
const DefaultReorderLevel = 10

// ProductDraft is a product candidate mapped from one input row. Store and
// category assignment happen later, at submission time.
type ProductDraft struct {
	Name         string
	SKU          string
	CostPrice    float64
	SellingPrice float64
	Quantity     int
	ReorderLevel int
	Description  string
}

// ToEntity builds a product entity from the draft with the given owners.
func (d ProductDraft) ToEntity(storeID, categoryID uuid.UUID) *entity.Product {
	return &entity.Product{
		Name:         d.Name,
		SKU:          d.SKU,
		CategoryID:   categoryID,
		StoreID:      storeID,
		CostPrice:    d.CostPrice,
		SellingPrice: d.SellingPrice,
		Quantity:     d.Quantity,
		ReorderLevel: d.ReorderLevel,
		Description:  d.Description,
	}
}

// fieldTable maps lowercased header synonyms to draft field assignments.
// New synonyms are rows here, not new code paths.
var fieldTable = map[string]func(*ProductDraft, string){
	"name":         func(d *ProductDraft, v string) { d.Name = v },
	"product_name": func(d *ProductDraft, v string) { d.Name = v },
	"sku":          func(d *ProductDraft, v string) { d.SKU = v },
	"product_code": func(d *ProductDraft, v string) { d.SKU = v },
	"cost":         func(d *ProductDraft, v string) { d.CostPrice = cast.ToFloat64(v) },
	"cost_price":   func(d *ProductDraft, v string) { d.CostPrice = cast.ToFloat64(v) },
	"price":        func(d *ProductDraft, v string) { d.SellingPrice = cast.ToFloat64(v) },
	"selling_price": func(d *ProductDraft, v string) {
		d.SellingPrice = cast.ToFloat64(v)
	},
	"quantity":      func(d *ProductDraft, v string) { d.Quantity = cast.ToInt(v) },
	"stock":         func(d *ProductDraft, v string) { d.Quantity = cast.ToInt(v) },
	"reorder_level": assignReorderLevel,
	"min_stock":     assignReorderLevel,
	"description":   func(d *ProductDraft, v string) { d.Description = v },
}

// A zero or unparseable reorder level keeps the prefilled default, so an
// imported product is never silently exempt from low-stock alerts.
func assignReorderLevel(d *ProductDraft, v string) {
	if level := cast.ToInt(v); level != 0 {
		d.ReorderLevel = level
	}
}

// Mapper parses delimited text into product drafts.
type Mapper struct {
	reorderLevel int
}

// NewMapper creates a mapper. A non-positive defaultReorderLevel falls back
// to DefaultReorderLevel.
func NewMapper(defaultReorderLevel int) *Mapper {
	if defaultReorderLevel <= 0 {
		defaultReorderLevel = DefaultReorderLevel
	}

	return &Mapper{reorderLevel: defaultReorderLevel}
}

// Parse reads a CSV document whose first record is a header row and maps
// every following record to a product draft. Header matching is
// case-insensitive and synonym-based; values of unrecognized headers are
// appended to the description. Rows missing a name or SKU are dropped
// without error; the second return value counts them.
func (m *Mapper) Parse(r io.Reader) ([]ProductDraft, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	for i, column := range header {
		header[i] = strings.ToLower(strings.TrimSpace(column))
	}

	var drafts []ProductDraft
	var skipped int
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, 0, errors.WithStack(readErr)
		}

		draft := ProductDraft{ReorderLevel: m.reorderLevel}
		for i, value := range record {
			if i >= len(header) {
				break
			}
			value = strings.TrimSpace(value)

			assign, ok := fieldTable[header[i]]
			if !ok {
				if value != "" {
					draft.Description += " " + header[i] + ": " + value
				}

				continue
			}
			assign(&draft, value)
		}

		if draft.Name == "" || draft.SKU == "" {
			skipped++

			continue
		}
		drafts = append(drafts, draft)
	}

	return drafts, skipped, nil
}
