package entity

import (
	"time"

	"github.com/google/uuid"
)

// SaleDateLayout is the calendar-date layout used for trend bucketing and
// date-window comparisons. A sale belongs to a trend bucket when its sale
// date, formatted with this layout, equals the bucket's date.
const SaleDateLayout = "2006-01-02"

// Sale represents a completed sale transaction recorded by the data source.
//
// Profit carries the value precomputed upstream at the time of sale; the
// dashboard summary trusts it as-is, while the profitability analysis
// recomputes profit from the matched product's cost price. The two figures
// can diverge and both are kept on purpose.
type Sale struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the sale.
	ProductID   uuid.UUID `json:"product_id"`   // The product that was sold. May reference a product outside the current snapshot.
	StoreID     uuid.UUID `json:"store_id"`     // The store the sale happened in.
	Quantity    int       `json:"quantity"`     // Units sold in this transaction.
	TotalAmount float64   `json:"total_amount"` // Revenue of this transaction.
	Profit      float64   `json:"profit"`       // Profit as recorded by the data source.
	SaleDate    time.Time `json:"sale_date"`    // Calendar date of the sale.
}

// SaleDay returns the calendar-date portion of the sale date.
func (s *Sale) SaleDay() string {
	return s.SaleDate.Format(SaleDateLayout)
}
