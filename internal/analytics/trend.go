package analytics

import (
	"time"

	"stocklens/internal/domain/entity"
)

// TrendBucket is one calendar-day aggregation unit of a time-series report.
type TrendBucket struct {
	Date    string  `json:"date"` // Calendar date, entity.SaleDateLayout.
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Margin  float64 `json:"margin"` // Profit over revenue as a percentage; 0 when revenue is 0.
}

// DailyTrend buckets sales into exactly days calendar days ending on now's
// date (inclusive), oldest first. A sale belongs to a bucket when its sale
// date falls on that calendar day. Days without sales produce a zero-valued
// bucket; buckets are never omitted. Profit sums the stored per-sale profit.
func DailyTrend(sales []*entity.Sale, days int, now time.Time) []TrendBucket {
	if days <= 0 {
		return []TrendBucket{}
	}

	byDay := make(map[string]*TrendBucket, days)
	buckets := make([]TrendBucket, days)
	for i := range buckets {
		date := now.AddDate(0, 0, i-days+1).Format(entity.SaleDateLayout)
		buckets[i] = TrendBucket{Date: date}
		byDay[date] = &buckets[i]
	}

	for _, sale := range sales {
		bucket, ok := byDay[sale.SaleDay()]
		if !ok {
			continue
		}
		bucket.Revenue += sale.TotalAmount
		bucket.Profit += sale.Profit
	}

	for i := range buckets {
		if buckets[i].Revenue > 0 {
			buckets[i].Margin = buckets[i].Profit / buckets[i].Revenue * 100
		}
	}

	return buckets
}
