package pricing

import (
	"math"
	"time"

	"github.com/aizah-hospitality/booking-api/internal/pkg/dateutil"
)

// Resolve returns the nightly rate for one calendar day. A nil table (not
// yet loaded) quotes DefaultNightly. Otherwise every bucket jan through dec is
// scanned in order and the first override range containing the day wins,
// irrespective of which bucket it is stored in; with no match the day's
// own month's base price applies.
func Resolve(day time.Time, t *Table) float64 {
	if t == nil {
		return DefaultNightly
	}

	d := dateutil.Date(day)
	for i := range t.Months {
		for _, r := range t.Months[i].Ranges {
			start := dateutil.Date(r.StartDate)
			end := dateutil.Date(r.EndDate)
			if !d.Before(start) && !d.After(end) {
				return r.Price
			}
		}
	}

	return t.Months[int(d.Month())-1].BasePrice
}

// Night is one entry of a stay's per-day breakdown.
type Night struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Quote is the priced summary of a candidate stay.
type Quote struct {
	Nights    int     `json:"nights"`
	Total     float64 `json:"total"`
	Breakdown []Night `json:"breakdown"`
}

// QuoteStay prices every night from start (inclusive) to end (exclusive).
// Callers guarantee end > start; the selection normalization upstream
// never produces zero-night ranges.
func QuoteStay(start, end time.Time, t *Table) Quote {
	var q Quote
	for d := dateutil.Date(start); d.Before(dateutil.Date(end)); d = dateutil.AddDays(d, 1) {
		price := Resolve(d, t)
		q.Breakdown = append(q.Breakdown, Night{Date: d, Price: price})
		q.Total += price
	}
	q.Nights = len(q.Breakdown)
	return q
}

// NightlyRate is the rounded average the storefront displays next to the
// night count.
func (q Quote) NightlyRate() float64 {
	if q.Nights == 0 {
		return 0
	}
	return math.Round(q.Total / float64(q.Nights))
}
