package pricing

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultNightly is the rate quoted while no price table is loaded.
const DefaultNightly = 200

// MonthKeys are the wire names of the twelve buckets, in calendar order.
var MonthKeys = [12]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// Range is a date-interval price override. Bounds are inclusive at date
// granularity. A range lives in one month's bucket for storage, but its
// dates may fall anywhere in the calendar; resolution scans every bucket.
type Range struct {
	ID        uuid.UUID `json:"_id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Price     float64   `json:"price"`
}

// Month is one bucket of the table: a base nightly rate plus overrides.
type Month struct {
	BasePrice float64 `json:"basePrice"`
	Ranges    []Range `json:"ranges"`
}

// Table holds exactly twelve buckets, index 0 = January. Its JSON form is
// the month-keyed object the storefront consumes:
// {"jan":{"basePrice":300,"ranges":[...]}, ...}.
type Table struct {
	Months [12]Month
}

func (t Table) MarshalJSON() ([]byte, error) {
	out := make(map[string]Month, 12)
	for i, key := range MonthKeys {
		m := t.Months[i]
		if m.Ranges == nil {
			m.Ranges = []Range{}
		}
		out[key] = m
	}
	return json.Marshal(out)
}

func (t *Table) UnmarshalJSON(data []byte) error {
	var raw map[string]Month
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for i, key := range MonthKeys {
		t.Months[i] = raw[key]
	}
	return nil
}
