package pricing

// PriceViewResponse is the storefront contract for GET /api/priceView/{roomID}.
type PriceViewResponse struct {
	Prices *Table `json:"prices"`
}

// UpdateBasePricesRequest replaces all twelve base prices at once.
type UpdateBasePricesRequest struct {
	Jan float64 `json:"jan" validate:"gte=0"`
	Feb float64 `json:"feb" validate:"gte=0"`
	Mar float64 `json:"mar" validate:"gte=0"`
	Apr float64 `json:"apr" validate:"gte=0"`
	May float64 `json:"may" validate:"gte=0"`
	Jun float64 `json:"jun" validate:"gte=0"`
	Jul float64 `json:"jul" validate:"gte=0"`
	Aug float64 `json:"aug" validate:"gte=0"`
	Sep float64 `json:"sep" validate:"gte=0"`
	Oct float64 `json:"oct" validate:"gte=0"`
	Nov float64 `json:"nov" validate:"gte=0"`
	Dec float64 `json:"dec" validate:"gte=0"`
}

func (r *UpdateBasePricesRequest) asArray() [12]float64 {
	return [12]float64{r.Jan, r.Feb, r.Mar, r.Apr, r.May, r.Jun, r.Jul, r.Aug, r.Sep, r.Oct, r.Nov, r.Dec}
}

// AddRangeRequest creates a date-interval override in a month's bucket.
type AddRangeRequest struct {
	Month     string  `json:"month" validate:"required,month_key"`
	StartDate string  `json:"startDate" validate:"required"`
	EndDate   string  `json:"endDate" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
}

func monthIndex(key string) int {
	for i, k := range MonthKeys {
		if k == key {
			return i
		}
	}
	return -1
}
