package domain

import "strconv"

// Example is one labeled training row pulled from the warehouse: the
// behavior of a browsing session and whether the visitor added an item
// to the cart.
type Example struct {
	SessionID   string `json:"session_id"`
	Pageviews   int64  `json:"pageviews"`
	TimeOnSite  int64  `json:"time_on_site"`
	IsMobile    bool   `json:"is_mobile"`
	AddedToCart bool   `json:"added_to_cart"`
}

func (e *Example) Features() []float64 {
	mobile := 0.0
	if e.IsMobile {
		mobile = 1.0
	}
	return []float64{float64(e.Pageviews), float64(e.TimeOnSite), mobile}
}

func (e *Example) Label() float64 {
	if e.AddedToCart {
		return 1.0
	}
	return 0.0
}

// CSVHeader matches the column order of CSVRecord.
func CSVHeader() []string {
	return []string{"session_id", "pageviews", "time_on_site", "is_mobile", "added_to_cart"}
}

func (e *Example) CSVRecord() []string {
	return []string{
		e.SessionID,
		strconv.FormatInt(e.Pageviews, 10),
		strconv.FormatInt(e.TimeOnSite, 10),
		strconv.FormatBool(e.IsMobile),
		strconv.FormatBool(e.AddedToCart),
	}
}
