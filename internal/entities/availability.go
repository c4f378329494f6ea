package entities

// AvailabilityResponse lists the calendar dates of a month that already carry
// an approved reservation. Dates are formatted YYYY-MM-DD.
type AvailabilityResponse struct {
	Month       string   `json:"month"`
	Today       string   `json:"today"`
	BookedDates []string `json:"booked_dates"`
}
