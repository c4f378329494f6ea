package db

import "time"

// Reservation statuses. Transitions are one-directional: a reservation is
// created as pending and ends up approved or cancelled, never back.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCancelled = "cancelled"
)

// TimeSlots is the fixed set of pickup slots offered per day.
var TimeSlots = []string{"09:00 AM", "11:00 AM", "01:00 PM", "03:00 PM", "05:00 PM"}

type Vehicle struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	IsAvailable    bool      `json:"is_available"`
	Seats          int       `json:"seats"`
	FuelType       string    `json:"fuel_type"`
	Transmission   string    `json:"transmission"`
	ImageURL       string    `json:"image_url"`
	Features       []string  `json:"features"`
	CreatedAt      time.Time `json:"created_at"`
}

type Reservation struct {
	ID              int       `json:"id"`
	Code            string    `json:"code"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	SpecialRequests string    `json:"special_requests"`
	VehicleID       int       `json:"vehicle_id"`
	VehicleName     string    `json:"vehicle_name,omitempty"`
	Date            time.Time `json:"date"`
	TimeSlot        string    `json:"time_slot"`
	Status          string    `json:"status"`
	CostCents       *int64    `json:"cost_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Message struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type Testimonial struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	Display   bool      `json:"display"`
	CreatedAt time.Time `json:"created_at"`
}

type Offer struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type InfoModal struct {
	ID        int                `json:"id"`
	Title     string             `json:"title"`
	Icon      string             `json:"icon"`
	Enabled   bool               `json:"enabled"`
	SortOrder int                `json:"sort_order"`
	Sections  []InfoModalSection `json:"sections,omitempty"`
}

type InfoModalSection struct {
	ID        int    `json:"id"`
	ModalID   int    `json:"modal_id"`
	Heading   string `json:"heading"`
	Body      string `json:"body"`
	Enabled   bool   `json:"enabled"`
	SortOrder int    `json:"sort_order"`
}

type Admin struct {
	ID           int
	Email        string
	PasswordHash string
}

// ValidTimeSlot reports whether slot is one of the offered pickup slots.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
