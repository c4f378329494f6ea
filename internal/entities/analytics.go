package entities

import "time"

type DashboardStats struct {
	Vehicles        int `json:"vehicles"`
	Bookings        int `json:"bookings"`
	PendingBookings int `json:"pending_bookings"`
	Messages        int `json:"messages"`
}

type MonthlyBookings struct {
	Month    string `json:"month"` // YYYY-MM
	Bookings int    `json:"bookings"`
}

type VehiclePopularity struct {
	VehicleID int    `json:"vehicle_id"`
	Name      string `json:"name"`
	Bookings  int    `json:"bookings"`
}

type ActivityItem struct {
	Code        string    `json:"code"`
	FullName    string    `json:"full_name"`
	VehicleName string    `json:"vehicle_name"`
	Date        string    `json:"date"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AnalyticsReport struct {
	From               time.Time           `json:"from"`
	To                 time.Time           `json:"to"`
	TotalBookings      int                 `json:"total_bookings"`
	PendingBookings    int                 `json:"pending_bookings"`
	RevenueCents       int64               `json:"revenue_cents"`
	MonthlyBookings    []MonthlyBookings   `json:"monthly_bookings"`
	VehiclePopularity  []VehiclePopularity `json:"vehicle_popularity"`
	StatusDistribution map[string]int      `json:"status_distribution"`
	RecentActivity     []ActivityItem      `json:"recent_activity"`
}
