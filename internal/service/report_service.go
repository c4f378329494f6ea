package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"rentaride/internal/db"
	"rentaride/internal/entities"
)

const (
	defaultReportMonths = 12
	recentActivityLimit = 5
	popularityLimit     = 5
)

// ReportService computes the dashboard counters and the analytics report.
// Everything is recomputed from scratch on each call; at this data volume a
// full scan per request is cheaper than keeping aggregates in sync.
type ReportService struct {
	reservations ReservationStore
	vehicles     VehicleStore
	messages     MessageStore
}

func NewReportService(reservations ReservationStore, vehicles VehicleStore, messages MessageStore) *ReportService {
	return &ReportService{
		reservations: reservations,
		vehicles:     vehicles,
		messages:     messages,
	}
}

// DashboardStats issues the four counts concurrently and joins them.
func (s *ReportService) DashboardStats() (*entities.DashboardStats, error) {
	var (
		stats entities.DashboardStats
		wg    sync.WaitGroup
		mu    sync.Mutex
		first error
	)

	capture := func(err error) {
		if err != nil {
			mu.Lock()
			if first == nil {
				first = err
			}
			mu.Unlock()
		}
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		n, err := s.vehicles.Count()
		capture(err)
		stats.Vehicles = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.reservations.Count()
		capture(err)
		stats.Bookings = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.reservations.CountByStatus(db.StatusPending)
		capture(err)
		stats.PendingBookings = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.messages.Count()
		capture(err)
		stats.Messages = n
	}()
	wg.Wait()

	if first != nil {
		return nil, fmt.Errorf("error collecting dashboard stats: %w", first)
	}
	return &stats, nil
}

// Analytics aggregates the reservations of the trailing window of whole
// months (including the current one) together with the vehicle registry.
func (s *ReportService) Analytics(months int) (*entities.AnalyticsReport, error) {
	if months <= 0 {
		months = defaultReportMonths
	}

	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	from := to.AddDate(0, -months, 0)

	reservations, err := s.reservations.ListBetween(from, to)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.List("", "")
	if err != nil {
		return nil, err
	}

	// Vehicle id -> name lookup, built once per report.
	names := make(map[int]string, len(vehicles))
	for _, v := range vehicles {
		names[v.ID] = v.Name
	}

	report := &entities.AnalyticsReport{
		From:          from,
		To:            to,
		TotalBookings: len(reservations),
		StatusDistribution: map[string]int{
			db.StatusPending:   0,
			db.StatusApproved:  0,
			db.StatusCancelled: 0,
		},
	}

	monthIndex := make(map[string]int, months)
	for m := from; m.Before(to); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		monthIndex[key] = len(report.MonthlyBookings)
		report.MonthlyBookings = append(report.MonthlyBookings, entities.MonthlyBookings{Month: key})
	}

	perVehicle := make(map[int]int)
	for _, res := range reservations {
		report.StatusDistribution[res.Status]++
		if i, ok := monthIndex[res.Date.Format("2006-01")]; ok {
			report.MonthlyBookings[i].Bookings++
		}
		perVehicle[res.VehicleID]++

		if res.Status == db.StatusApproved {
			if res.CostCents != nil {
				report.RevenueCents += *res.CostCents
			}
			if len(report.RecentActivity) < recentActivityLimit {
				report.RecentActivity = append(report.RecentActivity, entities.ActivityItem{
					Code:        res.Code,
					FullName:    res.FullName,
					VehicleName: res.VehicleName,
					Date:        res.Date.Format(dateLayout),
					UpdatedAt:   res.UpdatedAt,
				})
			}
		}
	}
	report.PendingBookings = report.StatusDistribution[db.StatusPending]

	for id, count := range perVehicle {
		name, ok := names[id]
		if !ok {
			name = fmt.Sprintf("Vehicle %d", id)
		}
		report.VehiclePopularity = append(report.VehiclePopularity, entities.VehiclePopularity{
			VehicleID: id,
			Name:      name,
			Bookings:  count,
		})
	}
	sort.Slice(report.VehiclePopularity, func(i, j int) bool {
		a, b := report.VehiclePopularity[i], report.VehiclePopularity[j]
		if a.Bookings != b.Bookings {
			return a.Bookings > b.Bookings
		}
		return a.Name < b.Name
	})
	if len(report.VehiclePopularity) > popularityLimit {
		report.VehiclePopularity = report.VehiclePopularity[:popularityLimit]
	}

	return report, nil
}
