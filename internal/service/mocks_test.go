package service_test

import (
	"time"

	"github.com/stretchr/testify/mock"

	"rentaride/internal/db"
)

type MockReservationStore struct {
	mock.Mock
}

func (m *MockReservationStore) Create(res *db.Reservation) error {
	args := m.Called(res)
	return args.Error(0)
}

func (m *MockReservationStore) BookedDates(monthStart, monthEnd time.Time) ([]string, error) {
	args := m.Called(monthStart, monthEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockReservationStore) DateBooked(date time.Time) (bool, error) {
	args := m.Called(date)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationStore) GetByID(id int) (*db.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Reservation), args.Error(1)
}

func (m *MockReservationStore) GetByCode(code string) (*db.Reservation, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Reservation), args.Error(1)
}

func (m *MockReservationStore) List(status, search string) ([]db.Reservation, error) {
	args := m.Called(status, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Reservation), args.Error(1)
}

func (m *MockReservationStore) ListBetween(from, to time.Time) ([]db.Reservation, error) {
	args := m.Called(from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Reservation), args.Error(1)
}

func (m *MockReservationStore) UpdateStatusIfPending(id int, newStatus string) (int64, error) {
	args := m.Called(id, newStatus)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationStore) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockReservationStore) CountByStatus(status string) (int, error) {
	args := m.Called(status)
	return args.Int(0), args.Error(1)
}

func (m *MockReservationStore) CountByVehicle(vehicleID int) (int, error) {
	args := m.Called(vehicleID)
	return args.Int(0), args.Error(1)
}

type MockVehicleStore struct {
	mock.Mock
}

func (m *MockVehicleStore) List(availability, search string) ([]db.Vehicle, error) {
	args := m.Called(availability, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Vehicle), args.Error(1)
}

func (m *MockVehicleStore) GetByID(id int) (*db.Vehicle, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Vehicle), args.Error(1)
}

func (m *MockVehicleStore) Create(v *db.Vehicle) error {
	args := m.Called(v)
	return args.Error(0)
}

func (m *MockVehicleStore) Update(v *db.Vehicle) error {
	args := m.Called(v)
	return args.Error(0)
}

func (m *MockVehicleStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVehicleStore) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) Create(msg *db.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockMessageStore) List(read, search string) ([]db.Message, error) {
	args := m.Called(read, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Message), args.Error(1)
}

func (m *MockMessageStore) MarkRead(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMessageStore) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMessageStore) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type MockTestimonialStore struct {
	mock.Mock
}

func (m *MockTestimonialStore) Create(t *db.Testimonial) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTestimonialStore) ListVisible(limit int) ([]db.Testimonial, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Testimonial), args.Error(1)
}

func (m *MockTestimonialStore) ListAll() ([]db.Testimonial, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Testimonial), args.Error(1)
}

func (m *MockTestimonialStore) SetDisplay(id int, display bool) error {
	args := m.Called(id, display)
	return args.Error(0)
}

type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) ListOffers(limit int) ([]db.Offer, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Offer), args.Error(1)
}

func (m *MockContentStore) ListEnabledModals() ([]db.InfoModal, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.InfoModal), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingCreated(res db.Reservation) {
	m.Called(res)
}

func (m *MockNotifier) BookingStatusChanged(res db.Reservation) {
	m.Called(res)
}

type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) GetStalePendingReservationIDs(before time.Time) ([]int, error) {
	args := m.Called(before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockJobStore) UpdateReservationStatuses(ids []int, newStatus string) error {
	args := m.Called(ids, newStatus)
	return args.Error(0)
}
