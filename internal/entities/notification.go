package entities

// BookingEmailData feeds the HTML body of reservation notification emails.
type BookingEmailData struct {
	FullName      string
	Code          string
	VehicleName   string
	DateFormatted string
	TimeSlot      string
	Status        string
	CurrentYear   int
}
