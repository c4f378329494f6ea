package service

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"rentaride/internal/config"
	"rentaride/internal/db"
	"rentaride/internal/entities"
)

const emailTemplate = `<html><body>
<p>Hello {{.FullName}},</p>
<p>Your RentaRide booking is <strong>{{.Status}}</strong>.</p>
<ul>
<li>Booking code: {{.Code}}</li>
<li>Vehicle: {{.VehicleName}}</li>
<li>Pickup: {{.DateFormatted}} at {{.TimeSlot}}</li>
</ul>
<p>Thank you for choosing RentaRide.</p>
<p>&copy; {{.CurrentYear}} RentaRide. All rights reserved.</p>
</body></html>`

// NotifyService delivers booking emails and SMS. Sends run in goroutines and
// only log on failure; a notification must never fail a booking operation.
type NotifyService struct {
	sendgridCfg config.SendGridConfig
	twilioCfg   config.TwilioConfig
	tmpl        *template.Template
}

func NewNotifyService(sendgridCfg config.SendGridConfig, twilioCfg config.TwilioConfig) *NotifyService {
	return &NotifyService{
		sendgridCfg: sendgridCfg,
		twilioCfg:   twilioCfg,
		tmpl:        template.Must(template.New("booking_email").Parse(emailTemplate)),
	}
}

// BookingCreated confirms intake: the reservation is pending review.
func (s *NotifyService) BookingCreated(res db.Reservation) {
	s.sendEmail(res, "received and pending review")
}

// BookingStatusChanged notifies the customer of an approve/reject decision by
// email and SMS.
func (s *NotifyService) BookingStatusChanged(res db.Reservation) {
	s.sendEmail(res, res.Status)
	s.sendSMS(res)
}

func (s *NotifyService) sendEmail(res db.Reservation, status string) {
	data := entities.BookingEmailData{
		FullName:      res.FullName,
		Code:          res.Code,
		VehicleName:   res.VehicleName,
		DateFormatted: res.Date.Format("02 Jan 2006"),
		TimeSlot:      res.TimeSlot,
		Status:        status,
		CurrentYear:   time.Now().Year(),
	}

	subject := fmt.Sprintf("Your RentaRide booking is %s - Code: %s", status, res.Code)
	plainBody := fmt.Sprintf(
		"Hello %s,\n\nYour RentaRide booking is %s.\n\n"+
			"Booking code: %s\n"+
			"Vehicle: %s\n"+
			"Pickup: %s at %s\n\n"+
			"Thank you for choosing RentaRide.",
		data.FullName, status, data.Code, data.VehicleName, data.DateFormatted, data.TimeSlot,
	)

	var htmlBody bytes.Buffer
	if err := s.tmpl.Execute(&htmlBody, data); err != nil {
		logrus.WithError(err).WithField("code", res.Code).Error("error rendering booking email")
	}

	go func() {
		if err := s.deliverEmail(res.Email, res.FullName, subject, plainBody, htmlBody.String()); err != nil {
			logrus.WithError(err).WithField("code", res.Code).Error("booking email delivery failed")
		}
	}()
}

func (s *NotifyService) deliverEmail(toEmail, toName, subject, plainBody, htmlBody string) error {
	if s.sendgridCfg.APIKey == "" || s.sendgridCfg.FromEmail == "" {
		return fmt.Errorf("sendgrid is not configured")
	}

	from := mail.NewEmail(s.sendgridCfg.FromName, s.sendgridCfg.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendgridCfg.APIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *NotifyService) sendSMS(res db.Reservation) {
	body := fmt.Sprintf("RentaRide: booking %s is %s. Pickup: %s at %s. Details in your email.",
		res.Code, res.Status, res.Date.Format("02 Jan"), res.TimeSlot)

	go func() {
		if err := s.deliverSMS(res.Phone, body); err != nil {
			logrus.WithError(err).WithField("code", res.Code).Error("booking SMS delivery failed")
		}
	}()
}

func (s *NotifyService) deliverSMS(toNumber, body string) error {
	if s.twilioCfg.AccountSID == "" || s.twilioCfg.AuthToken == "" || s.twilioCfg.FromNumber == "" {
		return fmt.Errorf("twilio is not configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.twilioCfg.AccountSID,
		Password: s.twilioCfg.AuthToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.twilioCfg.FromNumber)
	params.SetBody(body)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}
