package mail

import (
	"context"
	"fmt"

	domain "dealer-finance-api/internal/domain/raterequest"

	gomail "gopkg.in/gomail.v2"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// StaffTo receives the new-lead notifications.
	StaffTo string
}

// Mailer sends the two lead notification emails over SMTP. Callers treat
// both sends as best-effort; Mailer itself just reports the transport error.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	staffTo string
}

func New(cfg Config) *Mailer {
	return &Mailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		staffTo: cfg.StaffTo,
	}
}

func (m *Mailer) NotifyStaff(_ context.Context, r *domain.RateRequest) error {
	body, err := renderStaffBody(r)
	if err != nil {
		return fmt.Errorf("render staff email: %w", err)
	}
	subject := "New finance rate request from " + r.Name
	return m.send(m.staffTo, subject, body)
}

func (m *Mailer) NotifyCustomer(_ context.Context, r *domain.RateRequest) error {
	body, err := renderCustomerBody(r)
	if err != nil {
		return fmt.Errorf("render customer email: %w", err)
	}
	return m.send(r.Email, "Your finance rate request", body)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
