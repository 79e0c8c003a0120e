// Package notify delivers best-effort customer emails for order events.
// Delivery is fire-and-forget: failures are logged, never surfaced to
// the request path.
package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Semzy1/abbas-delight-bakry/pkg/config"
	"github.com/Semzy1/abbas-delight-bakry/pkg/order"
)

// Sender sends one email synchronously. The Dispatcher wraps a Sender to
// make delivery asynchronous.
type Sender interface {
	SendOrderConfirmation(o order.Order) error
	SendStatusUpdate(o order.Order, message string) error
	Enabled() bool
}

// Mailer sends order emails over SMTP. When the transport is
// unconfigured every send is a silent no-op.
type Mailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// NewMailer builds a Mailer from the SMTP configuration.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	if cfg.Configured() {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
		m.dialer.SSL = cfg.Secure
	}
	return m
}

// Enabled reports whether the mail transport is configured.
func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

// SendOrderConfirmation emails the customer that their order was placed.
func (m *Mailer) SendOrderConfirmation(o order.Order) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nThank you for your order. Your order ID is %s. We will notify you when it is ready.\n\nBest regards,\nAbba's Delight Bakery",
		o.CustomerName, o.ID,
	)
	return m.send(o.CustomerEmail, "Order Confirmation - "+o.ID, body)
}

// SendStatusUpdate emails the customer a status-change message.
func (m *Mailer) SendStatusUpdate(o order.Order, message string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\n%s\n\nBest regards,\nAbba's Delight Bakery",
		o.CustomerName, message,
	)
	return m.send(o.CustomerEmail, "Order Status Update - "+o.ID, body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.dialer == nil {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
