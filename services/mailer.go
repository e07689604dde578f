package services

import (
	"fmt"
	"net/smtp"

	"staybook/config"
)

// EmailSender is the outbound-mail collaborator. Handlers and services only
// see this interface; the SMTP implementation is wired once at startup.
type EmailSender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	host     string
	port     string
	from     string
	password string
}

func NewSMTPSenderFromEnv() *SMTPSender {
	return &SMTPSender{
		host:     config.GetEnvDefault("SMTP_HOST", "smtp.gmail.com"),
		port:     config.GetEnvDefault("SMTP_PORT", "587"),
		from:     config.GetEnv("EMAIL_USER"),
		password: config.GetEnv("EMAIL_PASS"),
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.from, to, subject, body))
	auth := smtp.PlainAuth("", s.from, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, msg)
}

func VerificationEmailBody(name, code string) string {
	return fmt.Sprintf(`Hi %s,

Welcome! Use the following code to verify your email address:

    %s

The code expires in 15 minutes. If you did not create an account, you can
safely ignore this email.

Your Hotel Team`, name, code)
}

func PasswordResetEmailBody(name, code string) string {
	return fmt.Sprintf(`Hi %s,

We received a request to reset your password. Your reset code is:

    %s

The code expires in 10 minutes. If you did not request a reset, you can
safely ignore this email.

Your Hotel Team`, name, code)
}

func PasswordChangedEmailBody(name, changedAt string) string {
	return fmt.Sprintf(`Hi %s,

Your password was changed on %s.

If you did not make this change, please contact support immediately.

Your Hotel Team`, name, changedAt)
}

func BookingConfirmedEmailBody(firstname string, bookingID uint, hotelName, roomType, checkIn, checkOut, receiptURL string) string {
	receiptLine := ""
	if receiptURL != "" {
		receiptLine = fmt.Sprintf("View your receipt: %s\n\n", receiptURL)
	}

	return fmt.Sprintf(`Hi %s,

Your booking #%d is confirmed.
Hotel: %s
Room: %s
Check-in: %s
Check-out: %s

%sThank you for booking with us!
Your Hotel Team`, firstname, bookingID, hotelName, roomType, checkIn, checkOut, receiptLine)
}
