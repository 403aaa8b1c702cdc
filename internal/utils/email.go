package utils

import (
	"bytes"
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

func smtpClient() (*mail.Client, error) {
	return mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
}

func fromAddress() string {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@aurelia.in"
	}
	return from
}

// SendEmail sends one HTML mail, optionally attaching an invoice PDF.
func SendEmail(to, subject, htmlBody string, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	if err := msg.From(fromAddress()); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if pdfAttachment != nil {
		msg.AttachReader("invoice_aurelia.pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := smtpClient()
	if err != nil {
		return err
	}

	log.Println("📤 Sending e-mail to", to)
	return client.DialAndSend(msg)
}

// SendEmailMany fans the same mail out to several recipients in one message.
func SendEmailMany(to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(fromAddress()); err != nil {
		return err
	}
	if err := msg.To(to...); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := smtpClient()
	if err != nil {
		return err
	}

	log.Printf("📤 Sending e-mail to %d recipients", len(to))
	return client.DialAndSend(msg)
}
