package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

const (
	smtpGmailHost = "smtp.gmail.com"
	smtpGmailPort = 587

	senderEmailName    = "UIC MediCare"
	senderEmailAddress = "uicmedicare@gmail.com"
)

// AlertSender sends operational alert emails to clinic staff.
type AlertSender interface {
	SendLowStockAlert(to string, medicineName string, quantity int32, threshold int32, unit string) error
}

type GmailSender struct {
	client *mail.Client
}

func NewGmailSender(username, password string) (*GmailSender, error) {
	client, err := mail.NewClient(smtpGmailHost, mail.WithPort(smtpGmailPort), mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username), mail.WithPassword(password))
	if err != nil {
		return nil, err
	}
	if err = client.DialWithContext(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	return &GmailSender{
		client: client,
	}, nil
}

// SendLowStockAlert emails a branch nurse that a medicine dropped to or below
// its threshold.
func (sender *GmailSender) SendLowStockAlert(to string, medicineName string, quantity int32, threshold int32, unit string) error {
	msg := mail.NewMsg()

	if err := msg.FromFormat(senderEmailName, senderEmailAddress); err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}

	msg.Subject(fmt.Sprintf("Low stock: %s", medicineName))
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"%s is running low: %d %s on hand (threshold %d).\n\nPlease restock or request a transfer from another branch.",
		medicineName, quantity, unit, threshold,
	))

	if err := sender.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

var _ AlertSender = (*GmailSender)(nil)
