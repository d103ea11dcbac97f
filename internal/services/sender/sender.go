// Package sender composes and sends the PRO upgrade confirmation mail.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/lib/smtp"
	"github.com/neurobond/neurobond/internal/models"
)

// SenderService sends transactional mail over an SMTP dialer.
type SenderService struct {
	transport smtp.Dialer
	log       *slog.Logger
}

// NewSenderService creates a SenderService.
func NewSenderService(log *slog.Logger, transport smtp.Dialer) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendUpgradeConfirmation handles an upgrade event from the queue and
// mails the confirmation.
func (s *SenderService) SendUpgradeConfirmation(body []byte) error {
	var event models.UpgradeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{event.Email}
	subject := "Willkommen bei NEUROBOND PRO"
	bodyText := fmt.Sprintf("Hallo %s,\n\n"+
		"dein Upgrade auf NEUROBOND PRO ist abgeschlossen. "+
		"Alle Trainingsstufen, das vollständige Gefühlslexikon und das Dialog-Coaching sind jetzt freigeschaltet.\n\n"+
		"Viel Freude beim Üben!\nDein NEUROBOND Team",
		event.Name)

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}
	if err := wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	return client.Quit()
}
