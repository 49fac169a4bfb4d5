package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/misionantigua/backend/internal/mailer"
	"github.com/misionantigua/backend/internal/model"
	"github.com/misionantigua/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo       repository.ContactRepository
	sender     mailer.Sender
	adminEmail string
	fromName   string
	fromEmail  string
}

// NewContactService creates a ContactService that persists through repo
// and notifies through sender. adminEmail receives the alert copy of
// every submission; fromName/fromEmail identify the sender in outbound
// mail and in test-send metadata.
func NewContactService(repo repository.ContactRepository, sender mailer.Sender, adminEmail, fromName, fromEmail string) ContactService {
	return &contactServiceImpl{
		repo:       repo,
		sender:     sender,
		adminEmail: adminEmail,
		fromName:   fromName,
		fromEmail:  fromEmail,
	}
}

// Submit inserts the contact, then sends the submitter receipt and the
// admin alert in that order. The insert must complete first: both email
// bodies are built from the stored values.
func (s *contactServiceImpl) Submit(ctx context.Context, c *model.Contact) error {
	if err := s.repo.Insert(ctx, c); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	slog.Info("contact stored", "id", c.ID, "email", c.Email, "subject", c.Subject)

	if err := s.sender.Send(ctx, receiptMessage(c, s.fromName)); err != nil {
		slog.Error("receipt email failed", "id", c.ID, "to", c.Email, "error", err)
		return fmt.Errorf("%w: receipt: %v", ErrNotifyFailed, err)
	}
	slog.Info("receipt email sent", "id", c.ID, "to", c.Email)

	if err := s.sender.Send(ctx, alertMessage(c, s.adminEmail)); err != nil {
		slog.Error("admin alert email failed", "id", c.ID, "to", s.adminEmail, "error", err)
		return fmt.Errorf("%w: admin alert: %v", ErrNotifyFailed, err)
	}
	slog.Info("admin alert email sent", "id", c.ID, "to", s.adminEmail)

	return nil
}

// List returns all stored submissions, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}

// SendTest sends a single ad-hoc message, defaulting subject and body.
func (s *contactServiceImpl) SendTest(ctx context.Context, to, subject, body string) (*TestSendInfo, error) {
	if subject == "" {
		subject = "Correo de prueba"
	}
	if body == "" {
		body = "Este es un correo de prueba."
	}

	msg := mailer.Message{
		To:       to,
		Subject:  subject,
		TextBody: body,
		HTMLBody: fmt.Sprintf("<p>%s</p>", html.EscapeString(body)),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("test email: %w", err)
	}

	return &TestSendInfo{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      to,
		Subject: subject,
	}, nil
}

// receiptMessage builds the acknowledgment sent to the submitter.
func receiptMessage(c *model.Contact, fromName string) mailer.Message {
	return mailer.Message{
		To:      c.Email,
		Subject: fmt.Sprintf("Hemos recibido tu mensaje: %s", c.Subject),
		TextBody: fmt.Sprintf(
			"Hola %s,\n\nGracias por contactarnos. Hemos recibido tu mensaje y pronto nos pondremos en contacto contigo.\n\nSaludos,\n%s",
			c.FullName, fromName),
		HTMLBody: fmt.Sprintf(
			"<p>Hola <strong>%s</strong>,</p><p>Gracias por contactarnos. Hemos recibido tu mensaje y pronto nos pondremos en contacto contigo.</p><p>Saludos,<br>%s</p>",
			html.EscapeString(c.FullName), html.EscapeString(fromName)),
	}
}

// alertMessage builds the admin notification, with reply-to pointing at
// the submitter so answering the alert answers the person.
func alertMessage(c *model.Contact, adminEmail string) mailer.Message {
	return mailer.Message{
		To:      adminEmail,
		Subject: fmt.Sprintf("Nuevo mensaje de contacto: %s", c.Subject),
		ReplyTo: fmt.Sprintf("%s <%s>", c.FullName, c.Email),
		TextBody: fmt.Sprintf(
			"Nuevo mensaje recibido desde el formulario de contacto.\n\nNombre: %s\nEmail: %s\nTeléfono: %s\n\nMensaje:\n%s",
			c.FullName, c.Email, c.Phone, c.Message),
		HTMLBody: fmt.Sprintf(
			"<h3>Nuevo mensaje recibido desde el formulario de contacto</h3><p><strong>Nombre:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Teléfono:</strong> %s</p><p><strong>Mensaje:</strong><br>%s</p>",
			html.EscapeString(c.FullName), html.EscapeString(c.Email), html.EscapeString(c.Phone), html.EscapeString(c.Message)),
	}
}
