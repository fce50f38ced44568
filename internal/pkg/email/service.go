package email

import (
	"bytes"
	"context"
	"html/template"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Sender is what the booking service depends on; nil-able when email is
// disabled by config.
type Sender interface {
	SendTemplate(ctx context.Context, to, toName, templateName, subject string, data interface{}) error
}

// Service handles email sending with templates. Sends are queued and
// drained by a single background worker so a slow SendGrid call never
// blocks a booking write.
type Service struct {
	client    *SendGridClient
	templates map[string]*template.Template
	queue     chan *queuedEmail
	wg        sync.WaitGroup
}

type queuedEmail struct {
	To           string
	ToName       string
	Subject      string
	TemplateName string
	Data         interface{}
}

// NewService creates the email service and starts its worker.
func NewService(config SendGridConfig) *Service {
	s := &Service{
		client:    NewSendGridClient(config),
		templates: make(map[string]*template.Template),
		queue:     make(chan *queuedEmail, 100),
	}

	s.loadTemplates()

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *Service) loadTemplates() {
	templates := map[string]string{
		TemplateBookingConfirmed: BookingConfirmedTemplate,
	}

	for name, content := range templates {
		tmpl, err := template.New(name).Parse(content)
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email template")
			continue
		}
		s.templates[name] = tmpl
	}
}

// SendTemplate queues a templated email. The queue is best-effort: when it
// is full the email is dropped with a log line rather than blocking the
// caller.
func (s *Service) SendTemplate(_ context.Context, to, toName, templateName, subject string, data interface{}) error {
	select {
	case s.queue <- &queuedEmail{To: to, ToName: toName, Subject: subject, TemplateName: templateName, Data: data}:
	default:
		log.Warn().Str("to", to).Str("template", templateName).Msg("Email queue full, dropping message")
	}
	return nil
}

func (s *Service) worker() {
	defer s.wg.Done()
	for item := range s.queue {
		tmpl, ok := s.templates[item.TemplateName]
		if !ok {
			log.Error().Str("template", item.TemplateName).Msg("Unknown email template")
			continue
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, item.Data); err != nil {
			log.Error().Err(err).Str("template", item.TemplateName).Msg("Failed to render email template")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err := s.client.Send(ctx, &Message{
			To:          item.To,
			ToName:      item.ToName,
			Subject:     item.Subject,
			HTMLContent: buf.String(),
		})
		cancel()
		if err != nil {
			log.Error().Err(err).Str("to", item.To).Msg("Failed to send email")
		}
	}
}

// Close drains the queue and stops the worker.
func (s *Service) Close() {
	close(s.queue)
	s.wg.Wait()
}
