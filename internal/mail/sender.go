package mail

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vladislavdragonenkov/marketplace/internal/telemetry"
)

// Sender рендерит письма из очереди и передаёт их транспорту.
type Sender struct {
	renderer  *Renderer
	transport Transport
	logger    *log.Entry
}

// NewSender создаёт Sender.
func NewSender(renderer *Renderer, transport Transport, logger *log.Entry) *Sender {
	if logger == nil {
		logger = log.WithField("component", "mail-sender")
	}
	return &Sender{renderer: renderer, transport: transport, logger: logger}
}

// Deliver декодирует payload письма, рендерит и отправляет его.
func (s *Sender) Deliver(ctx context.Context, payload []byte) error {
	job, err := DecodeJob(payload)
	if err != nil {
		return err
	}
	return s.Send(ctx, job)
}

// Send рендерит и отправляет письмо.
func (s *Sender) Send(ctx context.Context, job Job) error {
	ctx, span := telemetry.Tracer().Start(ctx, "mail.send")
	defer span.End()
	span.SetAttributes(attribute.String("mail.template", job.Template), attribute.String("mail.id", job.ID))

	msg, err := s.renderer.Render(job)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return err
	}

	if err := s.transport.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		return fmt.Errorf("deliver mail %s: %w", job.ID, err)
	}

	s.logger.WithFields(log.Fields{
		"mail_id":  job.ID,
		"template": job.Template,
	}).Debug("mail delivered")
	return nil
}
