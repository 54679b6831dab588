// Command mail-worker читает письма из Kafka и доставляет их через SMTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/marketplace/internal/domain"
	"github.com/vladislavdragonenkov/marketplace/internal/mail"
	"github.com/vladislavdragonenkov/marketplace/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/marketplace/internal/telemetry"
	"github.com/vladislavdragonenkov/marketplace/internal/version"
)

const (
	envKafkaBrokers = "MARKETPLACE_KAFKA_BROKERS"
	envGroupID      = "MARKETPLACE_MAIL_GROUP_ID"
	envMaxRetries   = "MARKETPLACE_MAIL_MAX_RETRIES"
	envSMTPAddr     = "MARKETPLACE_SMTP_ADDR"
	envSMTPUsername = "MARKETPLACE_SMTP_USERNAME"
	envSMTPPassword = "MARKETPLACE_SMTP_PASSWORD"
	envMailFrom     = "MARKETPLACE_MAIL_FROM"
	envOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"

	defaultGroupID    = "marketplace-mail-worker"
	defaultMaxRetries = 3
	defaultMailFrom   = "no-reply@marketplace.local"
)

type envLookup func(string) (string, bool)

type workerConfig struct {
	Brokers      []string
	GroupID      string
	MaxRetries   int
	SMTP         mail.SMTPConfig
	OTLPEndpoint string
}

func readWorkerConfig(lookup envLookup) (workerConfig, []string) {
	cfg := workerConfig{
		GroupID:    defaultGroupID,
		MaxRetries: defaultMaxRetries,
		SMTP:       mail.SMTPConfig{From: defaultMailFrom},
	}
	var warnings []string

	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	for _, broker := range strings.Split(get(envKafkaBrokers), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.Brokers = append(cfg.Brokers, broker)
		}
	}
	if v := get(envGroupID); v != "" {
		cfg.GroupID = v
	}
	if v := get(envMaxRetries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s: must be a positive integer, got %q", envMaxRetries, v))
		} else {
			cfg.MaxRetries = n
		}
	}
	cfg.SMTP.Addr = get(envSMTPAddr)
	cfg.SMTP.Username = get(envSMTPUsername)
	cfg.SMTP.Password, _ = lookup(envSMTPPassword)
	if v := get(envMailFrom); v != "" {
		cfg.SMTP.From = v
	}
	cfg.OTLPEndpoint = get(envOTLPEndpoint)

	return cfg, warnings
}

// newTransport выбирает SMTP, если задан адрес сервера, иначе письма только логируются.
func newTransport(cfg mail.SMTPConfig, logger *log.Entry) mail.Transport {
	if cfg.Addr == "" {
		logger.Warn("SMTP address is empty, mail will be logged instead of sent")
		return mail.NewLogTransport(logger.WithField("transport", "log"))
	}
	return mail.NewSMTPTransport(cfg)
}

// mailHandler доставляет письма из envelope с aggregate_type = mail; остальное пропускает.
func mailHandler(sender *mail.Sender, logger *log.Entry) kafka.EnvelopeHandler {
	return func(ctx context.Context, envelope kafka.Envelope) error {
		if envelope.AggregateType != domain.OutboxAggregateMail {
			logger.WithFields(log.Fields{
				"envelope_id":    envelope.ID,
				"aggregate_type": envelope.AggregateType,
			}).Debug("skip non-mail envelope")
			return nil
		}
		return sender.Deliver(ctx, envelope.Payload)
	}
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger := log.WithField("component", "mail-worker")

	cfg, warnings := readWorkerConfig(os.LookupEnv)
	for _, warning := range warnings {
		logger.Warn(warning)
	}
	if len(cfg.Brokers) == 0 {
		logger.Fatalf("%s is required", envKafkaBrokers)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracerProvider(ctx, cfg.OTLPEndpoint, "marketplace-mail-worker", version.GetVersion())
	if err != nil {
		logger.WithError(err).Fatal("init tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	renderer, err := mail.NewRenderer()
	if err != nil {
		logger.WithError(err).Fatal("load mail templates")
	}
	sender := mail.NewSender(renderer, newTransport(cfg.SMTP, logger), logger.WithField("component", "mail-sender"))

	dlqProducer, err := kafka.NewProducer(cfg.Brokers)
	if err != nil {
		logger.WithError(err).Fatal("create dlq producer")
	}
	defer func() {
		if err := dlqProducer.Close(); err != nil {
			logger.WithError(err).Warn("close dlq producer")
		}
	}()

	consumer, err := kafka.NewConsumerWithDLQ(
		cfg.Brokers,
		cfg.GroupID,
		[]string{kafka.TopicMail},
		kafka.HandleEnvelopes(mailHandler(sender, logger)),
		dlqProducer,
		cfg.MaxRetries,
	)
	if err != nil {
		logger.WithError(err).Fatal("create mail consumer")
	}

	if err := consumer.Start(ctx); err != nil {
		logger.WithError(err).Fatal("start mail consumer")
	}

	logger.WithFields(version.Fields()).WithFields(log.Fields{
		"brokers": cfg.Brokers,
		"group":   cfg.GroupID,
	}).Info("mail worker started")

	<-ctx.Done()

	if err := consumer.Stop(); err != nil {
		logger.WithError(err).Warn("stop mail consumer")
	}
	logger.Info("mail worker stopped")
}
