package mail

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Transport доставляет готовое письмо.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig описывает подключение к SMTP-серверу.
type SMTPConfig struct {
	Addr     string
	Username string
	Password string
	From     string
}

// SMTPTransport отправляет письма через net/smtp.
type SMTPTransport struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPTransport создаёт SMTP транспорт.
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	return &SMTPTransport{cfg: cfg, sendMail: smtp.SendMail}
}

// Send формирует MIME-сообщение и отправляет его.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return ErrRecipientRequired
	}

	var auth smtp.Auth
	if t.cfg.Username != "" {
		host, _, err := net.SplitHostPort(t.cfg.Addr)
		if err != nil {
			return fmt.Errorf("parse smtp addr: %w", err)
		}
		auth = smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, host)
	}

	if err := t.sendMail(t.cfg.Addr, auth, t.cfg.From, []string{msg.To}, buildMIME(t.cfg.From, msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}

func buildMIME(from string, msg Message) []byte {
	to := msg.To
	if msg.ToName != "" {
		to = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", msg.ToName), msg.To)
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)
	return []byte(b.String())
}

// LogTransport только пишет письмо в лог. Используется без SMTP_ADDR.
type LogTransport struct {
	logger *log.Entry
}

// NewLogTransport создаёт транспорт-заглушку.
func NewLogTransport(logger *log.Entry) *LogTransport {
	if logger == nil {
		logger = log.WithField("component", "mail-log-transport")
	}
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(_ context.Context, msg Message) error {
	t.logger.WithFields(log.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
		"bytes":   len(msg.HTMLBody),
	}).Info("mail delivered to log")
	return nil
}

var (
	_ Transport = (*SMTPTransport)(nil)
	_ Transport = (*LogTransport)(nil)
)
