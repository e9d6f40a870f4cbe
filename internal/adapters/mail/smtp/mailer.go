package smtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	netsmtp "net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
)

const (
	DefaultPort = 465

	// implicitTLSPort speaks TLS from the first byte; other ports upgrade with
	// STARTTLS when the server offers it.
	implicitTLSPort = 465
	dialTimeout     = 30 * time.Second
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From defaults to Username.
	From string
}

type deliverFunc func(ctx context.Context, cfg Config, from string, to []string, msg []byte) error

type Mailer struct {
	cfg     Config
	now     func() time.Time
	deliver deliverFunc
}

var _ ports.Mailer = (*Mailer)(nil)

func NewMailer(cfg Config) *Mailer {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	return &Mailer{cfg: cfg, now: time.Now, deliver: deliver}
}

func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.From != ""
}

func (m *Mailer) Send(ctx context.Context, msg ports.Message) error {
	if !m.Configured() {
		return domain.ErrMailNotConfigured
	}
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("send mail: recipient is empty")
	}

	body, err := buildMessage(m.cfg.From, msg, m.now())
	if err != nil {
		return err
	}

	if err := m.deliver(ctx, m.cfg, m.cfg.From, []string{msg.To}, body); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}

	return nil
}

func buildMessage(from string, msg ports.Message, date time.Time) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", date.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
	b.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&b)
	if _, err := qp.Write([]byte(msg.HTMLBody)); err != nil {
		return nil, fmt.Errorf("encode mail body: %w", err)
	}
	if err := qp.Close(); err != nil {
		return nil, fmt.Errorf("encode mail body: %w", err)
	}

	return b.Bytes(), nil
}

func deliver(ctx context.Context, cfg Config, from string, to []string, msg []byte) error {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	tlsConfig := &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if cfg.Port == implicitTLSPort {
		dialer := &tls.Dialer{NetDialer: &net.Dialer{Timeout: dialTimeout}, Config: tlsConfig}
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	} else {
		dialer := &net.Dialer{Timeout: dialTimeout}
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := netsmtp.NewClient(conn, cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if cfg.Username != "" {
		auth := netsmtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt to %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}

	return client.Quit()
}
