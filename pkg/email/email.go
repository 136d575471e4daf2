package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/jhillyerd/enmime"
)

// Message is a fully composed contact message. Sender and recipient are not
// part of it: both are always the configured service mailbox.
type Message struct {
	FromName string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

// Config describes the SMTP relay and the service account used to reach it
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	// Mailbox is the envelope sender and the only recipient
	Mailbox string
	// InsecureSkipVerify accepts self-signed or otherwise invalid relay certificates
	InsecureSkipVerify bool
}

// DialFunc opens an SMTP session to addr over implicit TLS
type DialFunc func(addr string, tlsConfig *tls.Config) (*smtp.Client, error)

// Dispatcher submits single messages to an SMTP relay. Every call opens its
// own connection; nothing is pooled, queued or retried.
type Dispatcher struct {
	cfg  Config
	dial DialFunc
	now  func() time.Time
}

type Option func(*Dispatcher)

// WithDialer replaces the implicit-TLS dialer
func WithDialer(dial DialFunc) Option {
	return func(d *Dispatcher) { d.dial = dial }
}

// WithClock overrides the Date header source
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func NewDispatcher(cfg Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:  cfg,
		dial: smtp.DialTLS,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IsConfigured checks if the dispatcher has usable relay credentials
func (d *Dispatcher) IsConfigured() bool {
	return d.cfg.Host != "" && d.cfg.Username != "" && d.cfg.Password != "" && d.cfg.Mailbox != ""
}

func (d *Dispatcher) addr() string {
	return net.JoinHostPort(d.cfg.Host, d.cfg.Port)
}

func (d *Dispatcher) connect(ctx context.Context) (*smtp.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		ServerName:         d.cfg.Host,
		InsecureSkipVerify: d.cfg.InsecureSkipVerify, //nolint:gosec // opt-in via SMTP_INSECURE_SKIP_VERIFY
		MinVersion:         tls.VersionTLS12,
	}

	c, err := d.dial(d.addr(), tlsConfig)
	if err != nil {
		return nil, fmt.Errorf("smtp dial %s: %w", d.addr(), err)
	}

	if d.cfg.Username != "" {
		if err := c.Auth(sasl.NewPlainClient("", d.cfg.Username, d.cfg.Password)); err != nil {
			c.Close()
			return nil, fmt.Errorf("smtp auth: %w", err)
		}
	}
	return c, nil
}

// Verify checks that the relay accepts a connection and the credentials
func (d *Dispatcher) Verify(ctx context.Context) error {
	c, err := d.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Noop(); err != nil {
		return fmt.Errorf("smtp noop: %w", err)
	}
	return c.Quit()
}

// Send performs one authenticated submission of msg and returns the
// Message-ID it was sent under.
func (d *Dispatcher) Send(ctx context.Context, msg *Message) (string, error) {
	messageID := GenerateMessageID(domainOf(d.cfg.Mailbox))

	raw, err := d.build(msg, messageID)
	if err != nil {
		return "", err
	}

	c, err := d.connect(ctx)
	if err != nil {
		return "", err
	}
	defer c.Close()

	if err := c.SendMail(d.cfg.Mailbox, []string{d.cfg.Mailbox}, bytes.NewReader(raw)); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	// DATA was accepted; a failed QUIT does not undo the send
	_ = c.Quit()
	return messageID, nil
}

func (d *Dispatcher) build(msg *Message, messageID string) ([]byte, error) {
	b := enmime.Builder().
		From(msg.FromName, d.cfg.Mailbox).
		To("", d.cfg.Mailbox).
		Subject(msg.Subject).
		Date(d.now()).
		Header("Message-ID", messageID).
		Text([]byte(msg.Text)).
		HTML([]byte(msg.HTML))
	if msg.ReplyTo != "" {
		b = b.ReplyTo("", msg.ReplyTo)
	}

	part, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build message: %w", err)
	}

	var buf bytes.Buffer
	if err := part.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	return buf.Bytes(), nil
}

func domainOf(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}
