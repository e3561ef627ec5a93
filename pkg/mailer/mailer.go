package mailer

import (
	"context"
	"errors"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

var (
	// ErrConnection means the SMTP server could not be reached or refused us
	ErrConnection = errors.New("smtp connection failed")
	// ErrSend means the server was reached but the message was not accepted
	ErrSend = errors.New("smtp send failed")
)

// Settings carries one SMTP endpoint's connection parameters.
type Settings struct {
	Host   string
	Port   int
	Secure bool
	User   string
	Pass   string
	From   string
}

// Dispatcher wraps the SMTP client. It holds no state of its own; every
// call connects with the settings it is handed.
type Dispatcher struct{}

// New creates a new Dispatcher
func New() *Dispatcher {
	return &Dispatcher{}
}

func newClient(settings Settings) (*mail.Client, error) {
	if settings.Host == "" {
		return nil, errors.New("no SMTP host configured")
	}

	opts := []mail.Option{
		mail.WithPort(settings.Port),
	}
	if settings.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(settings.User),
			mail.WithPassword(settings.Pass),
		)
	}
	if settings.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	return mail.NewClient(settings.Host, opts...)
}

// Verify dials the server and disconnects without sending anything.
func (d *Dispatcher) Verify(ctx context.Context, settings Settings) error {
	client, err := newClient(settings)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return client.Close()
}

// Send delivers a plain-text message. The sender falls back to the
// authenticated user when no from-address was configured.
func (d *Dispatcher) Send(ctx context.Context, settings Settings, to, subject, body string) error {
	client, err := newClient(settings)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	from := settings.From
	if from == "" {
		from = settings.User
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("%w: invalid from address %q: %v", ErrSend, from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: invalid recipient %q: %v", ErrSend, to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	return nil
}
