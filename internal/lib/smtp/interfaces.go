package smtp

import "io"

// Client abstracts the SMTP client session so the sender service can be
// tested without a live mail server.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Dialer opens authenticated SMTP sessions.
type Dialer interface {
	Connect() (Client, error)
	GetSMTPUser() string
}
