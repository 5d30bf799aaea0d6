package ports

import "context"

// EmailMessage mirrors the payload of the hosted email-sending API.
type EmailMessage struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}
