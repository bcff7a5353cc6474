package notify

import (
	"context"
	"fmt"
	"strings"

	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/queries"

	"github.com/wneessen/go-mail"
)

// Mailer sends booking confirmations over SMTP. The coordinator treats it
// as fire-and-forget; any error here ends up in the error sink only.
type Mailer struct {
	client *mail.Client
	cfg    config.SMTPConfig
}

func NewClient(cfg config.SMTPConfig) (*mail.Client, error) {
	return mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
}

func NewMailer(client *mail.Client, cfg config.SMTPConfig) *Mailer {
	return &Mailer{client: client, cfg: cfg}
}

func (m *Mailer) Notify(ctx context.Context, b *queries.BookingView) error {
	if b.CustomerEmail == nil || *b.CustomerEmail == "" {
		return errs.New("no email associated with booking")
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return errs.Wrap(err, "failed to set From address")
	}
	if err := msg.To(*b.CustomerEmail); err != nil {
		return errs.Wrap(err, "failed to set To address")
	}
	msg.Subject("Hamro Chalchitraghar Ticket Confirmation")
	msg.SetBodyString(mail.TypeTextPlain, confirmationBody(b))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, fmt.Sprintf("failed to send confirmation to %s", *b.CustomerEmail))
	}
	return nil
}

func confirmationBody(b *queries.BookingView) string {
	name := "customer"
	if b.CustomerName != nil {
		name = *b.CustomerName
	}
	return fmt.Sprintf(`Dear %s,

Your booking has been successfully confirmed!

Movie:      %s
Show Time:  %s
Hall:       %d
Seats:      %s
Booking ID: %s

Thank you for choosing Hamro Chalchitraghar.
Enjoy your movie!
`,
		name,
		b.MovieTitle,
		b.StartTime.Format("Mon, 02 Jan 2006 15:04"),
		b.HallNo,
		strings.Join(b.SeatNos, ", "),
		b.ID,
	)
}
