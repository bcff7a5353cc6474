package bootstrap

import (
	"log/slog"

	"cinema-booking/internal/infra/notify"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier builds the SMTP confirmation mailer. Without an SMTP host the
// engine runs with notifications disabled; the booking path never depends
// on mail delivery.
func NewNotifier(cfg config.Config) commands.Notifier {
	if !cfg.SMTP.Enabled() {
		slog.Info("SMTP not configured, booking confirmation emails disabled")
		return nil
	}

	client, err := notify.NewClient(cfg.SMTP)
	if err != nil {
		slog.Warn("failed to build SMTP client, confirmation emails disabled", "error", err.Error())
		return nil
	}

	return notify.NewMailer(client, cfg.SMTP)
}
