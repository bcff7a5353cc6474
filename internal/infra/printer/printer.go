// Package printer renders box-office tickets into a spool directory a
// physical printer daemon picks up. Best-effort by contract.
package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
	"cinema-booking/internal/usecase/queries"
)

type SpoolPrinter struct {
	dir string
}

func NewSpoolPrinter(cfg config.PrinterConfig) *SpoolPrinter {
	return &SpoolPrinter{dir: cfg.SpoolDir}
}

func (p *SpoolPrinter) Print(_ context.Context, b *queries.BookingView) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return errs.Wrap(err, "failed to create spool directory")
	}

	path := filepath.Join(p.dir, fmt.Sprintf("ticket-%s.txt", b.ID))
	if err := os.WriteFile(path, []byte(renderTicket(b)), 0o644); err != nil {
		return errs.Wrap(err, "failed to spool ticket")
	}
	return nil
}

func renderTicket(b *queries.BookingView) string {
	return fmt.Sprintf(`Hamro Chalchitraghar
----------------------------
Movie:      %s
Show Time:  %s
Hall:       %d
Seats:      %s
Booking ID: %s
----------------------------
Thank you for visiting!
`,
		b.MovieTitle,
		b.StartTime.Format("Mon, 02 Jan 2006 15:04"),
		b.HallNo,
		strings.Join(b.SeatNos, ", "),
		b.ID,
	)
}
