//go:build unit

package config_test

import (
	"testing"
	"time"

	"cinema-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestBookingConfigValidate(t *testing.T) {
	valid := config.BookingConfig{
		LeaseTTL:       10 * time.Minute,
		SweepThreshold: 2 * time.Minute,
		SweepInterval:  time.Minute,
		MaxTxRetries:   3,
	}

	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("sweep threshold equal to lease TTL passes", func(t *testing.T) {
		cfg := valid
		cfg.SweepThreshold = cfg.LeaseTTL
		assert.NoError(t, cfg.Validate())
	})

	t.Run("sweep threshold above lease TTL is refused", func(t *testing.T) {
		cfg := valid
		cfg.SweepThreshold = cfg.LeaseTTL + time.Second
		err := cfg.Validate()
		assert.ErrorContains(t, err, "BOOKING_SWEEP_THRESHOLD")
	})

	t.Run("non-positive windows are refused", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*config.BookingConfig)
		}{
			{name: "zero lease TTL", mutate: func(c *config.BookingConfig) { c.LeaseTTL = 0 }},
			{name: "negative lease TTL", mutate: func(c *config.BookingConfig) { c.LeaseTTL = -time.Minute }},
			{name: "zero sweep threshold", mutate: func(c *config.BookingConfig) { c.SweepThreshold = 0 }},
			{name: "zero sweep interval", mutate: func(c *config.BookingConfig) { c.SweepInterval = 0 }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cfg := valid
				tc.mutate(&cfg)
				assert.Error(t, cfg.Validate())
			})
		}
	})

	t.Run("negative retry budget is refused", func(t *testing.T) {
		cfg := valid
		cfg.MaxTxRetries = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero retries means single attempt and passes", func(t *testing.T) {
		cfg := valid
		cfg.MaxTxRetries = 0
		assert.NoError(t, cfg.Validate())
	})
}
