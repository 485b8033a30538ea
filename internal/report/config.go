package report

import (
	"fmt"
	"time"

	"github.com/Sebastian1234123/sistema-farmacia/internal/analytics"
	v "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds the report engine tunables.
type Config struct {
	Timezone          string `mapstructure:"timezone"`
	ExpiryHorizonDays int    `mapstructure:"expiry_horizon_days"`
	TopN              int    `mapstructure:"top_n"`
	GrowthWindow      int    `mapstructure:"growth_window"`
	LowStockPreview   int    `mapstructure:"low_stock_preview"`
	ExpiringPreview   int    `mapstructure:"expiring_preview"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Timezone:          "America/Lima",
		ExpiryHorizonDays: analytics.DefaultExpiryHorizonDays,
		TopN:              analytics.DefaultTopN,
		GrowthWindow:      analytics.DefaultGrowthWindow,
		LowStockPreview:   5,
		ExpiringPreview:   5,
	}
}

// withDefaults fills zero values from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	if c.ExpiryHorizonDays == 0 {
		c.ExpiryHorizonDays = d.ExpiryHorizonDays
	}
	if c.TopN == 0 {
		c.TopN = d.TopN
	}
	if c.GrowthWindow == 0 {
		c.GrowthWindow = d.GrowthWindow
	}
	if c.LowStockPreview == 0 {
		c.LowStockPreview = d.LowStockPreview
	}
	if c.ExpiringPreview == 0 {
		c.ExpiringPreview = d.ExpiringPreview
	}
	return c
}

func (c *Config) Validate() error {
	return v.ValidateStruct(c,
		v.Field(&c.Timezone, v.Required, v.By(isLocation)),
		v.Field(&c.ExpiryHorizonDays, v.Min(1)),
		v.Field(&c.TopN, v.Min(1)),
		v.Field(&c.GrowthWindow, v.Min(1)),
		v.Field(&c.LowStockPreview, v.Min(1)),
		v.Field(&c.ExpiringPreview, v.Min(1)),
	)
}

func isLocation(value interface{}) error {
	name, _ := value.(string)
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown time zone %q", name)
	}
	return nil
}
