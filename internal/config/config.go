package config

import (
	"fmt"
	"strings"

	"paritybalance/internal/balance"
	"paritybalance/internal/report"
	"paritybalance/internal/scanner"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Keys shared by flags, env vars and config files.
const (
	KeyMode     = "mode"
	KeyFormat   = "format"
	KeyMaxCount = "max-count"
	KeyLogLevel = "log-level"
	KeyKeepLog  = "keep-log"
)

const (
	DefaultMode     = string(balance.ModeCount)
	DefaultFormat   = string(report.FormatText)
	DefaultMaxCount = scanner.DefaultMaxCount
	DefaultLogLevel = "info"
)

// Config holds resolved CLI configuration.
type Config struct {
	Mode     balance.Mode
	Format   report.Format
	MaxCount int
	LogLevel zerolog.Level
	KeepLog  bool
	Input    string // "" or "-" for stdin
}

// ParseBoolFlag accepts 1/0, true/false, yes/no, on/off. Anything else yields
// defaultValue.
func ParseBoolFlag(val string, defaultValue bool) bool {
	val = strings.TrimSpace(strings.ToLower(val))
	switch val {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func ValidateMode(raw string) (balance.Mode, error) {
	return balance.ParseMode(strings.TrimSpace(raw))
}

func ValidateFormat(raw string) (report.Format, error) {
	return report.ParseFormat(strings.TrimSpace(strings.ToLower(raw)))
}

func ValidateLogLevel(raw string) (zerolog.Level, error) {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	return lvl, nil
}

func ValidateMaxCount(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("max-count must be positive, got %d", n)
	}
	return n, nil
}

// FromViper resolves a Config from env vars, the config file and defaults.
// Command-line flags are layered on top by the caller.
func FromViper(v *viper.Viper) (*Config, error) {
	mode, err := ValidateMode(v.GetString(KeyMode))
	if err != nil {
		return nil, err
	}
	format, err := ValidateFormat(v.GetString(KeyFormat))
	if err != nil {
		return nil, err
	}
	maxCount, err := ValidateMaxCount(v.GetInt(KeyMaxCount))
	if err != nil {
		return nil, err
	}
	level, err := ValidateLogLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}

	return &Config{
		Mode:     mode,
		Format:   format,
		MaxCount: maxCount,
		LogLevel: level,
		KeepLog:  ParseBoolFlag(v.GetString(KeyKeepLog), false),
	}, nil
}
