package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePairing(); err != nil {
		return err
	}

	if err := c.validateEncode(); err != nil {
		return err
	}

	return c.validateLog()
}

func (c *Config) validatePairing() error {
	cfg, err := c.PairingConfig()
	if err != nil {
		return fmt.Errorf("pairing: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("pairing: %w", err)
	}

	return nil
}

func (c *Config) validateEncode() error {
	if c.Encode.Threads <= 0 {
		return errors.New("encode.threads must be positive")
	}

	if strings.TrimSpace(c.Encode.OCIOConvert) == "" {
		return errors.New("encode.ocioconvert must be set")
	}

	if strings.TrimSpace(c.Encode.FFmpeg) == "" {
		return errors.New("encode.ffmpeg must be set")
	}

	if strings.TrimSpace(c.Encode.TempFolder) == "" {
		return errors.New("encode.temp_folder must be set")
	}

	return nil
}

func (c *Config) validateLog() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unsupported value %q", c.Log.Level)
	}

	return nil
}
