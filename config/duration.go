package config

import (
	"fmt"
	"time"
)

// Duration is a time.Duration written as a string like "90s" in TOML.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText writes the duration in time.Duration.String form, so that
// project.toml round-trips through Encode and Parse.
func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts anything time.ParseDuration does. On error the
// duration is left unchanged.
func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("expires: %w", err)
	}
	*d = Duration(p)
	return nil
}
