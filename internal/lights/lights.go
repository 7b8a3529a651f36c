package lights

import (
	"context"
	"errors"
	"time"
)

// Outcome is how a single bulb command ended.
type Outcome int

const (
	Applied Outcome = iota
	DeviceNotFound
	DeviceUnreachable
	CapabilityUnavailable
	InvalidColour
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case DeviceNotFound:
		return "device not found"
	case DeviceUnreachable:
		return "device unreachable"
	case CapabilityUnavailable:
		return "capability unavailable"
	case InvalidColour:
		return "invalid colour"
	}
	return "unknown"
}

// Result reports one bulb command. Err is set for every outcome except Applied.
type Result struct {
	Alias   string
	Outcome Outcome
	Err     error
}

// Unreachable is the only outcome that warrants checking the power switch.
func (r Result) Unreachable() bool {
	return r.Outcome == DeviceUnreachable
}

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrNoColorControl = errors.New("no suitable color control methods available")
)

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
