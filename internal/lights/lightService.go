package lights

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/kasactl/internal/colour"
	"github.com/wheelibin/kasactl/internal/concurrency"
	"github.com/wheelibin/kasactl/internal/devices"
	"github.com/wheelibin/kasactl/internal/models"
	"github.com/wheelibin/kasactl/internal/presets"
)

type deviceFinder interface {
	FindByAlias(ctx context.Context, alias string) (models.Device, error)
}

type Options struct {
	SwitchAlias        string
	SwitchPowerUpDelay time.Duration
	DefaultColorTemp   int
	CommandInterval    time.Duration
}

// LightService sets bulb colours by alias, falling back to checking the power
// switch that feeds the bulbs when one stops answering.
type LightService struct {
	logger  *log.Logger
	out     io.Writer
	devices deviceFinder
	colours colour.Table
	presets presets.Table
	opts    Options
}

func NewLightService(logger *log.Logger, out io.Writer, devices deviceFinder, colours colour.Table, presets presets.Table, opts Options) *LightService {
	return &LightService{
		logger:  logger,
		out:     out,
		devices: devices,
		colours: colours,
		presets: presets,
		opts:    opts,
	}
}

func (l *LightService) report(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.out, msg)
	l.logger.Debug(msg)
}

// EnsureSwitchIsOn turns the configured switch on if it is off and waits for
// the bulbs behind it to power up. A missing switch is reported, not an error.
func (l *LightService) EnsureSwitchIsOn(ctx context.Context) error {
	sw, err := l.devices.FindByAlias(ctx, l.opts.SwitchAlias)
	if err != nil {
		if errors.Is(err, devices.ErrDeviceNotFound) {
			l.report("Unable to find the switch with alias '%s'.", l.opts.SwitchAlias)
			return nil
		}
		return fmt.Errorf("error finding switch: %w", err)
	}

	if err := sw.Update(ctx); err != nil {
		return fmt.Errorf("error reading switch state: %w", err)
	}

	if sw.IsOn() {
		l.report("Switch is on. Setting colors...")
		return nil
	}

	l.report("Switch is off; turning it on to power the bulbs.")
	if err := sw.TurnOn(ctx); err != nil {
		return fmt.Errorf("error turning on switch: %w", err)
	}
	l.logger.Debug("waiting for bulbs to power up", "delay", l.opts.SwitchPowerUpDelay)
	return wait(ctx, l.opts.SwitchPowerUpDelay)
}

// ControlBulb sets one bulb to the given colour. It never checks the switch
// itself; callers do that for unreachable results.
func (l *LightService) ControlBulb(ctx context.Context, alias string, ref colour.Ref) Result {
	rgb, err := colour.Resolve(ref, l.colours)
	if err != nil {
		l.report("%s: %v", alias, err)
		return Result{Alias: alias, Outcome: InvalidColour, Err: err}
	}

	dev, err := l.devices.FindByAlias(ctx, alias)
	if err != nil {
		if errors.Is(err, devices.ErrDeviceNotFound) {
			l.report("%s: Unable to find device.", alias)
			return Result{Alias: alias, Outcome: DeviceNotFound, Err: err}
		}
		return l.unreachable(alias, err)
	}

	if err := dev.Update(ctx); err != nil {
		return l.unreachable(alias, err)
	}
	if err := dev.TurnOn(ctx); err != nil {
		return l.unreachable(alias, err)
	}

	hsv := colour.RGBToHSV(rgb).Truncate()
	capability := dev.Capability()
	l.logger.Debug("setting colour", "alias", alias, "rgb", rgb, "hsv", hsv, "capability", capability.Kind)

	switch capability.Kind {
	case models.HSVCapable:
		err = capability.HSV.SetHSV(ctx, hsv.Hue, hsv.Saturation, hsv.Value)
	case models.HueBrightnessCapable:
		err = capability.HueBrightness.SetHue(ctx, hsv.Hue)
		if err == nil {
			err = capability.HueBrightness.SetBrightness(ctx, hsv.Value)
		}
	case models.TempOnlyCapable:
		err = capability.ColorTemp.SetColorTemp(ctx, l.opts.DefaultColorTemp)
	default:
		l.report("%s: No suitable color control methods available.", alias)
		return Result{Alias: alias, Outcome: CapabilityUnavailable, Err: ErrNoColorControl}
	}
	if err != nil {
		return l.unreachable(alias, err)
	}

	swatch := lipgloss.NewStyle().Background(lipgloss.Color(colour.Hex(rgb))).Render("    ")
	fmt.Fprintf(l.out, "%s: Color changed to RGB (%d, %d, %d) %s.\n", alias, rgb.R, rgb.G, rgb.B, swatch)
	return Result{Alias: alias, Outcome: Applied}
}

func (l *LightService) unreachable(alias string, err error) Result {
	l.logger.Debug("bulb command failed", "alias", alias, "err", err)
	l.report("%s: Bulb unresponsive. Checking the power switch.", alias)
	return Result{Alias: alias, Outcome: DeviceUnreachable, Err: err}
}

// controlBulb runs ControlBulb and the switch check for unreachable bulbs.
// The bulb is not retried.
func (l *LightService) controlBulb(ctx context.Context, alias string, ref colour.Ref) Result {
	res := l.ControlBulb(ctx, alias, ref)
	if res.Unreachable() {
		if err := l.EnsureSwitchIsOn(ctx); err != nil {
			l.logger.Error("unable to check the power switch", "err", err)
		}
	}
	return res
}

// ChangeLightColour sets a single bulb, checking the switch first.
func (l *LightService) ChangeLightColour(ctx context.Context, alias string, ref colour.Ref) Result {
	if err := l.EnsureSwitchIsOn(ctx); err != nil {
		l.logger.Error("unable to check the power switch", "err", err)
	}
	return l.controlBulb(ctx, alias, ref)
}

// ApplyPreset sets each bulb of the named preset in listed order. Failed
// entries are reported and skipped; nothing is rolled back.
func (l *LightService) ApplyPreset(ctx context.Context, name string) ([]Result, error) {
	entries, found := l.presets.Get(name)
	if !found {
		l.report("Preset '%s' not found.", name)
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	if err := l.EnsureSwitchIsOn(ctx); err != nil {
		l.logger.Error("unable to check the power switch", "err", err)
	}

	results := make([]Result, 0, len(entries))
	tw := concurrency.NewThrottledWorker(l.opts.CommandInterval, func(entry presets.Entry) error {
		res := l.controlBulb(ctx, entry.Name, entry.Color)
		results = append(results, res)
		return res.Err
	})
	if err := tw.Run(ctx, entries); err != nil && ctx.Err() != nil {
		return results, err
	}

	l.logger.Debug("preset finished", "preset", name, "entries", len(entries), "applied", lo.CountBy(results, func(r Result) bool { return r.Outcome == Applied }))
	l.report("Preset '%s' applied successfully.", name)
	return results, nil
}
