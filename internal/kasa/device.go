package kasa

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/kasactl/internal/models"
)

// Device is a Kasa plug, switch or bulb reachable over TCP.
type Device struct {
	host      string
	port      int
	info      SysInfo
	cap       models.Capability
	transport *transport
	logger    *log.Logger
}

var _ models.Device = (*Device)(nil)

func newDevice(logger *log.Logger, t *transport, host string, port int, info SysInfo) *Device {
	d := &Device{host: host, port: port, transport: t, logger: logger}
	d.setInfo(info)
	return d
}

func (d *Device) Host() string  { return d.host }
func (d *Device) Alias() string { return d.info.Alias }
func (d *Device) MAC() string   { return d.info.HardwareAddress() }
func (d *Device) Model() string { return d.info.Model }

func (d *Device) addr() string {
	return net.JoinHostPort(d.host, strconv.Itoa(d.port))
}

func (d *Device) IsOn() bool {
	if d.info.IsBulb() {
		return d.info.LightState != nil && d.info.LightState.OnOff == 1
	}
	return d.info.RelayState != nil && *d.info.RelayState == 1
}

func (d *Device) Capability() models.Capability {
	return d.cap
}

// setInfo stores fresh sysinfo and resolves the colour capability from it
func (d *Device) setInfo(info SysInfo) {
	d.info = info
	switch {
	case info.IsBulb() && info.IsColor == 1:
		d.cap = models.Capability{Kind: models.HSVCapable, HSV: d}
	case info.IsBulb() && info.IsVariableColorTemp == 1:
		d.cap = models.Capability{Kind: models.TempOnlyCapable, ColorTemp: d}
	default:
		d.cap = models.Capability{Kind: models.Uncontrollable}
	}
}

func (d *Device) call(ctx context.Context, module string, method string, params map[string]any) (json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}
	payload, err := buildRequest(map[string]any{module: map[string]any{method: params}})
	if err != nil {
		return nil, err
	}

	d.logger.Debug("kasa request", "host", d.host, "module", module, "method", method, "params", params)
	resp, err := d.transport.roundTrip(ctx, d.addr(), payload)
	if err != nil {
		return nil, fmt.Errorf("%s (%s) unreachable: %w", d.info.Alias, d.host, err)
	}
	d.logger.Debug("kasa response", "host", d.host, "body", string(resp))

	return extract(resp, module, method)
}

// Update re-reads the device sysinfo.
func (d *Device) Update(ctx context.Context) error {
	raw, err := d.call(ctx, moduleSystem, methodSysinfo, nil)
	if err != nil {
		return err
	}
	info := SysInfo{}
	if err := json.Unmarshal(raw, &info); err != nil {
		return fmt.Errorf("error parsing sysinfo from %s: %w", d.host, err)
	}
	d.setInfo(info)
	return nil
}

func (d *Device) TurnOn(ctx context.Context) error {
	if d.info.IsBulb() {
		return d.transitionLightState(ctx, map[string]any{"on_off": 1})
	}
	if _, err := d.call(ctx, moduleSystem, methodRelayState, map[string]any{"state": 1}); err != nil {
		return err
	}
	on := 1
	d.info.RelayState = &on
	return nil
}

func (d *Device) SetHSV(ctx context.Context, hue, saturation, value int) error {
	if err := checkRange("hue", hue, 0, 360); err != nil {
		return err
	}
	if err := checkRange("saturation", saturation, 0, 100); err != nil {
		return err
	}
	if err := checkRange("brightness", value, 0, 100); err != nil {
		return err
	}
	return d.transitionLightState(ctx, map[string]any{
		"hue":        hue,
		"saturation": saturation,
		"brightness": value,
		"color_temp": 0,
		"on_off":     1,
	})
}

func (d *Device) SetHue(ctx context.Context, hue int) error {
	if err := checkRange("hue", hue, 0, 360); err != nil {
		return err
	}
	return d.transitionLightState(ctx, map[string]any{"hue": hue, "color_temp": 0, "on_off": 1})
}

func (d *Device) SetBrightness(ctx context.Context, brightness int) error {
	if err := checkRange("brightness", brightness, 0, 100); err != nil {
		return err
	}
	if d.info.IsBulb() {
		return d.transitionLightState(ctx, map[string]any{"brightness": brightness, "on_off": 1})
	}
	_, err := d.call(ctx, moduleDimmer, methodSetBrightness, map[string]any{"brightness": brightness})
	return err
}

func (d *Device) SetColorTemp(ctx context.Context, kelvin int) error {
	if err := checkRange("color temp", kelvin, 2500, 9000); err != nil {
		return err
	}
	return d.transitionLightState(ctx, map[string]any{"color_temp": kelvin, "on_off": 1})
}

func (d *Device) transitionLightState(ctx context.Context, state map[string]any) error {
	state["ignore_default"] = 1
	raw, err := d.call(ctx, moduleLighting, methodTransitionLight, state)
	if err != nil {
		return err
	}
	ls := LightState{}
	if err := json.Unmarshal(raw, &ls); err == nil {
		d.info.LightState = &ls
	}
	return nil
}

func checkRange(name string, v int, low int, high int) error {
	if v < low || v > high {
		return fmt.Errorf("invalid %s %d, must be between %d and %d", name, v, low, high)
	}
	return nil
}
