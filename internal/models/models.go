package models

import (
	"context"
	"time"
)

// a device as reported by discovery, joined with the model catalogue
type DeviceRecord struct {
	IP     string
	Alias  string
	MAC    string
	Model  string
	Type   string
	Detail string
}

// a discovery run recorded in the inventory database
type DiscoveryRun struct {
	ID          string
	Time        time.Time
	DeviceCount int
}

type RGB struct {
	R uint8
	G uint8
	B uint8
}

// HSV with hue in degrees [0,360) and saturation/value as percentages
type HSV struct {
	Hue        float64
	Saturation float64
	Value      float64
}

// integer HSV as sent to devices
type DeviceHSV struct {
	Hue        int
	Saturation int
	Value      int
}

// Truncate drops the fractional part of each component.
func (c HSV) Truncate() DeviceHSV {
	return DeviceHSV{
		Hue:        int(c.Hue),
		Saturation: int(c.Saturation),
		Value:      int(c.Value),
	}
}

type CapabilityKind int

const (
	Uncontrollable CapabilityKind = iota
	HSVCapable
	HueBrightnessCapable
	TempOnlyCapable
)

func (k CapabilityKind) String() string {
	switch k {
	case HSVCapable:
		return "hsv"
	case HueBrightnessCapable:
		return "hue/brightness"
	case TempOnlyCapable:
		return "colour temp"
	default:
		return "uncontrollable"
	}
}

type HSVSetter interface {
	SetHSV(ctx context.Context, hue, saturation, value int) error
}

type HueBrightnessSetter interface {
	SetHue(ctx context.Context, hue int) error
	SetBrightness(ctx context.Context, brightness int) error
}

type ColorTempSetter interface {
	SetColorTemp(ctx context.Context, kelvin int) error
}

// Capability is the colour control a device offers, resolved once per device.
// Only the setter matching Kind is set.
type Capability struct {
	Kind          CapabilityKind
	HSV           HSVSetter
	HueBrightness HueBrightnessSetter
	ColorTemp     ColorTempSetter
}

// a discovered device that can be powered on and queried
type Device interface {
	Host() string
	Alias() string
	MAC() string
	Model() string

	// refreshes the device state (on/off, capability)
	Update(ctx context.Context) error
	IsOn() bool
	TurnOn(ctx context.Context) error
	Capability() Capability
}
