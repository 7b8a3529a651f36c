package lights_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wheelibin/kasactl/internal/colour"
	"github.com/wheelibin/kasactl/internal/devices"
	"github.com/wheelibin/kasactl/internal/lights"
	"github.com/wheelibin/kasactl/internal/models"
	"github.com/wheelibin/kasactl/internal/presets"

	"github.com/wheelibin/kasactl/mocks"
)

const switchAlias = "Outside Front Lights"

var testColours = colour.Table{
	"Red":        {R: 255, G: 0, B: 0},
	"Blue":       {R: 0, G: 0, B: 255},
	"Warm White": {R: 255, G: 200, B: 150},
}

func newLightService(finder *mocks.MockLightsDeviceFinder, table presets.Table, out *bytes.Buffer) *lights.LightService {
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	return lights.NewLightService(logger, out, finder, testColours, table, lights.Options{
		SwitchAlias:      switchAlias,
		DefaultColorTemp: 4000,
	})
}

func powerSwitch(t *testing.T, on bool) *mocks.MockDevice {
	sw := mocks.NewMockDevice(t)
	sw.On("Update", mock.Anything).Return(nil)
	sw.On("IsOn").Return(on)
	if !on {
		sw.On("TurnOn", mock.Anything).Return(nil).Once()
	}
	return sw
}

// a reachable bulb with the given capability
func bulb(t *testing.T, capability models.Capability) *mocks.MockDevice {
	dev := mocks.NewMockDevice(t)
	dev.On("Update", mock.Anything).Return(nil)
	dev.On("TurnOn", mock.Anything).Return(nil)
	dev.On("Capability").Return(capability)
	return dev
}

func hsvBulb(t *testing.T, h, s, v int) (*mocks.MockDevice, *mocks.MockHSVSetter) {
	setter := mocks.NewMockHSVSetter(t)
	setter.On("SetHSV", mock.Anything, h, s, v).Return(nil).Once()
	return bulb(t, models.Capability{Kind: models.HSVCapable, HSV: setter}), setter
}

func Test_ApplyPreset(t *testing.T) {

	t.Run("should check the switch and set the porch bulb to red", func(t *testing.T) {
		t.Parallel()
		// arrange
		out := &bytes.Buffer{}
		porch, _ := hsvBulb(t, 0, 100, 100)
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(powerSwitch(t, true), nil).Once()
		finder.On("FindByAlias", mock.Anything, "Porch").Return(porch, nil).Once()
		table := presets.Table{"Evening": {{Name: "Porch", Color: colour.Named("Red")}}}
		ls := newLightService(finder, table, out)

		// act
		results, err := ls.ApplyPreset(context.Background(), "Evening")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, []lights.Result{{Alias: "Porch", Outcome: lights.Applied}}, results)
		assert.Contains(t, out.String(), "Switch is on. Setting colors...")
		assert.Contains(t, out.String(), "Porch: Color changed to RGB (255, 0, 0)")
		assert.Contains(t, out.String(), "Preset 'Evening' applied successfully.")
	})

	t.Run("should apply entries in the order they are listed", func(t *testing.T) {
		t.Parallel()
		// arrange
		var order []string
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(powerSwitch(t, true), nil).Once()
		for _, alias := range []string{"C", "A", "B"} {
			dev, _ := hsvBulb(t, 0, 100, 100)
			finder.On("FindByAlias", mock.Anything, alias).Return(dev, nil).Once().Run(func(args mock.Arguments) {
				order = append(order, args.String(1))
			})
		}
		table := presets.Table{"Mixed": {
			{Name: "B", Color: colour.Named("Red")},
			{Name: "A", Color: colour.Named("Red")},
			{Name: "C", Color: colour.Named("Red")},
		}}
		ls := newLightService(finder, table, &bytes.Buffer{})

		// act
		results, err := ls.ApplyPreset(context.Background(), "Mixed")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, []string{"B", "A", "C"}, order)
		assert.Len(t, results, 3)
	})

	t.Run("missing bulb: should report it and carry on with the rest", func(t *testing.T) {
		t.Parallel()
		// arrange
		out := &bytes.Buffer{}
		a, _ := hsvBulb(t, 0, 100, 100)
		c, _ := hsvBulb(t, 240, 100, 100)
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(powerSwitch(t, true), nil).Once()
		finder.On("FindByAlias", mock.Anything, "A").Return(a, nil).Once()
		finder.On("FindByAlias", mock.Anything, "Missing").Return(nil, fmt.Errorf("%w: Missing", devices.ErrDeviceNotFound)).Once()
		finder.On("FindByAlias", mock.Anything, "C").Return(c, nil).Once()
		table := presets.Table{"Partial": {
			{Name: "A", Color: colour.Named("Red")},
			{Name: "Missing", Color: colour.Named("Red")},
			{Name: "C", Color: colour.Named("Blue")},
		}}
		ls := newLightService(finder, table, out)

		// act
		results, err := ls.ApplyPreset(context.Background(), "Partial")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, lights.Applied, results[0].Outcome)
		assert.Equal(t, lights.DeviceNotFound, results[1].Outcome)
		assert.Equal(t, lights.Applied, results[2].Outcome)
		assert.Contains(t, out.String(), "Missing: Unable to find device.")
		assert.Contains(t, out.String(), "Preset 'Partial' applied successfully.")
	})

	t.Run("invalid colour: should skip the entry without checking the switch again", func(t *testing.T) {
		t.Parallel()
		// arrange
		a, _ := hsvBulb(t, 0, 100, 100)
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(powerSwitch(t, true), nil).Once()
		finder.On("FindByAlias", mock.Anything, "A").Return(a, nil).Once()
		table := presets.Table{"Broken": {
			{Name: "Bad", Color: colour.Literal(255, 0)},
			{Name: "A", Color: colour.Named("Red")},
		}}
		ls := newLightService(finder, table, &bytes.Buffer{})

		// act
		results, err := ls.ApplyPreset(context.Background(), "Broken")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, lights.InvalidColour, results[0].Outcome)
		assert.ErrorIs(t, results[0].Err, colour.ErrInvalidColour)
		assert.Equal(t, lights.Applied, results[1].Outcome)
	})

	t.Run("unknown preset: should not touch any device", func(t *testing.T) {
		t.Parallel()
		// arrange
		out := &bytes.Buffer{}
		finder := mocks.NewMockLightsDeviceFinder(t)
		ls := newLightService(finder, presets.Table{}, out)

		// act
		results, err := ls.ApplyPreset(context.Background(), "Nope")

		// assert
		assert.Nil(t, results)
		assert.ErrorIs(t, err, lights.ErrPresetNotFound)
		assert.Equal(t, "Preset 'Nope' not found.\n", out.String())
		finder.AssertNotCalled(t, "FindByAlias", mock.Anything, mock.Anything)
	})
}

func Test_EnsureSwitchIsOn(t *testing.T) {

	t.Run("switch already on: should leave it alone", func(t *testing.T) {
		t.Parallel()
		// arrange
		sw := powerSwitch(t, true)
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(sw, nil)
		ls := newLightService(finder, nil, &bytes.Buffer{})

		// act
		err1 := ls.EnsureSwitchIsOn(context.Background())
		err2 := ls.EnsureSwitchIsOn(context.Background())

		// assert
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		sw.AssertNotCalled(t, "TurnOn", mock.Anything)
	})

	t.Run("switch off: should turn it on", func(t *testing.T) {
		t.Parallel()
		// arrange
		out := &bytes.Buffer{}
		sw := powerSwitch(t, false)
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(sw, nil)
		ls := newLightService(finder, nil, out)

		// act
		err := ls.EnsureSwitchIsOn(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "Switch is off; turning it on to power the bulbs.\n", out.String())
		sw.AssertNumberOfCalls(t, "TurnOn", 1)
	})

	t.Run("switch missing: should report it", func(t *testing.T) {
		t.Parallel()
		// arrange
		out := &bytes.Buffer{}
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(nil, devices.ErrDeviceNotFound)
		ls := newLightService(finder, nil, out)

		// act
		err := ls.EnsureSwitchIsOn(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "Unable to find the switch with alias 'Outside Front Lights'.\n", out.String())
	})

	t.Run("switch unreachable: should return the error", func(t *testing.T) {
		t.Parallel()
		// arrange
		sw := mocks.NewMockDevice(t)
		sw.On("Update", mock.Anything).Return(errors.New("i/o timeout"))
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(sw, nil)
		ls := newLightService(finder, nil, &bytes.Buffer{})

		// act
		err := ls.EnsureSwitchIsOn(context.Background())

		// assert
		assert.ErrorContains(t, err, "i/o timeout")
	})
}

func Test_ControlBulb(t *testing.T) {

	t.Run("hue/brightness bulb: should set hue then brightness", func(t *testing.T) {
		t.Parallel()
		// arrange
		setter := mocks.NewMockHueBrightnessSetter(t)
		setter.On("SetHue", mock.Anything, 240).Return(nil).Once()
		setter.On("SetBrightness", mock.Anything, 100).Return(nil).Once()
		dev := bulb(t, models.Capability{Kind: models.HueBrightnessCapable, HueBrightness: setter})
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, "Porch").Return(dev, nil)
		ls := newLightService(finder, nil, &bytes.Buffer{})

		// act
		res := ls.ControlBulb(context.Background(), "Porch", colour.Named("Blue"))

		// assert
		assert.Equal(t, lights.Applied, res.Outcome)
	})

	t.Run("white-only bulb: should set the default colour temperature", func(t *testing.T) {
		t.Parallel()
		// arrange
		setter := mocks.NewMockColorTempSetter(t)
		setter.On("SetColorTemp", mock.Anything, 4000).Return(nil).Once()
		dev := bulb(t, models.Capability{Kind: models.TempOnlyCapable, ColorTemp: setter})
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, "Porch").Return(dev, nil)
		ls := newLightService(finder, nil, &bytes.Buffer{})

		// act
		res := ls.ControlBulb(context.Background(), "Porch", colour.Named("Red"))

		// assert
		assert.Equal(t, lights.Applied, res.Outcome)
	})

	t.Run("no colour control: should report it without checking the switch", func(t *testing.T) {
		t.Parallel()
		// arrange
		out := &bytes.Buffer{}
		dev := bulb(t, models.Capability{Kind: models.Uncontrollable})
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, "Porch").Return(dev, nil).Once()
		ls := newLightService(finder, nil, out)

		// act
		res := ls.ControlBulb(context.Background(), "Porch", colour.Named("Red"))

		// assert
		assert.Equal(t, lights.CapabilityUnavailable, res.Outcome)
		assert.ErrorIs(t, res.Err, lights.ErrNoColorControl)
		assert.Equal(t, "Porch: No suitable color control methods available.\n", out.String())
	})

	t.Run("unknown colour name: should fall back to white", func(t *testing.T) {
		t.Parallel()
		// arrange
		out := &bytes.Buffer{}
		dev, _ := hsvBulb(t, 0, 0, 100)
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, "Porch").Return(dev, nil)
		ls := newLightService(finder, nil, out)

		// act
		res := ls.ControlBulb(context.Background(), "Porch", colour.Named("Chartreuse"))

		// assert
		assert.Equal(t, lights.Applied, res.Outcome)
		assert.Contains(t, out.String(), "Porch: Color changed to RGB (255, 255, 255)")
	})

	t.Run("literal colour: should be used as given", func(t *testing.T) {
		t.Parallel()
		// arrange
		dev, _ := hsvBulb(t, 348, 90, 86)
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, "Porch").Return(dev, nil)
		ls := newLightService(finder, nil, &bytes.Buffer{})

		// act
		res := ls.ControlBulb(context.Background(), "Porch", colour.Literal(220, 20, 60))

		// assert
		assert.Equal(t, lights.Applied, res.Outcome)
	})

	t.Run("invalid colour: should not look up the device", func(t *testing.T) {
		t.Parallel()
		// arrange
		finder := mocks.NewMockLightsDeviceFinder(t)
		ls := newLightService(finder, nil, &bytes.Buffer{})

		// act
		res := ls.ControlBulb(context.Background(), "Porch", colour.Literal(1, 2, 3, 4))

		// assert
		assert.Equal(t, lights.InvalidColour, res.Outcome)
		finder.AssertNotCalled(t, "FindByAlias", mock.Anything, mock.Anything)
	})

	t.Run("command fails: should be unreachable and leave the switch to the caller", func(t *testing.T) {
		t.Parallel()
		// arrange
		out := &bytes.Buffer{}
		setter := mocks.NewMockHSVSetter(t)
		setter.On("SetHSV", mock.Anything, 0, 100, 100).Return(errors.New("connection refused")).Once()
		dev := bulb(t, models.Capability{Kind: models.HSVCapable, HSV: setter})
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, "Porch").Return(dev, nil).Once()
		ls := newLightService(finder, nil, out)

		// act
		res := ls.ControlBulb(context.Background(), "Porch", colour.Named("Red"))

		// assert
		assert.True(t, res.Unreachable())
		assert.ErrorContains(t, res.Err, "connection refused")
		assert.Equal(t, "Porch: Bulb unresponsive. Checking the power switch.\n", out.String())
		finder.AssertNotCalled(t, "FindByAlias", mock.Anything, switchAlias)
	})
}

func Test_ChangeLightColour(t *testing.T) {

	t.Run("should check the switch then set the bulb", func(t *testing.T) {
		t.Parallel()
		// arrange
		dev, _ := hsvBulb(t, 240, 100, 100)
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(powerSwitch(t, true), nil).Once()
		finder.On("FindByAlias", mock.Anything, "Porch").Return(dev, nil).Once()
		ls := newLightService(finder, nil, &bytes.Buffer{})

		// act
		res := ls.ChangeLightColour(context.Background(), "Porch", colour.Named("Blue"))

		// assert
		assert.Equal(t, lights.Applied, res.Outcome)
	})

	t.Run("unreachable bulb: should check the switch once more without retrying the bulb", func(t *testing.T) {
		t.Parallel()
		// arrange
		dev := mocks.NewMockDevice(t)
		dev.On("Update", mock.Anything).Return(errors.New("i/o timeout")).Once()
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(powerSwitch(t, true), nil).Twice()
		finder.On("FindByAlias", mock.Anything, "Porch").Return(dev, nil).Once()
		ls := newLightService(finder, nil, &bytes.Buffer{})

		// act
		res := ls.ChangeLightColour(context.Background(), "Porch", colour.Named("Blue"))

		// assert
		assert.Equal(t, lights.DeviceUnreachable, res.Outcome)
		finder.AssertNumberOfCalls(t, "FindByAlias", 3)
	})

	t.Run("missing bulb: should not check the switch again", func(t *testing.T) {
		t.Parallel()
		// arrange
		finder := mocks.NewMockLightsDeviceFinder(t)
		finder.On("FindByAlias", mock.Anything, switchAlias).Return(powerSwitch(t, true), nil).Once()
		finder.On("FindByAlias", mock.Anything, "Porch").Return(nil, devices.ErrDeviceNotFound).Once()
		ls := newLightService(finder, nil, &bytes.Buffer{})

		// act
		res := ls.ChangeLightColour(context.Background(), "Porch", colour.Named("Blue"))

		// assert
		assert.Equal(t, lights.DeviceNotFound, res.Outcome)
		finder.AssertNumberOfCalls(t, "FindByAlias", 2)
	})
}
