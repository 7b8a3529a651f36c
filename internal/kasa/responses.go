package kasa

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	moduleSystem   = "system"
	moduleLighting = "smartlife.iot.smartbulb.lightingservice"
	moduleDimmer   = "smartlife.iot.dimmer"

	methodSysinfo         = "get_sysinfo"
	methodRelayState      = "set_relay_state"
	methodTransitionLight = "transition_light_state"
	methodSetBrightness   = "set_brightness"
)

type LightState struct {
	OnOff      int `json:"on_off"`
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Brightness int `json:"brightness"`
	ColorTemp  int `json:"color_temp"`
	ErrCode    int `json:"err_code"`
}

// SysInfo is the subset of get_sysinfo used to identify and control a device.
type SysInfo struct {
	Alias               string      `json:"alias"`
	Model               string      `json:"model"`
	MAC                 string      `json:"mac"`
	MicMAC              string      `json:"mic_mac"`
	Type                string      `json:"type"`
	MicType             string      `json:"mic_type"`
	DeviceID            string      `json:"deviceId"`
	RelayState          *int        `json:"relay_state"`
	Brightness          *int        `json:"brightness"`
	IsColor             int         `json:"is_color"`
	IsDimmable          int         `json:"is_dimmable"`
	IsVariableColorTemp int         `json:"is_variable_color_temp"`
	LightState          *LightState `json:"light_state"`
	ErrCode             int         `json:"err_code"`
}

// IsBulb reports whether the device speaks the smart bulb lighting service.
func (s SysInfo) IsBulb() bool {
	t := strings.ToLower(s.Type + s.MicType)
	return strings.Contains(t, "smartbulb") || s.LightState != nil
}

// HardwareAddress returns the MAC in colon-separated form; bulbs report it without separators.
func (s SysInfo) HardwareAddress() string {
	mac := s.MAC
	if mac == "" {
		mac = s.MicMAC
	}
	if len(mac) == 12 && !strings.ContainsAny(mac, ":-") {
		pairs := make([]string, 0, 6)
		for i := 0; i < 12; i += 2 {
			pairs = append(pairs, mac[i:i+2])
		}
		mac = strings.Join(pairs, ":")
	}
	return strings.ToUpper(strings.ReplaceAll(mac, "-", ":"))
}

// ResponseError is returned when a device answers with a non-zero err_code.
type ResponseError struct {
	Module  string
	Method  string
	ErrCode int
	Message string
}

func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s.%s failed with err_code %d: %s", e.Module, e.Method, e.ErrCode, e.Message)
	}
	return fmt.Sprintf("%s.%s failed with err_code %d", e.Module, e.Method, e.ErrCode)
}

type methodResult struct {
	ErrCode int    `json:"err_code"`
	ErrMsg  string `json:"err_msg"`
}

// extract returns the raw result of module.method from a response payload,
// checking the device error code on the way.
func extract(payload []byte, module string, method string) (json.RawMessage, error) {
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	rawModule, ok := resp[module]
	if !ok {
		return nil, fmt.Errorf("response is missing module %s", module)
	}
	var mod map[string]json.RawMessage
	if err := json.Unmarshal(rawModule, &mod); err != nil {
		return nil, fmt.Errorf("error parsing %s response: %w", module, err)
	}
	raw, ok := mod[method]
	if !ok {
		return nil, fmt.Errorf("response is missing %s.%s", module, method)
	}

	var res methodResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("error parsing %s.%s result: %w", module, method, err)
	}
	if res.ErrCode != 0 {
		return nil, &ResponseError{Module: module, Method: method, ErrCode: res.ErrCode, Message: res.ErrMsg}
	}

	return raw, nil
}

func parseSysInfo(payload []byte) (SysInfo, error) {
	raw, err := extract(payload, moduleSystem, methodSysinfo)
	if err != nil {
		return SysInfo{}, err
	}
	info := SysInfo{}
	if err := json.Unmarshal(raw, &info); err != nil {
		return SysInfo{}, fmt.Errorf("error parsing sysinfo: %w", err)
	}
	return info, nil
}
