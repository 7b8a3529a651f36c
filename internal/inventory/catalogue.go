package inventory

// ModelInfo describes a known Kasa model.
type ModelInfo struct {
	Type   string
	Detail string
}

var catalogue = map[string]ModelInfo{
	"HS210(US)": {Type: "Switch", Detail: "3 Way"},
	"HS200(US)": {Type: "Switch", Detail: "Standard"},
	"KL130(US)": {Type: "Bulb", Detail: "Multicolor"},
	"HS220(US)": {Type: "Switch", Detail: "Dimmer"},
	"KP115(US)": {Type: "Plug", Detail: "With Energy Monitoring"},
	"HS103(US)": {Type: "Plug", Detail: "Lite"},
	"HS105(US)": {Type: "Plug", Detail: "Mini"},
	"KP400(US)": {Type: "Plug", Detail: "Outdoor"},
	"KP405(US)": {Type: "Plug", Detail: "Outdoor Dimmer"},
	"EP40(US)":  {Type: "Plug", Detail: "Outdoor"},
}

// LookupModel returns the type and detail for a model; unknown models get empty values.
func LookupModel(model string) ModelInfo {
	return catalogue[model]
}
