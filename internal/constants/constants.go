package constants

import "time"

// kasa transport
const KasaPort = 9999
const KasaBroadcastAddress = "255.255.255.255"
const DiscoveryTimeout = 5 * time.Second
const DiscoveryAttempts = 3
const RequestTimeout = 5 * time.Second

// the alias of the switch that powers the outside bulbs
const DefaultSwitchAlias = "Outside Front Lights"

// how long to wait after switching the bulbs' power on before sending commands
const SwitchPowerUpDelay = 5 * time.Second

// used for bulbs that can only change colour temperature
const DefaultColorTempKelvin = 4000

// gap between consecutive bulb commands in a preset, none by default
const CommandInterval time.Duration = 0

// files, relative to the executable unless configured otherwise
const ColorsFilename = "Colors.csv"
const PresetsFilename = "presets.json"
const InventoryFilename = "Devices_with_Type_and_Detail.xlsx"
const InventoryDBFilename = "devices.db"

const InventorySheetName = "Sheet1"
