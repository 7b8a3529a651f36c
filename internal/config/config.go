package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/wheelibin/kasactl/internal/constants"
)

type Config struct {
	SwitchAlias        string        `mapstructure:"switchAlias"`
	ColorsFile         string        `mapstructure:"colorsFile"`
	PresetsFile        string        `mapstructure:"presetsFile"`
	InventoryFile      string        `mapstructure:"inventoryFile"`
	InventoryDB        string        `mapstructure:"inventoryDb"`
	BroadcastAddress   string        `mapstructure:"broadcastAddress"`
	Port               int           `mapstructure:"port"`
	DiscoveryTimeout   time.Duration `mapstructure:"discoveryTimeout"`
	RequestTimeout     time.Duration `mapstructure:"requestTimeout"`
	SwitchPowerUpDelay time.Duration `mapstructure:"switchPowerUpDelay"`
	DefaultColorTemp   int           `mapstructure:"defaultColorTemp"`
	CommandInterval    time.Duration `mapstructure:"commandInterval"`
	LogFile            string        `mapstructure:"logFile"`
	LogLevel           string        `mapstructure:"logLevel"`
}

// InitialiseConfig reads the optional config file and environment overrides
// into the global viper instance. A missing config file is not an error.
func InitialiseConfig() error {
	viper.SetConfigName("config")                 // name of config file (without extension)
	viper.SetConfigType("json")                   // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("/etc/kasactl/")          // path to look for the config file in
	viper.AddConfigPath("$HOME/.config/kasactl/") // call multiple times to add many search paths
	viper.AddConfigPath(".")                      // optionally look for config in the working directory

	viper.SetEnvPrefix("kasactl")
	viper.AutomaticEnv()

	SetDefaults(programDir())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("fatal error config file: %w", err)
		}
	}
	return nil
}

// SetDefaults registers the default for every key; data files live in dir.
func SetDefaults(dir string) {
	viper.SetDefault("switchAlias", constants.DefaultSwitchAlias)
	viper.SetDefault("colorsFile", filepath.Join(dir, constants.ColorsFilename))
	viper.SetDefault("presetsFile", filepath.Join(dir, constants.PresetsFilename))
	viper.SetDefault("inventoryFile", filepath.Join(dir, constants.InventoryFilename))
	viper.SetDefault("inventoryDb", filepath.Join(dir, constants.InventoryDBFilename))
	viper.SetDefault("broadcastAddress", constants.KasaBroadcastAddress)
	viper.SetDefault("port", constants.KasaPort)
	viper.SetDefault("discoveryTimeout", constants.DiscoveryTimeout)
	viper.SetDefault("requestTimeout", constants.RequestTimeout)
	viper.SetDefault("switchPowerUpDelay", constants.SwitchPowerUpDelay)
	viper.SetDefault("defaultColorTemp", constants.DefaultColorTempKelvin)
	viper.SetDefault("commandInterval", constants.CommandInterval)
	viper.SetDefault("logFile", "logs/kasactl.log")
	viper.SetDefault("logLevel", "info")
}

// ReadConfig returns the typed view of the current viper settings.
func ReadConfig() (*Config, error) {
	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	cfg.SwitchAlias = strings.TrimSpace(cfg.SwitchAlias)
	return &cfg, nil
}

// the directory containing the running executable
func programDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
