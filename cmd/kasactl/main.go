package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/kasactl/internal/colour"
	"github.com/wheelibin/kasactl/internal/config"
	"github.com/wheelibin/kasactl/internal/constants"
	"github.com/wheelibin/kasactl/internal/devices"
	"github.com/wheelibin/kasactl/internal/kasa"
	"github.com/wheelibin/kasactl/internal/lights"
	"github.com/wheelibin/kasactl/internal/presets"
	"gopkg.in/natefinch/lumberjack.v2"
)

const usage = `Usage:
  kasactl preset <preset_name>
  kasactl light <light_name> <color_name_or_rgb>`

type command struct {
	name   string
	target string
	colour colour.Ref
}

// parseArgs reads os.Args style arguments; ok is false when they match no
// command. Arguments beyond the ones a command needs are ignored.
func parseArgs(args []string) (cmd command, ok bool, err error) {
	if len(args) < 2 {
		return command{}, false, nil
	}

	name := strings.ToLower(args[1])
	switch {
	case name == "preset" && len(args) >= 3:
		return command{name: name, target: args[2]}, true, nil
	case name == "light" && len(args) >= 4:
		ref, err := colour.ParseArg(args[3])
		if err != nil {
			return command{}, true, err
		}
		return command{name: name, target: args[2], colour: ref}, true, nil
	}
	return command{}, false, nil
}

func newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename: cfg.LogFile,
		MaxAge:   3,
	}), log.Options{
		Level:      level,
		TimeFormat: "2006/01/02 15:04:05",
	})
}

func main() {

	cmd, ok, err := parseArgs(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println(usage)
		return
	}

	// read the config file
	if err := config.InitialiseConfig(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(cfg)
	logger.Debug("kasactl starting", "command", cmd.name, "target", cmd.target)

	colours, err := colour.LoadTable(cfg.ColorsFile)
	if err != nil {
		logger.Fatal(err)
	}
	presetTable, err := presets.Load(cfg.PresetsFile)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// create/wire up services
	client := kasa.NewClient(logger, kasa.Options{
		BroadcastAddress:  cfg.BroadcastAddress,
		Port:              cfg.Port,
		DiscoveryTimeout:  cfg.DiscoveryTimeout,
		DiscoveryAttempts: constants.DiscoveryAttempts,
		RequestTimeout:    cfg.RequestTimeout,
	})
	registry := devices.NewRegistry(logger, client)
	ls := lights.NewLightService(logger, os.Stdout, registry, colours, presetTable, lights.Options{
		SwitchAlias:        cfg.SwitchAlias,
		SwitchPowerUpDelay: cfg.SwitchPowerUpDelay,
		DefaultColorTemp:   cfg.DefaultColorTemp,
		CommandInterval:    cfg.CommandInterval,
	})

	// outcomes are reported as they happen; none of them change the exit status
	switch cmd.name {
	case "preset":
		if _, err := ls.ApplyPreset(ctx, cmd.target); err != nil && !errors.Is(err, lights.ErrPresetNotFound) {
			logger.Error(err)
		}
	case "light":
		res := ls.ChangeLightColour(ctx, cmd.target, cmd.colour)
		if res.Outcome != lights.Applied {
			logger.Debug("light not changed", "alias", res.Alias, "outcome", res.Outcome, "err", res.Err)
		}
	}
}
