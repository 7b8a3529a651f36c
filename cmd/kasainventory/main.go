package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/wheelibin/kasactl/internal/config"
	"github.com/wheelibin/kasactl/internal/constants"
	"github.com/wheelibin/kasactl/internal/devices"
	"github.com/wheelibin/kasactl/internal/inventory"
	"github.com/wheelibin/kasactl/internal/kasa"
	"github.com/wheelibin/kasactl/internal/repos"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {

	// read the config file
	if err := config.InitialiseConfig(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename: cfg.LogFile,
		MaxAge:   3,
	}), log.Options{
		Level:      level,
		TimeFormat: "2006/01/02 15:04:05",
	})

	db, err := sql.Open("sqlite3", cfg.InventoryDB)
	if err != nil {
		logger.Fatal("unable to open inventory database", "err", err)
	}
	defer db.Close()
	repo, err := repos.NewDeviceRepo(logger, db)
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
	exporter := inventory.NewExporter(logger, registry, repo, cfg.InventoryFile, constants.InventorySheetName)

	records, err := exporter.Export(ctx)
	if err != nil && records == nil {
		logger.Error(err)
		stop()
		db.Close()
		os.Exit(1)
	}
	if err != nil {
		logger.Warn(err)
	}

	fmt.Println(inventory.RenderTable(records))
	fmt.Printf("Saved discovered devices to %s\n", cfg.InventoryFile)
}
