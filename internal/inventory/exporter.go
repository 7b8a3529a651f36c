package inventory

import (
	"context"
	"fmt"
	"net/netip"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/wheelibin/kasactl/internal/models"
	"github.com/xuri/excelize/v2"
)

var headers = []any{"IP", "Alias", "MAC", "Model", "Type", "Detail"}

type deviceLister interface {
	Devices(ctx context.Context) (map[string]models.Device, error)
}

type runStore interface {
	SaveRun(run models.DiscoveryRun, records []models.DeviceRecord) error
}

// Exporter writes the devices found on the network to a spreadsheet and,
// when a store is given, records the run.
type Exporter struct {
	logger   *log.Logger
	devices  deviceLister
	store    runStore
	filename string
	sheet    string
}

func NewExporter(logger *log.Logger, devices deviceLister, store runStore, filename string, sheet string) *Exporter {
	return &Exporter{
		logger:   logger,
		devices:  devices,
		store:    store,
		filename: filename,
		sheet:    sheet,
	}
}

// Export discovers devices and overwrites the spreadsheet with one row per device.
func (e *Exporter) Export(ctx context.Context) ([]models.DeviceRecord, error) {
	found, err := e.devices.Devices(ctx)
	if err != nil {
		return nil, err
	}

	records := BuildRecords(found)
	e.logger.Info("Read devices", "total", len(records))

	if err := WriteSpreadsheet(e.filename, e.sheet, records); err != nil {
		return nil, err
	}

	if e.store != nil {
		run := models.DiscoveryRun{ID: uuid.NewString(), Time: time.Now(), DeviceCount: len(records)}
		if err := e.store.SaveRun(run, records); err != nil {
			return records, fmt.Errorf("error recording discovery run: %w", err)
		}
	}

	return records, nil
}

// BuildRecords joins discovered devices with the model catalogue, ordered by address.
func BuildRecords(found map[string]models.Device) []models.DeviceRecord {
	addrs := lo.Keys(found)
	sort.Slice(addrs, func(i, j int) bool { return addrLess(addrs[i], addrs[j]) })

	return lo.Map(addrs, func(addr string, _ int) models.DeviceRecord {
		dev := found[addr]
		info := LookupModel(dev.Model())
		return models.DeviceRecord{
			IP:     addr,
			Alias:  dev.Alias(),
			MAC:    dev.MAC(),
			Model:  dev.Model(),
			Type:   info.Type,
			Detail: info.Detail,
		}
	})
}

func addrLess(a, b string) bool {
	ipA, errA := netip.ParseAddr(a)
	ipB, errB := netip.ParseAddr(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return ipA.Less(ipB)
}

// WriteSpreadsheet writes records under a bold header row, replacing any existing file.
func WriteSpreadsheet(filename string, sheet string, records []models.DeviceRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("error naming sheet: %w", err)
		}
	}

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, bold); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{rec.IP, rec.Alias, rec.MAC, rec.Model, rec.Type, rec.Detail}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing row for %s: %w", rec.IP, err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("error saving %s: %w", filename, err)
	}
	return nil
}
