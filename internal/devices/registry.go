package devices

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/kasactl/internal/models"
)

var ErrDeviceNotFound = errors.New("device not found")

type discoverer interface {
	Discover(ctx context.Context) (map[string]models.Device, error)
}

// Registry holds the result of a single discovery for the lifetime of one
// program run. Devices that join the network later are not seen.
type Registry struct {
	logger     *log.Logger
	discoverer discoverer

	devices    map[string]models.Device
	discovered bool
}

func NewRegistry(logger *log.Logger, discoverer discoverer) *Registry {
	return &Registry{logger: logger, discoverer: discoverer}
}

// Devices returns the discovered devices keyed by address, discovering on first use.
func (r *Registry) Devices(ctx context.Context) (map[string]models.Device, error) {
	if r.discovered {
		return r.devices, nil
	}

	r.logger.Info("Discovering devices on the network...")
	devices, err := r.discoverer.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("error discovering devices: %w", err)
	}
	r.logger.Debug("discovery complete", "total", len(devices))

	r.devices = devices
	r.discovered = true
	return r.devices, nil
}

// FindByAlias returns the device whose alias matches, ignoring case.
func (r *Registry) FindByAlias(ctx context.Context, alias string) (models.Device, error) {
	devices, err := r.Devices(ctx)
	if err != nil {
		return nil, err
	}

	// walk addresses in order so duplicate aliases resolve the same way every run
	addrs := lo.Keys(devices)
	sort.Strings(addrs)

	addr, found := lo.Find(addrs, func(addr string) bool {
		return strings.EqualFold(devices[addr].Alias(), alias)
	})
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, alias)
	}
	return devices[addr], nil
}
