package kasa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/wheelibin/kasactl/internal/constants"
	"github.com/wheelibin/kasactl/internal/models"
)

type Options struct {
	// where discovery probes are sent, normally the limited broadcast address
	BroadcastAddress string
	// the port devices listen on for both UDP discovery and TCP commands
	Port              int
	DiscoveryTimeout  time.Duration
	DiscoveryAttempts int
	RequestTimeout    time.Duration
}

// Client discovers Kasa devices and creates device handles.
type Client struct {
	logger    *log.Logger
	opts      Options
	transport *transport
}

func NewClient(logger *log.Logger, opts Options) *Client {
	if opts.BroadcastAddress == "" {
		opts.BroadcastAddress = constants.KasaBroadcastAddress
	}
	if opts.Port == 0 {
		opts.Port = constants.KasaPort
	}
	if opts.DiscoveryTimeout == 0 {
		opts.DiscoveryTimeout = constants.DiscoveryTimeout
	}
	if opts.DiscoveryAttempts == 0 {
		opts.DiscoveryAttempts = constants.DiscoveryAttempts
	}
	return &Client{
		logger:    logger,
		opts:      opts,
		transport: &transport{timeout: opts.RequestTimeout},
	}
}

// Discover broadcasts a sysinfo probe and collects the replies until the
// discovery timeout (or ctx) expires. Results are keyed by device IP.
func (c *Client) Discover(ctx context.Context) (map[string]models.Device, error) {
	found, err := c.discover(ctx)
	if err != nil {
		return nil, err
	}
	return lo.MapValues(found, func(d *Device, _ string) models.Device { return d }), nil
}

func (c *Client) discover(ctx context.Context) (map[string]*Device, error) {
	conn, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		return nil, fmt.Errorf("error opening discovery socket: %w", err)
	}
	defer conn.Close()

	target, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(c.opts.BroadcastAddress, strconv.Itoa(c.opts.Port)))
	if err != nil {
		return nil, fmt.Errorf("error resolving discovery address: %w", err)
	}

	probe, err := json.Marshal(map[string]any{moduleSystem: map[string]any{methodSysinfo: map[string]any{}}})
	if err != nil {
		return nil, err
	}
	probe = Encrypt(probe)

	for i := 0; i < c.opts.DiscoveryAttempts; i++ {
		if _, err := conn.WriteTo(probe, target); err != nil {
			return nil, fmt.Errorf("error sending discovery probe: %w", err)
		}
	}

	deadline := time.Now().Add(c.opts.DiscoveryTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetReadDeadline(deadline)
	stop := context.AfterFunc(ctx, func() { _ = conn.SetReadDeadline(time.Now()) })
	defer stop()

	found := map[string]*Device{}
	buf := make([]byte, 4096)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				break
			}
			return nil, fmt.Errorf("error reading discovery replies: %w", err)
		}

		udpAddr, ok := from.(*net.UDPAddr)
		if !ok {
			continue
		}
		host := udpAddr.IP.String()
		if _, seen := found[host]; seen {
			continue
		}

		info, err := parseSysInfo(Decrypt(buf[:n]))
		if err != nil {
			c.logger.Warn("ignoring invalid discovery reply", "from", host, "err", err)
			continue
		}
		c.logger.Debug("discovered device", "host", host, "alias", info.Alias, "model", info.Model)
		found[host] = newDevice(c.logger, c.transport, host, c.opts.Port, info)
	}

	// a deadline on ctx only shortens discovery, cancellation aborts it
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, ctx.Err()
	}
	return found, nil
}

// connect reads the sysinfo of the device at host and returns a handle for it.
func (c *Client) connect(ctx context.Context, host string) (*Device, error) {
	d := newDevice(c.logger, c.transport, host, c.opts.Port, SysInfo{})
	if err := d.Update(ctx); err != nil {
		return nil, err
	}
	return d, nil
}
