package adapter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

var (
	// ErrNoBattery is returned on machines without a battery.
	ErrNoBattery = errors.New("no battery available")
	// ErrDiskUnavailable is returned when the volume statistics are unusable.
	ErrDiskUnavailable = errors.New("can not retrieve the disk information")
)

// HardwareAdapter queries the energy supply and storage of the machine.
type HardwareAdapter interface {
	// Battery returns the charge of the first battery found.
	Battery(ctx context.Context) (m.Charge, error)

	// Disk returns the usage of the volume holding path.
	Disk(ctx context.Context, path m.Path) (m.DiskUsage, error)
}

// LocalHardwareAdapter implements HardwareAdapter with per-OS backends.
type LocalHardwareAdapter struct {
	powerSupplyDir string
}

// NewLocalHardwareAdapter constructs a LocalHardwareAdapter for the host.
func NewLocalHardwareAdapter() *LocalHardwareAdapter {
	return &LocalHardwareAdapter{powerSupplyDir: "/sys/class/power_supply"}
}

// Battery returns the charge of the first battery found.
func (a *LocalHardwareAdapter) Battery(ctx context.Context) (m.Charge, error) {
	return a.battery(ctx)
}

// Disk returns the usage of the volume holding path.
func (a *LocalHardwareAdapter) Disk(_ context.Context, path m.Path) (m.DiskUsage, error) {
	total, available, err := volumeSpace(string(path))
	if err != nil {
		return m.DiskUsage{}, fmt.Errorf("%w: %w", ErrDiskUnavailable, err)
	}

	return usageOf(total, available)
}

// usageOf converts raw volume sizes into a used percentage, truncating.
func usageOf(total, available uint64) (m.DiskUsage, error) {
	if total == 0 || available > total {
		return m.DiskUsage{}, fmt.Errorf("%w: total %d, available %d", ErrDiskUnavailable, total, available)
	}

	used := total - available

	return m.DiskUsage{Percentage: uint8(float64(used) / float64(total) * 100)}, nil
}

// readPowerSupply scans a sysfs power_supply directory for the first battery.
func readPowerSupply(dir string) (m.Charge, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return m.Charge{}, fmt.Errorf("%w: %w", ErrNoBattery, err)
	}

	for _, entry := range entries {
		supply := filepath.Join(dir, entry.Name())
		if readTrimmed(filepath.Join(supply, "type")) != "Battery" {
			continue
		}

		capacity, err := strconv.Atoi(readTrimmed(filepath.Join(supply, "capacity")))
		if err != nil {
			continue
		}

		capacity = min(max(capacity, 0), 100)

		return m.Charge{
			Percentage: uint8(capacity),
			Charging:   isChargingStatus(readTrimmed(filepath.Join(supply, "status"))),
		}, nil
	}

	return m.Charge{}, ErrNoBattery
}

// isChargingStatus treats full and unknown supplies as plugged in.
func isChargingStatus(status string) bool {
	switch strings.ToLower(status) {
	case "charging", "full", "unknown":
		return true
	default:
		return false
	}
}

func readTrimmed(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(content))
}

var pmsetPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%;\s*([^;]+);`)

// parsePmset reads the output of `pmset -g batt`.
func parsePmset(output string) (m.Charge, error) {
	match := pmsetPattern.FindStringSubmatch(output)
	if match == nil {
		return m.Charge{}, ErrNoBattery
	}

	percentage, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return m.Charge{}, fmt.Errorf("%w: %w", ErrNoBattery, err)
	}

	state := strings.ToLower(strings.TrimSpace(match[2]))

	return m.Charge{
		Percentage: uint8(math.Round(min(max(percentage, 0), 100))),
		Charging:   state == "charging" || state == "charged" || state == "finishing charge" || state == "ac attached",
	}, nil
}
