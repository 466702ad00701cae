package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"riverdreams.dev/pkg/riverdreams/internal/adapter"
	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

// CollectorSettings tunes what the collector gathers.
type CollectorSettings struct {
	PathStyle PathStyle
	// CheckDirty runs `git status` to flag uncommitted changes.
	CheckDirty bool
}

// LeftSegments is everything the left prompt shows.
type LeftSegments struct {
	WorkingDir m.Path
	Root       m.Path
	Display    string
	// Status holds ip, disk, battery, calendar and clock.
	Status []m.Segment
	// CommandLine holds elevated, exit code, venv, path, git and ownership.
	CommandLine []m.Segment
}

// All returns every segment in render order.
func (l LeftSegments) All() []m.Segment {
	return append(append(make([]m.Segment, 0, len(l.Status)+len(l.CommandLine)), l.Status...), l.CommandLine...)
}

// Collector gathers the prompt segments. A failing source yields an absent
// segment; only an unresolvable working directory is an error.
type Collector interface {
	CollectLeft(ctx context.Context, inputs m.Inputs) (LeftSegments, error)
	CollectRight(ctx context.Context, inputs m.Inputs) ([]m.Segment, error)
}

type collector struct {
	fs       adapter.FSAdapter
	git      adapter.GitAdapter
	hardware adapter.HardwareAdapter
	network  adapter.NetworkAdapter
	clock    adapter.Clock
	finder   RootFinder[m.NativeUnit]
	settings CollectorSettings
	printer  *message.Printer
}

// NewCollector creates a Collector over the given adapters.
func NewCollector(
	fsAdapter adapter.FSAdapter,
	gitAdapter adapter.GitAdapter,
	hardwareAdapter adapter.HardwareAdapter,
	networkAdapter adapter.NetworkAdapter,
	clock adapter.Clock,
	settings CollectorSettings,
) Collector {
	return &collector{
		fs:       fsAdapter,
		git:      gitAdapter,
		hardware: hardwareAdapter,
		network:  networkAdapter,
		clock:    clock,
		finder:   NewRootFinder[m.NativeUnit](fsAdapter),
		settings: settings,
		printer:  message.NewPrinter(language.English),
	}
}

func (c *collector) CollectLeft(ctx context.Context, inputs m.Inputs) (LeftSegments, error) {
	wd, err := c.fs.WorkingDir(ctx)
	if err != nil {
		return LeftSegments{}, fmt.Errorf("working directory: %w", err)
	}

	root := c.finder.Find(ctx, m.SequenceOf[m.NativeUnit](wd))
	display := NewPathAbbreviator[m.NativeUnit](inputs.Home, c.settings.PathStyle).Abbreviate(wd, root)
	now := c.clock.Now()

	return LeftSegments{
		WorkingDir: wd,
		Root:       root.RootPath(),
		Display:    display,
		Status: []m.Segment{
			c.ip(ctx),
			c.disk(ctx, wd),
			c.battery(ctx),
			calendarSegment(now),
			clockSegment(now),
		},
		CommandLine: []m.Segment{
			elevatedSegment(inputs),
			exitCodeSegment(inputs),
			virtualEnvSegment(inputs),
			pathSegment(display),
			c.repository(ctx, root),
			c.ownership(ctx, wd),
		},
	}, nil
}

func (c *collector) CollectRight(ctx context.Context, inputs m.Inputs) ([]m.Segment, error) {
	wd, err := c.fs.WorkingDir(ctx)
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	return []m.Segment{
		c.entries(ctx, wd),
		c.jobsSegment(inputs),
	}, nil
}

func unavailable(name m.SegmentName, err error) m.Segment {
	slog.Debug("segment unavailable", "segment", name, "error", err)
	return m.Absent(name)
}

func (c *collector) ip(ctx context.Context) m.Segment {
	address := addressNotFound

	ip, err := c.network.LocalIPv4(ctx)
	if err != nil {
		slog.Debug("no local address", "error", err)
	} else {
		address = ip.String()
	}

	return m.NewSegment(m.SegmentIP, m.Colored(iconIP, m.ColorBlue), m.Plain(" "+address))
}

func (c *collector) disk(ctx context.Context, wd m.Path) m.Segment {
	usage, err := c.hardware.Disk(ctx, volumeRoot(wd))
	if err != nil {
		return unavailable(m.SegmentDisk, err)
	}

	color := m.ColorGreen

	switch usage.Status() {
	case m.UsageModerate:
		color = m.ColorYellow
	case m.UsageHigh:
		color = m.ColorRed
	}

	return m.NewSegment(m.SegmentDisk, m.Colored(iconDisk, color), m.Plain(strconv.Itoa(int(usage.Percentage))+"%"))
}

// volumeRoot is `/` on Unix and the volume of wd on Windows.
func volumeRoot(wd m.Path) m.Path {
	volume := filepath.VolumeName(string(wd))
	if volume == "" {
		return "/"
	}

	return m.Path(volume + string(filepath.Separator))
}

func (c *collector) battery(ctx context.Context) m.Segment {
	charge, err := c.hardware.Battery(ctx)
	if err != nil {
		return unavailable(m.SegmentBattery, err)
	}

	icon, color := batteryIcon(charge)

	return m.NewSegment(m.SegmentBattery, m.Colored(icon, color), m.Plain(" "+strconv.Itoa(int(charge.Percentage))+"%"))
}

func batteryIcon(charge m.Charge) (string, m.Color) {
	pick := func(charging, discharging string) string {
		if charge.Charging {
			return charging
		}

		return discharging
	}

	switch charge.Status() {
	case m.ChargeCritical:
		return pick(iconBatteryCriticalCharging, iconBatteryCritical), m.ColorRed
	case m.ChargeLow:
		return pick(iconBatteryLowCharging, iconBatteryLow), m.ColorRed
	case m.ChargeModerate:
		return pick(iconBatteryModerateCharging, iconBatteryModerate), m.ColorYellow
	default:
		return pick(iconBatteryHighCharging, iconBatteryHigh), m.ColorGreen
	}
}

func calendarSegment(now time.Time) m.Segment {
	return m.NewSegment(m.SegmentCalendar, m.Colored(iconCalendar, m.ColorRed), m.Plain(FormatCalendar(now)))
}

func clockSegment(now time.Time) m.Segment {
	var icon m.Span

	switch DayFractionOf(now) {
	case Dawn:
		icon = m.Colored(iconDawn, m.ColorCyan)
	case Morning:
		icon = m.Colored(iconMorning, m.ColorRed)
	case Afternoon:
		icon = m.Colored(iconAfternoon, m.ColorBlue)
	default:
		icon = m.Colored(iconNight, m.ColorYellow)
	}

	return m.NewSegment(m.SegmentClock, icon, m.Plain(FormatClock(now)))
}

func elevatedSegment(inputs m.Inputs) m.Segment {
	if !inputs.Elevated {
		return m.Absent(m.SegmentElevated)
	}

	return m.NewSegment(m.SegmentElevated,
		m.Colored("{", m.ColorYellow),
		m.Colored("#", m.ColorRed),
		m.Colored("}", m.ColorYellow),
	)
}

func exitCodeSegment(inputs m.Inputs) m.Segment {
	color := m.ColorYellow
	if inputs.ExitCode != 0 {
		color = m.ColorRed
	}

	return m.NewSegment(m.SegmentExitCode,
		m.Colored(exitCodeOpen, m.ColorYellow),
		m.Colored(strconv.Itoa(inputs.ExitCode), color),
		m.Colored(exitCodeClose, m.ColorYellow),
	)
}

func virtualEnvSegment(inputs m.Inputs) m.Segment {
	venv := strings.TrimRight(inputs.VirtualEnv, `/\`)
	if venv == "" {
		return m.Absent(m.SegmentVirtualEnv)
	}

	name := filepath.Base(venv)
	if name == "." || name == string(filepath.Separator) {
		return m.Absent(m.SegmentVirtualEnv)
	}

	return m.NewSegment(m.SegmentVirtualEnv, m.Plain(" ("+name+")"))
}

func pathSegment(display string) m.Segment {
	return m.NewSegment(m.SegmentPath, m.Plain(" "), m.Colored(display, m.ColorRed))
}

func (c *collector) repository(ctx context.Context, root m.RootResult[m.NativeUnit]) m.Segment {
	if !root.Found {
		return m.Absent(m.SegmentGit)
	}

	path := root.RootPath()

	ref, err := c.git.Reference(ctx, path)
	if err != nil {
		return unavailable(m.SegmentGit, err)
	}

	repo := m.Repository{Root: path, Reference: ref}

	if c.settings.CheckDirty {
		dirty, err := c.git.Dirty(ctx, path)
		if err != nil {
			slog.Debug("can not read the work tree status", "root", path, "error", err)
		}

		repo.Dirty = dirty
	}

	return repositorySegment(repo)
}

func repositorySegment(repo m.Repository) m.Segment {
	spans := []m.Span{m.Colored(referenceOpen, m.ColorYellow)}

	if repo.Reference.Kind == m.ReferenceRebase {
		spans = append(spans, m.Colored(rebaseLabel, m.ColorMagenta), m.Plain(":"))
	}

	spans = append(spans, m.Plain(repo.Reference.Name), m.Colored(referenceClose, m.ColorYellow))

	if repo.Dirty {
		spans = append(spans, m.Plain(" "), m.Colored(dirtyMarker, m.ColorCyan))
	}

	return m.NewSegment(m.SegmentGit, spans...)
}

func (c *collector) ownership(ctx context.Context, wd m.Path) m.Segment {
	if c.fs.Writable(ctx, wd) {
		return m.Absent(m.SegmentOwnership)
	}

	return m.NewSegment(m.SegmentOwnership, m.Plain(" "), m.Colored(iconLock, m.ColorCyan))
}

func (c *collector) entries(ctx context.Context, wd m.Path) m.Segment {
	dirEntries, err := c.fs.ReadDir(ctx, wd)
	if err != nil && len(dirEntries) == 0 {
		return unavailable(m.SegmentEntries, err)
	}

	counts := CountEntries(dirEntries)

	var spans []m.Span

	c.appendCount(&spans, iconDirectory, m.ColorYellow, counts.Directories)
	c.appendCount(&spans, iconFile, m.ColorNone, counts.Files)
	c.appendCount(&spans, iconSocket, m.ColorCyan, counts.Sockets)
	c.appendCount(&spans, iconFifo, m.ColorBlue, counts.Fifos)
	c.appendCount(&spans, iconBlock, m.ColorMagenta, counts.Blocks)
	c.appendCount(&spans, iconCharacter, m.ColorGreen, counts.Characters)
	c.appendCount(&spans, iconSymlink, m.ColorBlue, counts.Symlinks)
	c.appendCount(&spans, iconHidden, m.ColorRed, counts.Hidden)
	c.appendCount(&spans, iconTemporary, m.ColorMagenta, counts.Temporary)

	if len(spans) == 0 {
		return m.Absent(m.SegmentEntries)
	}

	return m.NewSegment(m.SegmentEntries, spans...)
}

func (c *collector) appendCount(spans *[]m.Span, icon string, color m.Color, count int) {
	if count == 0 {
		return
	}

	*spans = append(*spans, m.Plain(" "), m.Colored(icon, color), m.Plain(c.printer.Sprintf("%d", count)))
}

// CountEntries tallies directory entries per type. Hidden and temporary
// entries are also counted under their type.
func CountEntries(entries []fs.DirEntry) m.EntryCounts {
	var counts m.EntryCounts

	for _, entry := range entries {
		name := entry.Name()

		if strings.HasSuffix(name, "~") {
			counts.Temporary++
		}

		if strings.HasPrefix(name, ".") {
			counts.Hidden++
		}

		switch mode := entry.Type(); {
		case mode&fs.ModeDir != 0:
			counts.Directories++
		case mode&fs.ModeSymlink != 0:
			counts.Symlinks++
		case mode&fs.ModeSocket != 0:
			counts.Sockets++
		case mode&fs.ModeNamedPipe != 0:
			counts.Fifos++
		case mode&fs.ModeCharDevice != 0:
			counts.Characters++
		case mode&fs.ModeDevice != 0:
			counts.Blocks++
		default:
			counts.Files++
		}
	}

	return counts
}

func (c *collector) jobsSegment(inputs m.Inputs) m.Segment {
	if inputs.Jobs <= 0 {
		return m.Absent(m.SegmentJobs)
	}

	return m.NewSegment(m.SegmentJobs,
		m.Plain(" "),
		m.Colored(iconJobs, m.ColorMagenta),
		m.Plain(" "+c.printer.Sprintf("%d", inputs.Jobs)),
	)
}
