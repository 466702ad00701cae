package domain

// Nerd Font glyphs used by the segments.
const (
	iconIP       = "\ueb34 "
	iconDisk     = "\U000f02ca "
	iconCalendar = "\U000f00ed "
	iconLock     = "\ue0a2"
	iconJobs     = "\uf085"

	iconDawn      = "\U000f0b4e "
	iconMorning   = "\U000f05a8 "
	iconAfternoon = "\ue268 "
	iconNight     = "\U000f0f65 "

	iconBatteryCritical         = "\U000f008e"
	iconBatteryCriticalCharging = "\U000f089f"
	iconBatteryLow              = "\U000f12a1"
	iconBatteryLowCharging      = "\U000f12a4"
	iconBatteryModerate         = "\U000f12a2"
	iconBatteryModerateCharging = "\U000f12a5"
	iconBatteryHigh             = "\U000f12a3"
	iconBatteryHighCharging     = "\U000f12a6"

	iconDirectory = "\uf07b "
	iconFile      = "\uf15c "
	iconSocket    = "\U000f1119 "
	iconFifo      = "\U000f07e6 "
	iconBlock     = "\U000f01d6 "
	iconCharacter = "\U000f18f4 "
	iconSymlink   = "\U000f0337 "
	iconHidden    = "\U000f0209 "
	iconTemporary = "\U000f18f9 "
)

// Decorations of the left prompt rows.
const (
	statusOpen      = ":«("
	statusClose     = ")»:"
	statusSeparator = "  "

	referenceOpen  = ":«("
	referenceClose = ")»"
	rebaseLabel    = "@rebase"
	dirtyMarker    = "✗"

	exitCodeOpen  = "{"
	exitCodeClose = "}⤐ "

	addressNotFound = "No Address Found"
)
