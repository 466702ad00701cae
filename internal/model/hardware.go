package model

// ChargeStatus classifies a battery charge.
type ChargeStatus int

const (
	// ChargeCritical covers charges from 0% up to 5%.
	ChargeCritical ChargeStatus = iota
	// ChargeLow covers charges from 5% up to 30%.
	ChargeLow
	// ChargeModerate covers charges from 30% up to 60%.
	ChargeModerate
	// ChargeHigh covers charges from 60% up to 100%.
	ChargeHigh
)

// Charge is the battery state at the time of the query.
type Charge struct {
	Percentage uint8
	Charging   bool
}

// Status returns the class that best describes the charge.
func (c Charge) Status() ChargeStatus {
	switch {
	case c.Percentage < 5:
		return ChargeCritical
	case c.Percentage < 30:
		return ChargeLow
	case c.Percentage < 60:
		return ChargeModerate
	default:
		return ChargeHigh
	}
}

// UsageStatus classifies a disk usage.
type UsageStatus int

const (
	// UsageLow covers usages from 0% up to 60%.
	UsageLow UsageStatus = iota
	// UsageModerate covers usages from 60% up to 80%.
	UsageModerate
	// UsageHigh covers usages from 80% up to 100%.
	UsageHigh
)

// DiskUsage is the used share of the volume holding the working directory.
type DiskUsage struct {
	Percentage uint8
}

// Status returns the class that best describes the usage.
func (d DiskUsage) Status() UsageStatus {
	switch {
	case d.Percentage < 60:
		return UsageLow
	case d.Percentage < 80:
		return UsageModerate
	default:
		return UsageHigh
	}
}
