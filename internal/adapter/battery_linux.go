//go:build linux

package adapter

import (
	"context"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

func (a *LocalHardwareAdapter) battery(_ context.Context) (m.Charge, error) {
	return readPowerSupply(a.powerSupplyDir)
}
