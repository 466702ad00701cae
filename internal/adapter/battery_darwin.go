//go:build darwin

package adapter

import (
	"context"
	"fmt"
	"os/exec"

	m "riverdreams.dev/pkg/riverdreams/internal/model"
)

func (a *LocalHardwareAdapter) battery(ctx context.Context) (m.Charge, error) {
	output, err := exec.CommandContext(ctx, "pmset", "-g", "batt").Output()
	if err != nil {
		return m.Charge{}, fmt.Errorf("%w: %w", ErrNoBattery, err)
	}

	return parsePmset(string(output))
}
