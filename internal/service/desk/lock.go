package desk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"

	"github.com/okuznetsov/hotel-desk/internal/logger"
)

// isAnotherDeskRunning scans the process table for a second hotel-desk
// process. The desk serves one logical operator at a time; a concurrent
// session would share no allocator state and could interleave audit trails.
func isAnotherDeskRunning(ctx context.Context) (bool, error) {
	self, err := os.Executable()
	if err != nil {
		return false, fmt.Errorf("resolve executable: %w", err)
	}

	executableName := filepath.Base(self)

	processList, err := ps.Processes()
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != executableName {
			continue
		}

		logger.WarnKV(ctx, "Found a concurrent desk session", "pid", process.Pid())

		return true, nil
	}

	return false, nil
}
