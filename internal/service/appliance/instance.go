package appliance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ps "github.com/mitchellh/go-ps"
)

// errAlreadyRunning is returned when another appliance process owns the board.
var errAlreadyRunning = errors.New("another instance is already running")

// processLister returns a snapshot of the process table.
type processLister func() ([]ps.Process, error)

// ensureSingleInstance fails when a process with the same executable name as
// this one is running.
func ensureSingleInstance(list processLister) error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	return checkSingleInstance(list, filepath.Base(self), os.Getpid())
}

func checkSingleInstance(list processLister, executable string, selfPID int) error {
	processList, err := list()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	for _, process := range processList {
		if process.Pid() == selfPID || process.Executable() != executable {
			continue
		}

		return fmt.Errorf("%w: %s (pid %d)", errAlreadyRunning, executable, process.Pid())
	}

	return nil
}
